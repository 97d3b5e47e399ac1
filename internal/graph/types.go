// Package graph builds a heterogeneous directed graph over an artifact
// collection and derives structural diagnostics: cycles, layering,
// importance ranking, change-impact, and topological order.
package graph

// NodeKind classifies a graph node by the artifact (or sub-item) it
// represents.
type NodeKind string

const (
	NodeBusinessRequirement NodeKind = "BusinessRequirement"
	NodeBusinessGoal        NodeKind = "BusinessGoal"
	NodeBusinessRule        NodeKind = "BusinessRule"
	NodeSecurityPolicy      NodeKind = "SecurityPolicy"
	NodeActor               NodeKind = "Actor"
	NodeUseCase             NodeKind = "UseCase"
	NodeScreen              NodeKind = "Screen"
	NodeScreenFlow          NodeKind = "ScreenFlow"
)

// EdgeKind classifies a graph edge by the relationship it represents.
type EdgeKind string

const (
	EdgeUses        EdgeKind = "USES"
	EdgeContains    EdgeKind = "CONTAINS"
	EdgeReferences  EdgeKind = "REFERENCES"
	EdgeExtends     EdgeKind = "EXTENDS"
	EdgeIncludes    EdgeKind = "INCLUDES"
	EdgeDependsOn   EdgeKind = "DEPENDS_ON"
	EdgeImplements  EdgeKind = "IMPLEMENTS"
	EdgeTriggers    EdgeKind = "TRIGGERS"
)

// Node is one vertex of the dependency graph.
type Node struct {
	ID   string
	Kind NodeKind
	Name string
}

// Edge is one directed arc of the dependency graph. BidirectionalAllowed
// marks edges (screen transitions) whose participation in a cycle should
// not, by itself, escalate severity above info.
type Edge struct {
	From                 string
	To                   string
	Kind                 EdgeKind
	BidirectionalAllowed bool
}

// Graph is a heterogeneous directed graph keyed by node id. Nodes are
// arena-held by id — edges reference ids, never node values — since the
// graph is genuinely cyclic (screen transitions loop by design) and no tree
// of exclusive ownership would fit it.
type Graph struct {
	Nodes []Node
	Edges []Edge

	nodeByID         map[string]*Node
	adjacency        map[string][]string
	reverseAdjacency map[string][]string
}

// NewGraph returns an empty graph ready for AddNode/AddEdge.
func NewGraph() *Graph {
	return &Graph{
		nodeByID:         make(map[string]*Node),
		adjacency:        make(map[string][]string),
		reverseAdjacency: make(map[string][]string),
	}
}

// AddNode registers a node if its id hasn't been seen yet; it is a no-op on
// a duplicate id (callers may reference the same sub-item node repeatedly
// while building edges).
func (g *Graph) AddNode(n Node) {
	if _, ok := g.nodeByID[n.ID]; ok {
		return
	}
	g.Nodes = append(g.Nodes, n)
	g.nodeByID[n.ID] = &g.Nodes[len(g.Nodes)-1]
}

// AddEdge appends an edge and updates the adjacency/reverse-adjacency maps.
// Both endpoints must already exist as nodes; edges to unknown nodes are
// silently dropped (mirrors the "dangling Ref" non-fatal posture — an
// upstream construction step is responsible for adding nodes before edges).
func (g *Graph) AddEdge(e Edge) {
	if _, ok := g.nodeByID[e.From]; !ok {
		return
	}
	if _, ok := g.nodeByID[e.To]; !ok {
		return
	}
	g.Edges = append(g.Edges, e)
	g.adjacency[e.From] = append(g.adjacency[e.From], e.To)
	g.reverseAdjacency[e.To] = append(g.reverseAdjacency[e.To], e.From)
}

// Node looks up a node by id.
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.nodeByID[id]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// Successors returns the ids of nodes reachable by a single outgoing edge
// from id.
func (g *Graph) Successors(id string) []string {
	return g.adjacency[id]
}

// Predecessors returns the ids of nodes with a single outgoing edge to id.
func (g *Graph) Predecessors(id string) []string {
	return g.reverseAdjacency[id]
}

// InDegree returns the number of edges targeting id.
func (g *Graph) InDegree(id string) int {
	return len(g.reverseAdjacency[id])
}

// OutDegree returns the number of edges originating from id.
func (g *Graph) OutDegree(id string) int {
	return len(g.adjacency[id])
}

// edgeBetween returns the edge from -> to, if one exists (the first such
// edge, for cycle-kind reporting — parallel edges of different kinds
// between the same pair are rare in practice).
func (g *Graph) edgeBetween(from, to string) (Edge, bool) {
	for _, e := range g.Edges {
		if e.From == from && e.To == to {
			return e, true
		}
	}
	return Edge{}, false
}
