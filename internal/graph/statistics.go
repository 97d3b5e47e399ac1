package graph

// Statistics summarizes a graph's shape at a glance: counts, degree
// averages, reachability depth, and component/cycle counts. IsolatedNodes
// (the ids themselves) live on AnalysisResult rather than here, matching the
// result shape's separation of a terse statistics block from the fuller
// isolated-node list.
type Statistics struct {
	NodeCount           int
	EdgeCount           int
	NodesByKind         map[NodeKind]int
	EdgesByKind         map[EdgeKind]int
	AverageInDegree     float64
	AverageOutDegree    float64
	MaxDepth            int
	ConnectedComponents int
	CycleCount          int
	IsolatedNodeCount   int
}

// ComputeStatistics derives aggregate counts. cycles is passed in (rather
// than recomputed) so a caller that already ran DetectCycles doesn't pay for
// it twice.
func ComputeStatistics(g *Graph, cycles []Cycle) Statistics {
	stats := Statistics{
		NodeCount:   len(g.Nodes),
		EdgeCount:   len(g.Edges),
		NodesByKind: make(map[NodeKind]int),
		EdgesByKind: make(map[EdgeKind]int),
		CycleCount:  len(cycles),
	}

	totalIn, totalOut := 0, 0
	for _, n := range g.Nodes {
		stats.NodesByKind[n.Kind]++
		in := g.InDegree(n.ID)
		out := g.OutDegree(n.ID)
		totalIn += in
		totalOut += out
		if in == 0 && out == 0 {
			stats.IsolatedNodeCount++
		}
	}
	for _, e := range g.Edges {
		stats.EdgesByKind[e.Kind]++
	}
	if stats.NodeCount > 0 {
		stats.AverageInDegree = float64(totalIn) / float64(stats.NodeCount)
		stats.AverageOutDegree = float64(totalOut) / float64(stats.NodeCount)
	}

	stats.MaxDepth = maxDepthFromRoots(g)
	stats.ConnectedComponents = countWeaklyConnectedComponents(g)

	return stats
}

// maxDepthFromRoots runs a DFS from every in-degree-0 node and returns the
// longest path length (in edges) found. A node already on the current DFS
// path is treated as a depth boundary rather than followed again, so a cycle
// reachable from a root contributes only the acyclic prefix to the depth.
func maxDepthFromRoots(g *Graph) int {
	maxDepth := 0
	onStack := make(map[string]bool)

	var visit func(id string, depth int)
	visit = func(id string, depth int) {
		if depth > maxDepth {
			maxDepth = depth
		}
		onStack[id] = true
		for _, next := range g.Successors(id) {
			if !onStack[next] {
				visit(next, depth+1)
			}
		}
		onStack[id] = false
	}

	for _, n := range g.Nodes {
		if g.InDegree(n.ID) == 0 {
			visit(n.ID, 0)
		}
	}

	return maxDepth
}

// countWeaklyConnectedComponents treats every edge as undirected and counts
// connected components over the resulting graph via union-find.
func countWeaklyConnectedComponents(g *Graph) int {
	parent := make(map[string]string, len(g.Nodes))
	for _, n := range g.Nodes {
		parent[n.ID] = n.ID
	}

	var find func(id string) string
	find = func(id string) string {
		if parent[id] != id {
			parent[id] = find(parent[id])
		}
		return parent[id]
	}
	union := func(a, b string) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[ra] = rb
		}
	}

	for _, e := range g.Edges {
		union(e.From, e.To)
	}

	roots := make(map[string]bool)
	for _, n := range g.Nodes {
		roots[find(n.ID)] = true
	}
	return len(roots)
}
