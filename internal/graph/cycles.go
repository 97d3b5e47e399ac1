package graph

import "github.com/artifactqa/quality-assessment/internal/model"

// Cycle is one elementary cycle found by DFS, reported as the ordered list
// of node ids visited (first id repeats as the closing node) plus the kinds
// of edge it's made of. Severity reuses model.Severity's
// critical/high/medium/low/info scale — a cycle made entirely of
// bidirectional-allowed edges (screen-flow transitions, which loop by
// design) is info; everything else escalates by the kinds of node it
// touches and its length.
type Cycle struct {
	NodeIDs   []string
	Length    int
	EdgeKinds []EdgeKind
	Severity  model.Severity
}

// DetectCycles runs a DFS with a recursion-stack marker over every node,
// collecting one cycle per back-edge encountered. Every node is visited once,
// so each back-edge, and therefore each reported cycle, appears once; a
// cycle that does not close on a back-edge of this DFS is not reported, so
// the result is not a full enumeration of elementary cycles.
func DetectCycles(g *Graph) []Cycle {
	state := make(map[string]int) // 0 unvisited, 1 on stack, 2 done
	var stack []string
	var cycles []Cycle

	var visit func(id string)
	visit = func(id string) {
		state[id] = 1
		stack = append(stack, id)

		for _, next := range g.Successors(id) {
			switch state[next] {
			case 0:
				visit(next)
			case 1:
				cycles = append(cycles, buildCycle(g, stack, next))
			}
		}

		stack = stack[:len(stack)-1]
		state[id] = 2
	}

	for _, n := range g.Nodes {
		if state[n.ID] == 0 {
			visit(n.ID)
		}
	}

	return cycles
}

// buildCycle extracts the cycle from the current recursion stack starting
// at the first occurrence of closeAt, and classifies its severity.
func buildCycle(g *Graph, stack []string, closeAt string) Cycle {
	start := 0
	for i, id := range stack {
		if id == closeAt {
			start = i
			break
		}
	}
	nodeIDs := append([]string{}, stack[start:]...)
	nodeIDs = append(nodeIDs, closeAt)

	var edgeKinds []EdgeKind
	for i := 0; i+1 < len(nodeIDs); i++ {
		if e, ok := g.edgeBetween(nodeIDs[i], nodeIDs[i+1]); ok {
			edgeKinds = append(edgeKinds, e.Kind)
		}
	}

	return Cycle{
		NodeIDs:   nodeIDs,
		Length:    len(nodeIDs) - 1,
		EdgeKinds: edgeKinds,
		Severity:  classifyCycleSeverity(g, nodeIDs),
	}
}

func classifyCycleSeverity(g *Graph, nodeIDs []string) model.Severity {
	allBidirectional := true
	for i := 0; i+1 < len(nodeIDs); i++ {
		e, ok := g.edgeBetween(nodeIDs[i], nodeIDs[i+1])
		if !ok || !e.BidirectionalAllowed {
			allBidirectional = false
			break
		}
	}
	if allBidirectional {
		return model.SeverityInfo
	}

	for _, id := range nodeIDs {
		n, ok := g.Node(id)
		if !ok {
			continue
		}
		switch n.Kind {
		case NodeBusinessRequirement, NodeBusinessGoal, NodeActor:
			return model.SeverityCritical
		}
	}

	length := len(nodeIDs) - 1 // edges in the cycle, excluding the closing repeat
	switch {
	case length <= 3:
		return model.SeverityHigh
	case length <= 5:
		return model.SeverityMedium
	default:
		return model.SeverityLow
	}
}
