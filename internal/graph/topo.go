package graph

import "sort"

// TopologicalOrder returns a valid topological ordering of the graph's node
// ids via DFS post-order reversal, or ok=false if the graph contains a cycle
// (an ordering cannot exist). DFS roots and each node's successors are
// visited in id order so the result is deterministic.
func TopologicalOrder(g *Graph) (order []string, ok bool) {
	const (
		unvisited = 0
		visiting  = 1
		done      = 2
	)
	state := make(map[string]int, len(g.Nodes))
	var postOrder []string
	acyclic := true

	ids := make([]string, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		ids = append(ids, n.ID)
	}
	sort.Strings(ids)

	var visit func(id string)
	visit = func(id string) {
		state[id] = visiting
		succs := append([]string{}, g.Successors(id)...)
		sort.Strings(succs)
		for _, next := range succs {
			switch state[next] {
			case unvisited:
				visit(next)
			case visiting:
				acyclic = false
			}
		}
		state[id] = done
		postOrder = append(postOrder, id)
	}

	for _, id := range ids {
		if state[id] == unvisited {
			visit(id)
		}
	}

	if !acyclic {
		return nil, false
	}

	order = make([]string, len(postOrder))
	for i, id := range postOrder {
		order[len(postOrder)-1-i] = id
	}
	return order, true
}
