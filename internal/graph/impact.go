package graph

import "sort"

// ImpactEffort estimates how much work resolving an impacted change is
// likely to take, bucketed by how many critical nodes (use cases and
// business requirements) fall within the impact set.
type ImpactEffort string

const (
	ImpactEffortSmall  ImpactEffort = "small"
	ImpactEffortMedium ImpactEffort = "medium"
	ImpactEffortLarge  ImpactEffort = "large"
	ImpactEffortXLarge ImpactEffort = "xlarge"
)

// EstimateImpactEffort maps a critical-node count to an effort bucket.
func EstimateImpactEffort(criticalCount int) ImpactEffort {
	switch {
	case criticalCount <= 3:
		return ImpactEffortSmall
	case criticalCount <= 10:
		return ImpactEffortMedium
	case criticalCount <= 20:
		return ImpactEffortLarge
	default:
		return ImpactEffortXLarge
	}
}

// defaultImpactMaxDepth bounds the change-impact BFS; nodes beyond it are
// not reported, matching the default depth a caller would otherwise have to
// pass explicitly every time.
const defaultImpactMaxDepth = 5

// ImpactAnalysis is the result of a single change-impact query: everything
// that depends on, directly or transitively, the changed node.
type ImpactAnalysis struct {
	ChangedNodeID   string
	DirectImpact    []string
	IndirectImpact  []string
	CriticalCount   int
	EstimatedEffort ImpactEffort
}

// AnalyzeImpact runs AnalyzeImpactDepth with the default max depth of 5.
func AnalyzeImpact(g *Graph, changedID string) ImpactAnalysis {
	return AnalyzeImpactDepth(g, changedID, defaultImpactMaxDepth)
}

// AnalyzeImpactDepth runs a BFS over predecessor edges starting at
// changedID, bounded by maxDepth: any node with an edge pointing at the
// changed node (or, transitively, at an already-affected node) depends on it
// in some way. Distance-1 dependents are the direct impact; deeper ones
// (up to maxDepth) are the indirect impact.
func AnalyzeImpactDepth(g *Graph, changedID string, maxDepth int) ImpactAnalysis {
	visited := map[string]int{changedID: 0}
	queue := []string{changedID}

	var direct, indirect []string
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		dist := visited[id]
		if dist >= maxDepth {
			continue
		}

		preds := append([]string{}, g.Predecessors(id)...)
		sort.Strings(preds)
		for _, p := range preds {
			if _, seen := visited[p]; seen {
				continue
			}
			visited[p] = dist + 1
			if dist+1 == 1 {
				direct = append(direct, p)
			} else {
				indirect = append(indirect, p)
			}
			queue = append(queue, p)
		}
	}

	sort.Strings(direct)
	sort.Strings(indirect)

	criticalCount := 0
	for _, id := range append(append([]string{}, direct...), indirect...) {
		if n, ok := g.Node(id); ok && (n.Kind == NodeUseCase || n.Kind == NodeBusinessRequirement) {
			criticalCount++
		}
	}

	return ImpactAnalysis{
		ChangedNodeID:   changedID,
		DirectImpact:    direct,
		IndirectImpact:  indirect,
		CriticalCount:   criticalCount,
		EstimatedEffort: EstimateImpactEffort(criticalCount),
	}
}
