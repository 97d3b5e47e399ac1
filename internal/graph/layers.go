package graph

import (
	"sort"

	"github.com/artifactqa/quality-assessment/internal/model"
)

// LayerViolation is an edge that points from a higher level back to a
// strictly lower one.
type LayerViolation struct {
	From      string
	To        string
	Kind      EdgeKind
	FromLevel int
	ToLevel   int
	Severity  model.Severity
}

// LayerAnalysis assigns every node a level (0-based, by longest dependency
// distance from an in-degree-0 root) via Kahn-style relaxation, and reports
// any edge that violates the resulting order.
type LayerAnalysis struct {
	NodeLevel   map[string]int
	Layers      [][]string
	Violations  []LayerViolation
	HealthScore float64
}

// AnalyzeLayers assigns level 0 to every in-degree-0 node, then relaxes
// level(n) = max(level(pred)) + 1 across all edges until no level changes or
// len(g.Nodes) rounds have passed — a cyclic graph would otherwise relax
// forever, so the cap stands in for "no valid topological level exists
// here," and nodes on a cycle keep rising each round, ending at whatever
// level the last round gave them.
func AnalyzeLayers(g *Graph) LayerAnalysis {
	level := make(map[string]int, len(g.Nodes))
	for _, n := range g.Nodes {
		level[n.ID] = 0
	}

	for round := 0; round < len(g.Nodes); round++ {
		changed := false
		for _, e := range g.Edges {
			if level[e.To] < level[e.From]+1 {
				level[e.To] = level[e.From] + 1
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	maxLevel := 0
	for _, l := range level {
		if l > maxLevel {
			maxLevel = l
		}
	}
	layers := make([][]string, maxLevel+1)
	for _, n := range g.Nodes {
		l := level[n.ID]
		layers[l] = append(layers[l], n.ID)
	}
	for i := range layers {
		sort.Strings(layers[i])
	}

	var violations []LayerViolation
	for _, e := range g.Edges {
		if level[e.From] > level[e.To] {
			violations = append(violations, LayerViolation{
				From: e.From, To: e.To, Kind: e.Kind,
				FromLevel: level[e.From], ToLevel: level[e.To],
				Severity: layerViolationSeverity(level[e.From] - level[e.To]),
			})
		}
	}

	health := 100.0 - 5.0*float64(len(violations))
	if health < 0 {
		health = 0
	}

	return LayerAnalysis{NodeLevel: level, Layers: layers, Violations: violations, HealthScore: health}
}

func layerViolationSeverity(gap int) model.Severity {
	switch {
	case gap > 2:
		return model.SeverityHigh
	case gap > 1:
		return model.SeverityMedium
	default:
		return model.SeverityLow
	}
}
