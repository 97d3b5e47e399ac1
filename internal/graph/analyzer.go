package graph

import (
	"fmt"

	"github.com/artifactqa/quality-assessment/internal/model"
)

// Warning is a human-readable structural observation that does not block
// anything on its own but is surfaced for the recommendation engine and the
// dashboard to draw on.
type Warning struct {
	Message  string
	Severity model.Severity
}

// AnalysisResult aggregates every structural diagnostic computed over one
// graph, the single object the recommendation engine and dashboard consume.
// Field names mirror the stable result shape's GraphAnalysisResult.
type AnalysisResult struct {
	Statistics       Statistics
	Cycles           []Cycle
	Layers           LayerAnalysis
	Importance       []NodeImportance
	IsolatedNodes    []string
	HubNodes         []string
	TopologicalOrder []string
	Acyclic          bool
	Warnings         []Warning
	Recommendations  []string
}

// hubInDegreeThreshold flags a node as a hub once 10 or more edges target
// it — that many other artifacts depending on one node is itself an
// architectural risk, independent of whether any of those edges close a
// cycle.
const hubInDegreeThreshold = 10

// Analyze runs every structural diagnostic over the graph and derives the
// warnings/recommendations a caller would otherwise have to assemble itself
// from the raw Cycles/Layers/Importance/Statistics.
func Analyze(g *Graph) AnalysisResult {
	cycles := DetectCycles(g)
	order, acyclic := TopologicalOrder(g)

	result := AnalysisResult{
		Statistics:       ComputeStatistics(g, cycles),
		Cycles:           cycles,
		Layers:           AnalyzeLayers(g),
		Importance:       ComputeImportance(g),
		TopologicalOrder: order,
		Acyclic:          acyclic,
	}

	for _, n := range g.Nodes {
		in, out := g.InDegree(n.ID), g.OutDegree(n.ID)
		if in == 0 && out == 0 {
			result.IsolatedNodes = append(result.IsolatedNodes, n.ID)
		}
		if in >= hubInDegreeThreshold {
			result.HubNodes = append(result.HubNodes, n.ID)
		}
	}

	for _, c := range result.Cycles {
		if c.Severity == model.SeverityInfo {
			continue
		}
		result.Warnings = append(result.Warnings, Warning{
			Message:  fmt.Sprintf("cycle through %d nodes starting at %s", c.Length, c.NodeIDs[0]),
			Severity: c.Severity,
		})
	}
	for _, id := range result.IsolatedNodes {
		result.Warnings = append(result.Warnings, Warning{
			Message:  fmt.Sprintf("node %s has no incoming or outgoing edges", id),
			Severity: model.SeverityLow,
		})
	}
	for _, id := range result.HubNodes {
		result.Warnings = append(result.Warnings, Warning{
			Message:  fmt.Sprintf("node %s is depended on by %d other nodes directly; changes to it fan out widely", id, g.InDegree(id)),
			Severity: model.SeverityMedium,
		})
	}

	result.Recommendations = deriveRecommendations(result)

	return result
}

func deriveRecommendations(r AnalysisResult) []string {
	var out []string

	criticalCycles := 0
	for _, c := range r.Cycles {
		if c.Severity == model.SeverityCritical || c.Severity == model.SeverityHigh {
			criticalCycles++
		}
	}
	if criticalCycles > 0 {
		out = append(out, fmt.Sprintf("break %d critical/high-severity dependency cycle(s) before adding further coverage", criticalCycles))
	}

	if len(r.Layers.Violations) > 0 {
		out = append(out, fmt.Sprintf("resolve %d layering violation(s); dependencies should not point back toward an earlier layer", len(r.Layers.Violations)))
	}

	if len(r.IsolatedNodes) > 0 {
		out = append(out, fmt.Sprintf("review %d isolated artifact(s) with no traceability links", len(r.IsolatedNodes)))
	}

	if len(r.HubNodes) > 0 {
		out = append(out, fmt.Sprintf("%d hub artifact(s) are depended on by 10+ others; consider an architecture review", len(r.HubNodes)))
	}

	return out
}
