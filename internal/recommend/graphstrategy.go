package recommend

import (
	"fmt"
	"strings"

	"github.com/artifactqa/quality-assessment/internal/graph"
	"github.com/artifactqa/quality-assessment/internal/model"
)

// GraphStrategy turns structural findings from a dependency-graph analysis
// into recommendations: critical/high cycles, isolated nodes (a traceability
// gap — Scenario D), and hub nodes (an architecture concern).
func GraphStrategy(g *graph.Graph, result graph.AnalysisResult) []Recommendation {
	var out []Recommendation

	for _, c := range result.Cycles {
		if c.Severity != model.SeverityCritical && c.Severity != model.SeverityHigh {
			continue
		}
		out = append(out, Recommendation{
			ID:       makeID("graph-cycle", c.NodeIDs...),
			Title:    fmt.Sprintf("break dependency cycle through %s", strings.Join(c.NodeIDs, " -> ")),
			Priority: severityToPriority(c.Severity),
			Category: CategoryArchitecture,
			Problem:  fmt.Sprintf("a %s-severity cycle of length %d passes through: %s", c.Severity, c.Length, strings.Join(c.NodeIDs, ", ")),
			Impact: Impact{
				Scope:            ScopeModule,
				AffectedElements: c.NodeIDs,
				Severity:         c.Severity,
			},
			Solution: Solution{Description: "remove or invert one edge in the cycle so dependencies form a strict hierarchy"},
			Benefits: []string{"restores a valid topological order and change-impact analysis for the affected elements"},
			Effort:   Effort{Hours: 4, Complexity: ComplexityModerate},
			Rationale: Rationale{
				DependencyIssue: fmt.Sprintf("cycle severity %s over %d nodes", c.Severity, c.Length),
			},
		})
	}

	for _, id := range result.IsolatedNodes {
		name := id
		if n, ok := g.Node(id); ok && n.Name != "" {
			name = n.Name
		}
		out = append(out, Recommendation{
			ID:       makeID("graph-isolated", id),
			Title:    fmt.Sprintf("link %s into the traceability graph", name),
			Priority: model.PriorityMedium,
			Category: CategoryTraceability,
			Problem:  fmt.Sprintf("%s has no incoming or outgoing dependency edges", name),
			Impact: Impact{
				Scope:            ScopeElement,
				AffectedElements: []string{id},
				Severity:         model.SeverityMedium,
			},
			Solution: Solution{Description: "reference this artifact from (or have it reference) at least one related use case, requirement, or screen"},
			Benefits: []string{"makes the artifact discoverable by change-impact analysis"},
			Effort:   Effort{Hours: 1, Complexity: ComplexitySimple},
			Rationale: Rationale{
				DependencyIssue: fmt.Sprintf("%s is isolated", id),
			},
		})
	}

	for _, id := range result.HubNodes {
		out = append(out, Recommendation{
			ID:       makeID("graph-hub", id),
			Title:    fmt.Sprintf("review %s as an architectural hub", id),
			Priority: model.PriorityMedium,
			Category: CategoryArchitecture,
			Problem:  fmt.Sprintf("%s is depended on directly by %d other artifacts; changes to it fan out widely", id, g.InDegree(id)),
			Impact: Impact{
				Scope:            ScopeModule,
				AffectedElements: []string{id},
				Severity:         model.SeverityMedium,
			},
			Solution: Solution{Description: "consider whether the responsibilities concentrated here can be split across more than one artifact"},
			Benefits: []string{"reduces the blast radius of future changes"},
			Effort:   Effort{Hours: 6, Complexity: ComplexityComplex},
			Rationale: Rationale{
				DependencyIssue: fmt.Sprintf("in-degree %d", g.InDegree(id)),
			},
		})
	}

	return out
}

func severityToPriority(s model.Severity) model.Priority {
	switch s {
	case model.SeverityCritical:
		return model.PriorityCritical
	case model.SeverityHigh:
		return model.PriorityHigh
	case model.SeverityMedium:
		return model.PriorityMedium
	default:
		return model.PriorityLow
	}
}
