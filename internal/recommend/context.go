package recommend

import (
	"fmt"

	"github.com/artifactqa/quality-assessment/internal/maturity"
	"github.com/artifactqa/quality-assessment/internal/model"
)

// Domain is the optional business domain a project operates in; finance and
// healthcare projects get stricter traceability/compliance recommendations.
type Domain string

const (
	DomainFinance    Domain = "finance"
	DomainHealthcare Domain = "healthcare"
	DomainEcommerce  Domain = "ecommerce"
	DomainGeneral    Domain = "general"
)

// Stage is where a project sits in its lifecycle.
type Stage string

const (
	StagePOC               Stage = "poc"
	StageMVP               Stage = "mvp"
	StageActiveDevelopment Stage = "active-development"
	StageProduction        Stage = "production"
)

// TeamSize is a coarse team-size bucket.
type TeamSize string

const (
	TeamSolo   TeamSize = "solo"
	TeamSmall  TeamSize = "small"
	TeamMedium TeamSize = "medium"
	TeamLarge  TeamSize = "large"
)

// Criticality is how much a failure of the system being modeled would cost.
type Criticality string

const (
	CriticalityExperimental    Criticality = "experimental"
	CriticalityMedium          Criticality = "medium"
	CriticalityMissionCritical Criticality = "mission-critical"
)

// ProjectContext is optional information about the project being assessed,
// used to raise or lower the bar a maturity-gap recommendation is judged
// against.
type ProjectContext struct {
	Domain      Domain
	Stage       Stage
	TeamSize    TeamSize
	Criticality Criticality
}

// requiredMaturityLevel is the maturity level a project's context implies it
// should already be at. A mission-critical or production-stage project is
// held to a higher bar than an experimental proof of concept.
func requiredMaturityLevel(ctx ProjectContext) int {
	level := 2
	switch ctx.Stage {
	case StageActiveDevelopment:
		level = 3
	case StageProduction:
		level = 4
	}
	if ctx.Criticality == CriticalityMissionCritical && level < 4 {
		level = 4
	}
	return level
}

// ContextStrategy adjusts the bar a project is held to based on its
// declared domain/stage/criticality: a production, mission-critical, or
// regulated-domain project that hasn't reached the level its context
// implies gets a project-scoped recommendation naming the gap.
func ContextStrategy(assessment maturity.ProjectMaturityAssessment, ctx *ProjectContext) []Recommendation {
	if ctx == nil {
		return nil
	}

	var out []Recommendation

	if required := requiredMaturityLevel(*ctx); assessment.ProjectLevel < required {
		out = append(out, Recommendation{
			ID:       makeID("context", "level-gap", string(ctx.Stage), string(ctx.Criticality)),
			Title:    fmt.Sprintf("raise project maturity to level %d for a %s-stage, %s project", required, ctx.Stage, ctx.Criticality),
			Priority: model.PriorityHigh,
			Category: CategoryMaintainability,
			Problem:  fmt.Sprintf("project is at maturity level %d; its %s stage and %s criticality imply level %d", assessment.ProjectLevel, ctx.Stage, ctx.Criticality, required),
			Impact:   Impact{Scope: ScopeProject, Severity: model.SeverityHigh},
			Solution: Solution{Description: "close the required-criterion gaps surfaced by the maturity-gap strategy for the elements at the lowest level"},
			Benefits: []string{"reduces risk commensurate with the project's declared criticality"},
			Effort:   Effort{Hours: 8, Complexity: ComplexityComplex},
			Rationale: Rationale{
				ContextReason: fmt.Sprintf("stage=%s criticality=%s implies level %d", ctx.Stage, ctx.Criticality, required),
			},
		})
	}

	if ctx.Domain == DomainFinance || ctx.Domain == DomainHealthcare {
		for _, agg := range assessment.OverallDimensions {
			if agg.Dimension != maturity.DimensionTraceability {
				continue
			}
			if agg.CompletionRate >= 0.8 {
				continue
			}
			out = append(out, Recommendation{
				ID:       makeID("context", "regulated-traceability", string(ctx.Domain)),
				Title:    fmt.Sprintf("strengthen traceability for a regulated %s project", ctx.Domain),
				Priority: model.PriorityHigh,
				Category: CategoryTraceability,
				Problem:  fmt.Sprintf("traceability completion is %.0f%%, below the bar expected in %s", agg.CompletionRate*100, ctx.Domain),
				Impact:   Impact{Scope: ScopeProject, Severity: model.SeverityHigh},
				Solution: Solution{Description: "ensure every use case links back to the business requirement and goal it satisfies"},
				Benefits: []string{"supports audit and compliance review"},
				Effort:   Effort{Hours: 6, Complexity: ComplexityModerate},
				Rationale: Rationale{
					ContextReason: fmt.Sprintf("domain=%s requires strong traceability", ctx.Domain),
				},
			})
		}
	}

	return out
}
