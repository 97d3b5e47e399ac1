package recommend

import (
	"fmt"

	"github.com/artifactqa/quality-assessment/internal/maturity"
	"github.com/artifactqa/quality-assessment/internal/model"
)

var dimensionCategory = map[maturity.Dimension]Category{
	maturity.DimensionStructure:       CategoryStructure,
	maturity.DimensionDetail:          CategoryDetail,
	maturity.DimensionTraceability:    CategoryTraceability,
	maturity.DimensionTestability:     CategoryTestability,
	maturity.DimensionMaintainability: CategoryMaintainability,
}

func effortForUnsatisfied(criterion maturity.Criterion) Effort {
	if criterion.Required {
		return Effort{Hours: 3, Complexity: ComplexityModerate}
	}
	return Effort{Hours: 1.5, Complexity: ComplexitySimple}
}

// MaturityGapStrategy emits one recommendation per unsatisfied criterion
// found on each assessed element: a required criterion at projectLevel+1 is
// high priority (it is what's actually blocking the project from advancing);
// any other unsatisfied criterion is medium.
func MaturityGapStrategy(assessment maturity.ProjectMaturityAssessment) []Recommendation {
	var out []Recommendation

	emit := func(e maturity.ElementAssessment) {
		for _, outcome := range e.Outcomes {
			if outcome.Result.Satisfied {
				continue
			}
			priority := model.PriorityMedium
			if outcome.Criterion.Required && outcome.Criterion.Level == assessment.ProjectLevel+1 {
				priority = model.PriorityHigh
			}
			category, ok := dimensionCategory[outcome.Criterion.Dimension]
			if !ok {
				category = CategoryQuality
			}

			out = append(out, Recommendation{
				ID:       makeID("maturity-gap", e.ElementID, outcome.Criterion.ID),
				Title:    fmt.Sprintf("satisfy %s on %s", outcome.Criterion.ID, e.ElementID),
				Priority: priority,
				Category: category,
				Problem:  outcome.Result.Evidence,
				Impact: Impact{
					Scope:            ScopeElement,
					AffectedElements: []string{e.ElementID},
					Severity:         priorityToSeverity(priority),
				},
				Solution: Solution{
					Description: fmt.Sprintf("address the gap identified by criterion %s (dimension %s, level %d)", outcome.Criterion.ID, outcome.Criterion.Dimension, outcome.Criterion.Level),
				},
				Benefits: []string{fmt.Sprintf("moves %s toward maturity level %d", e.ElementID, outcome.Criterion.Level)},
				Effort:   effortForUnsatisfied(outcome.Criterion),
				Rationale: Rationale{
					MaturityGap: fmt.Sprintf("%s unsatisfied at level %d (project is at %d)", outcome.Criterion.ID, outcome.Criterion.Level, assessment.ProjectLevel),
				},
			})
		}
	}

	for _, e := range assessment.Elements.BusinessRequirements {
		emit(e)
	}
	for _, e := range assessment.Elements.Actors {
		emit(e)
	}
	for _, e := range assessment.Elements.UseCases {
		emit(e)
	}

	return out
}

func priorityToSeverity(p model.Priority) model.Severity {
	switch p {
	case model.PriorityCritical:
		return model.SeverityCritical
	case model.PriorityHigh:
		return model.SeverityHigh
	case model.PriorityMedium:
		return model.SeverityMedium
	default:
		return model.SeverityLow
	}
}
