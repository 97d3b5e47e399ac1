package recommend

import (
	"fmt"

	"github.com/artifactqa/quality-assessment/internal/coherence"
	"github.com/artifactqa/quality-assessment/internal/model"
)

var issueCodeCategory = map[string]Category{
	coherence.CodeScreenSequenceMismatch:        CategoryStructure,
	coherence.CodeTransitionMissing:             CategoryStructure,
	coherence.CodeStartScreenMismatch:           CategoryStructure,
	coherence.CodeEndScreenMismatch:             CategoryStructure,
	coherence.CodePrerequisiteUseCaseMissing:    CategoryTraceability,
	coherence.CodePrerequisitePriorityMismatch:  CategoryTraceability,
	coherence.CodePrerequisiteCircularDependency: CategoryTraceability,
}

// CoherenceStrategy turns every coherence issue into a recommendation whose
// priority inherits the issue's severity, per §4.4 strategy 4.
func CoherenceStrategy(result coherence.CoherenceValidationResult) []Recommendation {
	out := make([]Recommendation, 0, len(result.Issues))
	for _, issue := range result.Issues {
		category, ok := issueCodeCategory[issue.Code]
		if !ok {
			category = CategoryQuality
		}
		out = append(out, Recommendation{
			ID:       makeID("coherence", issue.Code, issue.UseCaseID, issue.ScreenFlowID),
			Title:    fmt.Sprintf("resolve %s on %s", issue.Code, issue.UseCaseID),
			Priority: severityToPriority(issue.Severity),
			Category: category,
			Problem:  issue.Message,
			Impact: Impact{
				Scope:            ScopeElement,
				AffectedElements: affectedElements(issue),
				Severity:         issue.Severity,
			},
			Solution: Solution{Description: coherenceSolution(issue.Code)},
			Benefits: []string{"keeps the use case and its screen flow (or prerequisite chain) consistent"},
			Effort:   Effort{Hours: 2, Complexity: ComplexitySimple},
			Rationale: Rationale{
				DependencyIssue: issue.Message,
			},
		})
	}
	return out
}

func affectedElements(issue coherence.Issue) []string {
	elements := []string{issue.UseCaseID}
	if issue.ScreenFlowID != "" {
		elements = append(elements, issue.ScreenFlowID)
	}
	return elements
}

func coherenceSolution(code string) string {
	switch code {
	case coherence.CodeScreenSequenceMismatch:
		return "align the use case's main-flow screens with the screen flow's transitions"
	case coherence.CodeTransitionMissing:
		return "add the missing transition between the two consecutive screens"
	case coherence.CodeStartScreenMismatch, coherence.CodeEndScreenMismatch:
		return "align the flow's declared start/end screens with the use case's main flow"
	case coherence.CodePrerequisiteUseCaseMissing:
		return "create the missing prerequisite use case, or remove the dangling reference"
	case coherence.CodePrerequisitePriorityMismatch:
		return "raise the prerequisite's priority to at least that of the dependent use case"
	case coherence.CodePrerequisiteCircularDependency:
		return "break the prerequisite cycle by removing one of the links"
	default:
		return "review and resolve the reported inconsistency"
	}
}

// NamingStrategy turns every non-kebab-case artifact id into a low-priority
// style recommendation, named target mechanically converted to kebab-case.
func NamingStrategy(renames []coherence.Rename) []Recommendation {
	out := make([]Recommendation, 0, len(renames))
	for _, r := range renames {
		out = append(out, Recommendation{
			ID:       makeID("naming", r.ID),
			Title:    fmt.Sprintf("rename %q to %q", r.ID, r.Kebab),
			Priority: model.PriorityLow,
			Category: CategoryQuality,
			Problem:  fmt.Sprintf("%q is %s, not kebab-case", r.ID, r.Class),
			Impact: Impact{
				Scope:            ScopeElement,
				AffectedElements: []string{r.ID},
				Severity:         model.SeverityLow,
			},
			Solution: Solution{Description: fmt.Sprintf("rename to %q", r.Kebab), Steps: []string{fmt.Sprintf("replace every reference to %q with %q", r.ID, r.Kebab)}},
			Benefits: []string{"consistent identifier style across the project"},
			Effort:   Effort{Hours: 0.5, Complexity: ComplexitySimple},
			Rationale: Rationale{
				BestPractice: "identifiers should be kebab-case",
			},
		})
	}
	return out
}
