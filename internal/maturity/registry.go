package maturity

import (
	"fmt"

	"github.com/artifactqa/quality-assessment/internal/model"
)

// Registry groups criteria by element kind and supports lazy filtering by
// level or dimension via an entity-kind-keyed lookup.
type Registry struct {
	byKind map[model.Kind][]Criterion
}

// NewRegistry builds the default criterion registry for use cases, actors,
// and business requirements.
func NewRegistry() *Registry {
	r := &Registry{byKind: make(map[model.Kind][]Criterion)}
	r.add(useCaseCriteria()...)
	r.add(actorCriteria()...)
	r.add(businessRequirementCriteria()...)
	return r
}

func (r *Registry) add(criteria ...Criterion) {
	for _, c := range criteria {
		r.byKind[c.ElementType] = append(r.byKind[c.ElementType], c)
	}
}

// For returns every criterion registered for kind, in registry order.
func (r *Registry) For(kind model.Kind) []Criterion {
	return r.byKind[kind]
}

// AtLevel returns the criteria for kind at exactly the given level.
func (r *Registry) AtLevel(kind model.Kind, level int) []Criterion {
	var out []Criterion
	for _, c := range r.byKind[kind] {
		if c.Level == level {
			out = append(out, c)
		}
	}
	return out
}

// ByDimension returns the criteria for kind in the given dimension.
func (r *Registry) ByDimension(kind model.Kind, dim Dimension) []Criterion {
	var out []Criterion
	for _, c := range r.byKind[kind] {
		if c.Dimension == dim {
			out = append(out, c)
		}
	}
	return out
}

// --- UseCase criteria ---

func useCaseCriteria() []Criterion {
	return []Criterion{
		useCaseCriterion("usecase-has-id-name-description", 1, DimensionStructure, true, 0.3, func(u *model.UseCase, _ *model.Collection) EvalResult {
			if u.ID == "" || u.Name == "" || u.Description == "" {
				return unsatisfied("missing id, name, or description")
			}
			return satisfied("id, name, and description present")
		}),
		useCaseCriterion("usecase-has-primary-actor", 1, DimensionStructure, true, 0.4, func(u *model.UseCase, _ *model.Collection) EvalResult {
			if u.Actors.Primary.ID == "" {
				return unsatisfied("no primary actor")
			}
			return satisfied("primary actor set")
		}),
		useCaseCriterion("usecase-mainflow-nonempty", 1, DimensionStructure, true, 0.3, func(u *model.UseCase, _ *model.Collection) EvalResult {
			if len(u.MainFlow) < 1 {
				return unsatisfied("mainFlow has no steps")
			}
			return satisfied("mainFlow has at least one step")
		}),

		useCaseCriterion("usecase-description-length", 2, DimensionDetail, true, 0.2, func(u *model.UseCase, _ *model.Collection) EvalResult {
			if len(u.Description) < 50 {
				return unsatisfied(fmt.Sprintf("description is %d chars, need >= 50", len(u.Description)))
			}
			return satisfied("description >= 50 chars")
		}),
		useCaseCriterion("usecase-has-precondition", 2, DimensionDetail, true, 0.2, func(u *model.UseCase, _ *model.Collection) EvalResult {
			if len(u.Preconditions) < 1 {
				return unsatisfied("no preconditions")
			}
			return satisfied("at least one precondition")
		}),
		useCaseCriterion("usecase-has-postcondition", 2, DimensionDetail, true, 0.2, func(u *model.UseCase, _ *model.Collection) EvalResult {
			if len(u.Postconditions) < 1 {
				return unsatisfied("no postconditions")
			}
			return satisfied("at least one postcondition")
		}),
		useCaseCriterion("usecase-steps-quality", 2, DimensionDetail, true, 0.3, func(u *model.UseCase, _ *model.Collection) EvalResult {
			if bad := firstLowQualityStep(u.MainFlow); bad >= 0 {
				return unsatisfied(fmt.Sprintf("step %d lacks a non-empty stepId/actor/action(>=5 chars)/expectedResult(>=5 chars)", bad+1))
			}
			return satisfied("every step has stepId, actor, action (>=5 chars), and expectedResult (>=5 chars)")
		}),
		useCaseCriterion("usecase-has-priority", 2, DimensionDetail, true, 0.1, func(u *model.UseCase, _ *model.Collection) EvalResult {
			if u.Priority == "" {
				return unsatisfied("no priority set")
			}
			return satisfied("priority set")
		}),

		useCaseCriterion("usecase-altflow-steps-quality", 3, DimensionDetail, true, 0.15, func(u *model.UseCase, _ *model.Collection) EvalResult {
			for _, af := range u.AlternativeFlows {
				if bad := firstLowQualityStep(af.Steps); bad >= 0 {
					return unsatisfied(fmt.Sprintf("alternative flow %q step %d is under-specified", af.ID, bad+1))
				}
			}
			return satisfied("every alternative flow step is fully specified")
		}),
		useCaseCriterion("usecase-has-alternative-flow", 3, DimensionTestability, true, 0.15, func(u *model.UseCase, _ *model.Collection) EvalResult {
			if len(u.AlternativeFlows) < 1 {
				return unsatisfied("no alternative flows")
			}
			return satisfied("at least one alternative flow")
		}),
		useCaseCriterion("usecase-has-br-coverage", 3, DimensionTraceability, true, 0.2, func(u *model.UseCase, _ *model.Collection) EvalResult {
			if u.BusinessRequirementCoverage == nil || u.BusinessRequirementCoverage.Requirement.ID == "" {
				return unsatisfied("no business requirement coverage")
			}
			return satisfied("business requirement coverage present")
		}),
		useCaseCriterion("usecase-has-prerequisite", 3, DimensionTraceability, true, 0.1, func(u *model.UseCase, _ *model.Collection) EvalResult {
			if len(u.PrerequisiteUseCases) < 1 {
				return unsatisfied("no prerequisite use cases")
			}
			return satisfied("at least one prerequisite use case")
		}),
		useCaseCriterion("usecase-has-acceptance-criterion", 3, DimensionTestability, true, 0.2, func(u *model.UseCase, _ *model.Collection) EvalResult {
			if len(u.AcceptanceCriteria) < 1 {
				return unsatisfied("no acceptance criteria")
			}
			return satisfied("at least one acceptance criterion")
		}),
		useCaseCriterion("usecase-complexity-set", 3, DimensionMaintainability, true, 0.2, func(u *model.UseCase, _ *model.Collection) EvalResult {
			if u.Complexity == "" {
				return unsatisfied("complexity not set")
			}
			return satisfied("complexity set")
		}),

		useCaseCriterion("usecase-has-effort-estimate", 4, DimensionMaintainability, true, 0.2, func(u *model.UseCase, _ *model.Collection) EvalResult {
			if u.EstimatedEffort == "" {
				return unsatisfied("no estimated effort")
			}
			return satisfied("estimated effort set")
		}),
		useCaseCriterion("usecase-has-data-requirement", 4, DimensionDetail, true, 0.2, func(u *model.UseCase, _ *model.Collection) EvalResult {
			if len(u.DataRequirements) < 1 {
				return unsatisfied("no data requirements")
			}
			return satisfied("at least one data requirement")
		}),
		useCaseCriterion("usecase-has-performance-requirement", 4, DimensionDetail, true, 0.2, func(u *model.UseCase, _ *model.Collection) EvalResult {
			if len(u.PerformanceRequirements) < 1 {
				return unsatisfied("no performance requirements")
			}
			return satisfied("at least one performance requirement")
		}),
		useCaseCriterion("usecase-has-security-policy", 4, DimensionTraceability, true, 0.2, func(u *model.UseCase, _ *model.Collection) EvalResult {
			if len(u.SecurityPolicies) < 1 {
				return unsatisfied("no security policies")
			}
			return satisfied("at least one security policy")
		}),
		useCaseCriterion("usecase-has-business-rule", 4, DimensionTraceability, true, 0.2, func(u *model.UseCase, _ *model.Collection) EvalResult {
			if len(u.BusinessRules) < 1 {
				return unsatisfied("no business rules")
			}
			return satisfied("at least one business rule")
		}),

		useCaseCriterion("usecase-has-ui-requirement", 5, DimensionDetail, true, 0.2, func(u *model.UseCase, _ *model.Collection) EvalResult {
			if len(u.UIRequirements) < 1 {
				return unsatisfied("no UI requirements")
			}
			return satisfied("at least one UI requirement")
		}),
		useCaseCriterion("usecase-every-step-error-handling", 5, DimensionTestability, true, 0.3, func(u *model.UseCase, _ *model.Collection) EvalResult {
			for i, s := range u.MainFlow {
				if len(s.ErrorHandling) < 1 {
					return unsatisfied(fmt.Sprintf("step %d has no error handling", i+1))
				}
			}
			return satisfied("every step has error handling")
		}),
		useCaseCriterion("usecase-every-step-validation-rules", 5, DimensionTestability, true, 0.3, func(u *model.UseCase, _ *model.Collection) EvalResult {
			for i, s := range u.MainFlow {
				if len(s.ValidationRules) < 1 {
					return unsatisfied(fmt.Sprintf("step %d has no validation rules", i+1))
				}
			}
			return satisfied("every step has validation rules")
		}),
		useCaseCriterion("usecase-business-value-length", 5, DimensionMaintainability, true, 0.2, func(u *model.UseCase, _ *model.Collection) EvalResult {
			if len(u.BusinessValue) < 20 {
				return unsatisfied(fmt.Sprintf("businessValue is %d chars, need >= 20", len(u.BusinessValue)))
			}
			return satisfied("businessValue >= 20 chars")
		}),
	}
}

// firstLowQualityStep returns the index of the first step in steps that
// fails the per-step-quality bar (non-empty stepId/actor/action/
// expectedResult, with action and expectedResult at least 5 characters), or
// -1 if every step passes.
func firstLowQualityStep(steps []model.Step) int {
	for i, s := range steps {
		if s.StepID == "" || s.Actor.ID == "" || len(s.Action) < 5 || len(s.ExpectedResult) < 5 {
			return i
		}
	}
	return -1
}

// --- Actor criteria ---

func actorCriteria() []Criterion {
	return []Criterion{
		actorCriterion("actor-has-id-name", 1, DimensionStructure, true, 1.0, func(a *model.Actor, _ *model.Collection) EvalResult {
			if a.ID == "" || a.Name == "" {
				return unsatisfied("missing id or name")
			}
			return satisfied("id and name present")
		}),

		actorCriterion("actor-description-nonempty", 2, DimensionDetail, true, 0.5, func(a *model.Actor, _ *model.Collection) EvalResult {
			if a.Description == "" {
				return unsatisfied("no description")
			}
			return satisfied("description present")
		}),
		actorCriterion("actor-role-set", 2, DimensionStructure, true, 0.5, func(a *model.Actor, _ *model.Collection) EvalResult {
			if a.Role == "" {
				return unsatisfied("no role set")
			}
			return satisfied("role set")
		}),

		actorCriterion("actor-responsibilities-count", 3, DimensionDetail, true, 0.5, func(a *model.Actor, _ *model.Collection) EvalResult {
			if len(a.Responsibilities) < 2 {
				return unsatisfied(fmt.Sprintf("has %d responsibilities, need >= 2", len(a.Responsibilities)))
			}
			return satisfied(">= 2 responsibilities")
		}),
		actorCriterion("actor-description-length-30", 3, DimensionDetail, true, 0.5, func(a *model.Actor, _ *model.Collection) EvalResult {
			if len(a.Description) < 30 {
				return unsatisfied(fmt.Sprintf("description is %d chars, need >= 30", len(a.Description)))
			}
			return satisfied("description >= 30 chars")
		}),

		actorCriterion("actor-referenced-by-usecase", 4, DimensionTraceability, true, 0.5, func(a *model.Actor, c *model.Collection) EvalResult {
			if isActorReferenced(a.ID, c) {
				return satisfied("referenced by at least one use case")
			}
			return unsatisfied("not referenced as primary or secondary actor by any use case")
		}),
		actorCriterion("actor-description-length-50", 4, DimensionDetail, true, 0.5, func(a *model.Actor, _ *model.Collection) EvalResult {
			if len(a.Description) < 50 {
				return unsatisfied(fmt.Sprintf("description is %d chars, need >= 50", len(a.Description)))
			}
			return satisfied("description >= 50 chars")
		}),

		actorCriterion("actor-has-goal", 5, DimensionDetail, true, 0.5, func(a *model.Actor, _ *model.Collection) EvalResult {
			if len(a.Goals) < 1 {
				return unsatisfied("no goals")
			}
			return satisfied("at least one goal")
		}),
		actorCriterion("actor-description-length-80", 5, DimensionDetail, true, 0.5, func(a *model.Actor, _ *model.Collection) EvalResult {
			if len(a.Description) < 80 {
				return unsatisfied(fmt.Sprintf("description is %d chars, need >= 80", len(a.Description)))
			}
			return satisfied("description >= 80 chars")
		}),
	}
}

// isActorReferenced reports whether actorID appears as a primary or
// secondary actor of at least one use case in the collection — the
// "actor.usecase-coverage" criterion from the testable properties (§8.1.11).
func isActorReferenced(actorID string, c *model.Collection) bool {
	for i := range c.UseCases {
		u := &c.UseCases[i]
		if u.Actors.Primary.ID == actorID {
			return true
		}
		for _, s := range u.Actors.Secondary {
			if s.ID == actorID {
				return true
			}
		}
	}
	return false
}

// --- BusinessRequirement criteria ---

func businessRequirementCriteria() []Criterion {
	return []Criterion{
		requirementCriterion("requirement-has-summary", 1, DimensionStructure, true, 0.5, func(b *model.BusinessRequirement, _ *model.Collection) EvalResult {
			if b.Summary == "" {
				return unsatisfied("no summary")
			}
			return satisfied("summary present")
		}),
		requirementCriterion("requirement-has-goals", 1, DimensionStructure, true, 0.5, func(b *model.BusinessRequirement, _ *model.Collection) EvalResult {
			if len(b.BusinessGoals) < 1 {
				return unsatisfied("no business goals")
			}
			return satisfied("at least one business goal")
		}),

		requirementCriterion("requirement-has-inscope", 2, DimensionDetail, true, 0.5, func(b *model.BusinessRequirement, _ *model.Collection) EvalResult {
			if len(b.Scope.InScope) < 1 {
				return unsatisfied("no in-scope items")
			}
			return satisfied("at least one in-scope item")
		}),
		requirementCriterion("requirement-has-stakeholders", 2, DimensionTraceability, true, 0.5, func(b *model.BusinessRequirement, _ *model.Collection) EvalResult {
			if len(b.Stakeholders) < 2 {
				return unsatisfied(fmt.Sprintf("has %d stakeholders, need >= 2", len(b.Stakeholders)))
			}
			return satisfied(">= 2 stakeholders")
		}),

		requirementCriterion("requirement-has-success-metrics", 3, DimensionTestability, true, 0.4, func(b *model.BusinessRequirement, _ *model.Collection) EvalResult {
			if len(b.SuccessMetrics) < 1 {
				return unsatisfied("no success metrics")
			}
			return satisfied("at least one success metric")
		}),
		requirementCriterion("requirement-has-assumptions", 3, DimensionMaintainability, true, 0.3, func(b *model.BusinessRequirement, _ *model.Collection) EvalResult {
			if len(b.Assumptions) < 1 {
				return unsatisfied("no assumptions")
			}
			return satisfied("at least one assumption")
		}),
		requirementCriterion("requirement-has-constraints", 3, DimensionMaintainability, true, 0.3, func(b *model.BusinessRequirement, _ *model.Collection) EvalResult {
			if len(b.Constraints) < 1 {
				return unsatisfied("no constraints")
			}
			return satisfied("at least one constraint")
		}),

		requirementCriterion("requirement-has-business-rules", 4, DimensionTraceability, true, 0.5, func(b *model.BusinessRequirement, _ *model.Collection) EvalResult {
			if len(b.BusinessRules) < 3 {
				return unsatisfied(fmt.Sprintf("has %d business rules, need >= 3", len(b.BusinessRules)))
			}
			return satisfied(">= 3 business rules")
		}),
		requirementCriterion("requirement-has-security-policy", 4, DimensionTraceability, true, 0.5, func(b *model.BusinessRequirement, _ *model.Collection) EvalResult {
			if len(b.SecurityPolicies) < 1 {
				return unsatisfied("no security policies")
			}
			return satisfied("at least one security policy")
		}),
	}
}
