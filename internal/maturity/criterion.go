// Package maturity implements the CMMI-style per-artifact and project-level
// maturity assessment: a criterion registry evaluated per element, and the
// aggregation that rolls per-element results into a project level and five
// dimension scores.
package maturity

import "github.com/artifactqa/quality-assessment/internal/model"

// Dimension is one of the five orthogonal quality axes a criterion
// contributes to.
type Dimension string

const (
	DimensionStructure       Dimension = "structure"
	DimensionDetail          Dimension = "detail"
	DimensionTraceability    Dimension = "traceability"
	DimensionTestability     Dimension = "testability"
	DimensionMaintainability Dimension = "maintainability"
)

// AllDimensions lists every dimension in a stable order, used wherever
// dimensions are iterated deterministically (aggregation, reporting).
var AllDimensions = []Dimension{
	DimensionStructure,
	DimensionDetail,
	DimensionTraceability,
	DimensionTestability,
	DimensionMaintainability,
}

// EvalResult is the outcome of evaluating a single criterion against a
// single element. Evaluation never panics on a missing optional field: a
// missing required field simply yields Satisfied=false with Evidence
// describing the shortfall.
type EvalResult struct {
	Satisfied bool
	Evidence  string
}

// Evaluator inspects one element (a *model.UseCase, *model.Actor, or
// *model.BusinessRequirement, depending on the owning Criterion's
// ElementType) against the collection it belongs to.
type Evaluator func(element interface{}, collection *model.Collection) EvalResult

// Criterion is a single weighted, leveled predicate attached to one element
// kind: a declarative check with a name, a severity-like axis (here,
// Required+Level rather than Severity), and a closure that performs the
// check.
type Criterion struct {
	ID          string
	ElementType model.Kind
	Level       int
	Dimension   Dimension
	Required    bool
	Weight      float64
	Evaluate    Evaluator
}

// useCaseCriterion adapts a *model.UseCase-typed check into a Criterion's
// interface{}-typed Evaluator.
func useCaseCriterion(id string, level int, dim Dimension, required bool, weight float64, fn func(*model.UseCase, *model.Collection) EvalResult) Criterion {
	return Criterion{
		ID: id, ElementType: model.KindUseCase, Level: level, Dimension: dim, Required: required, Weight: weight,
		Evaluate: func(element interface{}, c *model.Collection) EvalResult {
			return fn(element.(*model.UseCase), c)
		},
	}
}

func actorCriterion(id string, level int, dim Dimension, required bool, weight float64, fn func(*model.Actor, *model.Collection) EvalResult) Criterion {
	return Criterion{
		ID: id, ElementType: model.KindActor, Level: level, Dimension: dim, Required: required, Weight: weight,
		Evaluate: func(element interface{}, c *model.Collection) EvalResult {
			return fn(element.(*model.Actor), c)
		},
	}
}

func requirementCriterion(id string, level int, dim Dimension, required bool, weight float64, fn func(*model.BusinessRequirement, *model.Collection) EvalResult) Criterion {
	return Criterion{
		ID: id, ElementType: model.KindBusinessRequirement, Level: level, Dimension: dim, Required: required, Weight: weight,
		Evaluate: func(element interface{}, c *model.Collection) EvalResult {
			return fn(element.(*model.BusinessRequirement), c)
		},
	}
}

func satisfied(evidence string) EvalResult  { return EvalResult{Satisfied: true, Evidence: evidence} }
func unsatisfied(evidence string) EvalResult { return EvalResult{Satisfied: false, Evidence: evidence} }
