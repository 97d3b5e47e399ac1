package maturity

import (
	"sort"
	"strconv"
	"time"

	"github.com/artifactqa/quality-assessment/internal/model"
)

// EffortBucket is a coarse size estimate for the work needed to close an
// element's remaining gaps.
type EffortBucket string

const (
	EffortSmall  EffortBucket = "small"
	EffortMedium EffortBucket = "medium"
	EffortLarge  EffortBucket = "large"
	EffortXLarge EffortBucket = "xlarge"
)

// EstimateEffort maps an unsatisfied-criteria count to an effort bucket.
func EstimateEffort(unsatisfiedCount int) EffortBucket {
	switch {
	case unsatisfiedCount <= 3:
		return EffortSmall
	case unsatisfiedCount <= 8:
		return EffortMedium
	case unsatisfiedCount <= 15:
		return EffortLarge
	default:
		return EffortXLarge
	}
}

// NextStep is a single prioritized improvement action surfaced by an
// element assessment.
type NextStep struct {
	Priority    model.Priority // "high" or "medium"
	CriterionID string
	Dimension   Dimension
	Description string
}

// DimensionAssessment is one dimension's local score for a single element.
type DimensionAssessment struct {
	CompletionRate float64
	Level          int
}

// CriterionOutcome pairs a criterion with its evaluation, preserved for
// reporting (evidence, next-step generation).
type CriterionOutcome struct {
	Criterion Criterion
	Result    EvalResult
}

// ElementAssessment is the full maturity result for one artifact.
type ElementAssessment struct {
	ElementID             string
	ElementType           model.Kind
	OverallLevel          int
	OverallCompletionRate float64
	Dimensions            map[Dimension]DimensionAssessment
	NextSteps             []NextStep
	EstimatedEffort       EffortBucket
	Outcomes              []CriterionOutcome
}

// Assessor runs the criterion registry against individual elements and
// aggregates the results project-wide.
type Assessor struct {
	registry *Registry
}

// NewAssessor builds an Assessor around the default criterion registry.
func NewAssessor() *Assessor {
	return &Assessor{registry: NewRegistry()}
}

// NewAssessorWithRegistry builds an Assessor around a caller-supplied
// registry (for tests, or context-adjusted criterion sets).
func NewAssessorWithRegistry(r *Registry) *Assessor {
	return &Assessor{registry: r}
}

// AssessElement evaluates every criterion registered for kind against
// element and returns the full per-element assessment.
func (a *Assessor) AssessElement(kind model.Kind, elementID string, element interface{}, collection *model.Collection) ElementAssessment {
	criteria := a.registry.For(kind)

	outcomes := make([]CriterionOutcome, len(criteria))
	for i, c := range criteria {
		outcomes[i] = CriterionOutcome{Criterion: c, Result: c.Evaluate(element, collection)}
	}

	overallLevel := 1
	for level := 2; level <= 5; level++ {
		atLevel := outcomesAtLevel(outcomes, level)
		required := requiredOnly(atLevel)
		if len(required) == 0 || !allSatisfied(required) {
			break
		}
		overallLevel = level
	}

	overallRate := weightedRate(outcomes)

	dims := make(map[Dimension]DimensionAssessment, len(AllDimensions))
	for _, d := range AllDimensions {
		dimOutcomes := outcomesInDimension(outcomes, d)
		dims[d] = DimensionAssessment{
			CompletionRate: weightedRate(dimOutcomes),
			Level:          maxSatisfiedLevel(dimOutcomes),
		}
	}

	nextSteps := deriveNextSteps(outcomes, dims, overallLevel)

	unsatisfiedCount := 0
	for _, o := range outcomes {
		if !o.Result.Satisfied {
			unsatisfiedCount++
		}
	}

	return ElementAssessment{
		ElementID:             elementID,
		ElementType:           kind,
		OverallLevel:          overallLevel,
		OverallCompletionRate: overallRate,
		Dimensions:            dims,
		NextSteps:             nextSteps,
		EstimatedEffort:       EstimateEffort(unsatisfiedCount),
		Outcomes:              outcomes,
	}
}

func outcomesAtLevel(outcomes []CriterionOutcome, level int) []CriterionOutcome {
	var out []CriterionOutcome
	for _, o := range outcomes {
		if o.Criterion.Level == level {
			out = append(out, o)
		}
	}
	return out
}

func outcomesInDimension(outcomes []CriterionOutcome, d Dimension) []CriterionOutcome {
	var out []CriterionOutcome
	for _, o := range outcomes {
		if o.Criterion.Dimension == d {
			out = append(out, o)
		}
	}
	return out
}

func requiredOnly(outcomes []CriterionOutcome) []CriterionOutcome {
	var out []CriterionOutcome
	for _, o := range outcomes {
		if o.Criterion.Required {
			out = append(out, o)
		}
	}
	return out
}

func allSatisfied(outcomes []CriterionOutcome) bool {
	for _, o := range outcomes {
		if !o.Result.Satisfied {
			return false
		}
	}
	return true
}

func weightedRate(outcomes []CriterionOutcome) float64 {
	var satisfiedWeight, totalWeight float64
	for _, o := range outcomes {
		totalWeight += o.Criterion.Weight
		if o.Result.Satisfied {
			satisfiedWeight += o.Criterion.Weight
		}
	}
	if totalWeight == 0 {
		return 0
	}
	return satisfiedWeight / totalWeight
}

// maxSatisfiedLevel returns the highest level with at least one satisfied
// criterion in this dimension's outcomes, allowing skips — unlike
// overallLevel, there is no required chain within a single dimension.
func maxSatisfiedLevel(outcomes []CriterionOutcome) int {
	max := 0
	for _, o := range outcomes {
		if o.Result.Satisfied && o.Criterion.Level > max {
			max = o.Criterion.Level
		}
	}
	return max
}

func deriveNextSteps(outcomes []CriterionOutcome, dims map[Dimension]DimensionAssessment, overallLevel int) []NextStep {
	var steps []NextStep

	var high []CriterionOutcome
	for _, o := range outcomes {
		if o.Criterion.Required && o.Criterion.Level == overallLevel+1 && !o.Result.Satisfied {
			high = append(high, o)
		}
	}
	sort.SliceStable(high, func(i, j int) bool { return high[i].Criterion.Weight > high[j].Criterion.Weight })
	for _, o := range high {
		steps = append(steps, NextStep{
			Priority:    model.PriorityHigh,
			CriterionID: o.Criterion.ID,
			Dimension:   o.Criterion.Dimension,
			Description: o.Result.Evidence,
		})
	}

	type weakDim struct {
		dim  Dimension
		rate float64
	}
	var weak []weakDim
	for _, d := range AllDimensions {
		if dims[d].CompletionRate < 0.7 {
			weak = append(weak, weakDim{d, dims[d].CompletionRate})
		}
	}
	sort.SliceStable(weak, func(i, j int) bool { return weak[i].rate < weak[j].rate })
	if len(weak) > 2 {
		weak = weak[:2]
	}
	for _, w := range weak {
		heaviest := heaviestUnsatisfied(outcomes, w.dim)
		if heaviest == nil {
			continue
		}
		steps = append(steps, NextStep{
			Priority:    model.PriorityMedium,
			CriterionID: heaviest.Criterion.ID,
			Dimension:   w.dim,
			Description: heaviest.Result.Evidence,
		})
	}

	if len(steps) > 5 {
		steps = steps[:5]
	}
	return steps
}

func heaviestUnsatisfied(outcomes []CriterionOutcome, d Dimension) *CriterionOutcome {
	var best *CriterionOutcome
	for i := range outcomes {
		o := outcomes[i]
		if o.Criterion.Dimension != d || o.Result.Satisfied {
			continue
		}
		if best == nil || o.Criterion.Weight > best.Criterion.Weight {
			oc := o
			best = &oc
		}
	}
	return best
}

// --- Project-level aggregation ---

// DimensionAggregate is the project-wide roll-up of one dimension across
// all assessed elements.
type DimensionAggregate struct {
	Dimension      Dimension
	CompletionRate float64
	CurrentLevel   int
}

// ProjectElements groups the per-element assessments by kind, matching the
// stable §6.3 ProjectMaturityAssessment shape.
type ProjectElements struct {
	BusinessRequirements []ElementAssessment
	Actors               []ElementAssessment
	UseCases             []ElementAssessment
}

// ProjectMaturityAssessment is the project-wide maturity result.
type ProjectMaturityAssessment struct {
	Timestamp          time.Time
	ProjectLevel       int
	Elements           ProjectElements
	OverallDimensions  []DimensionAggregate
	Strengths          []Dimension
	ImprovementAreas   []Dimension
	RecommendedActions []string
	Distribution       map[int]int
}

// AssessProject assesses every business requirement, actor, and use case in
// the collection and aggregates the results.
func (a *Assessor) AssessProject(collection *model.Collection, now time.Time) ProjectMaturityAssessment {
	var elements ProjectElements

	for i := range collection.BusinessRequirements {
		r := &collection.BusinessRequirements[i]
		elements.BusinessRequirements = append(elements.BusinessRequirements,
			a.AssessElement(model.KindBusinessRequirement, r.ID, r, collection))
	}
	for i := range collection.Actors {
		act := &collection.Actors[i]
		elements.Actors = append(elements.Actors,
			a.AssessElement(model.KindActor, act.ID, act, collection))
	}
	for i := range collection.UseCases {
		u := &collection.UseCases[i]
		elements.UseCases = append(elements.UseCases,
			a.AssessElement(model.KindUseCase, u.ID, u, collection))
	}

	all := allElements(elements)

	projectLevel := 0
	distribution := make(map[int]int)
	for i, e := range all {
		if i == 0 || e.OverallLevel < projectLevel {
			projectLevel = e.OverallLevel
		}
		distribution[e.OverallLevel]++
	}

	var overallDims []DimensionAggregate
	for _, d := range AllDimensions {
		overallDims = append(overallDims, aggregateDimension(all, d))
	}

	var strengths, improvementAreas []Dimension
	for _, agg := range overallDims {
		if agg.CompletionRate >= 0.8 {
			strengths = append(strengths, agg.Dimension)
		}
		if agg.CompletionRate < 0.6 {
			improvementAreas = append(improvementAreas, agg.Dimension)
		}
	}

	recommended := recommendedActions(all, overallDims)

	return ProjectMaturityAssessment{
		Timestamp:          now,
		ProjectLevel:       projectLevel,
		Elements:           elements,
		OverallDimensions:  overallDims,
		Strengths:          strengths,
		ImprovementAreas:   improvementAreas,
		RecommendedActions: recommended,
		Distribution:       distribution,
	}
}

func allElements(e ProjectElements) []ElementAssessment {
	all := make([]ElementAssessment, 0, len(e.BusinessRequirements)+len(e.Actors)+len(e.UseCases))
	all = append(all, e.BusinessRequirements...)
	all = append(all, e.Actors...)
	all = append(all, e.UseCases...)
	return all
}

func aggregateDimension(all []ElementAssessment, d Dimension) DimensionAggregate {
	if len(all) == 0 {
		return DimensionAggregate{Dimension: d}
	}
	var sumRate float64
	minLevel := -1
	for _, e := range all {
		da := e.Dimensions[d]
		sumRate += da.CompletionRate
		if minLevel == -1 || da.Level < minLevel {
			minLevel = da.Level
		}
	}
	return DimensionAggregate{
		Dimension:      d,
		CompletionRate: sumRate / float64(len(all)),
		CurrentLevel:   minLevel,
	}
}

func recommendedActions(all []ElementAssessment, dims []DimensionAggregate) []string {
	var actions []string

	if len(all) > 0 {
		lowest := all[0].OverallLevel
		for _, e := range all {
			if e.OverallLevel < lowest {
				lowest = e.OverallLevel
			}
		}
		count := 0
		for _, e := range all {
			if e.OverallLevel == lowest {
				count++
			}
		}
		actions = append(actions, lowestLevelAction(lowest, count))
	}

	if len(dims) > 0 {
		weakest := dims[0]
		for _, d := range dims {
			if d.CompletionRate < weakest.CompletionRate {
				weakest = d
			}
		}
		actions = append(actions, weakestDimensionAction(weakest))
	}

	return actions
}

func lowestLevelAction(level int, count int) string {
	return "focus improvement effort on the " + strconv.Itoa(count) + " element(s) at maturity level " + strconv.Itoa(level) + " — they set the project's weakest-link level"
}

func weakestDimensionAction(d DimensionAggregate) string {
	return "invest in the " + string(d.Dimension) + " dimension — it is the weakest at " + strconv.Itoa(int(d.CompletionRate*100)) + "% completion"
}
