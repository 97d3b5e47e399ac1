package recommend

import (
	"sort"

	"github.com/artifactqa/quality-assessment/internal/model"
)

// Summary is the §4.4 aggregate summary: counts, total estimated effort, and
// the expected maturity increase if every high-priority maturity-gap
// recommendation were closed.
type Summary struct {
	Total                    int
	Critical                 int
	High                     int
	EstimatedTotalHours      float64
	ExpectedMaturityIncrease float64
}

// Bundle groups recommendations that share a target dimension or artifact,
// with a deterministic execution order so a caller (or an AI agent) can work
// through them predictably.
type Bundle struct {
	Key             string
	Recommendations []Recommendation
	ExecutionOrder  []string
}

const defaultTopPriorityN = 10

// benefitWeight returns a rough normalized benefit score used only to break
// priority ties for ROI ranking: more named benefits and a higher-severity
// impact both count as a larger benefit.
func benefitWeight(r Recommendation) float64 {
	severity := r.Impact.Severity.Rank()
	if severity < 0 {
		severity = 0
	}
	return float64(len(r.Benefits)) + float64(severity)
}

func roi(r Recommendation) float64 {
	if r.Effort.Hours <= 0 {
		return benefitWeight(r)
	}
	return benefitWeight(r) / r.Effort.Hours
}

// TopPriority returns the top n recommendations ranked by priority
// (descending), then ROI (descending) as a tiebreaker. n<=0 uses the
// default of 10.
func TopPriority(recs []Recommendation, n int) []Recommendation {
	if n <= 0 {
		n = defaultTopPriorityN
	}
	sorted := append([]Recommendation{}, recs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		pi, pj := sorted[i].Priority.Rank(), sorted[j].Priority.Rank()
		if pi != pj {
			return pi > pj
		}
		return roi(sorted[i]) > roi(sorted[j])
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// QuickWins returns every simple recommendation costing at most 4 hours,
// deduplicated by title and sorted ascending by effort.
func QuickWins(recs []Recommendation) []Recommendation {
	seen := make(map[string]bool)
	var out []Recommendation
	for _, r := range recs {
		if r.Effort.Hours > 4 || r.Effort.Complexity != ComplexitySimple {
			continue
		}
		if seen[r.Title] {
			continue
		}
		seen[r.Title] = true
		out = append(out, r)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Effort.Hours < out[j].Effort.Hours })
	return out
}

// Bundles groups recommendations by category (the shared weakest dimension
// a group of recommendations targets), with a deterministic execution order
// over the affected elements within the bundle.
func Bundles(recs []Recommendation) []Bundle {
	byCategory := make(map[Category][]Recommendation)
	var order []Category
	for _, r := range recs {
		if _, ok := byCategory[r.Category]; !ok {
			order = append(order, r.Category)
		}
		byCategory[r.Category] = append(byCategory[r.Category], r)
	}
	sort.Slice(order, func(i, j int) bool { return order[i] < order[j] })

	bundles := make([]Bundle, 0, len(order))
	for _, cat := range order {
		group := byCategory[cat]
		elements := make(map[string]bool)
		for _, r := range group {
			for _, e := range r.Impact.AffectedElements {
				elements[e] = true
			}
		}
		execOrder := make([]string, 0, len(elements))
		for e := range elements {
			execOrder = append(execOrder, e)
		}
		sort.Strings(execOrder)

		bundles = append(bundles, Bundle{
			Key:             string(cat),
			Recommendations: group,
			ExecutionOrder:  execOrder,
		})
	}
	return bundles
}

// BuildSummary tallies the recommendation set.
func BuildSummary(recs []Recommendation) Summary {
	s := Summary{Total: len(recs)}
	var maturityGapHigh int
	for _, r := range recs {
		switch r.Priority {
		case model.PriorityCritical:
			s.Critical++
		case model.PriorityHigh:
			s.High++
		}
		s.EstimatedTotalHours += r.Effort.Hours
		if r.Rationale.MaturityGap != "" && r.Priority == model.PriorityHigh {
			maturityGapHigh++
		}
	}
	// Each closed required gap is modeled as moving its element a fifth of
	// the way to the next maturity level; the project as a whole can never
	// be credited with more than five full levels of increase.
	s.ExpectedMaturityIncrease = float64(maturityGapHigh) * 0.2
	if s.ExpectedMaturityIncrease > 5 {
		s.ExpectedMaturityIncrease = 5
	}
	return s
}
