// Package dashboard maintains the rolling metrics snapshot history and
// derives health scores, trends, comparisons, and alerts from it, per §4.5.
package dashboard

import (
	"time"

	"github.com/artifactqa/quality-assessment/internal/graph"
	"github.com/artifactqa/quality-assessment/internal/maturity"
)

// GraphStats is the optional graph-derived slice of a snapshot.
type GraphStats struct {
	NodeCount                      int
	EdgeCount                      int
	CircularDependencies           int
	IsolatedNodes                  int
	CircularDependenciesBySeverity map[string]int
	CoherenceIssues                int
}

// Snapshot is one point-in-time measurement of a project, per §4.5.
type Snapshot struct {
	ID                      string
	Timestamp               time.Time
	MaturityLevel           int
	DimensionCompletionRate map[maturity.Dimension]float64
	ElementCounts           map[string]int
	OverallCompletionRate   float64
	UnsatisfiedCriteria     int
	RecommendationTotal     int
	RecommendationCritical  int
	RecommendationHigh      int
	Graph                   *GraphStats
}

// BuildSnapshot derives a Snapshot from a maturity assessment, optional
// graph analysis, and recommendation counts. id is supplied by the caller
// (monotonically increasing timestamp-based, per §6.4) rather than derived
// here, so snapshot construction stays a pure function of its inputs.
func BuildSnapshot(
	id string,
	timestamp time.Time,
	assessment maturity.ProjectMaturityAssessment,
	elementCounts map[string]int,
	recTotal, recCritical, recHigh int,
	g *graph.AnalysisResult,
	coherenceIssues int,
) Snapshot {
	dims := make(map[maturity.Dimension]float64, len(assessment.OverallDimensions))
	var sumRate float64
	for _, agg := range assessment.OverallDimensions {
		dims[agg.Dimension] = agg.CompletionRate
		sumRate += agg.CompletionRate
	}
	overallRate := 0.0
	if len(assessment.OverallDimensions) > 0 {
		overallRate = sumRate / float64(len(assessment.OverallDimensions))
	}

	unsatisfied := 0
	for _, e := range allProjectElements(assessment) {
		for _, o := range e.Outcomes {
			if !o.Result.Satisfied {
				unsatisfied++
			}
		}
	}

	snap := Snapshot{
		ID:                      id,
		Timestamp:               timestamp,
		MaturityLevel:           assessment.ProjectLevel,
		DimensionCompletionRate: dims,
		ElementCounts:           elementCounts,
		OverallCompletionRate:   overallRate,
		UnsatisfiedCriteria:     unsatisfied,
		RecommendationTotal:     recTotal,
		RecommendationCritical:  recCritical,
		RecommendationHigh:      recHigh,
	}

	if g != nil {
		severities := make(map[string]int)
		for _, c := range g.Cycles {
			severities[string(c.Severity)]++
		}
		snap.Graph = &GraphStats{
			NodeCount:                      g.Statistics.NodeCount,
			EdgeCount:                      g.Statistics.EdgeCount,
			CircularDependencies:           len(g.Cycles),
			IsolatedNodes:                  len(g.IsolatedNodes),
			CircularDependenciesBySeverity: severities,
			CoherenceIssues:                coherenceIssues,
		}
	}

	return snap
}

func allProjectElements(a maturity.ProjectMaturityAssessment) []maturity.ElementAssessment {
	all := make([]maturity.ElementAssessment, 0, len(a.Elements.BusinessRequirements)+len(a.Elements.Actors)+len(a.Elements.UseCases))
	all = append(all, a.Elements.BusinessRequirements...)
	all = append(all, a.Elements.Actors...)
	all = append(all, a.Elements.UseCases...)
	return all
}
