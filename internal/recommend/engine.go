package recommend

import (
	"time"

	"github.com/artifactqa/quality-assessment/internal/coherence"
	"github.com/artifactqa/quality-assessment/internal/graph"
	"github.com/artifactqa/quality-assessment/internal/maturity"
)

// AIAgentRecommendations is the stable §6.3 result shape returned by the
// recommendation engine.
type AIAgentRecommendations struct {
	Timestamp        time.Time
	Context          *ProjectContext
	Recommendations  []Recommendation
	TopPriority      []Recommendation
	Bundles          []Bundle
	QuickWins        []Recommendation
	LongTermStrategy []Recommendation
	Summary          Summary
}

// Engine runs every strategy over the upstream analysis results and
// aggregates their output. Stateless: Generate is a pure function of its
// arguments, which is what makes recommendation generation deterministic.
type Engine struct{}

// NewEngine constructs an Engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Generate runs the maturity-gap, context, graph, and coherence strategies
// and aggregates their output. timestamp is supplied by the caller (the
// pipeline stamps it once) rather than read from the clock here, keeping
// Generate itself a pure, deterministic function of its inputs.
func (e *Engine) Generate(
	timestamp time.Time,
	assessment maturity.ProjectMaturityAssessment,
	ctx *ProjectContext,
	g *graph.Graph,
	graphResult graph.AnalysisResult,
	coherenceResult coherence.CoherenceValidationResult,
	renames []coherence.Rename,
) AIAgentRecommendations {
	var all []Recommendation
	all = append(all, MaturityGapStrategy(assessment)...)
	all = append(all, ContextStrategy(assessment, ctx)...)
	all = append(all, GraphStrategy(g, graphResult)...)
	all = append(all, CoherenceStrategy(coherenceResult)...)
	all = append(all, NamingStrategy(renames)...)

	return AIAgentRecommendations{
		Timestamp:        timestamp,
		Context:          ctx,
		Recommendations:  all,
		TopPriority:      TopPriority(all, defaultTopPriorityN),
		Bundles:          Bundles(all),
		QuickWins:        QuickWins(all),
		LongTermStrategy: longTermStrategy(all),
		Summary:          BuildSummary(all),
	}
}

// longTermStrategy pulls out the architecture-category recommendations: the
// ones that reshape structure rather than patch a single element, and so
// belong on a longer horizon than the quick wins and top-priority list.
func longTermStrategy(recs []Recommendation) []Recommendation {
	var out []Recommendation
	for _, r := range recs {
		if r.Category == CategoryArchitecture {
			out = append(out, r)
		}
	}
	return out
}
