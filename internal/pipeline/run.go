package pipeline

import (
	"github.com/artifactqa/quality-assessment/internal/coherence"
	"github.com/artifactqa/quality-assessment/internal/dashboard"
	"github.com/artifactqa/quality-assessment/internal/graph"
	"github.com/artifactqa/quality-assessment/internal/maturity"
	"github.com/artifactqa/quality-assessment/internal/model"
	"github.com/artifactqa/quality-assessment/internal/recommend"
)

// Run sequences every analyzer over c in the order spec.md §5 fixes: load
// is the caller's job (c already exists); maturity, graph, and coherence
// (including naming and flow-consistency, which are independent of each
// other and of the other two stages) run first; recommendations are
// generated from their combined output; the snapshot and health score are
// derived last, since both depend on everything upstream of them.
//
// Each stage is a pure function of c (and, for recommendations/snapshot, of
// the prior stages' output) — the only non-deterministic inputs are opts'
// caller-supplied id and timestamp, so two Run calls on the same collection
// and Options always produce the same Result.
func Run(c *model.Collection, opts Options) Result {
	assessor := maturity.NewAssessor()
	assessment := assessor.AssessProject(c, opts.Timestamp)

	g := graph.BuildGraph(c)
	graphAnalysis := graph.Analyze(g)

	validator := coherence.NewValidator()
	coherenceResult := validator.ValidateCoherence(c)
	flowDesign := validator.FlowDesignInfo(c)
	naming := validator.NamingConsistency(c)
	flowConsistency := validator.FlowConsistency(c)

	renames := coherence.NonKebabRenames(c)

	engine := recommend.NewEngine()
	recs := engine.Generate(
		opts.Timestamp,
		assessment,
		opts.Context,
		g,
		graphAnalysis,
		coherenceResult,
		renames,
	)

	snapshot := dashboard.BuildSnapshot(
		opts.SnapshotID,
		opts.Timestamp,
		assessment,
		elementCounts(c),
		recs.Summary.Total,
		recs.Summary.Critical,
		recs.Summary.High,
		&graphAnalysis,
		coherenceResult.TotalIssues,
	)
	health := dashboard.ComputeHealthScore(snapshot)

	return Result{
		Maturity:        assessment,
		Graph:           g,
		GraphAnalysis:   graphAnalysis,
		Coherence:       coherenceResult,
		FlowDesign:      flowDesign,
		Naming:          naming,
		FlowConsistency: flowConsistency,
		Recommendations: recs,
		Snapshot:        snapshot,
		Health:          health,
	}
}

// elementCounts tallies each artifact kind in the collection, for the
// dashboard's ElementCounts field.
func elementCounts(c *model.Collection) map[string]int {
	return map[string]int{
		string(model.KindBusinessRequirement): len(c.BusinessRequirements),
		string(model.KindActor):               len(c.Actors),
		string(model.KindUseCase):             len(c.UseCases),
		string(model.KindScreen):              len(c.Screens),
		string(model.KindScreenFlow):          len(c.ScreenFlows),
		string(model.KindValidationRule):      len(c.ValidationRules),
	}
}
