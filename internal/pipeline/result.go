// Package pipeline sequences every analyzer over one artifact collection
// and aggregates their results into a single report, per §5.
package pipeline

import (
	"time"

	"github.com/artifactqa/quality-assessment/internal/coherence"
	"github.com/artifactqa/quality-assessment/internal/dashboard"
	"github.com/artifactqa/quality-assessment/internal/graph"
	"github.com/artifactqa/quality-assessment/internal/maturity"
	"github.com/artifactqa/quality-assessment/internal/recommend"
)

// Result is everything one pipeline run produces: the full maturity
// assessment, the dependency graph and its analysis, every coherence/naming/
// flow-consistency check, the generated recommendations, and the derived
// dashboard snapshot and health score.
type Result struct {
	Maturity        maturity.ProjectMaturityAssessment
	Graph           *graph.Graph
	GraphAnalysis   graph.AnalysisResult
	Coherence       coherence.CoherenceValidationResult
	FlowDesign      []coherence.FlowDesignInfoResult
	Naming          coherence.NamingConsistencyResult
	FlowConsistency []coherence.FlowConsistencyResult
	Recommendations recommend.AIAgentRecommendations
	Snapshot        dashboard.Snapshot
	Health          dashboard.ProjectHealthScore
}

// Options carries the caller-supplied inputs that Run cannot derive from
// the collection alone: the snapshot id (so id generation stays outside the
// pure pipeline stages), the timestamp to stamp every stage with, and the
// optional project context the recommendation engine weighs gaps against.
type Options struct {
	SnapshotID string
	Timestamp  time.Time
	Context    *recommend.ProjectContext
}
