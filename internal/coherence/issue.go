// Package coherence cross-checks use cases against their screen flows and
// prerequisite graph, and separately scores naming and flow-design
// consistency. None of these validations affect a maturity score; they
// populate their own result channels for the recommender and dashboard.
package coherence

import "github.com/artifactqa/quality-assessment/internal/model"

// Issue codes, used as Issue.Code. Kept as named constants rather than bare
// strings so callers switching on a code get a compile-time typo check.
const (
	CodeScreenSequenceMismatch         = "screen-sequence-mismatch"
	CodeTransitionMissing              = "transition-missing"
	CodeStartScreenMismatch            = "start-screen-mismatch"
	CodeEndScreenMismatch              = "end-screen-mismatch"
	CodePrerequisiteUseCaseMissing     = "prerequisite-usecase-missing"
	CodePrerequisitePriorityMismatch   = "prerequisite-priority-mismatch"
	CodePrerequisiteCircularDependency = "prerequisite-circular-dependency"
)

// Issue is one coherence violation, scoped to the use case (and, where
// applicable, the screen flow) it was found on.
type Issue struct {
	Code         string
	Severity     model.Severity
	UseCaseID    string
	ScreenFlowID string
	Message      string
}
