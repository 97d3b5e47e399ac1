package model

// UseCaseActors names the primary actor and any secondary actors involved in
// a use case.
type UseCaseActors struct {
	Primary   Ref[Actor]
	Secondary []Ref[Actor]
}

// Step is a single step of a main flow or alternative flow. StepNumber is
// never authored: it is derived at read time as 1 + the step's index within
// its containing slice (see StepNumber).
type Step struct {
	StepID          string
	Actor           Ref[Actor]
	Action          string
	ExpectedResult  string
	Screen          *Ref[Screen]
	InputFields     []string
	ValidationRules []Ref[ValidationRule]
	ErrorHandling   []string
}

// StepNumber returns the 1-based position of the step at index within its
// containing flow. Derived, never stored, so reordering a flow's content
// never requires rewriting stored numbers.
func StepNumber(index int) int {
	return index + 1
}

// AltFlow is a named alternative flow branching off a use case's main flow.
// ReturnToStepID, when set, must resolve to a StepID in the owning
// UseCase.MainFlow (checked by the coherence validator, not here).
type AltFlow struct {
	ID             string
	Name           string
	Condition      string
	Steps          []Step
	ReturnToStepID *string
}

// RequirementCoverage links a use case to the business requirement (and,
// optionally, the specific goals within it) that the use case satisfies.
type RequirementCoverage struct {
	Requirement Ref[BusinessRequirement]
	Goals       []Ref[BusinessGoal]
}

// Complexity is an optional qualitative size estimate for a use case.
type Complexity string

const (
	ComplexitySimple  Complexity = "simple"
	ComplexityMedium  Complexity = "medium"
	ComplexityComplex Complexity = "complex"
)

// UseCase is the central behavioral artifact: actors, flows, and the
// traceability links (prerequisites, business rules, security policies,
// coverage) that the maturity assessor and coherence validator inspect.
type UseCase struct {
	DocumentBase

	Actors                      UseCaseActors
	Preconditions               []string
	Postconditions              []string
	MainFlow                    []Step
	AlternativeFlows            []AltFlow
	Priority                    Priority
	Complexity                  Complexity
	AcceptanceCriteria          []string
	BusinessRequirementCoverage *RequirementCoverage
	PrerequisiteUseCases        []Ref[UseCase]
	BusinessRules               []Ref[BusinessRule]
	SecurityPolicies            []Ref[SecurityPolicy]
	DataRequirements            []string
	PerformanceRequirements     []string
	UIRequirements              []string
	EstimatedEffort             string
	BusinessValue               string
}

// StepByID returns the step (from the main flow only) with the given
// StepID, and whether it was found.
func (u *UseCase) StepByID(stepID string) (Step, bool) {
	for _, s := range u.MainFlow {
		if s.StepID == stepID {
			return s, true
		}
	}
	return Step{}, false
}

// ScreenSequence extracts the ordered, deduplicated list of screen ids
// referenced by the main flow's steps, skipping steps with no screen.
// Consecutive duplicate screen ids collapse to one entry.
func (u *UseCase) ScreenSequence() []string {
	var seq []string
	for _, s := range u.MainFlow {
		if s.Screen == nil || s.Screen.ID == "" {
			continue
		}
		if len(seq) > 0 && seq[len(seq)-1] == s.Screen.ID {
			continue
		}
		seq = append(seq, s.Screen.ID)
	}
	return seq
}
