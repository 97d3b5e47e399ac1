package coherence

import "github.com/artifactqa/quality-assessment/internal/model"

// CoherenceValidationResult is the stable result shape for §4.3.1/§4.3.2:
// use-case/screen-flow coherence plus prerequisite validation.
type CoherenceValidationResult struct {
	Valid            bool
	TotalUseCases    int
	TotalScreenFlows int
	TotalIssues      int
	Issues           []Issue
	IssuesBySeverity map[model.Severity]int
	IssuesByUseCase  map[string][]Issue
}

// Validator runs the coherence and consistency checks over a collection.
// Stateless: every method is a pure function of its arguments.
type Validator struct{}

// NewValidator constructs a Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateCoherence runs §4.3.1 (use-case/screen-flow coherence) and §4.3.2
// (prerequisite validation) over every use case in the collection.
func (v *Validator) ValidateCoherence(c *model.Collection) CoherenceValidationResult {
	result := CoherenceValidationResult{
		TotalUseCases:    len(c.UseCases),
		TotalScreenFlows: len(c.ScreenFlows),
		IssuesBySeverity: make(map[model.Severity]int),
		IssuesByUseCase:  make(map[string][]Issue),
	}

	for i := range c.UseCases {
		uc := &c.UseCases[i]
		if flow, ok := c.ScreenFlowForUseCase(uc.ID); ok {
			result.Issues = append(result.Issues, checkScreenSequence(uc, flow)...)
			result.Issues = append(result.Issues, checkTransitionCompleteness(uc, flow)...)
			result.Issues = append(result.Issues, checkBoundaryScreens(uc, flow)...)
		}
	}
	result.Issues = append(result.Issues, checkAllPrerequisites(c)...)

	for _, issue := range result.Issues {
		result.IssuesBySeverity[issue.Severity]++
		result.IssuesByUseCase[issue.UseCaseID] = append(result.IssuesByUseCase[issue.UseCaseID], issue)
	}
	result.TotalIssues = len(result.Issues)
	result.Valid = result.TotalIssues == 0

	return result
}

// FlowDesignInfo runs §4.3.3 over every use case.
func (v *Validator) FlowDesignInfo(c *model.Collection) []FlowDesignInfoResult {
	out := make([]FlowDesignInfoResult, 0, len(c.UseCases))
	for i := range c.UseCases {
		out = append(out, checkFlowDesignInfo(&c.UseCases[i]))
	}
	return out
}

// NamingConsistency runs §4.3.4 over the whole collection.
func (v *Validator) NamingConsistency(c *model.Collection) NamingConsistencyResult {
	return checkNamingConsistency(c)
}

// FlowConsistency runs §4.3.5 over every screen flow.
func (v *Validator) FlowConsistency(c *model.Collection) []FlowConsistencyResult {
	out := make([]FlowConsistencyResult, 0, len(c.ScreenFlows))
	for i := range c.ScreenFlows {
		out = append(out, checkFlowConsistency(c, &c.ScreenFlows[i]))
	}
	return out
}
