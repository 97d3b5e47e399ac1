package coherence

import "github.com/artifactqa/quality-assessment/internal/model"

// FlowConsistencyResult is the §4.3.5 weighted, non-scoring-maturity
// assessment of one screen flow's internal consistency.
type FlowConsistencyResult struct {
	ScreenFlowID           string
	ScreenOrderScore       float64
	ActionConsistencyScore float64
	TriggerValidityScore   float64
	CompletenessScore      float64
	OverallScore           float64
}

// checkFlowConsistency scores one screen flow: 0.3 screen order, 0.3 action
// consistency, 0.25 trigger validity, 0.15 completeness.
func checkFlowConsistency(c *model.Collection, flow *model.ScreenFlow) FlowConsistencyResult {
	r := FlowConsistencyResult{
		ScreenFlowID:           flow.ID,
		ScreenOrderScore:       screenOrderScore(c, flow),
		ActionConsistencyScore: actionConsistencyScore(c, flow),
		TriggerValidityScore:   triggerValidityScore(flow),
		CompletenessScore:      completenessScore(flow),
	}
	r.OverallScore = 0.3*r.ScreenOrderScore + 0.3*r.ActionConsistencyScore + 0.25*r.TriggerValidityScore + 0.15*r.CompletenessScore
	return r
}

func screenOrderScore(c *model.Collection, flow *model.ScreenFlow) float64 {
	uc, ok := c.UseCaseByID(flow.RelatedUseCase.ID)
	if !ok {
		return 0
	}
	mainSeq := trimCyclicSuffix(uc.ScreenSequence())
	if sameSet(mainSeq, flow.Screens()) {
		return 100
	}
	return 0
}

func actionConsistencyScore(c *model.Collection, flow *model.ScreenFlow) float64 {
	if len(flow.Transitions) == 0 {
		return 100
	}
	matched := 0
	for _, t := range flow.Transitions {
		screen, ok := c.ScreenByID(t.Trigger.ScreenID)
		if !ok {
			continue
		}
		if _, ok := screen.ActionByID(t.Trigger.ActionID); ok {
			matched++
		}
	}
	return float64(matched) / float64(len(flow.Transitions)) * 100
}

func triggerValidityScore(flow *model.ScreenFlow) float64 {
	if len(flow.Transitions) == 0 {
		return 100
	}
	declared := make(map[string]bool)
	for _, s := range flow.Screens() {
		declared[s] = true
	}
	valid := 0
	for _, t := range flow.Transitions {
		if declared[t.Trigger.ScreenID] && t.Trigger.ScreenID == t.From.ID {
			valid++
		}
	}
	return float64(valid) / float64(len(flow.Transitions)) * 100
}

// completenessScore: a flow is complete if it has zero or one terminal
// screen (out-degree 0) — a single, unambiguous end state, not several
// unreachable dead ends.
func completenessScore(flow *model.ScreenFlow) float64 {
	if len(flow.EndScreensDerived()) <= 1 {
		return 100
	}
	return 0
}
