package coherence

import (
	"fmt"
	"sort"

	"github.com/artifactqa/quality-assessment/internal/model"
)

// trimCyclicSuffix drops a trailing repeat of the first element, the shape a
// flow takes when its last step loops back to where it started (e.g. a
// confirm screen returning to a list). Comparing the trimmed sequences is
// what keeps such loops from being reported as a sequence mismatch.
func trimCyclicSuffix(seq []string) []string {
	if len(seq) < 2 {
		return seq
	}
	if seq[len(seq)-1] == seq[0] {
		return seq[:len(seq)-1]
	}
	return seq
}

func sortedCopy(in []string) []string {
	out := append([]string{}, in...)
	sort.Strings(out)
	return out
}

func sameSet(a, b []string) bool {
	as, bs := sortedCopy(a), sortedCopy(b)
	if len(as) != len(bs) {
		return false
	}
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}

// checkScreenSequence reports screen-sequence-mismatch when the use case's
// main-flow screens (after cyclic-suffix trim) and the flow's screen set
// differ, per §4.3.1.
func checkScreenSequence(uc *model.UseCase, flow *model.ScreenFlow) []Issue {
	mainSeq := trimCyclicSuffix(uc.ScreenSequence())
	flowScreens := flow.Screens()

	if sameSet(mainSeq, flowScreens) {
		return nil
	}
	return []Issue{{
		Code:         CodeScreenSequenceMismatch,
		Severity:     model.SeverityHigh,
		UseCaseID:    uc.ID,
		ScreenFlowID: flow.ID,
		Message:      fmt.Sprintf("use case %s main flow screens do not match screen flow %s screens", uc.ID, flow.ID),
	}}
}

// checkTransitionCompleteness reports transition-missing for every
// consecutive pair of main-flow steps with distinct screens that has no
// matching transition in the flow.
func checkTransitionCompleteness(uc *model.UseCase, flow *model.ScreenFlow) []Issue {
	var issues []Issue

	hasTransition := func(from, to string) bool {
		for _, t := range flow.Transitions {
			if t.From.ID == from && t.To.ID == to {
				return true
			}
		}
		return false
	}

	prev := ""
	for _, s := range uc.MainFlow {
		if s.Screen == nil || s.Screen.ID == "" {
			continue
		}
		cur := s.Screen.ID
		if prev != "" && prev != cur && !hasTransition(prev, cur) {
			issues = append(issues, Issue{
				Code:         CodeTransitionMissing,
				Severity:     model.SeverityHigh,
				UseCaseID:    uc.ID,
				ScreenFlowID: flow.ID,
				Message:      fmt.Sprintf("screen flow %s has no transition from %s to %s", flow.ID, prev, cur),
			})
		}
		prev = cur
	}
	return issues
}

// checkBoundaryScreens reports start-screen-mismatch/end-screen-mismatch
// only when the flow authors an explicit StartScreen/EndScreens; when
// omitted, the derived boundary sets are authoritative by definition and
// there is nothing to compare against.
func checkBoundaryScreens(uc *model.UseCase, flow *model.ScreenFlow) []Issue {
	mainSeq := trimCyclicSuffix(uc.ScreenSequence())
	if len(mainSeq) == 0 {
		return nil
	}
	first, last := mainSeq[0], mainSeq[len(mainSeq)-1]

	var issues []Issue
	if flow.StartScreen != nil && flow.StartScreen.ID != "" && flow.StartScreen.ID != first {
		issues = append(issues, Issue{
			Code:         CodeStartScreenMismatch,
			Severity:     model.SeverityMedium,
			UseCaseID:    uc.ID,
			ScreenFlowID: flow.ID,
			Message:      fmt.Sprintf("screen flow %s declares start screen %s but use case %s begins at %s", flow.ID, flow.StartScreen.ID, uc.ID, first),
		})
	}
	if len(flow.EndScreens) > 0 && !endScreenContains(flow.EndScreens, last) {
		issues = append(issues, Issue{
			Code:         CodeEndScreenMismatch,
			Severity:     model.SeverityMedium,
			UseCaseID:    uc.ID,
			ScreenFlowID: flow.ID,
			Message:      fmt.Sprintf("screen flow %s declared end screens do not include %s", flow.ID, last),
		})
	}
	return issues
}

func endScreenContains(ends []model.Ref[model.Screen], id string) bool {
	for _, e := range ends {
		if e.ID == id {
			return true
		}
	}
	return false
}
