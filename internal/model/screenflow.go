package model

// Trigger identifies the screen action that fires a transition. It is valid
// (per invariant 7) iff ScreenID equals the transition's From screen and the
// referenced screen declares an action with ActionID — checked by the flow
// consistency validator, not by this type.
type Trigger struct {
	ScreenID string
	ActionID string
}

// Transition is one edge of a screen flow: moving from one screen to
// another via a trigger, under an optional condition.
type Transition struct {
	From      Ref[Screen]
	To        Ref[Screen]
	Trigger   Trigger
	Condition string
}

// ScreenFlow is a set of screen transitions plus the use case it implements.
// RelatedUseCase is mandatory: a flow without it fails construction (see
// NewCollection), never analysis.
//
// StartScreen/EndScreens are optional authored overrides. When absent, the
// derived in-degree-0 / out-degree-0 sets (via Screens, StartScreens,
// EndScreensDerived) are authoritative.
type ScreenFlow struct {
	DocumentBase

	Transitions    []Transition
	RelatedUseCase Ref[UseCase]
	StartScreen    *Ref[Screen]
	EndScreens     []Ref[Screen]
}

// Screens returns the deduplicated set of screen ids touched by any
// transition, derived from Transitions — never authored directly.
func (f *ScreenFlow) Screens() []string {
	seen := make(map[string]bool)
	var out []string
	add := func(id string) {
		if id == "" || seen[id] {
			return
		}
		seen[id] = true
		out = append(out, id)
	}
	for _, t := range f.Transitions {
		add(t.From.ID)
		add(t.To.ID)
	}
	return out
}

// StartScreens returns the derived set of screens with in-degree 0 (no
// transition targets them).
func (f *ScreenFlow) StartScreens() []string {
	return f.boundaryScreens(true)
}

// EndScreensDerived returns the derived set of screens with out-degree 0 (no
// transition originates from them). Named distinctly from the authored
// EndScreens field.
func (f *ScreenFlow) EndScreensDerived() []string {
	return f.boundaryScreens(false)
}

func (f *ScreenFlow) boundaryScreens(start bool) []string {
	hasIn := make(map[string]bool)
	hasOut := make(map[string]bool)
	for _, t := range f.Transitions {
		if t.From.ID != "" {
			hasOut[t.From.ID] = true
		}
		if t.To.ID != "" {
			hasIn[t.To.ID] = true
		}
	}
	var out []string
	for _, id := range f.Screens() {
		if start && !hasIn[id] {
			out = append(out, id)
		}
		if !start && !hasOut[id] {
			out = append(out, id)
		}
	}
	return out
}
