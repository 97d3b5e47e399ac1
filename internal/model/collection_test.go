package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCollection_ScreenFlowRequiresRelatedUseCase(t *testing.T) {
	flow := ScreenFlow{
		DocumentBase: DocumentBase{ID: "flow-1"},
	}
	_, err := NewCollection(nil, nil, nil, nil, []ScreenFlow{flow}, nil)
	require.Error(t, err)
}

func TestNewCollection_DuplicateIDsRecordedFirstWins(t *testing.T) {
	a1 := Actor{DocumentBase: DocumentBase{ID: "a1", Name: "first"}}
	a2 := Actor{DocumentBase: DocumentBase{ID: "a1", Name: "second"}}

	c, err := NewCollection(nil, []Actor{a1, a2}, nil, nil, nil, nil)
	require.NoError(t, err)

	require.Len(t, c.DuplicateIDs, 1)
	assert.Equal(t, KindActor, c.DuplicateIDs[0].Kind)
	assert.Equal(t, "a1", c.DuplicateIDs[0].ID)

	got, ok := c.ActorByID("a1")
	require.True(t, ok)
	assert.Equal(t, "first", got.Name)
}

func TestScreenFlow_DerivedSets(t *testing.T) {
	flow := ScreenFlow{
		DocumentBase:   DocumentBase{ID: "flow-1"},
		RelatedUseCase: NewRef[UseCase]("uc-1"),
		Transitions: []Transition{
			{From: NewRef[Screen]("list"), To: NewRef[Screen]("detail"), Trigger: Trigger{ScreenID: "list", ActionID: "open"}},
			{From: NewRef[Screen]("detail"), To: NewRef[Screen]("list"), Trigger: Trigger{ScreenID: "detail", ActionID: "back"}},
		},
	}

	assert.ElementsMatch(t, []string{"list", "detail"}, flow.Screens())
	// Every screen here has both in- and out-degree > 0 (it's a loop), so
	// neither boundary set should contain them.
	assert.Empty(t, flow.StartScreens())
	assert.Empty(t, flow.EndScreensDerived())
}

func TestUseCase_ScreenSequenceDedupsConsecutive(t *testing.T) {
	screenA := NewRef[Screen]("a")
	screenB := NewRef[Screen]("b")
	uc := UseCase{
		MainFlow: []Step{
			{StepID: "s1", Screen: &screenA},
			{StepID: "s2", Screen: &screenA},
			{StepID: "s3", Screen: &screenB},
		},
	}
	assert.Equal(t, []string{"a", "b"}, uc.ScreenSequence())
}

func TestStepNumber(t *testing.T) {
	assert.Equal(t, 1, StepNumber(0))
	assert.Equal(t, 5, StepNumber(4))
}
