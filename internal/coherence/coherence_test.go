package coherence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artifactqa/quality-assessment/internal/model"
)

func screenRef(id string) model.Ref[model.Screen] { return model.Ref[model.Screen]{ID: id} }

// authLoopCollection builds scenario B: a two-screen bidirectional loop
// (list <-> detail) around a single use case.
func authLoopCollection(t *testing.T) *model.Collection {
	t.Helper()

	uc := model.UseCase{
		DocumentBase: model.DocumentBase{ID: "uc-browse"},
		MainFlow: []model.Step{
			{StepID: "step-1", Screen: &model.Ref[model.Screen]{ID: "list"}},
			{StepID: "step-2", Screen: &model.Ref[model.Screen]{ID: "detail"}},
			{StepID: "step-3", Screen: &model.Ref[model.Screen]{ID: "list"}},
		},
	}
	flow := model.ScreenFlow{
		DocumentBase:   model.DocumentBase{ID: "flow-browse"},
		RelatedUseCase: model.NewRef[model.UseCase]("uc-browse"),
		Transitions: []model.Transition{
			{From: screenRef("list"), To: screenRef("detail")},
			{From: screenRef("detail"), To: screenRef("list")},
		},
	}
	screens := []model.Screen{
		{DocumentBase: model.DocumentBase{ID: "list"}},
		{DocumentBase: model.DocumentBase{ID: "detail"}},
	}

	c, err := model.NewCollection(nil, nil, []model.UseCase{uc}, screens, []model.ScreenFlow{flow}, nil)
	require.NoError(t, err)
	return c
}

func TestValidateCoherence_CyclicSuffixTrimMatchesLoopingFlow(t *testing.T) {
	c := authLoopCollection(t)
	v := NewValidator()

	result := v.ValidateCoherence(c)

	for _, issue := range result.Issues {
		assert.NotEqual(t, CodeScreenSequenceMismatch, issue.Code, "looping flow should not be reported as a sequence mismatch")
	}
}

func TestValidateCoherence_MissingPrerequisiteReportsHighSeverity(t *testing.T) {
	x := model.UseCase{
		DocumentBase:         model.DocumentBase{ID: "X"},
		Priority:             model.PriorityMedium,
		PrerequisiteUseCases: []model.Ref[model.UseCase]{model.NewRef[model.UseCase]("Y")},
	}
	c, err := model.NewCollection(nil, nil, []model.UseCase{x}, nil, nil, nil)
	require.NoError(t, err)

	result := NewValidator().ValidateCoherence(c)

	require.Len(t, result.Issues, 1)
	issue := result.Issues[0]
	assert.Equal(t, CodePrerequisiteUseCaseMissing, issue.Code)
	assert.Equal(t, model.SeverityHigh, issue.Severity)
	assert.Equal(t, "X", issue.UseCaseID)
}

func TestCheckPrerequisites_PriorityMismatch(t *testing.T) {
	high := model.UseCase{DocumentBase: model.DocumentBase{ID: "needs-high"}, Priority: model.PriorityHigh}
	dependent := model.UseCase{
		DocumentBase:         model.DocumentBase{ID: "dependent"},
		Priority:             model.PriorityCritical,
		PrerequisiteUseCases: []model.Ref[model.UseCase]{model.NewRef[model.UseCase]("needs-high")},
	}
	c, err := model.NewCollection(nil, nil, []model.UseCase{high, dependent}, nil, nil, nil)
	require.NoError(t, err)

	result := NewValidator().ValidateCoherence(c)

	found := false
	for _, issue := range result.Issues {
		if issue.Code == CodePrerequisitePriorityMismatch {
			found = true
			assert.Equal(t, model.SeverityMedium, issue.Severity)
		}
	}
	assert.True(t, found)
}

func TestReachesPrerequisite_SymmetricOverCycle(t *testing.T) {
	a := model.UseCase{
		DocumentBase:         model.DocumentBase{ID: "a"},
		PrerequisiteUseCases: []model.Ref[model.UseCase]{model.NewRef[model.UseCase]("b")},
	}
	b := model.UseCase{
		DocumentBase:         model.DocumentBase{ID: "b"},
		PrerequisiteUseCases: []model.Ref[model.UseCase]{model.NewRef[model.UseCase]("a")},
	}
	c, err := model.NewCollection(nil, nil, []model.UseCase{a, b}, nil, nil, nil)
	require.NoError(t, err)

	aReachesB := reachesPrerequisite(c, "a", "b", make(map[string]bool))
	bReachesA := reachesPrerequisite(c, "b", "a", make(map[string]bool))

	assert.True(t, aReachesB)
	assert.True(t, bReachesA)

	result := NewValidator().ValidateCoherence(c)
	criticalDeps := 0
	for _, issue := range result.Issues {
		if issue.Code == CodePrerequisiteCircularDependency {
			criticalDeps++
		}
	}
	assert.Equal(t, 2, criticalDeps, "both a->b and b->a legs should be flagged")
}

func TestClassifyName_KebabCaseIsRecognized(t *testing.T) {
	assert.Equal(t, NamingKebab, classifyName("confirm-order"))
	assert.Equal(t, NamingKebab, classifyName("confirm"))
	assert.Equal(t, NamingCamel, classifyName("confirmOrder"))
	assert.Equal(t, NamingSnake, classifyName("confirm_order"))
	assert.Equal(t, NamingPascal, classifyName("ConfirmOrder"))
	assert.Equal(t, NamingInconsistent, classifyName("Confirm_order-1"))
}

func TestToKebabCase_Idempotent(t *testing.T) {
	inputs := []string{"confirmOrder", "ConfirmOrder", "confirm_order", "confirm-order", "step1"}
	for _, in := range inputs {
		once := toKebabCase(in)
		twice := toKebabCase(once)
		assert.Equal(t, once, twice, "toKebabCase(%q) should be idempotent", in)
	}
}

func TestCheckFlowDesignInfo_LengthThresholds(t *testing.T) {
	single := model.UseCase{DocumentBase: model.DocumentBase{ID: "single"}, MainFlow: []model.Step{{StepID: "s1"}}}
	r := checkFlowDesignInfo(&single)
	assert.Equal(t, FlowDesignInfo, r.Level)

	var longFlow []model.Step
	for i := 0; i < 16; i++ {
		longFlow = append(longFlow, model.Step{StepID: "s"})
	}
	long := model.UseCase{DocumentBase: model.DocumentBase{ID: "long"}, MainFlow: longFlow}
	r = checkFlowDesignInfo(&long)
	assert.Equal(t, FlowDesignWarning, r.Level)

	mid := model.UseCase{DocumentBase: model.DocumentBase{ID: "mid"}, MainFlow: []model.Step{{StepID: "s1"}, {StepID: "s2"}}}
	r = checkFlowDesignInfo(&mid)
	assert.Equal(t, FlowDesignNone, r.Level)
}

func TestCheckFlowConsistency_ConsistentLoopScoresFull(t *testing.T) {
	c := authLoopCollection(t)
	results := NewValidator().FlowConsistency(c)
	require.Len(t, results, 1)
	assert.Equal(t, float64(100), results[0].ScreenOrderScore)
}
