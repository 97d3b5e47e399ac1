package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artifactqa/quality-assessment/internal/model"
)

func simpleCollection(t *testing.T) *model.Collection {
	t.Helper()

	req := model.BusinessRequirement{
		DocumentBase:  model.DocumentBase{ID: "req-1", Name: "Authentication"},
		BusinessGoals: []model.BusinessGoal{{ID: "goal-1", Description: "Reduce fraud"}},
	}
	actor := model.Actor{DocumentBase: model.DocumentBase{ID: "actor-1", Name: "End User"}}
	screen := model.Screen{DocumentBase: model.DocumentBase{ID: "screen-login", Name: "Login"}}

	uc := model.UseCase{
		DocumentBase: model.DocumentBase{ID: "uc-1", Name: "Authenticate"},
		Actors:       model.UseCaseActors{Primary: model.NewRef[model.Actor]("actor-1")},
		MainFlow: []model.Step{
			{StepID: "s1", Screen: &model.Ref[model.Screen]{ID: "screen-login"}},
		},
		BusinessRequirementCoverage: &model.RequirementCoverage{
			Requirement: model.NewRef[model.BusinessRequirement]("req-1"),
			Goals:       []model.Ref[model.BusinessGoal]{model.NewRef[model.BusinessGoal]("goal-1")},
		},
	}

	c, err := model.NewCollection([]model.BusinessRequirement{req}, []model.Actor{actor}, []model.UseCase{uc}, []model.Screen{screen}, nil, nil)
	require.NoError(t, err)
	return c
}

func TestRun_ProducesFullResultOverSimpleCollection(t *testing.T) {
	c := simpleCollection(t)
	opts := Options{SnapshotID: "snap-1", Timestamp: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}

	result := Run(c, opts)

	assert.Equal(t, "snap-1", result.Snapshot.ID)
	assert.Equal(t, result.Maturity.ProjectLevel, result.Snapshot.MaturityLevel)
	assert.True(t, result.GraphAnalysis.Acyclic)
	assert.GreaterOrEqual(t, result.Health.Overall, float64(0))
	assert.LessOrEqual(t, result.Health.Overall, float64(100))
	assert.GreaterOrEqual(t, result.Recommendations.Summary.Total, 0)
}

func TestRun_IsDeterministic(t *testing.T) {
	c := simpleCollection(t)
	opts := Options{SnapshotID: "snap-1", Timestamp: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}

	first := Run(c, opts)
	second := Run(c, opts)

	assert.Equal(t, first.Health.Overall, second.Health.Overall)
	assert.Equal(t, first.Recommendations.Summary, second.Recommendations.Summary)
	require.Equal(t, len(first.Recommendations.Recommendations), len(second.Recommendations.Recommendations))
	for i := range first.Recommendations.Recommendations {
		assert.Equal(t, first.Recommendations.Recommendations[i].ID, second.Recommendations.Recommendations[i].ID)
	}
}

func TestElementCounts_TalliesEveryKind(t *testing.T) {
	c := simpleCollection(t)
	counts := elementCounts(c)

	assert.Equal(t, 1, counts[string(model.KindBusinessRequirement)])
	assert.Equal(t, 1, counts[string(model.KindActor)])
	assert.Equal(t, 1, counts[string(model.KindUseCase)])
	assert.Equal(t, 1, counts[string(model.KindScreen)])
	assert.Equal(t, 0, counts[string(model.KindScreenFlow)])
	assert.Equal(t, 0, counts[string(model.KindValidationRule)])
}
