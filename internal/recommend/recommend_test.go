package recommend

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artifactqa/quality-assessment/internal/coherence"
	"github.com/artifactqa/quality-assessment/internal/graph"
	"github.com/artifactqa/quality-assessment/internal/maturity"
	"github.com/artifactqa/quality-assessment/internal/model"
)

func isolatedActorCollection(t *testing.T) *model.Collection {
	t.Helper()

	connectedActor := model.Actor{DocumentBase: model.DocumentBase{ID: "actor-connected"}}
	isolatedActor := model.Actor{DocumentBase: model.DocumentBase{ID: "actor-isolated"}}
	uc := model.UseCase{
		DocumentBase: model.DocumentBase{ID: "uc-1"},
		Actors:       model.UseCaseActors{Primary: model.NewRef[model.Actor]("actor-connected")},
	}
	c, err := model.NewCollection(nil, []model.Actor{connectedActor, isolatedActor}, []model.UseCase{uc}, nil, nil, nil)
	require.NoError(t, err)
	return c
}

func TestGraphStrategy_IsolatedNodeProducesTraceabilityRecommendation(t *testing.T) {
	c := isolatedActorCollection(t)
	g := graph.BuildGraph(c)
	result := graph.Analyze(g)

	require.Contains(t, result.IsolatedNodes, "actor-isolated")

	recs := GraphStrategy(g, result)
	var found *Recommendation
	for i := range recs {
		if recs[i].Category == CategoryTraceability {
			found = &recs[i]
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, model.PriorityMedium, found.Priority)
	assert.Contains(t, found.Impact.AffectedElements, "actor-isolated")
}

func TestEngine_GenerateIsDeterministic(t *testing.T) {
	c := isolatedActorCollection(t)
	g := graph.BuildGraph(c)
	graphResult := graph.Analyze(g)
	coherenceResult := coherence.NewValidator().ValidateCoherence(c)
	assessment := maturity.NewAssessor().AssessProject(c, time.Unix(0, 0))

	e := NewEngine()
	ts := time.Unix(1700000000, 0)

	first := e.Generate(ts, assessment, nil, g, graphResult, coherenceResult, nil)
	second := e.Generate(ts, assessment, nil, g, graphResult, coherenceResult, nil)

	require.Equal(t, len(first.Recommendations), len(second.Recommendations))
	for i := range first.Recommendations {
		assert.Equal(t, first.Recommendations[i].ID, second.Recommendations[i].ID)
	}
	assert.Equal(t, first.Summary, second.Summary)
}

func TestQuickWins_DedupsByTitleAndSortsByEffort(t *testing.T) {
	recs := []Recommendation{
		{Title: "dup", Effort: Effort{Hours: 3, Complexity: ComplexitySimple}},
		{Title: "dup", Effort: Effort{Hours: 3, Complexity: ComplexitySimple}},
		{Title: "cheap", Effort: Effort{Hours: 1, Complexity: ComplexitySimple}},
		{Title: "too expensive", Effort: Effort{Hours: 10, Complexity: ComplexitySimple}},
		{Title: "not simple", Effort: Effort{Hours: 1, Complexity: ComplexityComplex}},
	}

	wins := QuickWins(recs)

	require.Len(t, wins, 2)
	assert.Equal(t, "cheap", wins[0].Title)
	assert.Equal(t, "dup", wins[1].Title)
}

func TestTopPriority_OrdersByPriorityThenROI(t *testing.T) {
	recs := []Recommendation{
		{Title: "low-roi-high", Priority: model.PriorityHigh, Effort: Effort{Hours: 10}, Benefits: []string{"a"}},
		{Title: "high-roi-high", Priority: model.PriorityHigh, Effort: Effort{Hours: 1}, Benefits: []string{"a"}},
		{Title: "critical", Priority: model.PriorityCritical, Effort: Effort{Hours: 5}, Benefits: []string{"a"}},
	}

	top := TopPriority(recs, 10)

	require.Len(t, top, 3)
	assert.Equal(t, "critical", top[0].Title)
	assert.Equal(t, "high-roi-high", top[1].Title)
	assert.Equal(t, "low-roi-high", top[2].Title)
}

func TestBundles_GroupsByCategoryWithSortedExecutionOrder(t *testing.T) {
	recs := []Recommendation{
		{Category: CategoryArchitecture, Impact: Impact{AffectedElements: []string{"b", "a"}}},
		{Category: CategoryArchitecture, Impact: Impact{AffectedElements: []string{"c"}}},
		{Category: CategoryTraceability, Impact: Impact{AffectedElements: []string{"x"}}},
	}

	bundles := Bundles(recs)

	require.Len(t, bundles, 2)
	var arch *Bundle
	for i := range bundles {
		if bundles[i].Key == string(CategoryArchitecture) {
			arch = &bundles[i]
		}
	}
	require.NotNil(t, arch)
	assert.Equal(t, []string{"a", "b", "c"}, arch.ExecutionOrder)
}
