package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPreAnalysisNilPayload(t *testing.T) {
	a := newTestAnalyzer()

	for _, step := range []Step{StepStrategy, StepEav, StepMapPlanning} {
		result := a.RunPreAnalysis(step, nil, BusinessInfo{}, nil)
		assert.GreaterOrEqual(t, result.HealthScore, 0, "step %s", step)
		assert.LessOrEqual(t, result.HealthScore, 100, "step %s", step)
		assert.GreaterOrEqual(t, result.DurationMS, int64(0), "step %s", step)
	}
}

func TestRunPreAnalysisUnknownStep(t *testing.T) {
	a := newTestAnalyzer()
	result := a.RunPreAnalysis(Step("publishing"), map[string]any{"x": 1}, BusinessInfo{}, nil)

	assert.Empty(t, result.Findings)
	assert.Empty(t, result.ValidatorsRun)
	assert.Empty(t, result.ValidatorsSkipped)
	assert.Equal(t, 100, result.HealthScore)
}

func TestRunPreAnalysisStrategyFromUntypedPayload(t *testing.T) {
	a := newTestAnalyzer()
	payload := map[string]any{
		"centralEntity":       "",
		"sourceContext":       "",
		"centralSearchIntent": "",
	}

	result := a.RunPreAnalysis(StepStrategy, payload, BusinessInfo{Locale: "nl-NL"}, nil)

	criticals := 0
	for _, f := range result.Findings {
		if f.Severity == SeverityCritical {
			criticals++
		}
	}
	assert.GreaterOrEqual(t, criticals, 3)
}

func TestRunPreAnalysisHealthScoreMatchesFindings(t *testing.T) {
	a := newTestAnalyzer()
	result := a.RunPreAnalysis(StepStrategy, map[string]any{}, BusinessInfo{}, nil)

	assert.Equal(t, HealthScore(result.Findings), result.HealthScore)
}

func TestRunPreAnalysisMapPlanningUsesDialogueEntity(t *testing.T) {
	a := mapAnalyzer(quietValidators())
	payload := MapPlanningInput{Topics: someTopics()}

	withoutDialogue := a.RunPreAnalysis(StepMapPlanning, payload, BusinessInfo{}, nil)
	assert.Contains(t, withoutDialogue.ValidatorsSkipped, ValidatorTopicalBorder)

	withDialogue := a.RunPreAnalysis(StepMapPlanning, payload, BusinessInfo{},
		&DialogueContext{ConfirmedCentralEntity: "coffee roasting"})
	assert.Contains(t, withDialogue.ValidatorsRun, ValidatorTopicalBorder)
}

func TestRunPreAnalysisValidatorSetsAreDisjoint(t *testing.T) {
	a := mapAnalyzer(quietValidators())
	result := a.RunPreAnalysis(StepMapPlanning, MapPlanningInput{Topics: someTopics()}, BusinessInfo{}, nil)

	seen := map[string]struct{}{}
	for _, name := range result.ValidatorsRun {
		seen[name] = struct{}{}
	}
	for _, name := range result.ValidatorsSkipped {
		_, dup := seen[name]
		assert.False(t, dup, "validator %s in both sets", name)
		seen[name] = struct{}{}
	}
	require.Len(t, seen, len(allMapValidators))
}

func TestRunPreAnalysisIdempotent(t *testing.T) {
	a := mapAnalyzer(MapValidators{
		Cannibalization: stubCannibalization{pairs: []SimilarPair{
			{TopicA: "t1", TopicB: "t2", TitleA: "a", TitleB: "b", Similarity: 0.9},
		}},
		Frames: stubFrames{},
		Depth: stubDepth{report: DepthReport{
			Ratio:              4.0,
			Balanced:           false,
			ClusterTopicCounts: map[string]int{"a": 9, "b": 1, "c": 8},
		}},
		Border:     stubBorder{},
		Worthiness: stubWorthiness{},
	})
	payload := MapPlanningInput{Topics: someTopics(), CentralEntity: "coffee"}

	first := a.RunPreAnalysis(StepMapPlanning, payload, BusinessInfo{}, nil)
	second := a.RunPreAnalysis(StepMapPlanning, payload, BusinessInfo{}, nil)

	assert.Equal(t, first.Findings, second.Findings)
	assert.Equal(t, first.HealthScore, second.HealthScore)
	assert.ElementsMatch(t, first.ValidatorsRun, second.ValidatorsRun)
	assert.ElementsMatch(t, first.ValidatorsSkipped, second.ValidatorsSkipped)
}

func TestParseStrategyInputAcceptsBothKeyStyles(t *testing.T) {
	camel := ParseStrategyInput(map[string]any{
		"centralEntity":       "coffee roasting",
		"sourceContext":       "roastery",
		"centralSearchIntent": "learn",
		"predicates":          []any{"brew", "grind"},
	})
	snake := ParseStrategyInput(map[string]any{
		"central_entity":        "coffee roasting",
		"source_context":        "roastery",
		"central_search_intent": "learn",
	})

	assert.Equal(t, "coffee roasting", camel.CentralEntity)
	assert.Equal(t, []string{"brew", "grind"}, camel.Predicates)
	assert.Equal(t, "coffee roasting", snake.CentralEntity)
}

func TestParseMapPlanningInputDefaultsMalformedFields(t *testing.T) {
	in := ParseMapPlanningInput(map[string]any{
		"topics": []any{
			map[string]any{"id": "t1", "title": "Roasting", "searchVolume": float64(120)},
			"not a topic map",
		},
		"centralEntity": "coffee",
	})

	require.Len(t, in.Topics, 1)
	assert.Equal(t, 120, in.Topics[0].SearchVolume)
	assert.Equal(t, "coffee", in.CentralEntity)

	empty := ParseMapPlanningInput(nil)
	assert.Empty(t, empty.Topics)
	assert.Empty(t, empty.CentralEntity)
}

func TestParseEavInputRoundTripsValues(t *testing.T) {
	in := ParseEavInput(map[string]any{
		"eavs": []any{
			map[string]any{"subject": "acme", "attribute": "founded", "value": float64(1999)},
		},
	})

	require.Len(t, in.Triples, 1)
	assert.Equal(t, "1999", in.Triples[0].Value)
}
