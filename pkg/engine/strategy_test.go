package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAnalyzer() *Analyzer {
	return NewAnalyzer(MapValidators{}, nil, nil)
}

func findByCategory(findings []Finding, category Category) []Finding {
	var out []Finding
	for _, f := range findings {
		if f.Category == category {
			out = append(out, f)
		}
	}
	return out
}

func TestStrategyAllFieldsEmpty(t *testing.T) {
	a := newTestAnalyzer()
	findings, run, skipped := a.analyzeStrategy(StrategyInput{})

	criticals := 0
	for _, f := range findings {
		if f.Severity == SeverityCritical {
			criticals++
		}
	}
	assert.GreaterOrEqual(t, criticals, 3)
	assert.ElementsMatch(t, []string{ValidatorCentralEntity, ValidatorSourceContext, ValidatorSearchIntent}, run)
	assert.Empty(t, skipped)
}

func TestStrategyShortSingleWordEntity(t *testing.T) {
	a := newTestAnalyzer()
	findings, _, _ := a.analyzeStrategy(StrategyInput{
		CentralEntity:       "coffee",
		SourceContext:       "independent specialty coffee roastery in Utrecht",
		CentralSearchIntent: "learn how to brew better coffee at home",
		Predicates:          []string{"brew", "grind", "roast"},
	})

	ce := findByCategory(findings, CategoryCEAmbiguity)
	require.Len(t, ce, 1)
	assert.Equal(t, SeverityHigh, ce[0].Severity)
}

func TestStrategyLeadingArticle(t *testing.T) {
	a := newTestAnalyzer()
	for _, entity := range []string{"The Coffee Grinder", "de koffiemolen", "la machine espresso"} {
		findings, _, _ := a.analyzeStrategy(StrategyInput{
			CentralEntity:       entity,
			SourceContext:       "independent specialty coffee roastery in Utrecht",
			CentralSearchIntent: "learn how to brew better coffee",
			Predicates:          []string{"brew", "grind", "roast"},
		})

		ce := findByCategory(findings, CategoryCEAmbiguity)
		require.Len(t, ce, 1, "entity %q", entity)
		assert.Equal(t, SeverityLow, ce[0].Severity)
	}
}

func TestStrategyGenericSourceContext(t *testing.T) {
	a := newTestAnalyzer()
	findings, _, _ := a.analyzeStrategy(StrategyInput{
		CentralEntity:       "specialty coffee roasting",
		SourceContext:       "coffee blog",
		CentralSearchIntent: "learn how to brew better coffee",
		Predicates:          []string{"brew", "grind", "roast"},
	})

	sc := findByCategory(findings, CategorySCSpecificity)
	require.Len(t, sc, 1)
	assert.Equal(t, SeverityHigh, sc[0].Severity)
}

func TestStrategyShortButSpecificSourceContext(t *testing.T) {
	a := newTestAnalyzer()
	findings, _, _ := a.analyzeStrategy(StrategyInput{
		CentralEntity:       "specialty coffee roasting",
		SourceContext:       "Utrecht roastery",
		CentralSearchIntent: "learn how to brew better coffee",
		Predicates:          []string{"brew", "grind", "roast"},
	})

	sc := findByCategory(findings, CategorySCSpecificity)
	require.Len(t, sc, 1)
	assert.Equal(t, SeverityMedium, sc[0].Severity)
}

func TestStrategyPredicateCoverage(t *testing.T) {
	a := newTestAnalyzer()

	findings, _, _ := a.analyzeStrategy(StrategyInput{
		CentralEntity:       "specialty coffee roasting",
		SourceContext:       "independent specialty coffee roastery in Utrecht",
		CentralSearchIntent: "learn how to brew better coffee",
	})
	csi := findByCategory(findings, CategoryCSICoverage)
	require.Len(t, csi, 1)
	assert.Equal(t, SeverityHigh, csi[0].Severity)

	findings, _, _ = a.analyzeStrategy(StrategyInput{
		CentralEntity:       "specialty coffee roasting",
		SourceContext:       "independent specialty coffee roastery in Utrecht",
		CentralSearchIntent: "learn how to brew better coffee",
		Predicates:          []string{"brew", "grind"},
	})
	csi = findByCategory(findings, CategoryCSICoverage)
	require.Len(t, csi, 1)
	assert.Equal(t, SeverityMedium, csi[0].Severity)
}

func TestStrategyBlankIntentAndEmptyPredicatesBothFire(t *testing.T) {
	a := newTestAnalyzer()
	findings, _, _ := a.analyzeStrategy(StrategyInput{
		CentralEntity: "specialty coffee roasting",
		SourceContext: "independent specialty coffee roastery in Utrecht",
	})

	csi := findByCategory(findings, CategoryCSICoverage)
	assert.Len(t, csi, 2)
}
