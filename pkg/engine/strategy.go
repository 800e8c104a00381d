package engine

import (
	"fmt"
	"strings"
)

// Validator names recorded for the strategy step.
const (
	ValidatorCentralEntity = "central_entity_heuristics"
	ValidatorSourceContext = "source_context_heuristics"
	ValidatorSearchIntent  = "search_intent_heuristics"
)

// leadingArticles flags central entities that start with an article in the
// supported site languages (English, Dutch, German, French, Spanish).
var leadingArticles = map[string]struct{}{
	"a": {}, "an": {}, "the": {},
	"de": {}, "het": {}, "een": {},
	"der": {}, "die": {}, "das": {}, "ein": {}, "eine": {},
	"le": {}, "la": {}, "les": {}, "un": {}, "une": {},
	"el": {}, "los": {}, "las": {}, "una": {},
}

// genericContextTerms flags source contexts that say nothing beyond the
// medium ("a blog", "expert site", ...).
var genericContextTerms = []string{
	"blog", "website", "expert", "specialist", "professional", "site", "page",
}

// analyzeStrategy runs the three independent heuristics on the pillars
// record. The checks never short-circuit: a blank field and a weak
// predicate list both surface in the same pass.
func (a *Analyzer) analyzeStrategy(in StrategyInput) ([]Finding, []string, []string) {
	var findings []Finding

	findings = append(findings, checkCentralEntity(in.CentralEntity)...)
	findings = append(findings, checkSourceContext(in.SourceContext)...)
	findings = append(findings, checkSearchIntent(in.CentralSearchIntent, in.Predicates)...)

	run := []string{ValidatorCentralEntity, ValidatorSourceContext, ValidatorSearchIntent}
	return findings, run, nil
}

func checkCentralEntity(ce string) []Finding {
	trimmed := strings.TrimSpace(ce)
	if trimmed == "" {
		return []Finding{NewFinding(CategoryCEAmbiguity, SeverityCritical,
			"Central Entity is missing",
			"The strategy has no Central Entity, so every downstream step lacks its anchor topic.",
			"Define the single core topic the site is about.",
			nil)}
	}

	words := strings.Fields(trimmed)
	if len(words) == 1 && len([]rune(trimmed)) < 10 {
		return []Finding{NewFinding(CategoryCEAmbiguity, SeverityHigh,
			fmt.Sprintf("Central Entity %q may be too ambiguous", trimmed),
			"A short single-word entity usually has several unrelated meanings.",
			"Qualify the entity with its domain (e.g. a category or audience).",
			[]string{trimmed})}
	}

	first := strings.ToLower(words[0])
	if _, ok := leadingArticles[first]; ok {
		return []Finding{NewFinding(CategoryCEAmbiguity, SeverityLow,
			fmt.Sprintf("Central Entity %q starts with an article", trimmed),
			"Leading articles weaken entity matching against search queries.",
			fmt.Sprintf("Drop the leading %q from the entity name.", words[0]),
			[]string{trimmed})}
	}
	return nil
}

func checkSourceContext(sc string) []Finding {
	trimmed := strings.TrimSpace(sc)
	if trimmed == "" {
		return []Finding{NewFinding(CategorySCSpecificity, SeverityCritical,
			"Source Context is missing",
			"Without a Source Context the authorial standpoint is undefined.",
			"Describe who is speaking and from what position of expertise.",
			nil)}
	}

	words := strings.Fields(trimmed)
	lower := strings.ToLower(trimmed)
	if len(words) <= 2 {
		for _, term := range genericContextTerms {
			if strings.Contains(lower, term) {
				return []Finding{NewFinding(CategorySCSpecificity, SeverityHigh,
					fmt.Sprintf("Source Context %q is generic", trimmed),
					"A bare medium or role label does not differentiate the site from competitors.",
					"State the concrete expertise, offering, or audience behind the site.",
					[]string{trimmed})}
			}
		}
	}
	if len(words) < 3 {
		return []Finding{NewFinding(CategorySCSpecificity, SeverityMedium,
			fmt.Sprintf("Source Context %q is very short", trimmed),
			"Fewer than three words rarely capture a usable standpoint.",
			"Expand the context with what the site does and for whom.",
			[]string{trimmed})}
	}
	return nil
}

func checkSearchIntent(csi string, predicates []string) []Finding {
	var findings []Finding

	if strings.TrimSpace(csi) == "" {
		findings = append(findings, NewFinding(CategoryCSICoverage, SeverityCritical,
			"Central Search Intent is missing",
			"No primary user intent is defined for the map.",
			"State the dominant question or task users bring to the site.",
			nil))
	}

	if len(predicates) < 3 {
		severity := SeverityMedium
		details := fmt.Sprintf("Only %d predicate(s) are defined; intent coverage needs at least 3.", len(predicates))
		if len(predicates) == 0 {
			severity = SeverityHigh
			details = "No predicates are defined, so the search intent cannot be decomposed."
		}
		findings = append(findings, NewFinding(CategoryCSICoverage, severity,
			"Predicate list is too thin",
			details,
			"Add predicates (verbs/relations) that connect the entity to user goals.",
			predicates))
	}

	return findings
}
