package engine

import (
	"fmt"
	"strings"

	"github.com/pmcconville-hub/seofactory-sub014/pkg/eav"
)

// Validator names recorded for the EAV step.
const (
	ValidatorEavConsistency   = "eav_consistency_audit"
	ValidatorEavCategoryGap   = "eav_category_balance"
	ValidatorEavPendingValues = "eav_pending_values"
)

// pendingMarker is the reserved glyph upstream inserts into values it has
// not resolved yet.
const pendingMarker = "📋"

// placeholderTokens are literal values that mean "not filled in yet".
var placeholderTokens = map[string]struct{}{
	"tbd": {}, "todo": {}, "pending": {}, "n/a": {}, "...": {},
}

// requiredEavCategories must each appear at least once in a healthy
// inventory. ROOT carries the entity definition, UNIQUE the differentiators.
var requiredEavCategories = []struct {
	name     string
	severity Severity
}{
	{name: "ROOT", severity: SeverityHigh},
	{name: "UNIQUE", severity: SeverityMedium},
}

// auditSeverity translates auditor severities into finding severities.
var auditSeverity = map[eav.Severity]Severity{
	eav.SeverityCritical: SeverityCritical,
	eav.SeverityWarning:  SeverityHigh,
	eav.SeverityInfo:     SeverityLow,
}

// analyzeEav wraps the consistency auditor with the category-balance and
// pending-value checks. An empty triple list skips all three checks.
func (a *Analyzer) analyzeEav(in EavInput) ([]Finding, []string, []string) {
	if len(in.Triples) == 0 {
		skipped := []string{ValidatorEavConsistency, ValidatorEavCategoryGap, ValidatorEavPendingValues}
		return nil, nil, skipped
	}

	var findings []Finding

	report := a.auditor.Audit(in.Triples)
	for _, inc := range report.Inconsistencies {
		findings = append(findings, NewFinding(CategoryEavInconsistency, auditSeverity[inc.Severity],
			inc.Description,
			describeLocations(inc.Locations),
			inc.Suggestion,
			[]string{inc.Subject + "." + inc.Attribute}))
	}

	findings = append(findings, checkCategoryBalance(in.Triples)...)
	if f, ok := checkPendingValues(in.Triples); ok {
		findings = append(findings, f)
	}

	run := []string{ValidatorEavConsistency, ValidatorEavCategoryGap, ValidatorEavPendingValues}
	return findings, run, nil
}

func checkCategoryBalance(triples []eav.Triple) []Finding {
	present := map[string]struct{}{}
	for _, t := range triples {
		present[strings.ToUpper(strings.TrimSpace(t.Category))] = struct{}{}
	}

	var findings []Finding
	for _, required := range requiredEavCategories {
		if _, ok := present[required.name]; ok {
			continue
		}
		findings = append(findings, NewFinding(CategoryEavCategoryGap, required.severity,
			fmt.Sprintf("No %s attributes in the inventory", required.name),
			fmt.Sprintf("The inventory has no triple tagged %s.", required.name),
			fmt.Sprintf("Add at least one %s attribute before generating content.", required.name),
			[]string{required.name}))
	}
	return findings
}

func checkPendingValues(triples []eav.Triple) (Finding, bool) {
	var affected []string
	count := 0
	for _, t := range triples {
		if !isPendingValue(t.Value) {
			continue
		}
		count++
		if len(affected) < 5 {
			affected = append(affected, t.Attribute)
		}
	}
	if count == 0 {
		return Finding{}, false
	}

	severity := SeverityMedium
	if count > 5 {
		severity = SeverityHigh
	}
	return NewFinding(CategoryEavPendingValues, severity,
		fmt.Sprintf("%d EAV value(s) still pending", count),
		"Placeholder or empty values will produce hollow content briefs.",
		"Fill in the pending values or remove the attributes from the inventory.",
		affected), true
}

func isPendingValue(value string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return true
	}
	if strings.Contains(trimmed, pendingMarker) {
		return true
	}
	_, ok := placeholderTokens[strings.ToLower(trimmed)]
	return ok
}

func describeLocations(locs []eav.Location) string {
	parts := make([]string, 0, len(locs))
	for _, l := range locs {
		parts = append(parts, fmt.Sprintf("%s: %q", l.Source, l.Value))
	}
	return strings.Join(parts, "; ")
}
