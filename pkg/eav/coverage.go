package eav

import "strings"

// AttributeKey identifies one normalized (subject, attribute) pair.
type AttributeKey struct {
	Subject   string `json:"subject"`
	Attribute string `json:"attribute"`
}

// CoverageReport lists the required map-level pairs a brief is missing and
// how much of the map-level inventory it covers.
type CoverageReport struct {
	Missing     []AttributeKey `json:"missing"`
	CoveragePct float64        `json:"coverage_pct"`
}

// RequiredAttributeCoverage compares the (subject, attribute) keys present
// in a brief's triples against the map-level triples tagged with one of
// the required categories. Coverage is the share of map-level keys the
// brief carries, and is 100 when the map has no required keys at all.
func RequiredAttributeCoverage(mapTriples, docTriples []Triple, requiredCategories []string) CoverageReport {
	required := make(map[string]struct{}, len(requiredCategories))
	for _, c := range requiredCategories {
		required[strings.ToUpper(strings.TrimSpace(c))] = struct{}{}
	}

	docKeys := keySet(docTriples)

	mapKeys := map[AttributeKey]struct{}{}
	var requiredOrder []AttributeKey
	requiredSeen := map[AttributeKey]struct{}{}
	for _, t := range mapTriples {
		key, ok := normalizedKey(t)
		if !ok {
			continue
		}
		mapKeys[key] = struct{}{}
		if _, isRequired := required[strings.ToUpper(strings.TrimSpace(t.Category))]; !isRequired {
			continue
		}
		if _, seen := requiredSeen[key]; !seen {
			requiredSeen[key] = struct{}{}
			requiredOrder = append(requiredOrder, key)
		}
	}

	var missing []AttributeKey
	for _, key := range requiredOrder {
		if _, ok := docKeys[key]; !ok {
			missing = append(missing, key)
		}
	}

	if len(requiredOrder) == 0 {
		return CoverageReport{Missing: missing, CoveragePct: 100}
	}

	covered := 0
	for key := range mapKeys {
		if _, ok := docKeys[key]; ok {
			covered++
		}
	}
	pct := float64(covered) / float64(len(mapKeys)) * 100
	return CoverageReport{Missing: missing, CoveragePct: pct}
}

func keySet(triples []Triple) map[AttributeKey]struct{} {
	keys := map[AttributeKey]struct{}{}
	for _, t := range triples {
		if key, ok := normalizedKey(t); ok {
			keys[key] = struct{}{}
		}
	}
	return keys
}

func normalizedKey(t Triple) (AttributeKey, bool) {
	subject := strings.ToLower(strings.TrimSpace(t.Subject))
	attribute := strings.ToLower(strings.TrimSpace(t.Attribute))
	if subject == "" || attribute == "" {
		return AttributeKey{}, false
	}
	return AttributeKey{Subject: subject, Attribute: attribute}, true
}
