package eav

import (
	"fmt"
	"strconv"
	"strings"
)

// MapLevelSource tags occurrences that come from the topical map itself,
// as opposed to a specific content brief.
const MapLevelSource = "topical_map"

// Severity levels reported by the auditor.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// InconsistencyType classifies what kind of disagreement was found.
type InconsistencyType string

const (
	ValueConflict    InconsistencyType = "value_conflict"
	MissingAttribute InconsistencyType = "missing_attribute"
	TypeMismatch     InconsistencyType = "type_mismatch"
	CategoryMismatch InconsistencyType = "category_mismatch"
)

// Location records one occurrence of a disputed statement.
type Location struct {
	Source string `json:"source"`
	Value  string `json:"value"`
}

// Inconsistency is one detected disagreement across occurrences of the
// same (subject, attribute) pair.
type Inconsistency struct {
	ID          string            `json:"id"`
	Severity    Severity          `json:"severity"`
	Type        InconsistencyType `json:"type"`
	Subject     string            `json:"subject"`
	Attribute   string            `json:"attribute"`
	Description string            `json:"description"`
	Locations   []Location        `json:"locations"`
	Suggestion  string            `json:"suggestion"`
}

// Report is the result of one audit pass.
type Report struct {
	TotalEavs        int              `json:"total_eavs"`
	UniqueSubjects   int              `json:"unique_subjects"`
	UniqueAttributes int              `json:"unique_attributes"`
	Inconsistencies  []Inconsistency  `json:"inconsistencies"`
	Score            int              `json:"score"`
	Summary          map[Severity]int `json:"summary"`
}

// ScoringConfig holds the externally configurable audit scoring constants.
type ScoringConfig struct {
	BaseScore       int `yaml:"base_score" json:"base_score"`
	CriticalPenalty int `yaml:"critical_penalty" json:"critical_penalty"`
	WarningPenalty  int `yaml:"warning_penalty" json:"warning_penalty"`
	InfoPenalty     int `yaml:"info_penalty" json:"info_penalty"`
}

// DefaultScoring returns the standard scoring constants.
func DefaultScoring() ScoringConfig {
	return ScoringConfig{
		BaseScore:       100,
		CriticalPenalty: 15,
		WarningPenalty:  5,
		InfoPenalty:     1,
	}
}

// Auditor detects cross-record inconsistencies in EAV triples.
type Auditor struct {
	scoring ScoringConfig
}

// NewAuditor creates an auditor with the given scoring constants.
func NewAuditor(scoring ScoringConfig) *Auditor {
	return &Auditor{scoring: scoring}
}

type groupKey struct {
	subject   string
	attribute string
}

type occurrence struct {
	value     string
	category  string
	valueType string
	source    string
}

// Audit groups triples by normalized (subject, attribute) and runs the
// three inconsistency detectors on every group with two or more
// occurrences. Triples missing a subject or an attribute are dropped from
// grouping, never raised.
func (a *Auditor) Audit(triples []Triple) Report {
	groups, order := groupOccurrences(triples)
	return a.report(triples, groups, order)
}

// AuditCrossSource merges the map-level triples (tagged MapLevelSource)
// with every brief's triples (tagged with the brief id/title) into one
// grouping, so a conflict between the map and a single brief surfaces the
// same way a within-map conflict does.
func (a *Auditor) AuditCrossSource(mapTriples []Triple, docs []DocumentTriples) Report {
	merged := make([]Triple, 0, len(mapTriples))
	for _, t := range mapTriples {
		t.Source = MapLevelSource
		merged = append(merged, t)
	}
	for _, doc := range docs {
		label := doc.SourceLabel()
		for _, t := range doc.Triples {
			t.Source = label
			merged = append(merged, t)
		}
	}
	groups, order := groupOccurrences(merged)
	return a.report(merged, groups, order)
}

func groupOccurrences(triples []Triple) (map[groupKey][]occurrence, []groupKey) {
	groups := make(map[groupKey][]occurrence)
	var order []groupKey
	for _, t := range triples {
		subject := strings.ToLower(strings.TrimSpace(t.Subject))
		attribute := strings.ToLower(strings.TrimSpace(t.Attribute))
		if subject == "" || attribute == "" {
			continue
		}
		key := groupKey{subject: subject, attribute: attribute}
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		source := t.Source
		if source == "" {
			source = "unspecified"
		}
		groups[key] = append(groups[key], occurrence{
			value:     t.Value,
			category:  strings.TrimSpace(t.Category),
			valueType: strings.TrimSpace(t.ValueType),
			source:    source,
		})
	}
	return groups, order
}

func (a *Auditor) report(triples []Triple, groups map[groupKey][]occurrence, order []groupKey) Report {
	var inconsistencies []Inconsistency
	for _, key := range order {
		occs := groups[key]
		if len(occs) < 2 {
			continue
		}
		if inc, ok := detectValueConflict(key, occs); ok {
			inconsistencies = append(inconsistencies, inc)
		}
		if inc, ok := detectCategoryMismatch(key, occs); ok {
			inconsistencies = append(inconsistencies, inc)
		}
		if inc, ok := detectTypeMismatch(key, occs); ok {
			inconsistencies = append(inconsistencies, inc)
		}
	}

	summary := map[Severity]int{}
	for _, inc := range inconsistencies {
		summary[inc.Severity]++
	}

	subjects := map[string]struct{}{}
	attributes := map[string]struct{}{}
	for key := range groups {
		subjects[key.subject] = struct{}{}
		attributes[key.attribute] = struct{}{}
	}

	score := a.scoring.BaseScore -
		summary[SeverityCritical]*a.scoring.CriticalPenalty -
		summary[SeverityWarning]*a.scoring.WarningPenalty -
		summary[SeverityInfo]*a.scoring.InfoPenalty
	if score < 0 {
		score = 0
	}
	if score > a.scoring.BaseScore {
		score = a.scoring.BaseScore
	}

	return Report{
		TotalEavs:        len(triples),
		UniqueSubjects:   len(subjects),
		UniqueAttributes: len(attributes),
		Inconsistencies:  inconsistencies,
		Score:            score,
		Summary:          summary,
	}
}

func detectValueConflict(key groupKey, occs []occurrence) (Inconsistency, bool) {
	distinct := map[string]struct{}{}
	allNumeric := true
	for _, o := range occs {
		normalized := strings.ToLower(strings.TrimSpace(o.value))
		distinct[normalized] = struct{}{}
		if _, err := strconv.ParseFloat(strings.TrimSpace(o.value), 64); err != nil {
			allNumeric = false
		}
	}
	if len(distinct) <= 1 {
		return Inconsistency{}, false
	}

	severity := SeverityWarning
	if allNumeric {
		severity = SeverityCritical
	}
	return Inconsistency{
		ID:        inconsistencyID(key, ValueConflict),
		Severity:  severity,
		Type:      ValueConflict,
		Subject:   key.subject,
		Attribute: key.attribute,
		Description: fmt.Sprintf("%q has %d conflicting values for attribute %q",
			key.subject, len(distinct), key.attribute),
		Locations:  locations(occs),
		Suggestion: fmt.Sprintf("Pick one canonical value for %s.%s and align every source with it", key.subject, key.attribute),
	}, true
}

func detectCategoryMismatch(key groupKey, occs []occurrence) (Inconsistency, bool) {
	distinct := map[string]struct{}{}
	for _, o := range occs {
		if o.category != "" {
			distinct[o.category] = struct{}{}
		}
	}
	if len(distinct) <= 1 {
		return Inconsistency{}, false
	}
	return Inconsistency{
		ID:        inconsistencyID(key, CategoryMismatch),
		Severity:  SeverityInfo,
		Type:      CategoryMismatch,
		Subject:   key.subject,
		Attribute: key.attribute,
		Description: fmt.Sprintf("%q attribute %q is tagged with %d different categories",
			key.subject, key.attribute, len(distinct)),
		Locations:  locations(occs),
		Suggestion: fmt.Sprintf("Assign a single category to %s.%s across all sources", key.subject, key.attribute),
	}, true
}

func detectTypeMismatch(key groupKey, occs []occurrence) (Inconsistency, bool) {
	distinct := map[string]struct{}{}
	for _, o := range occs {
		if o.valueType != "" {
			distinct[o.valueType] = struct{}{}
		}
	}
	if len(distinct) <= 1 {
		return Inconsistency{}, false
	}
	return Inconsistency{
		ID:        inconsistencyID(key, TypeMismatch),
		Severity:  SeverityWarning,
		Type:      TypeMismatch,
		Subject:   key.subject,
		Attribute: key.attribute,
		Description: fmt.Sprintf("%q attribute %q is declared with %d different value types",
			key.subject, key.attribute, len(distinct)),
		Locations:  locations(occs),
		Suggestion: fmt.Sprintf("Declare one value type for %s.%s and convert the outliers", key.subject, key.attribute),
	}, true
}

func locations(occs []occurrence) []Location {
	locs := make([]Location, 0, len(occs))
	for _, o := range occs {
		locs = append(locs, Location{Source: o.source, Value: o.value})
	}
	return locs
}

func inconsistencyID(key groupKey, typ InconsistencyType) string {
	return fmt.Sprintf("%s_%s_%s", slug(key.subject), slug(key.attribute), typ)
}

func slug(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}
