package engine

// Severity of a finding, ordered by decreasing impact.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Category is the closed set of issue classes the engine can report.
type Category string

const (
	CategoryTitleCannibalization Category = "title_cannibalization"
	CategoryDepthImbalance       Category = "depth_imbalance"
	CategoryMissingFrame         Category = "missing_frame"
	CategoryBorderViolation      Category = "border_violation"
	CategoryPageWorthiness       Category = "page_worthiness"
	CategoryEavInconsistency     Category = "eav_inconsistency"
	CategoryEavCategoryGap       Category = "eav_category_gap"
	CategoryEavPendingValues     Category = "eav_pending_values"
	CategoryCEAmbiguity          Category = "ce_ambiguity"
	CategorySCSpecificity        Category = "sc_specificity"
	CategoryCSICoverage          Category = "csi_coverage"
)

// severityPenalty is the static health-score penalty per finding.
var severityPenalty = map[Severity]int{
	SeverityCritical: 15,
	SeverityHigh:     8,
	SeverityMedium:   4,
	SeverityLow:      1,
}

// autoFixable marks the categories that can be resolved without a human
// answer (mechanical retitle/re-cluster/merge edits). Everything else needs
// domain knowledge from the user.
var autoFixable = map[Category]bool{
	CategoryTitleCannibalization: true,
	CategoryDepthImbalance:       true,
	CategoryMissingFrame:         false,
	CategoryBorderViolation:      false,
	CategoryPageWorthiness:       true,
	CategoryEavInconsistency:     false,
	CategoryEavCategoryGap:       false,
	CategoryEavPendingValues:     false,
	CategoryCEAmbiguity:          false,
	CategorySCSpecificity:        false,
	CategoryCSICoverage:          false,
}

// Finding is one normalized, severity-tagged issue.
type Finding struct {
	Category        Category `json:"category"`
	Severity        Severity `json:"severity"`
	Title           string   `json:"title"`
	Details         string   `json:"details"`
	SuggestedAction string   `json:"suggested_action"`
	AffectedItems   []string `json:"affected_items"`
	AutoFixable     bool     `json:"auto_fixable"`
}

// NewFinding builds a fully populated finding. AutoFixable always comes
// from the static table, never from the caller.
func NewFinding(category Category, severity Severity, title, details, action string, affected []string) Finding {
	return Finding{
		Category:        category,
		Severity:        severity,
		Title:           title,
		Details:         details,
		SuggestedAction: action,
		AffectedItems:   affected,
		AutoFixable:     autoFixable[category],
	}
}

// IsAutoFixable reports whether findings of a category can be applied
// without user input.
func IsAutoFixable(category Category) bool {
	return autoFixable[category]
}

// Penalty returns the health-score penalty for a severity.
func Penalty(severity Severity) int {
	return severityPenalty[severity]
}

// HealthScore derives the 0-100 summary from a complete findings list.
// Order-independent and idempotent.
func HealthScore(findings []Finding) int {
	score := 100
	for _, f := range findings {
		score -= severityPenalty[f.Severity]
	}
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// PreAnalysisResult is the engine's single output per invocation.
type PreAnalysisResult struct {
	Findings          []Finding `json:"findings"`
	HealthScore       int       `json:"health_score"`
	ValidatorsRun     []string  `json:"validators_run"`
	ValidatorsSkipped []string  `json:"validators_skipped"`
	DurationMS        int64     `json:"duration_ms"`
}
