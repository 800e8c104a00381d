// Package advisory renders a findings report for downstream consumers:
// the question-generation prompt builder and callers that partition
// findings by auto-fixability.
package advisory

import (
	"fmt"
	"strings"

	"github.com/pmcconville-hub/seofactory-sub014/pkg/engine"
)

var sectionOrder = []struct {
	severity engine.Severity
	label    string
}{
	{engine.SeverityCritical, "CRITICAL"},
	{engine.SeverityHigh, "HIGH"},
	{engine.SeverityMedium, "MEDIUM"},
	{engine.SeverityLow, "LOW"},
}

// FormatFindingsSection groups findings by severity into labeled sections.
// Critical and high findings render title, details, and suggestion; medium
// only title and suggestion; low just the title. No findings means an
// empty string.
func FormatFindingsSection(result engine.PreAnalysisResult) string {
	if len(result.Findings) == 0 {
		return ""
	}

	bySeverity := map[engine.Severity][]engine.Finding{}
	for _, f := range result.Findings {
		bySeverity[f.Severity] = append(bySeverity[f.Severity], f)
	}

	var sb strings.Builder
	sb.WriteString("Detected data-quality findings:\n")
	for _, section := range sectionOrder {
		findings := bySeverity[section.severity]
		if len(findings) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("\n[%s]\n", section.label))
		for _, f := range findings {
			sb.WriteString("- " + f.Title + "\n")
			switch section.severity {
			case engine.SeverityCritical, engine.SeverityHigh:
				if f.Details != "" {
					sb.WriteString("  Details: " + f.Details + "\n")
				}
				if f.SuggestedAction != "" {
					sb.WriteString("  Suggested action: " + f.SuggestedAction + "\n")
				}
			case engine.SeverityMedium:
				if f.SuggestedAction != "" {
					sb.WriteString("  Suggested action: " + f.SuggestedAction + "\n")
				}
			}
		}
	}
	return sb.String()
}

// maxSuggestedQuestions caps the estimate fed to question generation.
const maxSuggestedQuestions = 12

// QuestionCountGuidance estimates how many clarification questions the
// findings warrant: one per critical, one per high, one per two medium,
// capped at 12. Low findings never contribute.
func QuestionCountGuidance(findings []engine.Finding) string {
	var critical, high, medium int
	for _, f := range findings {
		switch f.Severity {
		case engine.SeverityCritical:
			critical++
		case engine.SeverityHigh:
			high++
		case engine.SeverityMedium:
			medium++
		}
	}

	estimate := critical + high + (medium+1)/2
	if estimate > maxSuggestedQuestions {
		estimate = maxSuggestedQuestions
	}

	return fmt.Sprintf("Generate at most %d question(s): address every critical finding first, then high findings, and combine medium findings where they overlap.", estimate)
}

// PartitionByFixability splits findings into those needing a human answer
// and those that can be auto-applied, per the static category table.
func PartitionByFixability(findings []engine.Finding) (needsInput, fixable []engine.Finding) {
	for _, f := range findings {
		if f.AutoFixable {
			fixable = append(fixable, f)
		} else {
			needsInput = append(needsInput, f)
		}
	}
	return needsInput, fixable
}
