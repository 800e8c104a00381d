package advisory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pmcconville-hub/seofactory-sub014/pkg/engine"
)

func finding(severity engine.Severity) engine.Finding {
	return engine.NewFinding(engine.CategoryCEAmbiguity, severity,
		"Some title", "Some details", "Do something", nil)
}

func TestFormatFindingsSectionEmpty(t *testing.T) {
	assert.Equal(t, "", FormatFindingsSection(engine.PreAnalysisResult{}))
}

func TestFormatFindingsSectionGroupsBySeverity(t *testing.T) {
	result := engine.PreAnalysisResult{Findings: []engine.Finding{
		finding(engine.SeverityLow),
		finding(engine.SeverityCritical),
		finding(engine.SeverityMedium),
		finding(engine.SeverityHigh),
	}}

	out := FormatFindingsSection(result)

	// Sections appear in severity order regardless of detection order.
	critical := strings.Index(out, "[CRITICAL]")
	high := strings.Index(out, "[HIGH]")
	medium := strings.Index(out, "[MEDIUM]")
	low := strings.Index(out, "[LOW]")
	assert.True(t, critical >= 0 && critical < high && high < medium && medium < low)
}

func TestFormatFindingsSectionDetailLevels(t *testing.T) {
	out := FormatFindingsSection(engine.PreAnalysisResult{Findings: []engine.Finding{
		finding(engine.SeverityCritical),
	}})
	assert.Contains(t, out, "Details: Some details")
	assert.Contains(t, out, "Suggested action: Do something")

	out = FormatFindingsSection(engine.PreAnalysisResult{Findings: []engine.Finding{
		finding(engine.SeverityMedium),
	}})
	assert.NotContains(t, out, "Details:")
	assert.Contains(t, out, "Suggested action: Do something")

	out = FormatFindingsSection(engine.PreAnalysisResult{Findings: []engine.Finding{
		finding(engine.SeverityLow),
	}})
	assert.NotContains(t, out, "Details:")
	assert.NotContains(t, out, "Suggested action:")
	assert.Contains(t, out, "- Some title")
}

func TestQuestionCountGuidanceCap(t *testing.T) {
	var findings []engine.Finding
	for i := 0; i < 20; i++ {
		findings = append(findings, finding(engine.SeverityCritical))
	}

	assert.Contains(t, QuestionCountGuidance(findings), "12 question(s)")
}

func TestQuestionCountGuidanceSmallCounts(t *testing.T) {
	findings := []engine.Finding{
		finding(engine.SeverityCritical),
		finding(engine.SeverityHigh),
	}
	assert.Contains(t, QuestionCountGuidance(findings), "2 question(s)")
}

func TestQuestionCountGuidanceMediumRoundsUpLowIgnored(t *testing.T) {
	findings := []engine.Finding{
		finding(engine.SeverityMedium),
		finding(engine.SeverityMedium),
		finding(engine.SeverityMedium),
		finding(engine.SeverityLow),
		finding(engine.SeverityLow),
	}
	// ceil(3/2) = 2; low findings never contribute.
	assert.Contains(t, QuestionCountGuidance(findings), "2 question(s)")
}

func TestPartitionByFixability(t *testing.T) {
	findings := []engine.Finding{
		engine.NewFinding(engine.CategoryTitleCannibalization, engine.SeverityHigh, "t", "", "", nil),
		engine.NewFinding(engine.CategoryEavInconsistency, engine.SeverityHigh, "t", "", "", nil),
		engine.NewFinding(engine.CategoryPageWorthiness, engine.SeverityMedium, "t", "", "", nil),
	}

	needsInput, fixable := PartitionByFixability(findings)
	assert.Len(t, needsInput, 1)
	assert.Len(t, fixable, 2)
}
