package eav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequiredAttributeCoverage(t *testing.T) {
	mapTriples := []Triple{
		{Subject: "acme", Attribute: "definition", Value: "tool maker", Category: "ROOT"},
		{Subject: "acme", Attribute: "founded", Value: "1999", Category: "CORE_DEFINITION"},
		{Subject: "acme", Attribute: "color", Value: "blue", Category: "COMMON"},
	}
	docTriples := []Triple{
		{Subject: "acme", Attribute: "definition", Value: "tool maker"},
	}

	report := RequiredAttributeCoverage(mapTriples, docTriples, []string{"ROOT", "CORE_DEFINITION"})

	assert.Equal(t, []AttributeKey{{Subject: "acme", Attribute: "founded"}}, report.Missing)
	// 1 of 3 map-level keys is present in the brief.
	assert.InDelta(t, 100.0/3.0, report.CoveragePct, 1e-9)
}

func TestRequiredAttributeCoverageNoRequiredKeys(t *testing.T) {
	mapTriples := []Triple{
		{Subject: "acme", Attribute: "color", Value: "blue", Category: "COMMON"},
	}

	report := RequiredAttributeCoverage(mapTriples, nil, []string{"ROOT"})

	assert.Empty(t, report.Missing)
	assert.Equal(t, 100.0, report.CoveragePct)
}

func TestGradeFor(t *testing.T) {
	thresholds := DefaultGradeThresholds()

	grade, label := GradeFor(95, thresholds)
	assert.Equal(t, "A", grade)
	assert.Equal(t, "Excellent", label)

	grade, _ = GradeFor(80, thresholds)
	assert.Equal(t, "B", grade)

	grade, label = GradeFor(10, thresholds)
	assert.Equal(t, "F", grade)
	assert.Equal(t, "Poor", label)
}

func TestGradeForEmptyThresholds(t *testing.T) {
	grade, label := GradeFor(50, nil)
	assert.Empty(t, grade)
	assert.Empty(t, label)
}
