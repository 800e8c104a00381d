package eav

// GradeThreshold maps a minimum score to a letter grade and label.
// Thresholds are kept in ascending Min order.
type GradeThreshold struct {
	Min   int    `yaml:"min" json:"min"`
	Grade string `yaml:"grade" json:"grade"`
	Label string `yaml:"label" json:"label"`
}

// DefaultGradeThresholds returns the standard grading scale.
func DefaultGradeThresholds() []GradeThreshold {
	return []GradeThreshold{
		{Min: 0, Grade: "F", Label: "Poor"},
		{Min: 50, Grade: "D", Label: "Weak"},
		{Min: 65, Grade: "C", Label: "Fair"},
		{Min: 80, Grade: "B", Label: "Good"},
		{Min: 90, Grade: "A", Label: "Excellent"},
	}
}

// GradeFor looks up the grade and label for a score. The highest threshold
// whose Min does not exceed the score wins; scores below every threshold
// fall back to the first entry.
func GradeFor(score int, thresholds []GradeThreshold) (string, string) {
	if len(thresholds) == 0 {
		return "", ""
	}
	grade, label := thresholds[0].Grade, thresholds[0].Label
	for _, t := range thresholds {
		if score >= t.Min {
			grade, label = t.Grade, t.Label
		}
	}
	return grade, label
}
