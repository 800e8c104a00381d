package llm

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/pmcconville-hub/seofactory-sub014/pkg/advisory"
	"github.com/pmcconville-hub/seofactory-sub014/pkg/engine"
)

//go:embed prompts/question_system_prompt.md
var questionSystemPrompt string

// QuestionSystemPrompt returns the system prompt for question generation.
func QuestionSystemPrompt() string {
	return questionSystemPrompt
}

// BuildQuestionPrompt renders the user prompt for the question-generation
// call: the findings that need a human answer, the count guidance, and the
// business context.
func BuildQuestionPrompt(result engine.PreAnalysisResult, business engine.BusinessInfo) string {
	needsInput, _ := advisory.PartitionByFixability(result.Findings)

	var sb strings.Builder
	if business.Industry != "" || business.Locale != "" {
		sb.WriteString(fmt.Sprintf("Business context: industry=%s locale=%s\n\n",
			valueOr(business.Industry, "unknown"), valueOr(business.Locale, "unknown")))
	}

	section := advisory.FormatFindingsSection(engine.PreAnalysisResult{Findings: needsInput})
	if section == "" {
		sb.WriteString("No findings require a human answer.\n")
	} else {
		sb.WriteString(section)
		sb.WriteString("\n")
	}

	sb.WriteString(advisory.QuestionCountGuidance(needsInput))
	sb.WriteString("\n")
	return sb.String()
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
