package engine

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pmcconville-hub/seofactory-sub014/pkg/eav"
)

// Analyzer dispatches a pipeline step's output to the matching analyzer
// and assembles the findings report. It is stateless between calls.
type Analyzer struct {
	validators MapValidators
	auditor    *eav.Auditor
	logger     *zap.Logger
}

// NewAnalyzer wires the analyzer. A nil auditor gets default scoring; a
// nil logger stays silent.
func NewAnalyzer(validators MapValidators, auditor *eav.Auditor, logger *zap.Logger) *Analyzer {
	if auditor == nil {
		auditor = eav.NewAuditor(eav.DefaultScoring())
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{validators: validators, auditor: auditor, logger: logger}
}

// RunPreAnalysis analyzes one step's output and returns a well-formed
// result under any input: malformed payloads become empty typed inputs,
// failing sub-validators become skip records, and the health score is
// derived once from the complete findings list.
func (a *Analyzer) RunPreAnalysis(step Step, stepOutput any, business BusinessInfo, dialogue *DialogueContext) (result PreAnalysisResult) {
	start := time.Now()

	// The engine never raises to its caller. Anything that slips past the
	// per-check boundaries still yields the report built so far.
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error("pre-analysis recovered", zap.Any("panic", r), zap.String("step", string(step)))
		}
		result.HealthScore = HealthScore(result.Findings)
		result.DurationMS = time.Since(start).Milliseconds()
	}()

	a.logger.Debug("pre-analysis start",
		zap.String("step", string(step)),
		zap.String("locale", business.Locale),
		zap.String("industry", business.Industry))

	var findings []Finding
	var run, skipped []string

	switch step {
	case StepStrategy:
		findings, run, skipped = a.analyzeStrategy(ParseStrategyInput(stepOutput))
	case StepEav:
		findings, run, skipped = a.analyzeEav(ParseEavInput(stepOutput))
	case StepMapPlanning:
		in := ParseMapPlanningInput(stepOutput)
		if strings.TrimSpace(in.CentralEntity) == "" && dialogue != nil {
			in.CentralEntity = dialogue.ConfirmedCentralEntity
		}
		findings, run, skipped = a.analyzeMapPlanning(in)
	default:
		a.logger.Warn("unknown step, returning empty report", zap.String("step", string(step)))
	}

	for _, name := range skipped {
		a.logger.Warn("validator skipped",
			zap.String("validator", name),
			zap.String("step", string(step)))
	}

	result.Findings = findings
	result.ValidatorsRun = run
	result.ValidatorsSkipped = skipped
	return result
}
