package validators

import (
	"strings"

	"github.com/pmcconville-hub/seofactory-sub014/pkg/engine"
	"github.com/pmcconville-hub/seofactory-sub014/pkg/textdist"
)

// ThinPageRule decides whether a topic deserves its own page from its
// demand, intent, and tree-position signals.
type ThinPageRule struct {
	// MinSearchVolume is the demand floor below which a leaf topic starts
	// looking like a section of its parent.
	MinSearchVolume int
}

// NewThinPageRule returns a rule with the standard demand floor.
func NewThinPageRule() *ThinPageRule {
	return &ThinPageRule{MinSearchVolume: 10}
}

// Evaluate returns a merge/keep decision with a confidence per topic.
// Topics with children always keep their page.
func (r *ThinPageRule) Evaluate(signals []engine.PageSignals) []engine.IndexDecision {
	decisions := make([]engine.IndexDecision, 0, len(signals))
	for _, s := range signals {
		decisions = append(decisions, r.evaluateOne(s))
	}
	return decisions
}

func (r *ThinPageRule) evaluateOne(s engine.PageSignals) engine.IndexDecision {
	if s.ChildCount > 0 {
		return engine.IndexDecision{Title: s.Title, Decision: engine.DecisionKeep, Confidence: 0.9}
	}

	confidence := 0.0
	if s.SearchVolume < r.MinSearchVolume {
		confidence += 0.3
		if s.SearchVolume == 0 {
			confidence += 0.1
		}
	}
	if strings.TrimSpace(s.Intent) == "" {
		confidence += 0.2
	}
	if s.ParentTitle != "" && textdist.Similarity(s.Title, s.ParentTitle) >= 0.5 {
		// The title restates its parent; the page would duplicate it.
		confidence += 0.3
	}
	if confidence > 1 {
		confidence = 1
	}

	decision := engine.DecisionKeep
	if confidence >= 0.5 {
		decision = engine.DecisionMergeIntoParent
	}
	return engine.IndexDecision{Title: s.Title, Decision: decision, Confidence: confidence}
}
