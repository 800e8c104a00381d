package validators

import (
	"strings"

	"github.com/pmcconville-hub/seofactory-sub014/pkg/engine"
)

// EntityBorderValidator classifies topics against the central entity using
// direct token overlap first and the injected distance function as the
// fallback metric.
type EntityBorderValidator struct {
	// AtRiskDistance and OutsideDistance are the fallback-distance cutoffs.
	AtRiskDistance  float64
	OutsideDistance float64
}

// NewEntityBorderValidator returns a validator with the standard cutoffs.
func NewEntityBorderValidator() *EntityBorderValidator {
	return &EntityBorderValidator{AtRiskDistance: 0.85, OutsideDistance: 0.999}
}

// Validate classifies each title. A title sharing an entity token is
// always inside; otherwise the distance function decides.
func (v *EntityBorderValidator) Validate(centralEntity string, titles []string, distance func(a, b string) float64) []engine.BorderResult {
	entityTokens := map[string]struct{}{}
	for _, tok := range strings.Fields(strings.ToLower(centralEntity)) {
		if len([]rune(tok)) > 2 {
			entityTokens[tok] = struct{}{}
		}
	}

	results := make([]engine.BorderResult, 0, len(titles))
	for _, title := range titles {
		risk := engine.BorderNone
		if !sharesToken(entityTokens, title) {
			switch d := distance(centralEntity, title); {
			case d >= v.OutsideDistance:
				risk = engine.BorderOutside
			case d >= v.AtRiskDistance:
				risk = engine.BorderAtRisk
			}
		}
		results = append(results, engine.BorderResult{Title: title, Risk: risk})
	}
	return results
}

func sharesToken(entityTokens map[string]struct{}, title string) bool {
	for _, tok := range strings.Fields(strings.ToLower(title)) {
		if _, ok := entityTokens[tok]; ok {
			return true
		}
	}
	return false
}
