package validators

import (
	"strings"

	"github.com/pmcconville-hub/seofactory-sub014/pkg/engine"
)

// KeywordFrameAnalyzer is a lexicon-backed frame analyzer. A frame is
// evoked when any title contains one of its trigger words; its core
// elements count as covered when some title carries one of their keywords.
type KeywordFrameAnalyzer struct {
	frames []frameDef
}

type frameDef struct {
	name     string
	triggers []string
	core     []coreElement
}

type coreElement struct {
	name     string
	keywords []string
}

// NewKeywordFrameAnalyzer returns an analyzer with the built-in lexicon.
func NewKeywordFrameAnalyzer() *KeywordFrameAnalyzer {
	return &KeywordFrameAnalyzer{frames: []frameDef{
		{
			name:     "commerce_purchase",
			triggers: []string{"buy", "price", "cost", "order", "shop"},
			core: []coreElement{
				{name: "goods", keywords: []string{"product", "model", "kit", "bundle"}},
				{name: "money", keywords: []string{"price", "cost", "cheap", "budget", "deal"}},
				{name: "seller", keywords: []string{"store", "shop", "supplier", "vendor"}},
			},
		},
		{
			name:     "evaluation",
			triggers: []string{"best", "review", "top", "vs", "versus", "compare"},
			core: []coreElement{
				{name: "items", keywords: []string{"best", "top", "alternatives"}},
				{name: "criteria", keywords: []string{"review", "rating", "pros", "cons", "compare", "vs", "versus"}},
			},
		},
		{
			name:     "instruction",
			triggers: []string{"how", "guide", "tutorial", "steps"},
			core: []coreElement{
				{name: "task", keywords: []string{"how", "guide", "tutorial"}},
				{name: "means", keywords: []string{"steps", "step-by-step", "with", "using", "without"}},
			},
		},
		{
			name:     "troubleshooting",
			triggers: []string{"fix", "problem", "error", "not", "issue"},
			core: []coreElement{
				{name: "problem", keywords: []string{"problem", "error", "issue", "broken", "fails"}},
				{name: "remedy", keywords: []string{"fix", "solve", "repair", "troubleshoot"}},
			},
		},
		{
			name:     "definition",
			triggers: []string{"what", "meaning", "definition", "explained"},
			core: []coreElement{
				{name: "concept", keywords: []string{"what", "definition", "meaning"}},
				{name: "explanation", keywords: []string{"explained", "work", "works", "types"}},
			},
		},
	}}
}

// Analyze reports coverage for every evoked frame.
func (a *KeywordFrameAnalyzer) Analyze(titles []string) []engine.FrameCoverage {
	lowered := make([]string, len(titles))
	for i, t := range titles {
		lowered[i] = strings.ToLower(t)
	}

	var coverages []engine.FrameCoverage
	for _, frame := range a.frames {
		if !anyTitleContains(lowered, frame.triggers) {
			continue
		}
		fc := engine.FrameCoverage{Frame: frame.name}
		for _, el := range frame.core {
			if anyTitleContains(lowered, el.keywords) {
				fc.CoveredCore = append(fc.CoveredCore, el.name)
			} else {
				fc.MissingCore = append(fc.MissingCore, el.name)
			}
		}
		coverages = append(coverages, fc)
	}
	return coverages
}

func anyTitleContains(lowered []string, words []string) bool {
	for _, title := range lowered {
		fields := strings.Fields(title)
		for _, w := range words {
			for _, f := range fields {
				if strings.Trim(f, ".,:;!?") == w {
					return true
				}
			}
		}
	}
	return false
}
