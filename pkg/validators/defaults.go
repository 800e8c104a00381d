package validators

import "github.com/pmcconville-hub/seofactory-sub014/pkg/engine"

// Defaults bundles the standard implementations of the five map-planning
// validator contracts.
func Defaults() engine.MapValidators {
	return engine.MapValidators{
		Cannibalization: NewLexicalDetector(),
		Frames:          NewKeywordFrameAnalyzer(),
		Depth:           NewClusterDepthAnalyzer(),
		Border:          NewEntityBorderValidator(),
		Worthiness:      NewThinPageRule(),
	}
}
