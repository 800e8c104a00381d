package validators

import (
	"github.com/pmcconville-hub/seofactory-sub014/pkg/engine"
	"github.com/pmcconville-hub/seofactory-sub014/pkg/textdist"
)

// LexicalDetector reports topic pairs whose titles overlap lexically.
type LexicalDetector struct {
	// Threshold is the minimum word-set similarity for a pair to be
	// reported.
	Threshold float64
}

// NewLexicalDetector returns a detector with the standard threshold.
func NewLexicalDetector() *LexicalDetector {
	return &LexicalDetector{Threshold: 0.7}
}

// Detect compares every title pair and reports those at or above the
// threshold, with their similarity ratio.
func (d *LexicalDetector) Detect(topics []engine.Topic) []engine.SimilarPair {
	var pairs []engine.SimilarPair
	for i := 0; i < len(topics); i++ {
		for j := i + 1; j < len(topics); j++ {
			sim := textdist.Similarity(topics[i].Title, topics[j].Title)
			if sim < d.Threshold {
				continue
			}
			pairs = append(pairs, engine.SimilarPair{
				TopicA:     topics[i].ID,
				TopicB:     topics[j].ID,
				TitleA:     topics[i].Title,
				TitleB:     topics[j].Title,
				Similarity: sim,
			})
		}
	}
	return pairs
}
