package textdist

import "strings"

// Jaccard returns the word-set distance between two short texts in [0,1].
// Tokens are whitespace-separated, lower-cased, and only tokens longer than
// 2 characters are kept. Two texts with no usable tokens have distance 0.
func Jaccard(a, b string) float64 {
	setA := tokenSet(a)
	setB := tokenSet(b)

	if len(setA) == 0 && len(setB) == 0 {
		return 0
	}

	intersection := 0
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return 1 - float64(intersection)/float64(union)
}

// Similarity is the complement of Jaccard, convenient for overlap checks.
func Similarity(a, b string) float64 {
	return 1 - Jaccard(a, b)
}

func tokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, f := range strings.Fields(strings.ToLower(s)) {
		if len([]rune(f)) > 2 {
			set[f] = struct{}{}
		}
	}
	return set
}
