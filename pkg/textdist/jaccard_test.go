package textdist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJaccardIdenticalStrings(t *testing.T) {
	assert.Equal(t, 0.0, Jaccard("coffee roasting guide", "coffee roasting guide"))
}

func TestJaccardDisjointSets(t *testing.T) {
	assert.Equal(t, 1.0, Jaccard("coffee roasting", "bicycle repair"))
}

func TestJaccardSymmetry(t *testing.T) {
	a := "best espresso machines 2024"
	b := "espresso machine maintenance"
	assert.Equal(t, Jaccard(a, b), Jaccard(b, a))
}

func TestJaccardEmptyInputs(t *testing.T) {
	assert.Equal(t, 0.0, Jaccard("", ""))
	// Tokens of length <= 2 are dropped, so these sets are both empty too.
	assert.Equal(t, 0.0, Jaccard("a an of", "to in"))
}

func TestJaccardTokenization(t *testing.T) {
	// "How" and "how" are the same token; "to" is dropped (<= 2 chars).
	d := Jaccard("How to roast coffee", "roast coffee how")
	assert.Equal(t, 0.0, d)
}

func TestJaccardPartialOverlap(t *testing.T) {
	// Sets: {coffee, roasting} and {coffee, brewing}: 1 shared, 3 union.
	d := Jaccard("coffee roasting", "coffee brewing")
	assert.InDelta(t, 1.0-1.0/3.0, d, 1e-9)
}

func TestSimilarityComplement(t *testing.T) {
	a, b := "coffee roasting", "coffee brewing"
	assert.InDelta(t, 1.0-Jaccard(a, b), Similarity(a, b), 1e-9)
}
