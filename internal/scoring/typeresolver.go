package scoring

import (
	"sort"
	"strings"

	"github.com/mirit/psyche/internal/catalog"
)

// TopDimensions returns the n highest-scoring dimensions, descending by
// score. Ties are broken by catalog order (the slice order of scores),
// which makes the selection deterministic.
func TopDimensions(scores []DimensionScore, n int) []DimensionScore {
	idx := make([]int, len(scores))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]].Score > scores[idx[b]].Score
	})

	if n > len(idx) {
		n = len(idx)
	}
	out := make([]DimensionScore, n)
	for i := 0; i < n; i++ {
		out[i] = scores[idx[i]]
	}
	return out
}

// DichotomyLetter picks one pole letter from a pair of opposing dimensions.
// A dimension absent from scores defaults to 50; ties favor the A pole.
func DichotomyLetter(scores []DimensionScore, dimA, letterA, dimB, letterB string) string {
	if scoreFor(scores, dimA) >= scoreFor(scores, dimB) {
		return letterA
	}
	return letterB
}

// TypeCode assembles a multi-letter code by resolving each dichotomy in
// its fixed pole order and concatenating the chosen letters.
func TypeCode(scores []DimensionScore, dichotomies []catalog.Dichotomy) string {
	var b strings.Builder
	for _, d := range dichotomies {
		b.WriteString(DichotomyLetter(scores, d.DimA, d.LetterA, d.DimB, d.LetterB))
	}
	return b.String()
}

func scoreFor(scores []DimensionScore, dimensionID string) int {
	for _, s := range scores {
		if s.DimensionID == dimensionID {
			return s.Score
		}
	}
	return 50
}
