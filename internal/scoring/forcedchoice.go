package scoring

import (
	"math"

	"github.com/mirit/psyche/internal/catalog"
)

// TallyForcedChoice counts forced-choice votes per dimension and normalizes
// against the number of items allotted to each dimension. Dimensions that
// received no votes score 0. The clamp guards against catalogs where votes
// can exceed the stated allotment: the score never passes 100.
//
// The output always has exactly one entry per dimension, in catalog order.
func TallyForcedChoice(answers []catalog.ChoiceAnswer, dimensions []catalog.Dimension, questionsPerDimension int) []DimensionScore {
	votes := make(map[string]int, len(dimensions))
	for _, ans := range answers {
		votes[ans.DimensionID]++
	}

	scores := make([]DimensionScore, 0, len(dimensions))
	for _, dim := range dimensions {
		n := votes[dim.ID]
		score := 0
		if questionsPerDimension > 0 {
			score = int(math.Round(float64(n) / float64(questionsPerDimension) * 100))
			if score > 100 {
				score = 100
			}
		}
		scores = append(scores, DimensionScore{
			DimensionID: dim.ID,
			Label:       dim.Label,
			Description: dim.Description,
			Score:       score,
			RawScore:    float64(n),
		})
	}
	return scores
}
