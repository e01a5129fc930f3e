package scoring

import (
	"math"

	"github.com/mirit/psyche/internal/catalog"
)

// ScoreRatingScale folds rating answers into one DimensionScore per catalog
// dimension. Reverse-scored items are flipped to scaleMax+1-value before
// averaging. Unanswered questions are excluded from the average, never
// zero-filled. A dimension with no answers scores 0 and still carries the
// score-0 percentile and T-score estimates, so every entry satisfies the
// percentile range [1,99].
//
// The output always has exactly one entry per dimension, in catalog order.
func ScoreRatingScale(answers []catalog.RatingAnswer, questions []catalog.Question, dimensions []catalog.Dimension, scaleMax int) []DimensionScore {
	byQuestion := make(map[string]catalog.Question, len(questions))
	for _, q := range questions {
		byQuestion[q.ID] = q
	}

	scores := make([]DimensionScore, 0, len(dimensions))
	for _, dim := range dimensions {
		var sum float64
		var n int
		for _, ans := range answers {
			q, ok := byQuestion[ans.QuestionID]
			if !ok || q.AttentionCheck || q.DimensionID != dim.ID {
				continue
			}
			v := float64(ans.Value)
			if q.ReverseScored {
				v = float64(scaleMax+1) - v
			}
			sum += v
			n++
		}

		ds := DimensionScore{
			DimensionID: dim.ID,
			Label:       dim.Label,
			Description: dim.Description,
		}
		if n > 0 {
			avg := sum / float64(n)
			ds.RawScore = avg
			ds.Score = clampInt(int(math.Round((avg-1)/float64(scaleMax-1)*100)), 0, 100)
			ds.TScore = RawMeanToTScore(avg, scaleMax)
		} else {
			// Score stays 0; the T-score matches a raw mean at the
			// scale floor, which is what a 0 score means.
			ds.TScore = RawMeanToTScore(1, scaleMax)
		}
		ds.Percentile = EstimatePercentile(ds.Score)
		scores = append(scores, ds)
	}
	return scores
}
