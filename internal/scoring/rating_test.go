package scoring

import (
	"testing"

	"github.com/mirit/psyche/internal/catalog"
)

func ratingFixture() ([]catalog.Question, []catalog.Dimension) {
	questions := []catalog.Question{
		{ID: "q1", Kind: catalog.KindRating, DimensionID: "warmth"},
		{ID: "q2", Kind: catalog.KindRating, DimensionID: "warmth", ReverseScored: true},
		{ID: "q3", Kind: catalog.KindRating, DimensionID: "order"},
		{ID: "q4", Kind: catalog.KindRating, AttentionCheck: true, AttentionExpect: 3},
	}
	dimensions := []catalog.Dimension{
		{ID: "warmth", Label: "Warmth"},
		{ID: "order", Label: "Order"},
	}
	return questions, dimensions
}

func TestScoreRatingScale_ReverseScoring(t *testing.T) {
	questions, dimensions := ratingFixture()
	// q1 rated 5 stays 5; q2 rated 1 reverses to 5. avg = 5, score = 100.
	answers := []catalog.RatingAnswer{
		{QuestionID: "q1", Value: 5},
		{QuestionID: "q2", Value: 1},
	}

	scores := ScoreRatingScale(answers, questions, dimensions, 5)
	if scores[0].RawScore != 5.0 {
		t.Errorf("warmth raw = %f, want 5.0", scores[0].RawScore)
	}
	if scores[0].Score != 100 {
		t.Errorf("warmth score = %d, want 100", scores[0].Score)
	}
}

func TestScoreRatingScale_UnansweredExcluded(t *testing.T) {
	questions, dimensions := ratingFixture()
	// Only q1 answered; the average must not zero-fill q2.
	answers := []catalog.RatingAnswer{{QuestionID: "q1", Value: 3}}

	scores := ScoreRatingScale(answers, questions, dimensions, 5)
	if scores[0].RawScore != 3.0 {
		t.Errorf("warmth raw = %f, want 3.0", scores[0].RawScore)
	}
	// (3-1)/(5-1)*100 = 50
	if scores[0].Score != 50 {
		t.Errorf("warmth score = %d, want 50", scores[0].Score)
	}
}

func TestScoreRatingScale_EmptyDimension(t *testing.T) {
	questions, dimensions := ratingFixture()
	answers := []catalog.RatingAnswer{{QuestionID: "q1", Value: 4}}

	scores := ScoreRatingScale(answers, questions, dimensions, 5)
	if len(scores) != len(dimensions) {
		t.Fatalf("got %d scores, want one per dimension (%d)", len(scores), len(dimensions))
	}
	if scores[1].Score != 0 || scores[1].RawScore != 0 {
		t.Errorf("order = %+v, want zero score and raw for unanswered dimension", scores[1])
	}
	// Even an unanswered dimension carries the score-0 estimates:
	// EstimatePercentile(0) = 1, and the T-score of a raw mean at the
	// scale floor: 50 + 10*(1-3)/(5/3) = 38.
	if scores[1].Percentile != 1 {
		t.Errorf("order percentile = %d, want 1", scores[1].Percentile)
	}
	if scores[1].TScore != 38 {
		t.Errorf("order t-score = %d, want 38", scores[1].TScore)
	}
}

func TestScoreRatingScale_AttentionChecksExcluded(t *testing.T) {
	questions, dimensions := ratingFixture()
	// q4 is an attention check and must never enter any average.
	answers := []catalog.RatingAnswer{
		{QuestionID: "q3", Value: 5},
		{QuestionID: "q4", Value: 1},
	}

	scores := ScoreRatingScale(answers, questions, dimensions, 5)
	if scores[1].RawScore != 5.0 {
		t.Errorf("order raw = %f, want 5.0 (attention check leaked in)", scores[1].RawScore)
	}
}

func TestScoreRatingScale_Bounds(t *testing.T) {
	questions, dimensions := ratingFixture()
	// Out-of-range answer values are clamped at the score level.
	answers := []catalog.RatingAnswer{{QuestionID: "q1", Value: 9}}

	scores := ScoreRatingScale(answers, questions, dimensions, 5)
	for _, s := range scores {
		if s.Score < 0 || s.Score > 100 {
			t.Errorf("score %d out of [0,100]", s.Score)
		}
	}
}

func TestScoreRatingScale_SevenPointScale(t *testing.T) {
	questions := []catalog.Question{{ID: "q1", Kind: catalog.KindRating, DimensionID: "d"}}
	dimensions := []catalog.Dimension{{ID: "d", Label: "D"}}
	answers := []catalog.RatingAnswer{{QuestionID: "q1", Value: 4}}

	scores := ScoreRatingScale(answers, questions, dimensions, 7)
	// (4-1)/(7-1)*100 = 50
	if scores[0].Score != 50 {
		t.Errorf("score = %d, want 50", scores[0].Score)
	}
	// T-score at the scale midpoint is exactly 50.
	if scores[0].TScore != 50 {
		t.Errorf("t-score = %d, want 50", scores[0].TScore)
	}
}
