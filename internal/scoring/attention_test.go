package scoring

import (
	"testing"

	"github.com/mirit/psyche/internal/catalog"
)

var attnQuestions = []catalog.Question{
	{ID: "q1", Kind: catalog.KindRating, DimensionID: "d"},
	{ID: "c1", Kind: catalog.KindRating, AttentionCheck: true, AttentionExpect: 2},
	{ID: "c2", Kind: catalog.KindRating, AttentionCheck: true, AttentionExpect: 5},
}

func TestCountAttentionFailures_AllPassed(t *testing.T) {
	answers := []catalog.RatingAnswer{
		{QuestionID: "c1", Value: 2},
		{QuestionID: "c2", Value: 5},
	}
	if got := CountAttentionFailures(attnQuestions, answers); got != 0 {
		t.Errorf("failures = %d, want 0", got)
	}
}

func TestCountAttentionFailures_WrongAndMissing(t *testing.T) {
	// c1 answered wrong, c2 not answered at all: both count.
	answers := []catalog.RatingAnswer{{QuestionID: "c1", Value: 4}}
	if got := CountAttentionFailures(attnQuestions, answers); got != 2 {
		t.Errorf("failures = %d, want 2", got)
	}
}

func TestCountAttentionFailures_IgnoresRegularItems(t *testing.T) {
	answers := []catalog.RatingAnswer{
		{QuestionID: "q1", Value: 1},
		{QuestionID: "c1", Value: 2},
		{QuestionID: "c2", Value: 5},
	}
	if got := CountAttentionFailures(attnQuestions, answers); got != 0 {
		t.Errorf("failures = %d, want 0", got)
	}
}
