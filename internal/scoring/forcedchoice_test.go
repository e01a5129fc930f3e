package scoring

import (
	"testing"

	"github.com/mirit/psyche/internal/catalog"
)

var fcDimensions = []catalog.Dimension{
	{ID: "creator", Label: "Creator"},
	{ID: "sage", Label: "Sage"},
}

func TestTallyForcedChoice_Normalizes(t *testing.T) {
	// 4 of 5 allotted votes = 80.
	answers := []catalog.ChoiceAnswer{
		{QuestionID: "q1", DimensionID: "creator"},
		{QuestionID: "q2", DimensionID: "creator"},
		{QuestionID: "q3", DimensionID: "creator"},
		{QuestionID: "q4", DimensionID: "creator"},
	}

	scores := TallyForcedChoice(answers, fcDimensions, 5)
	if scores[0].Score != 80 {
		t.Errorf("creator score = %d, want 80", scores[0].Score)
	}
	if scores[0].RawScore != 4 {
		t.Errorf("creator raw = %f, want 4", scores[0].RawScore)
	}
}

func TestTallyForcedChoice_MissingDimensionZero(t *testing.T) {
	scores := TallyForcedChoice(nil, fcDimensions, 5)
	if len(scores) != 2 {
		t.Fatalf("got %d scores, want 2", len(scores))
	}
	for _, s := range scores {
		if s.Score != 0 {
			t.Errorf("%s score = %d, want 0", s.DimensionID, s.Score)
		}
	}
}

func TestTallyForcedChoice_Capped(t *testing.T) {
	// More votes than the allotment must still clamp at 100.
	var answers []catalog.ChoiceAnswer
	for i := 0; i < 8; i++ {
		answers = append(answers, catalog.ChoiceAnswer{DimensionID: "sage"})
	}

	scores := TallyForcedChoice(answers, fcDimensions, 5)
	if scores[1].Score != 100 {
		t.Errorf("sage score = %d, want 100 (cap)", scores[1].Score)
	}
}
