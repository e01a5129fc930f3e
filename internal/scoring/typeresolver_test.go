package scoring

import (
	"testing"

	"github.com/mirit/psyche/internal/catalog"
)

func TestTopDimensions_OrderAndTieBreak(t *testing.T) {
	scores := []DimensionScore{
		{DimensionID: "a", Score: 60},
		{DimensionID: "b", Score: 80},
		{DimensionID: "c", Score: 80},
		{DimensionID: "d", Score: 40},
	}

	top := TopDimensions(scores, 3)
	// b and c tie at 80; catalog order puts b first.
	want := []string{"b", "c", "a"}
	for i, id := range want {
		if top[i].DimensionID != id {
			t.Errorf("top[%d] = %s, want %s", i, top[i].DimensionID, id)
		}
	}
}

func TestTopDimensions_NExceedsLength(t *testing.T) {
	scores := []DimensionScore{{DimensionID: "a", Score: 10}}
	if got := TopDimensions(scores, 5); len(got) != 1 {
		t.Errorf("len = %d, want 1", len(got))
	}
}

func TestTopDimensions_InputUnchanged(t *testing.T) {
	scores := []DimensionScore{
		{DimensionID: "a", Score: 10},
		{DimensionID: "b", Score: 90},
	}
	TopDimensions(scores, 2)
	if scores[0].DimensionID != "a" {
		t.Error("TopDimensions mutated its input")
	}
}

func TestDichotomyLetter(t *testing.T) {
	scores := []DimensionScore{
		{DimensionID: "extravert", Score: 70},
		{DimensionID: "introvert", Score: 40},
	}
	if got := DichotomyLetter(scores, "extravert", "E", "introvert", "I"); got != "E" {
		t.Errorf("letter = %s, want E", got)
	}
	if got := DichotomyLetter(scores, "introvert", "I", "extravert", "E"); got != "E" {
		t.Errorf("letter = %s, want E", got)
	}
}

func TestDichotomyLetter_TieFavorsA(t *testing.T) {
	scores := []DimensionScore{
		{DimensionID: "thinking", Score: 50},
		{DimensionID: "feeling", Score: 50},
	}
	if got := DichotomyLetter(scores, "thinking", "T", "feeling", "F"); got != "T" {
		t.Errorf("tie letter = %s, want T", got)
	}
}

func TestDichotomyLetter_AbsentDefaults50(t *testing.T) {
	scores := []DimensionScore{{DimensionID: "judging", Score: 30}}
	// perceiving absent -> 30 vs default 50 -> P.
	if got := DichotomyLetter(scores, "judging", "J", "perceiving", "P"); got != "P" {
		t.Errorf("letter = %s, want P", got)
	}
}

func TestTypeCode_FixedPoleOrder(t *testing.T) {
	scores := []DimensionScore{
		{DimensionID: "extravert", Score: 80},
		{DimensionID: "introvert", Score: 20},
		{DimensionID: "sensing", Score: 30},
		{DimensionID: "intuition", Score: 70},
		{DimensionID: "thinking", Score: 55},
		{DimensionID: "feeling", Score: 45},
		{DimensionID: "judging", Score: 10},
		{DimensionID: "perceiving", Score: 90},
	}
	dichotomies := []catalog.Dichotomy{
		{DimA: "extravert", LetterA: "E", DimB: "introvert", LetterB: "I"},
		{DimA: "sensing", LetterA: "S", DimB: "intuition", LetterB: "N"},
		{DimA: "thinking", LetterA: "T", DimB: "feeling", LetterB: "F"},
		{DimA: "judging", LetterA: "J", DimB: "perceiving", LetterB: "P"},
	}

	if got := TypeCode(scores, dichotomies); got != "ENTP" {
		t.Errorf("code = %s, want ENTP", got)
	}
}
