package catalog

import (
	"strings"
	"testing"
)

func TestValidate_Builtins(t *testing.T) {
	for _, a := range Builtin() {
		if err := Validate(a); err != nil {
			t.Errorf("built-in %q failed validation: %v", a.ID, err)
		}
	}
}

func TestValidate_RatingNeedsDimension(t *testing.T) {
	a := &Assessment{
		ID: "bad", Kind: AssessRating, ScaleMax: 5,
		Dimensions: []Dimension{{ID: "d", Label: "D"}},
		Questions:  []Question{{ID: "q1", Kind: KindRating}},
	}
	err := Validate(a)
	if err == nil || !strings.Contains(err.Error(), "missing dimension") {
		t.Errorf("err = %v, want missing-dimension error", err)
	}
}

func TestValidate_AttentionCheckCarriesNoDimension(t *testing.T) {
	a := &Assessment{
		ID: "bad", Kind: AssessRating, ScaleMax: 5,
		Dimensions: []Dimension{{ID: "d", Label: "D"}},
		Questions: []Question{
			{ID: "q1", Kind: KindRating, DimensionID: "d", AttentionCheck: true, AttentionExpect: 3},
		},
	}
	if err := Validate(a); err == nil {
		t.Error("expected error for attention check with a dimension")
	}
}

func TestValidate_CorrectAnswerRequired(t *testing.T) {
	a := &Assessment{
		ID: "bad", Kind: AssessCognitive,
		Questions: []Question{{ID: "q1", Kind: KindCorrectAnswer}},
	}
	err := Validate(a)
	if err == nil || !strings.Contains(err.Error(), "missing correct answer") {
		t.Errorf("err = %v, want missing-correct-answer error", err)
	}
}

func TestValidate_DuplicateIDs(t *testing.T) {
	a := &Assessment{
		ID: "bad", Kind: AssessRating, ScaleMax: 5,
		Dimensions: []Dimension{{ID: "d", Label: "D"}, {ID: "d", Label: "D2"}},
	}
	err := Validate(a)
	if err == nil || !strings.Contains(err.Error(), "duplicate dimension") {
		t.Errorf("err = %v, want duplicate-dimension error", err)
	}
}

func TestValidate_ScaleMax(t *testing.T) {
	a := &Assessment{ID: "bad", Kind: AssessRating, ScaleMax: 6}
	err := Validate(a)
	if err == nil || !strings.Contains(err.Error(), "scale max") {
		t.Errorf("err = %v, want scale-max error", err)
	}
}
