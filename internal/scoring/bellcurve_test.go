package scoring

import (
	"fmt"
	"testing"

	"github.com/mirit/psyche/internal/catalog"
)

// bellFixture builds n correct-answer questions and answers the first
// `correct` of them correctly, the rest incorrectly.
func bellFixture(n, correct int) ([]catalog.ChoiceAnswer, []catalog.Question) {
	var questions []catalog.Question
	var answers []catalog.ChoiceAnswer
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("q%d", i)
		questions = append(questions, catalog.Question{
			ID: id, Kind: catalog.KindCorrectAnswer, CorrectAnswer: "yes",
		})
		value := "no"
		if i < correct {
			value = "yes"
		}
		answers = append(answers, catalog.ChoiceAnswer{QuestionID: id, Value: value})
	}
	return answers, questions
}

func TestBellCurveScore_Midrange(t *testing.T) {
	// 15/25 = 0.6 correct; z = 0.4; 100 + 0.4*15 = 106.
	answers, questions := bellFixture(25, 15)
	if got := BellCurveScore(answers, questions); got != 106 {
		t.Errorf("score = %d, want 106", got)
	}
}

func TestBellCurveScore_Floor(t *testing.T) {
	answers, questions := bellFixture(25, 0)
	if got := BellCurveScore(answers, questions); got != BellCurveFloor {
		t.Errorf("score = %d, want %d", got, BellCurveFloor)
	}
}

func TestBellCurveScore_Ceiling(t *testing.T) {
	answers, questions := bellFixture(25, 25)
	if got := BellCurveScore(answers, questions); got != BellCurveCeiling {
		t.Errorf("score = %d, want %d", got, BellCurveCeiling)
	}
}

func TestBellCurveScore_NoQuestions(t *testing.T) {
	// total = 0 means pct = 0, which clamps to the floor.
	if got := BellCurveScore(nil, nil); got != BellCurveFloor {
		t.Errorf("score = %d, want %d", got, BellCurveFloor)
	}
}

func TestBellCurveScore_Subdomain(t *testing.T) {
	questions := []catalog.Question{
		{ID: "n1", Kind: catalog.KindCorrectAnswer, DimensionID: "numeric", CorrectAnswer: "1"},
		{ID: "n2", Kind: catalog.KindCorrectAnswer, DimensionID: "numeric", CorrectAnswer: "2"},
		{ID: "v1", Kind: catalog.KindCorrectAnswer, DimensionID: "verbal", CorrectAnswer: "3"},
	}
	answers := []catalog.ChoiceAnswer{
		{QuestionID: "n1", Value: "1"},
		{QuestionID: "n2", Value: "2"},
		{QuestionID: "v1", Value: "x"},
	}

	numeric := SubdomainQuestions(questions, "numeric")
	if got := BellCurveScore(answers, numeric); got != BellCurveCeiling {
		t.Errorf("numeric subdomain = %d, want %d", got, BellCurveCeiling)
	}
	verbal := SubdomainQuestions(questions, "verbal")
	if got := BellCurveScore(answers, verbal); got != BellCurveFloor {
		t.Errorf("verbal subdomain = %d, want %d", got, BellCurveFloor)
	}
}
