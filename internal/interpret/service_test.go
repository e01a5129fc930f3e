package interpret

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/mirit/psyche/internal/llm"
	"github.com/mirit/psyche/internal/scoring"
)

func validReadingJSON() json.RawMessage {
	return json.RawMessage(`{
		"summary": "You lead with curiosity and hold plans loosely.",
		"dimension_notes": [
			{"dimension_id": "openness", "note": "New ideas pull you in quickly."},
			{"dimension_id": "conscientiousness", "note": "Structure takes effort to sustain."}
		],
		"tips": ["Pick one project and finish it before starting the next."]
	}`)
}

func testScores() scoring.TestScores {
	return scoring.TestScores{
		AssessmentID: "big-five",
		Dimensions: []scoring.DimensionScore{
			{DimensionID: "openness", Label: "Openness", Score: 82, Percentile: 90},
			{DimensionID: "conscientiousness", Label: "Conscientiousness", Score: 28, Percentile: 12},
		},
	}
}

func TestService_GeneratesReading(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validReadingJSON(),
	})
	svc := NewService(mock, DefaultConfig())

	svc.RequestReading(t.Context(), ReadingInput{Scores: testScores()})

	// Poll for result.
	var narrative *Narrative
	var ok bool
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		narrative, ok = svc.ConsumeReading()
		if ok {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	if !ok || narrative == nil {
		t.Fatal("expected reading to be generated")
	}

	if !strings.Contains(narrative.Summary, "curiosity") {
		t.Errorf("unexpected summary: %q", narrative.Summary)
	}
	if len(narrative.Dimensions) != 2 {
		t.Fatalf("expected 2 dimension notes, got %d", len(narrative.Dimensions))
	}
	// Labels and bands come from the scored input, not the LLM.
	if narrative.Dimensions[0].Label != "Openness" {
		t.Errorf("expected label 'Openness', got %q", narrative.Dimensions[0].Label)
	}
	if narrative.Dimensions[0].Band != BandHigh {
		t.Errorf("expected high band for score 82, got %q", narrative.Dimensions[0].Band)
	}
	if narrative.Dimensions[1].Band != BandLow {
		t.Errorf("expected low band for score 28, got %q", narrative.Dimensions[1].Band)
	}
	if len(narrative.Tips) != 1 {
		t.Fatalf("expected 1 tip, got %d", len(narrative.Tips))
	}
}

func TestService_ConsumeBeforeReady(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, DefaultConfig())

	if _, ok := svc.ConsumeReading(); ok {
		t.Fatal("expected no reading before any request")
	}
}

func TestService_GenerateError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{},
	})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.Generate(t.Context(), ReadingInput{Scores: testScores()})
	if err == nil {
		t.Fatal("expected error from failing provider")
	}
}

func TestService_PromptCarriesScores(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: validReadingJSON(),
	})
	svc := NewService(mock, DefaultConfig())

	scores := testScores()
	scores.Flagged = true
	if _, err := svc.Generate(t.Context(), ReadingInput{Scores: scores, PriorReadings: 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 provider call, got %d", mock.CallCount())
	}
	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "Openness (openness): 82") {
		t.Errorf("prompt missing dimension line:\n%s", msg)
	}
	if !strings.Contains(msg, "attention checks were missed") {
		t.Errorf("prompt missing flagged note:\n%s", msg)
	}
	if !strings.Contains(msg, "2 earlier readings") {
		t.Errorf("prompt missing repeat note:\n%s", msg)
	}
	if mock.Calls[0].Schema != ReadingSchema {
		t.Error("expected request to carry ReadingSchema")
	}
}
