package interpret

import (
	"strings"
	"testing"

	"github.com/mirit/psyche/internal/birthdata"
	"github.com/mirit/psyche/internal/scoring"
)

func TestBandFor(t *testing.T) {
	tests := []struct {
		score int
		want  Band
	}{
		{0, BandLow},
		{34, BandLow},
		{35, BandModerate},
		{50, BandModerate},
		{65, BandModerate},
		{66, BandHigh},
		{100, BandHigh},
	}
	for _, tt := range tests {
		if got := BandFor(tt.score); got != tt.want {
			t.Errorf("BandFor(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestSummarize_NotesEveryDimension(t *testing.T) {
	scores := scoring.TestScores{
		AssessmentID: "big-five",
		Dimensions: []scoring.DimensionScore{
			{DimensionID: "openness", Label: "Openness", Score: 80},
			{DimensionID: "neuroticism", Label: "Neuroticism", Score: 20},
		},
	}

	n := Summarize(scores)

	if len(n.Dimensions) != 2 {
		t.Fatalf("expected 2 dimension notes, got %d", len(n.Dimensions))
	}
	if n.Dimensions[0].Band != BandHigh {
		t.Errorf("expected high band, got %q", n.Dimensions[0].Band)
	}
	if !strings.Contains(n.Dimensions[0].Note, "openness") {
		t.Errorf("note should mention the dimension: %q", n.Dimensions[0].Note)
	}
	if !strings.Contains(n.Summary, "Openness") {
		t.Errorf("summary should name the strongest dimension: %q", n.Summary)
	}
	// The low dimension yields a tip.
	if len(n.Tips) == 0 {
		t.Fatal("expected at least one tip for the low dimension")
	}
}

func TestSummarize_TypeCodeLeads(t *testing.T) {
	scores := scoring.TestScores{
		AssessmentID: "temperament",
		TypeCode:     "ENTP",
		TypeLabel:    "The Debater",
	}

	n := Summarize(scores)
	if !strings.Contains(n.Summary, "The Debater") {
		t.Errorf("summary should use the type label: %q", n.Summary)
	}
}

func TestSummarize_FlaggedWarns(t *testing.T) {
	scores := scoring.TestScores{
		AssessmentID: "big-five",
		Flagged:      true,
		Dimensions: []scoring.DimensionScore{
			{DimensionID: "openness", Label: "Openness", Score: 50},
		},
	}

	n := Summarize(scores)
	if !strings.Contains(n.Summary, "attention checks") {
		t.Errorf("summary should mention missed attention checks: %q", n.Summary)
	}
	found := false
	for _, tip := range n.Tips {
		if strings.Contains(tip, "Retake") {
			found = true
		}
	}
	if !found {
		t.Error("expected a retake tip when flagged")
	}
}

func TestSummarize_Empty(t *testing.T) {
	n := Summarize(scoring.TestScores{AssessmentID: "big-five"})
	if n.Summary == "" {
		t.Fatal("expected a fallback summary for empty scores")
	}
}

func TestDescribeChart(t *testing.T) {
	r := birthdata.Resolve(birthdata.Profile{Date: "1984-12-13", Time: "08:30"})
	lines := DescribeChart(r)

	if len(lines) != 10 {
		t.Fatalf("expected 10 lines, got %d", len(lines))
	}
	if lines[0] != "Sun: Sagittarius" {
		t.Errorf("unexpected sun line: %q", lines[0])
	}
	if !strings.Contains(lines[8], "11") {
		t.Errorf("expected life path 11: %q", lines[8])
	}
}

func TestDescribeChart_UnknownRising(t *testing.T) {
	r := birthdata.Resolve(birthdata.Profile{Date: "1984-12-13", Time: "unknown"})
	lines := DescribeChart(r)
	if !strings.Contains(lines[2], "unknown") {
		t.Errorf("expected unknown rising: %q", lines[2])
	}
}
