package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/mirit/psyche/internal/scoring"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestResultRepo_SaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	res := &Result{
		ResultID:     "r-1",
		SessionID:    "s-1",
		AssessmentID: "big-five",
		TakenAt:      time.Now(),
		Scores: scoring.TestScores{
			AssessmentID: "big-five",
			Dimensions: []scoring.DimensionScore{
				{DimensionID: "openness", Label: "Openness", Score: 75, RawScore: 4.0},
			},
		},
	}
	if err := repo.Save(ctx, res); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Latest(ctx, "big-five")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got == nil {
		t.Fatal("latest returned nil")
	}
	if got.ResultID != "r-1" {
		t.Errorf("result id = %s, want r-1", got.ResultID)
	}
	if len(got.Scores.Dimensions) != 1 || got.Scores.Dimensions[0].Score != 75 {
		t.Errorf("scores did not round-trip: %+v", got.Scores)
	}
}

func TestResultRepo_LatestEmpty(t *testing.T) {
	s := openTestStore(t)

	got, err := s.ResultRepo().Latest(context.Background(), "big-five")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if got != nil {
		t.Errorf("latest = %+v, want nil for empty store", got)
	}
}

func TestResultRepo_ListFiltersAndLimits(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	for i, aid := range []string{"big-five", "archetype", "big-five"} {
		res := &Result{
			ResultID:     "r-" + string(rune('a'+i)),
			SessionID:    "s-1",
			AssessmentID: aid,
			TakenAt:      time.Now().Add(time.Duration(i) * time.Second),
			Scores:       scoring.TestScores{AssessmentID: aid},
		}
		if err := repo.Save(ctx, res); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	all, err := repo.List(ctx, "", 0)
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("list all = %d results, want 3", len(all))
	}

	bigFive, err := repo.List(ctx, "big-five", 0)
	if err != nil {
		t.Fatalf("list filtered: %v", err)
	}
	if len(bigFive) != 2 {
		t.Errorf("filtered = %d results, want 2", len(bigFive))
	}

	limited, err := repo.List(ctx, "", 1)
	if err != nil {
		t.Fatalf("list limited: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limited = %d results, want 1", len(limited))
	}
}

func TestEventRepo_SequencesAcrossTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s-1", AssessmentID: "big-five", Action: "start",
	}); err != nil {
		t.Fatalf("append session: %v", err)
	}
	if err := repo.AppendResponseEvent(ctx, ResponseEventData{
		SessionID: "s-1", AssessmentID: "big-five", QuestionID: "bf-01",
		Kind: "rating", Value: "4",
	}); err != nil {
		t.Fatalf("append response: %v", err)
	}
	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "interpretation", Success: true,
	}); err != nil {
		t.Fatalf("append llm: %v", err)
	}

	// The global counter must keep advancing across event types.
	next, err := s.seq.Next(ctx)
	if err != nil {
		t.Fatalf("next sequence: %v", err)
	}
	if next != 4 {
		t.Errorf("next sequence = %d, want 4 after three events", next)
	}
}

func TestEventRepo_QueryLLMRequests(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, purpose := range []string{"reading", "reading", "unknown"} {
		data := LLMRequestEventData{
			Provider:     "anthropic",
			Model:        "claude-haiku-4-5",
			Purpose:      purpose,
			InputTokens:  100 + i,
			OutputTokens: 50,
			LatencyMs:    int64(200 + i),
			Success:      true,
		}
		if i == 2 {
			data.Success = false
			data.ErrorMessage = "timeout"
		}
		if err := repo.AppendLLMRequest(ctx, data); err != nil {
			t.Fatalf("append llm %d: %v", i, err)
		}
	}

	records, err := repo.QueryLLMRequests(ctx, 0)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	// Newest first: the failed "unknown" request was appended last.
	if records[0].Purpose != "unknown" || records[0].Success {
		t.Errorf("first record = %+v, want the failed unknown-purpose request", records[0])
	}
	if records[0].ErrorMessage != "timeout" {
		t.Errorf("error message = %q, want timeout", records[0].ErrorMessage)
	}
	if records[2].InputTokens != 100 || records[2].LatencyMs != 200 {
		t.Errorf("oldest record did not round-trip: %+v", records[2])
	}

	limited, err := repo.QueryLLMRequests(ctx, 2)
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("limited = %d records, want 2", len(limited))
	}
}
