package session

import (
	"context"
	"testing"

	"github.com/mirit/psyche/internal/catalog"
	"github.com/mirit/psyche/internal/store"
)

// recordingRepo captures appended events in memory.
type recordingRepo struct {
	sessions  []store.SessionEventData
	responses []store.ResponseEventData
	llm       []store.LLMRequestEventData
}

func (r *recordingRepo) AppendSessionEvent(_ context.Context, d store.SessionEventData) error {
	r.sessions = append(r.sessions, d)
	return nil
}

func (r *recordingRepo) AppendResponseEvent(_ context.Context, d store.ResponseEventData) error {
	r.responses = append(r.responses, d)
	return nil
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, d store.LLMRequestEventData) error {
	r.llm = append(r.llm, d)
	return nil
}

func (r *recordingRepo) QueryLLMRequests(context.Context, int) ([]store.LLMRequestRecord, error) {
	return nil, nil
}

func TestSession_RatingRun(t *testing.T) {
	repo := &recordingRepo{}
	s := New(catalog.BigFive(), repo)
	ctx := t.Context()
	Start(ctx, s)

	if s.SessionID == "" {
		t.Fatal("expected a session ID")
	}

	// Answer every item; give the attention checks their instructed values.
	for !s.Done() {
		q := s.Current()
		switch {
		case q.AttentionCheck:
			s.AnswerRating(ctx, q.AttentionExpect)
		default:
			s.AnswerRating(ctx, 4)
		}
	}

	if s.Phase != PhaseComplete {
		t.Fatalf("expected PhaseComplete, got %d", s.Phase)
	}

	scores, ok := Score(s)
	if !ok {
		t.Fatal("expected scores from a rating assessment")
	}
	if scores.Flagged {
		t.Error("passed attention checks should not flag the result")
	}
	if len(scores.Dimensions) != 5 {
		t.Fatalf("expected 5 dimensions, got %d", len(scores.Dimensions))
	}
	// 12 response events, one per question.
	if len(repo.responses) != 12 {
		t.Errorf("expected 12 response events, got %d", len(repo.responses))
	}
	if len(repo.sessions) != 1 || repo.sessions[0].Action != "start" {
		t.Errorf("expected one start event, got %+v", repo.sessions)
	}
}

func TestSession_MissedAttentionChecksFlag(t *testing.T) {
	s := New(catalog.BigFive(), nil)
	ctx := t.Context()

	// A straight-lining respondent. 3 matches neither check (expects 2 and 5).
	for !s.Done() {
		s.AnswerRating(ctx, 3)
	}

	scores, _ := Score(s)
	if scores.AttentionFailures != 2 {
		t.Fatalf("expected 2 attention failures, got %d", scores.AttentionFailures)
	}
	if !scores.Flagged {
		t.Error("two missed checks should flag the result")
	}
}

func TestSession_ForcedChoiceType(t *testing.T) {
	s := New(catalog.Archetype(), nil)
	ctx := t.Context()

	// Always pick the first option: creator, caregiver, creator,
	// caregiver, creator, ruler. Creator 3 votes, caregiver 2, ruler 1.
	for !s.Done() {
		s.AnswerChoice(ctx, s.Current().Options[0])
	}

	scores, ok := Score(s)
	if !ok {
		t.Fatal("expected scores")
	}
	if scores.TypeCode != "creator+caregiver" {
		t.Errorf("expected type code 'creator+caregiver', got %q", scores.TypeCode)
	}
	if scores.TypeLabel != "Creator / Caregiver" {
		t.Errorf("expected label 'Creator / Caregiver', got %q", scores.TypeLabel)
	}
	// 3 votes out of a 4-question allotment = 75.
	for _, d := range scores.Dimensions {
		if d.DimensionID == "creator" && d.Score != 75 {
			t.Errorf("expected creator score 75, got %d", d.Score)
		}
	}
}

func TestSession_CognitivePerfectRun(t *testing.T) {
	a := catalog.Cognitive()
	s := New(a, nil)
	ctx := t.Context()

	for !s.Done() {
		q := s.Current()
		for _, opt := range q.Options {
			if opt.Value == q.CorrectAnswer {
				s.AnswerChoice(ctx, opt)
				break
			}
		}
	}

	scores, _ := Score(s)
	// All correct: z = (1.0-0.5)*4 = 2, overall = 100 + 2*15 = 130.
	if scores.Overall != 130 {
		t.Errorf("expected overall 130, got %d", scores.Overall)
	}
	for _, d := range scores.Dimensions {
		if d.Score != 100 {
			t.Errorf("expected 100%% on %s, got %d", d.DimensionID, d.Score)
		}
	}
}

func TestSession_DichotomyTypeCode(t *testing.T) {
	s := New(catalog.Temperament(), nil)
	ctx := t.Context()

	// Rate the E, N, T, P poles high and their opposites low.
	high := map[string]bool{
		"extravert": true, "intuition": true, "thinking": true, "perceiving": true,
	}
	for !s.Done() {
		if high[s.Current().DimensionID] {
			s.AnswerRating(ctx, 5)
		} else {
			s.AnswerRating(ctx, 1)
		}
	}

	scores, _ := Score(s)
	if scores.TypeCode != "ENTP" {
		t.Errorf("expected ENTP, got %q", scores.TypeCode)
	}
}

func TestSession_SkipLeavesAnswersAbsent(t *testing.T) {
	s := New(catalog.BigFive(), nil)
	ctx := t.Context()

	for !s.Done() {
		s.Skip(ctx)
	}

	if s.Answered() != 0 {
		t.Fatalf("expected no recorded answers, got %d", s.Answered())
	}
	scores, _ := Score(s)
	for _, d := range scores.Dimensions {
		if d.Score != 0 {
			t.Errorf("expected zero score for unanswered %s, got %d", d.DimensionID, d.Score)
		}
	}
}

func TestSession_BirthChartProducesNoScores(t *testing.T) {
	s := New(catalog.BirthChart(), nil)
	ctx := t.Context()

	s.AnswerText(ctx, "1984-12-13")
	s.AnswerText(ctx, "unknown")
	s.AnswerText(ctx, "Haifa")

	if _, ok := Score(s); ok {
		t.Fatal("birth-chart intake should not produce scores")
	}
	saved, err := Complete(ctx, s, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved != nil {
		t.Fatal("expected no saved result for birth-chart intake")
	}
}

func TestSession_AbandonRecordsEvent(t *testing.T) {
	repo := &recordingRepo{}
	s := New(catalog.BigFive(), repo)
	ctx := t.Context()

	s.AnswerRating(ctx, 3)
	Abandon(ctx, s)

	if s.Phase != PhaseAbandoned {
		t.Fatalf("expected PhaseAbandoned, got %d", s.Phase)
	}
	last := repo.sessions[len(repo.sessions)-1]
	if last.Action != "abandon" {
		t.Errorf("expected abandon event, got %q", last.Action)
	}
	if last.QuestionsAnswered != 1 {
		t.Errorf("expected 1 answered, got %d", last.QuestionsAnswered)
	}
}
