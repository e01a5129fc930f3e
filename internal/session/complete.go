package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mirit/psyche/internal/scoring"
	"github.com/mirit/psyche/internal/store"
)

// Complete scores the session, persists the result, and records the
// completion event. Assessments that produce no scores (the birth-chart
// intake) record the event but save no result.
func Complete(ctx context.Context, s *State, results store.ResultRepo) (*store.Result, error) {
	s.Phase = PhaseComplete

	scores, scored := Score(s)
	var saved *store.Result
	if scored && results != nil {
		saved = &store.Result{
			ResultID:     uuid.NewString(),
			SessionID:    s.SessionID,
			AssessmentID: s.Assessment.ID,
			TakenAt:      time.Now(),
			Scores:       scores,
		}
		if err := results.Save(ctx, saved); err != nil {
			return nil, fmt.Errorf("saving result: %w", err)
		}
	}

	logSessionEvent(ctx, s, "complete", scores)
	return saved, nil
}

// Abandon records an early exit without saving a result.
func Abandon(ctx context.Context, s *State) {
	s.Phase = PhaseAbandoned
	logSessionEvent(ctx, s, "abandon", scoring.TestScores{})
}

// Start records the session start event. Called once, right after New.
func Start(ctx context.Context, s *State) {
	logSessionEvent(ctx, s, "start", scoring.TestScores{})
}

func logSessionEvent(ctx context.Context, s *State, action string, scores scoring.TestScores) {
	if s.EventRepo == nil {
		return
	}
	_ = s.EventRepo.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:         s.SessionID,
		AssessmentID:      s.Assessment.ID,
		Action:            action,
		QuestionsAnswered: s.Answered(),
		AttentionFailures: scores.AttentionFailures,
		DurationSecs:      int(time.Since(s.StartTime).Seconds()),
	})
}
