package session

import (
	"context"
	"strconv"
	"time"

	"github.com/mirit/psyche/internal/catalog"
	"github.com/mirit/psyche/internal/store"
)

// AnswerRating records a rating for the current question and advances.
func (s *State) AnswerRating(ctx context.Context, value int) {
	q := s.Current()
	if q == nil {
		return
	}
	s.Ratings = append(s.Ratings, catalog.RatingAnswer{QuestionID: q.ID, Value: value})
	s.logResponse(ctx, q.ID, "rating", strconv.Itoa(value))
	s.advance()
}

// AnswerChoice records a picked option for the current question and advances.
func (s *State) AnswerChoice(ctx context.Context, opt catalog.Option) {
	q := s.Current()
	if q == nil {
		return
	}
	s.Choices = append(s.Choices, catalog.ChoiceAnswer{
		QuestionID:  q.ID,
		DimensionID: opt.DimensionID,
		Value:       opt.Value,
	})
	logged := opt.Value
	if logged == "" {
		logged = opt.DimensionID
	}
	s.logResponse(ctx, q.ID, "choice", logged)
	s.advance()
}

// AnswerText records free text for the current question and advances.
func (s *State) AnswerText(ctx context.Context, text string) {
	q := s.Current()
	if q == nil {
		return
	}
	s.Texts = append(s.Texts, catalog.TextAnswer{QuestionID: q.ID, Text: text})
	s.logResponse(ctx, q.ID, "text", text)
	s.advance()
}

// Skip advances past the current question without recording an answer.
// Scoring treats skipped rating items as absent rather than zero.
func (s *State) Skip(ctx context.Context) {
	q := s.Current()
	if q == nil {
		return
	}
	s.logResponse(ctx, q.ID, "skip", "")
	s.advance()
}

func (s *State) advance() {
	s.Index++
	s.QuestionStartTime = time.Now()
	if s.Done() {
		s.Phase = PhaseComplete
	}
}

func (s *State) logResponse(ctx context.Context, questionID, kind, value string) {
	if s.EventRepo == nil {
		return
	}
	// Response logging is best-effort; an event write failure must not
	// lose the in-memory answer.
	_ = s.EventRepo.AppendResponseEvent(ctx, store.ResponseEventData{
		SessionID:    s.SessionID,
		AssessmentID: s.Assessment.ID,
		QuestionID:   questionID,
		Kind:         kind,
		Value:        value,
	})
}
