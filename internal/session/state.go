package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/mirit/psyche/internal/catalog"
	"github.com/mirit/psyche/internal/store"
)

// Phase represents the current phase of a session.
type Phase int

const (
	PhaseActive    Phase = iota // Serving questions
	PhaseComplete               // All questions answered
	PhaseAbandoned              // Quit before the end
)

// State tracks one run through an assessment. A State belongs to a
// single goroutine; the TUI and CLI both drive it synchronously.
type State struct {
	// SessionID is the UUID for this session.
	SessionID string

	Assessment *catalog.Assessment

	// Index is the position of the current question.
	Index int

	Phase Phase

	// Collected answers, split by question kind.
	Ratings []catalog.RatingAnswer
	Choices []catalog.ChoiceAnswer
	Texts   []catalog.TextAnswer

	// StartTime is when the session began.
	StartTime time.Time

	// QuestionStartTime tracks when the current question was first displayed.
	QuestionStartTime time.Time

	// EventRepo records session and response events. Nil disables
	// event logging (tests, dry runs).
	EventRepo store.EventRepo
}

// New starts a session over an assessment.
func New(a *catalog.Assessment, repo store.EventRepo) *State {
	now := time.Now()
	return &State{
		SessionID:         uuid.NewString(),
		Assessment:        a,
		Phase:             PhaseActive,
		StartTime:         now,
		QuestionStartTime: now,
		EventRepo:         repo,
	}
}

// Current returns the active question, or nil once the session is done.
func (s *State) Current() *catalog.Question {
	if s.Index >= len(s.Assessment.Questions) {
		return nil
	}
	return &s.Assessment.Questions[s.Index]
}

// Done reports whether every question has been answered.
func (s *State) Done() bool {
	return s.Index >= len(s.Assessment.Questions)
}

// Progress returns (answered, total).
func (s *State) Progress() (int, int) {
	return s.Index, len(s.Assessment.Questions)
}

// Answered is the number of questions answered so far.
func (s *State) Answered() int {
	return len(s.Ratings) + len(s.Choices) + len(s.Texts)
}
