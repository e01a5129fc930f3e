package store

import (
	"context"
	"time"

	"github.com/mirit/psyche/internal/scoring"
)

// Result is a stored assessment outcome.
type Result struct {
	ResultID     string
	SessionID    string
	AssessmentID string
	TakenAt      time.Time
	Scores       scoring.TestScores
}

// ResultRepo persists completed assessment results.
type ResultRepo interface {
	// Save stores a new result.
	Save(ctx context.Context, res *Result) error

	// Latest returns the most recent result for an assessment, or nil
	// if none exist.
	Latest(ctx context.Context, assessmentID string) (*Result, error)

	// List returns results newest-first, optionally filtered by
	// assessment id ("" = all), up to limit (0 = unlimited).
	List(ctx context.Context, assessmentID string, limit int) ([]*Result, error)
}

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID         string
	AssessmentID      string
	Action            string // start, complete, abandon
	QuestionsAnswered int
	AttentionFailures int
	DurationSecs      int
}

// ResponseEventData captures a single submitted answer.
type ResponseEventData struct {
	SessionID    string
	AssessmentID string
	QuestionID   string
	Kind         string // rating, choice, text
	Value        string
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestRecord is a stored LLM request event, as read back for
// inspection.
type LLMRequestRecord struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// EventRepo provides append access to domain events, plus read access
// for the inspection commands.
type EventRepo interface {
	// AppendSessionEvent records a session start/complete/abandon.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendResponseEvent records a submitted answer.
	AppendResponseEvent(ctx context.Context, data ResponseEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMRequests returns LLM request events newest-first, up to
	// limit (0 = unlimited).
	QueryLLMRequests(ctx context.Context, limit int) ([]LLMRequestRecord, error)
}
