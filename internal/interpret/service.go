package interpret

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/mirit/psyche/internal/llm"
)

// Service generates LLM-written readings asynchronously.
type Service struct {
	provider llm.Provider
	cfg      Config

	mu      sync.Mutex
	pending *Narrative
	err     error
	ready   bool
}

// NewService creates a reading generation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// RequestReading starts async reading generation. Only one reading is
// in-flight at a time — new requests replace pending ones.
func (s *Service) RequestReading(ctx context.Context, input ReadingInput) {
	go func() {
		narrative, err := s.Generate(ctx, input)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.pending = narrative
		s.err = err
		s.ready = true
	}()
}

// ConsumeReading returns the pending reading if one is ready.
// Returns (nil, false) if no reading is ready yet.
// After consumption, the pending slot is cleared.
func (s *Service) ConsumeReading() (*Narrative, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ready {
		return nil, false
	}
	narrative := s.pending
	s.pending = nil
	s.ready = false
	s.err = nil
	return narrative, narrative != nil
}

type readingOutput struct {
	Summary        string                `json:"summary"`
	DimensionNotes []dimensionNoteOutput `json:"dimension_notes"`
	Tips           []string              `json:"tips"`
}

type dimensionNoteOutput struct {
	DimensionID string `json:"dimension_id"`
	Note        string `json:"note"`
}

// Generate produces a reading synchronously. CLI callers use this
// directly; the TUI goes through RequestReading.
func (s *Service) Generate(ctx context.Context, input ReadingInput) (*Narrative, error) {
	ctx = llm.WithPurpose(ctx, "reading")

	req := llm.Request{
		System: readingSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildReadingUserMessage(input)},
		},
		Schema:      ReadingSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("reading generation: %w", err)
	}

	var out readingOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse reading response: %w", err)
	}

	n := &Narrative{
		Summary:     out.Summary,
		Tips:        out.Tips,
		GeneratedAt: time.Now(),
	}

	// Attach labels and bands from the scored input so display code does
	// not need the original scores.
	labels := make(map[string]string, len(input.Scores.Dimensions))
	bands := make(map[string]Band, len(input.Scores.Dimensions))
	for _, d := range input.Scores.Dimensions {
		labels[d.DimensionID] = d.Label
		bands[d.DimensionID] = BandFor(d.Score)
	}
	for _, dn := range out.DimensionNotes {
		n.Dimensions = append(n.Dimensions, DimensionNote{
			DimensionID: dn.DimensionID,
			Label:       labels[dn.DimensionID],
			Band:        bands[dn.DimensionID],
			Note:        dn.Note,
		})
	}

	return n, nil
}
