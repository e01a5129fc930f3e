package interpret

import (
	"time"

	"github.com/mirit/psyche/internal/birthdata"
	"github.com/mirit/psyche/internal/scoring"
)

// Band buckets a 0-100 dimension score into a coarse level for
// template selection.
type Band string

const (
	BandLow      Band = "low"
	BandModerate Band = "moderate"
	BandHigh     Band = "high"
)

// Narrative is a rendered interpretation of one set of test scores.
type Narrative struct {
	Summary     string
	Dimensions  []DimensionNote
	Tips        []string
	GeneratedAt time.Time
}

// DimensionNote is a one-paragraph note on a single dimension.
type DimensionNote struct {
	DimensionID string
	Label       string
	Band        Band
	Note        string
}

// ReadingInput holds all context for an LLM-written reading.
type ReadingInput struct {
	Scores scoring.TestScores

	// Birth is the symbolic chart, when the person has entered birth
	// data. Nil otherwise.
	Birth *birthdata.Reading

	// PriorReadings counts how many readings were generated before, so
	// the prompt can ask for fresh phrasing on repeats.
	PriorReadings int
}
