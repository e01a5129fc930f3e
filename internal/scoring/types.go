// Package scoring turns raw questionnaire answers into bounded, comparable
// dimension scores and derived type labels. Every function here is pure:
// output depends only on the arguments, results are recomputed from scratch
// each call, and nothing is cached between invocations.
package scoring

// DimensionScore is the normalized result for a single dimension.
type DimensionScore struct {
	DimensionID string  `json:"dimension_id"`
	Label       string  `json:"label"`
	Description string  `json:"description,omitempty"`
	// Score is normalized to [0,100] inclusive.
	Score int `json:"score"`
	// RawScore is the pre-normalization value: the (possibly reversed)
	// rating average, the vote count, or the correct count.
	RawScore float64 `json:"raw_score"`
	// Percentile is a logistic estimate in [1,99].
	Percentile int `json:"percentile,omitempty"`
	// TScore is a fixed-approximation T-score (mean 50, SD 10).
	TScore int `json:"t_score,omitempty"`
}

// TestScores is the single output artifact of a scored assessment.
// It is immutable once produced.
type TestScores struct {
	AssessmentID string           `json:"assessment_id"`
	Dimensions   []DimensionScore `json:"dimensions"`
	// Overall holds an assessment-level score where one applies
	// (e.g. the bell-curve score for cognitive assessments).
	Overall int `json:"overall,omitempty"`
	// TypeCode and TypeLabel carry the derived discrete type, if any.
	TypeCode  string `json:"type_code,omitempty"`
	TypeLabel string `json:"type_label,omitempty"`
	// AttentionFailures counts failed embedded validity checks.
	AttentionFailures int `json:"attention_failures,omitempty"`
	// Flagged is set when AttentionFailures reaches the invalidity
	// threshold. The result is still scored; callers decide enforcement.
	Flagged bool `json:"flagged,omitempty"`
}

// FlagThreshold is the documented attention-check invalidity threshold.
const FlagThreshold = 2

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
