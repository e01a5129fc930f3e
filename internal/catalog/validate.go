package catalog

import (
	"fmt"
	"strings"
)

// Validate performs all structural checks on an assessment definition.
// Returns a combined error describing all problems found, or nil if valid.
func Validate(a *Assessment) error {
	var errs []string

	dimSet := make(map[string]bool, len(a.Dimensions))
	for _, d := range a.Dimensions {
		if d.ID == "" {
			errs = append(errs, "dimension with empty ID")
			continue
		}
		if dimSet[d.ID] {
			errs = append(errs, fmt.Sprintf("duplicate dimension ID: %q", d.ID))
		}
		dimSet[d.ID] = true
	}

	qSet := make(map[string]bool, len(a.Questions))
	for _, q := range a.Questions {
		if qSet[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		qSet[q.ID] = true

		switch q.Kind {
		case KindRating:
			// A rating question loads on exactly one dimension unless it
			// is an attention check.
			if q.AttentionCheck {
				if q.DimensionID != "" {
					errs = append(errs, fmt.Sprintf("attention check %q must not carry a dimension", q.ID))
				}
				if q.AttentionExpect < 1 {
					errs = append(errs, fmt.Sprintf("attention check %q missing expected value", q.ID))
				}
			} else if q.DimensionID == "" {
				errs = append(errs, fmt.Sprintf("rating question %q missing dimension", q.ID))
			} else if !dimSet[q.DimensionID] {
				errs = append(errs, fmt.Sprintf("question %q references unknown dimension %q", q.ID, q.DimensionID))
			}
		case KindForcedChoice:
			if len(q.Options) < 2 {
				errs = append(errs, fmt.Sprintf("forced-choice question %q needs at least 2 options", q.ID))
			}
			for _, o := range q.Options {
				if !dimSet[o.DimensionID] {
					errs = append(errs, fmt.Sprintf("question %q option %q references unknown dimension %q", q.ID, o.Label, o.DimensionID))
				}
			}
		case KindCorrectAnswer:
			if q.CorrectAnswer == "" {
				errs = append(errs, fmt.Sprintf("correct-answer question %q missing correct answer", q.ID))
			}
		case KindText:
			// Free-text questions carry no structural constraints.
		default:
			errs = append(errs, fmt.Sprintf("question %q has unknown kind %q", q.ID, q.Kind))
		}
	}

	switch a.Kind {
	case AssessRating, AssessDichotomy:
		if a.ScaleMax != 5 && a.ScaleMax != 7 {
			errs = append(errs, fmt.Sprintf("assessment %q: scale max must be 5 or 7, got %d", a.ID, a.ScaleMax))
		}
	case AssessForcedChoice:
		if a.QuestionsPerDimension < 1 {
			errs = append(errs, fmt.Sprintf("assessment %q: questions per dimension must be positive", a.ID))
		}
	}

	if a.Kind == AssessDichotomy {
		for _, d := range a.Dichotomies {
			if !dimSet[d.DimA] || !dimSet[d.DimB] {
				errs = append(errs, fmt.Sprintf("dichotomy %s/%s references unknown dimension", d.DimA, d.DimB))
			}
		}
		if len(a.Dichotomies) == 0 {
			errs = append(errs, fmt.Sprintf("assessment %q: dichotomy assessments need at least one pole pair", a.ID))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid assessment %q:\n  %s", a.ID, strings.Join(errs, "\n  "))
	}
	return nil
}
