package scoring

import (
	"math"

	"github.com/mirit/psyche/internal/catalog"
)

// Bell-curve bounds for correct-answer scoring.
const (
	BellCurveFloor   = 70
	BellCurveCeiling = 145
)

// BellCurveScore maps the fraction of correct answers onto an IQ-style
// scale: the proportion correct is converted to an approximate z-score
// (z = (pct-0.5)*4) and then to 100+15z, clamped to [70,145].
//
// Filtering questions to a single dimension before calling yields a
// per-subdomain score with the same bounds.
func BellCurveScore(answers []catalog.ChoiceAnswer, questions []catalog.Question) int {
	byQuestion := make(map[string]string, len(questions))
	for _, q := range questions {
		if q.Kind == catalog.KindCorrectAnswer {
			byQuestion[q.ID] = q.CorrectAnswer
		}
	}

	correct := 0
	for _, ans := range answers {
		want, ok := byQuestion[ans.QuestionID]
		if ok && ans.Value == want {
			correct++
		}
	}

	total := len(byQuestion)
	pct := 0.0
	if total > 0 {
		pct = float64(correct) / float64(total)
	}

	z := (pct - 0.5) * 4
	return clampInt(int(math.Round(100+z*15)), BellCurveFloor, BellCurveCeiling)
}

// SubdomainQuestions filters a question list to one dimension, for
// per-subdomain bell-curve scoring.
func SubdomainQuestions(questions []catalog.Question, dimensionID string) []catalog.Question {
	var out []catalog.Question
	for _, q := range questions {
		if q.DimensionID == dimensionID {
			out = append(out, q)
		}
	}
	return out
}
