package session

import (
	"strings"

	"github.com/mirit/psyche/internal/catalog"
	"github.com/mirit/psyche/internal/scoring"
)

// Score computes the final scores for a session. The second return is
// false for assessments that produce no scores (the birth-chart intake).
func Score(s *State) (scoring.TestScores, bool) {
	a := s.Assessment
	out := scoring.TestScores{AssessmentID: a.ID}

	switch a.Kind {
	case catalog.AssessRating:
		out.Dimensions = scoring.ScoreRatingScale(s.Ratings, a.Questions, a.Dimensions, a.ScaleMax)
		out.AttentionFailures = scoring.CountAttentionFailures(a.Questions, s.Ratings)
		out.Flagged = out.AttentionFailures >= scoring.FlagThreshold

	case catalog.AssessDichotomy:
		out.Dimensions = scoring.ScoreRatingScale(s.Ratings, a.Questions, a.Dimensions, a.ScaleMax)
		out.AttentionFailures = scoring.CountAttentionFailures(a.Questions, s.Ratings)
		out.Flagged = out.AttentionFailures >= scoring.FlagThreshold
		out.TypeCode = scoring.TypeCode(out.Dimensions, a.Dichotomies)

	case catalog.AssessForcedChoice:
		out.Dimensions = scoring.TallyForcedChoice(s.Choices, a.Dimensions, a.QuestionsPerDimension)
		top := scoring.TopDimensions(out.Dimensions, 2)
		if len(top) != 0 {
			labels := make([]string, len(top))
			ids := make([]string, len(top))
			for i, d := range top {
				labels[i] = d.Label
				ids[i] = d.DimensionID
			}
			out.TypeLabel = strings.Join(labels, " / ")
			out.TypeCode = strings.Join(ids, "+")
		}

	case catalog.AssessCognitive:
		out.Overall = scoring.BellCurveScore(s.Choices, a.Questions)
		for _, d := range a.Dimensions {
			sub := scoring.SubdomainQuestions(a.Questions, d.ID)
			out.Dimensions = append(out.Dimensions, scoring.DimensionScore{
				DimensionID: d.ID,
				Label:       d.Label,
				Description: d.Description,
				Score:       percentCorrect(s.Choices, sub),
			})
		}

	case catalog.AssessBirthChart:
		return scoring.TestScores{}, false
	}

	return out, true
}

// percentCorrect is the share of the given questions answered correctly,
// as 0-100. Unanswered questions count as wrong.
func percentCorrect(answers []catalog.ChoiceAnswer, questions []catalog.Question) int {
	if len(questions) == 0 {
		return 0
	}
	byID := make(map[string]string, len(answers))
	for _, a := range answers {
		byID[a.QuestionID] = a.Value
	}
	correct := 0
	for _, q := range questions {
		if v, ok := byID[q.ID]; ok && v == q.CorrectAnswer {
			correct++
		}
	}
	return correct * 100 / len(questions)
}
