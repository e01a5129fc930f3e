package scoring

import "github.com/mirit/psyche/internal/catalog"

// CountAttentionFailures counts attention-check items that were answered
// with anything other than the instructed rating. A missing answer counts
// as a failure. The count is informational: scoring is never blocked on
// it, and callers that enforce validity should treat FlagThreshold or more
// failures as an invalid session.
func CountAttentionFailures(questions []catalog.Question, answers []catalog.RatingAnswer) int {
	byQuestion := make(map[string]int, len(answers))
	for _, ans := range answers {
		byQuestion[ans.QuestionID] = ans.Value
	}

	failures := 0
	for _, q := range questions {
		if !q.AttentionCheck || q.AttentionExpect < 1 {
			continue
		}
		v, ok := byQuestion[q.ID]
		if !ok || v != q.AttentionExpect {
			failures++
		}
	}
	return failures
}
