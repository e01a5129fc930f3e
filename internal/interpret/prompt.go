package interpret

import (
	"fmt"
	"strings"
)

const readingSystemPrompt = `You write short personal readings of self-assessment results for adults. You are warm but factual: describe tendencies, never diagnose, never flatter. Write in the second person.`

func buildReadingUserMessage(input ReadingInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Assessment: %s\n", input.Scores.AssessmentID))
	if input.Scores.TypeCode != "" {
		b.WriteString(fmt.Sprintf("Result type: %s", input.Scores.TypeCode))
		if input.Scores.TypeLabel != "" {
			b.WriteString(fmt.Sprintf(" (%s)", input.Scores.TypeLabel))
		}
		b.WriteString("\n")
	}
	if input.Scores.Overall > 0 {
		b.WriteString(fmt.Sprintf("Overall score: %d\n", input.Scores.Overall))
	}

	b.WriteString("\nDimension scores (0-100):\n")
	for _, d := range input.Scores.Dimensions {
		b.WriteString(fmt.Sprintf("- %s (%s): %d", d.Label, d.DimensionID, d.Score))
		if d.Percentile > 0 {
			b.WriteString(fmt.Sprintf(", percentile %d", d.Percentile))
		}
		b.WriteString("\n")
	}

	if input.Scores.Flagged {
		b.WriteString("\nNote: attention checks were missed. Mention once, briefly, that the results may be less reliable.\n")
	}

	if input.Birth != nil {
		b.WriteString("\nSymbolic chart (weave in lightly, at most one sentence each):\n")
		for _, line := range DescribeChart(*input.Birth) {
			b.WriteString("- " + line + "\n")
		}
	}

	b.WriteString(`
Instructions:
1. Write a 3-5 sentence summary of the whole profile. Lead with what is most distinctive, not with the first dimension listed.
2. For every dimension listed above, write a 1-2 sentence note on how that score tends to show up day to day. Use the dimension_id exactly as given.
3. Give 1-3 concrete tips grounded in the lower scores.
4. Plain language only. No jargon, no percentile talk, no clinical terms.`)

	if input.PriorReadings > 0 {
		b.WriteString(fmt.Sprintf("\n\nThis person has seen %d earlier readings of the same scores. Use fresh phrasing.", input.PriorReadings))
	}

	return b.String()
}
