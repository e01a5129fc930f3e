package interpret

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mirit/psyche/internal/almanac"
	"github.com/mirit/psyche/internal/birthdata"
	"github.com/mirit/psyche/internal/scoring"
)

// BandFor buckets a 0-100 score.
func BandFor(score int) Band {
	switch {
	case score < 35:
		return BandLow
	case score > 65:
		return BandHigh
	default:
		return BandModerate
	}
}

// bandPhrases are generic per-band templates used when a dimension has
// no specific description. %s is the dimension label (lowercased).
var bandPhrases = map[Band]string{
	BandLow:      "Your %s score sits in the lower range. This tends to show up as the opposite pole of the trait carrying more weight in daily decisions.",
	BandModerate: "Your %s score sits mid-range. You can draw on either pole of this trait depending on the situation.",
	BandHigh:     "Your %s score sits in the upper range. This trait is likely a visible, recurring part of how others experience you.",
}

// Summarize builds a deterministic narrative from scores alone, with no
// LLM involved. It always succeeds, so callers can show it immediately
// and replace it with an LLM reading when one arrives.
func Summarize(scores scoring.TestScores) Narrative {
	n := Narrative{GeneratedAt: time.Now()}

	for _, d := range scores.Dimensions {
		band := BandFor(d.Score)
		note := fmt.Sprintf(bandPhrases[band], strings.ToLower(d.Label))
		if d.Description != "" {
			note = d.Description + " " + note
		}
		n.Dimensions = append(n.Dimensions, DimensionNote{
			DimensionID: d.DimensionID,
			Label:       d.Label,
			Band:        band,
			Note:        note,
		})
	}

	n.Summary = buildSummary(scores)
	n.Tips = buildTips(scores)

	return n
}

func buildSummary(scores scoring.TestScores) string {
	var b strings.Builder

	if scores.TypeCode != "" {
		label := scores.TypeLabel
		if label == "" {
			label = scores.TypeCode
		}
		b.WriteString(fmt.Sprintf("Your result type is %s.", label))
	} else if scores.Overall > 0 {
		b.WriteString(fmt.Sprintf("Your overall score is %d.", scores.Overall))
	}

	if highs := topLabels(scores, BandHigh, 3); len(highs) != 0 {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(fmt.Sprintf("Your strongest dimensions: %s.", strings.Join(highs, ", ")))
	}

	if scores.Flagged {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString("Several attention checks were missed, so treat these results as indicative rather than reliable.")
	}

	if b.Len() == 0 {
		b.WriteString("Not enough answers were given to build a profile summary.")
	}

	return b.String()
}

func buildTips(scores scoring.TestScores) []string {
	var tips []string

	// Low scores are not deficits for every trait, so the tip stays
	// direction-neutral.
	lows := topLabels(scores, BandLow, 2)
	for _, l := range lows {
		tips = append(tips, fmt.Sprintf("%s scored lowest for you. If that matches your experience, it is the clearest place to watch your habits.", l))
	}
	if scores.Flagged {
		tips = append(tips, "Retake the assessment when you can give it undivided attention.")
	}

	return tips
}

// topLabels returns up to limit dimension labels in the given band,
// strongest deviation from 50 first. Ties keep result order.
func topLabels(scores scoring.TestScores, band Band, limit int) []string {
	type entry struct {
		label string
		dev   int
	}
	var entries []entry
	for _, d := range scores.Dimensions {
		if BandFor(d.Score) != band {
			continue
		}
		dev := d.Score - 50
		if dev < 0 {
			dev = -dev
		}
		entries = append(entries, entry{label: d.Label, dev: dev})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].dev > entries[j].dev
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	labels := make([]string, len(entries))
	for i, e := range entries {
		labels[i] = e.label
	}
	return labels
}

// DescribeChart renders a symbolic reading as display lines, one per
// calendar system. Unknown placements are reported as such rather than
// omitted.
func DescribeChart(r birthdata.Reading) []string {
	lines := []string{
		"Sun: " + placementText(almanac.Placement{Sign: r.Solar.Sun}),
		"Moon: " + placementText(r.Solar.Moon),
		"Rising: " + placementText(r.Solar.Rising),
		"Mercury: " + placementText(r.Solar.Mercury),
		"Venus: " + placementText(r.Solar.Venus),
		"Mars: " + placementText(r.Solar.Mars),
		fmt.Sprintf("Tzolkin: %s, tone %d", r.Tzolkin.DaySign, r.Tzolkin.Tone),
		"Year sign: " + r.Sexagenary.Label(),
		fmt.Sprintf("Life path: %d", r.LifePath),
		"Energy type: " + r.EnergyType,
	}
	return lines
}

func placementText(p almanac.Placement) string {
	if p.Unknown {
		return "unknown (birth time needed)"
	}
	return string(p.Sign)
}
