package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mirit/psyche/internal/interpret"
	"github.com/mirit/psyche/internal/router"
	"github.com/mirit/psyche/internal/screen"
	"github.com/mirit/psyche/internal/scoring"
	"github.com/mirit/psyche/internal/ui/components"
	"github.com/mirit/psyche/internal/ui/layout"
	"github.com/mirit/psyche/internal/ui/theme"
)

type readingTickMsg struct{}

// ReportScreen shows the scores for a completed assessment, first with
// the built-in narrative and then, when a provider is configured, an
// LLM-written reading that replaces it.
type ReportScreen struct {
	scores    scoring.TestScores
	reader    *interpret.Service
	narrative interpret.Narrative
	llmReady  bool
	waiting   bool
}

var _ screen.Screen = (*ReportScreen)(nil)
var _ screen.KeyHintProvider = (*ReportScreen)(nil)

// New creates a report for the given scores. reader may be nil.
func New(scores scoring.TestScores, reader *interpret.Service) *ReportScreen {
	return &ReportScreen{
		scores:    scores,
		reader:    reader,
		narrative: interpret.Summarize(scores),
	}
}

func (s *ReportScreen) Init() tea.Cmd {
	if s.reader == nil {
		return nil
	}
	s.waiting = true
	s.reader.RequestReading(context.Background(), interpret.ReadingInput{Scores: s.scores})
	return readingTick()
}

func readingTick() tea.Cmd {
	return tea.Tick(300*time.Millisecond, func(time.Time) tea.Msg {
		return readingTickMsg{}
	})
}

func (s *ReportScreen) Title() string {
	return "Results"
}

func (s *ReportScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Done"},
	}
}

func (s *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case readingTickMsg:
		if !s.waiting {
			return s, nil
		}
		if n, ok := s.reader.ConsumeReading(); ok {
			s.narrative = *n
			s.llmReady = true
			s.waiting = false
			return s, nil
		}
		return s, readingTick()

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "enter":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ReportScreen) View(width, height int) string {
	cw := min(width-4, 76)
	var b strings.Builder

	if s.scores.TypeCode != "" {
		label := s.scores.TypeLabel
		if label == "" {
			label = s.scores.TypeCode
		}
		b.WriteString(theme.Title.Render(label) + "\n\n")
	}
	if s.scores.Overall > 0 {
		b.WriteString(theme.Body.Bold(true).Render(fmt.Sprintf("Overall score: %d", s.scores.Overall)) + "\n\n")
	}

	barWidth := min(cw-30, 36)
	for _, d := range s.scores.Dimensions {
		bar := components.NewProgressBar(padRight(d.Label, 18), float64(d.Score)/100, true, barWidth+24)
		b.WriteString(bar.View() + "\n")
	}

	if s.scores.Flagged {
		b.WriteString("\n" + theme.Incorrect.Render("⚠ Attention checks were missed; interpret with care.") + "\n")
	}

	b.WriteString("\n" + theme.Body.Render(s.narrative.Summary) + "\n")

	for _, tip := range s.narrative.Tips {
		b.WriteString(theme.Hint.Render("· "+tip) + "\n")
	}

	if s.waiting {
		b.WriteString("\n" + theme.Hint.Render("Writing a fuller reading…") + "\n")
	} else if s.llmReady {
		for _, dn := range s.narrative.Dimensions {
			if dn.Note == "" {
				continue
			}
			b.WriteString("\n" + theme.Selected.Render(dn.Label) + " " + theme.Body.Render(dn.Note))
		}
		b.WriteString("\n")
	}

	card := theme.Card.Width(cw).Render(b.String())
	content := "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
	return lipgloss.NewStyle().Height(height).Render(content)
}

func padRight(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}
