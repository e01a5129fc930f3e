package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mirit/psyche/internal/router"
	"github.com/mirit/psyche/internal/screen"
	"github.com/mirit/psyche/internal/store"
	"github.com/mirit/psyche/internal/ui/layout"
	"github.com/mirit/psyche/internal/ui/theme"
)

type historyLoadedMsg struct {
	Results []*store.Result
	Err     error
}

// HistoryScreen lists past assessment results.
type HistoryScreen struct {
	results  store.ResultRepo
	items    []*store.Result
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(results store.ResultRepo) *HistoryScreen {
	return &HistoryScreen{
		results:  results,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		if s.results == nil {
			return historyLoadedMsg{}
		}
		items, err := s.results.List(context.Background(), "", 50)
		return historyLoadedMsg{Results: items, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.items = msg.Results
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.items)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return theme.Incorrect.Render("Error loading history: " + s.errMsg)
	}
	if !s.loaded {
		return theme.Hint.Render("  Loading…")
	}
	if len(s.items) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.TextDim).
			Render("No results yet.\nTake an assessment from the home screen.")
	}

	var b strings.Builder
	for i, r := range s.items {
		line := fmt.Sprintf("%s  %s", r.TakenAt.Format("2006-01-02 15:04"), r.AssessmentID)
		if r.Scores.TypeCode != "" {
			line += "  " + r.Scores.TypeCode
		}
		if r.Scores.Flagged {
			line += "  ⚠"
		}

		if i == s.selected {
			b.WriteString(theme.Selected.Render("  ▸ "+line) + "\n")
		} else {
			b.WriteString(theme.Unselected.Render("    "+line) + "\n")
		}

		if s.expanded[i] {
			for _, d := range r.Scores.Dimensions {
				detail := fmt.Sprintf("      %-20s %3d", d.Label, d.Score)
				if d.Percentile > 0 {
					detail += fmt.Sprintf("  (p%d)", d.Percentile)
				}
				b.WriteString(theme.Hint.Render(detail) + "\n")
			}
			if r.Scores.Overall > 0 {
				b.WriteString(theme.Hint.Render(fmt.Sprintf("      overall: %d", r.Scores.Overall)) + "\n")
			}
		}
	}

	return lipgloss.NewStyle().Height(height).Render(b.String())
}
