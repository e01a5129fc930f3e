package chart

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mirit/psyche/internal/birthdata"
	"github.com/mirit/psyche/internal/interpret"
	"github.com/mirit/psyche/internal/router"
	"github.com/mirit/psyche/internal/screen"
	"github.com/mirit/psyche/internal/ui/layout"
	"github.com/mirit/psyche/internal/ui/theme"
)

// ChartScreen displays the symbolic reading for a birth profile.
type ChartScreen struct {
	profile birthdata.Profile
	reading birthdata.Reading
}

var _ screen.Screen = (*ChartScreen)(nil)
var _ screen.KeyHintProvider = (*ChartScreen)(nil)

// New resolves and displays the chart for a profile.
func New(p birthdata.Profile) *ChartScreen {
	return &ChartScreen{
		profile: p,
		reading: birthdata.Resolve(p),
	}
}

func (s *ChartScreen) Init() tea.Cmd {
	return nil
}

func (s *ChartScreen) Title() string {
	return "Birth Chart"
}

func (s *ChartScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ChartScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc", "enter":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ChartScreen) View(width, height int) string {
	header := s.profile.Date
	if s.profile.Place != "" {
		header += " · " + s.profile.Place
	}

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render(header))
	b.WriteString("\n\n")
	for _, line := range interpret.DescribeChart(s.reading) {
		name, value, found := strings.Cut(line, ": ")
		if !found {
			b.WriteString(theme.Body.Render(line) + "\n")
			continue
		}
		b.WriteString(theme.Hint.Render(padRight(name, 12)))
		b.WriteString(theme.Body.Bold(true).Render(value))
		b.WriteString("\n")
	}

	card := theme.Card.Width(min(width-4, 60)).Render(b.String())
	content := "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
	return lipgloss.NewStyle().Height(height).Render(content)
}

func padRight(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}
