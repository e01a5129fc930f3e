package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mirit/psyche/internal/birthdata"
	"github.com/mirit/psyche/internal/catalog"
	"github.com/mirit/psyche/internal/interpret"
	"github.com/mirit/psyche/internal/router"
	"github.com/mirit/psyche/internal/screen"
	"github.com/mirit/psyche/internal/screens/history"
	"github.com/mirit/psyche/internal/screens/quiz"
	"github.com/mirit/psyche/internal/store"
	"github.com/mirit/psyche/internal/ui/components"
	"github.com/mirit/psyche/internal/ui/theme"
)

// HomeScreen lists the assessment library and entry points to past
// results.
type HomeScreen struct {
	menu       components.Menu
	lastResult string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. reader may be nil when no LLM provider
// is configured; results and events may be nil in dry runs.
func New(results store.ResultRepo, events store.EventRepo, reader *interpret.Service, profile *birthdata.Profile, profilePath string) *HomeScreen {
	var items []components.MenuItem

	for _, a := range catalog.Builtin() {
		a := a
		items = append(items, components.MenuItem{
			Label: a.Name,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: quiz.New(a, results, events, reader, profile, profilePath),
					}
				}
			},
		})
	}

	items = append(items,
		components.MenuItem{Label: "History", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(results)}
			}
		}},
		components.MenuItem{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	)

	h := &HomeScreen{menu: components.NewMenu(items)}

	if results != nil {
		if latest, err := results.List(context.Background(), "", 1); err == nil && len(latest) != 0 {
			r := latest[0]
			h.lastResult = fmt.Sprintf("Last taken: %s on %s",
				r.AssessmentID, r.TakenAt.Format("Jan 2, 2006"))
		}
	}

	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Width(width).Render("✶  p s y c h e  ✶")
	subtitle := theme.Subtitle.Width(width).Render("self-assessments and symbolic charts, in your terminal")
	sections = append(sections, title, subtitle, "")

	menu := lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View())
	sections = append(sections, menu)

	if h.lastResult != "" {
		sections = append(sections, "", theme.Hint.Width(width).Align(lipgloss.Center).Render(h.lastResult))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.NewStyle().Height(height).Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
