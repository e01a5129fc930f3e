package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mirit/psyche/internal/birthdata"
	"github.com/mirit/psyche/internal/catalog"
	"github.com/mirit/psyche/internal/interpret"
	"github.com/mirit/psyche/internal/router"
	"github.com/mirit/psyche/internal/screen"
	"github.com/mirit/psyche/internal/screens/home"
	"github.com/mirit/psyche/internal/screens/quiz"
	"github.com/mirit/psyche/internal/store"
	"github.com/mirit/psyche/internal/ui/layout"
)

// Deps carries the services the TUI needs. Reader and Profile are
// optional. When Start is set the app opens directly into that
// assessment, with the home screen underneath.
type Deps struct {
	Results     store.ResultRepo
	Events      store.EventRepo
	Reader      *interpret.Service
	Profile     *birthdata.Profile
	ProfilePath string
	Start       *catalog.Assessment
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	startCmd tea.Cmd
	width    int
	height   int
}

func newAppModel(deps Deps) AppModel {
	homeScreen := home.New(deps.Results, deps.Events, deps.Reader, deps.Profile, deps.ProfilePath)
	r := router.New(homeScreen)

	var startCmd tea.Cmd
	if deps.Start != nil {
		startCmd = r.Push(quiz.New(deps.Start, deps.Results, deps.Events, deps.Reader, deps.Profile, deps.ProfilePath))
	}

	return AppModel{
		router:   r,
		startCmd: startCmd,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.startCmd
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		// Esc is forwarded: screens decide whether backing out needs
		// extra work first (abandoning an active session).
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, "", m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(deps Deps) error {
	p := tea.NewProgram(newAppModel(deps))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
