package quiz

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
	"github.com/mirit/psyche/internal/screens/chart"
	"github.com/mirit/psyche/internal/screens/report"
	"github.com/mirit/psyche/internal/session"
	"github.com/mirit/psyche/internal/store"
	"github.com/mirit/psyche/internal/ui/components"
	"github.com/mirit/psyche/internal/ui/layout"
	"github.com/mirit/psyche/internal/ui/theme"
)

// QuizScreen runs one assessment question by question.
type QuizScreen struct {
	state       *session.State
	results     store.ResultRepo
	reader      *interpret.Service
	profile     *birthdata.Profile
	profilePath string

	choice    components.MultiChoice
	input     components.TextInput
	textMode  bool
	revealing bool
	completed bool
	errMsg    string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New starts a quiz over the given assessment. profilePath, when set,
// is where a birth-chart run stores the entered profile.
func New(a *catalog.Assessment, results store.ResultRepo, events store.EventRepo, reader *interpret.Service, profile *birthdata.Profile, profilePath string) *QuizScreen {
	s := &QuizScreen{
		state:       session.New(a, events),
		results:     results,
		reader:      reader,
		profile:     profile,
		profilePath: profilePath,
	}
	session.Start(context.Background(), s.state)
	s.loadQuestion()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	if s.textMode {
		return s.input.Init()
	}
	return nil
}

func (s *QuizScreen) Title() string {
	return s.state.Assessment.Name
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.textMode {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Abandon"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-9", Description: "Answer"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Abandon"},
	}
}

// loadQuestion prepares the widget for the current question.
func (s *QuizScreen) loadQuestion() {
	q := s.state.Current()
	if q == nil {
		return
	}

	s.revealing = false
	s.textMode = q.Kind == catalog.KindText

	if s.textMode {
		s.input = components.NewTextInput(q.Text, false, 64)
		if s.profile != nil {
			// Returning users get their stored birth data prefilled.
			for _, a := range birthdata.PrefillAnswers(*s.profile) {
				if a.QuestionID == q.ID {
					s.input.Model.SetValue(a.Text)
				}
			}
		}
		return
	}

	labels, correct := optionLabels(s.state.Assessment, q)
	s.choice = components.NewMultiChoice(q.Text, labels, correct)
}

// optionLabels builds the display options for a question and the index
// of the correct one (-1 when there is nothing to reveal).
func optionLabels(a *catalog.Assessment, q *catalog.Question) ([]string, int) {
	if q.Kind == catalog.KindRating {
		return scaleLabels(a.ScaleMax), -1
	}

	labels := make([]string, len(q.Options))
	correct := -1
	for i, opt := range q.Options {
		labels[i] = opt.Label
		if q.Kind == catalog.KindCorrectAnswer && opt.Value == q.CorrectAnswer {
			correct = i
		}
	}
	return labels, correct
}

// scaleLabels returns the Likert anchors for a 5 or 7 point scale.
func scaleLabels(max int) []string {
	if max == 7 {
		return []string{
			"Strongly disagree", "Disagree", "Somewhat disagree", "Neutral",
			"Somewhat agree", "Agree", "Strongly agree",
		}
	}
	return []string{"Strongly disagree", "Disagree", "Neutral", "Agree", "Strongly agree"}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	ctx := context.Background()

	if s.completed {
		// The result screen has been popped; unwind back to home.
		if _, ok := msg.(tea.KeyMsg); ok {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		session.Abandon(ctx, s.state)
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.revealing {
		// Cognitive items hold the colored answer until a key is pressed.
		if _, ok := msg.(tea.KeyMsg); ok {
			return s.commitChoice(ctx)
		}
		return s, nil
	}

	if s.textMode {
		if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
			text := strings.TrimSpace(s.input.Value())
			s.state.AnswerText(ctx, text)
			return s.next(ctx)
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)
	if s.choice.Submitted {
		if s.choice.CorrectIndex >= 0 {
			s.revealing = true
			return s, cmd
		}
		return s.commitChoice(ctx)
	}
	return s, cmd
}

// commitChoice records the submitted option and advances.
func (s *QuizScreen) commitChoice(ctx context.Context) (screen.Screen, tea.Cmd) {
	q := s.state.Current()
	idx := s.choice.ChosenIndex

	if q.Kind == catalog.KindRating {
		s.state.AnswerRating(ctx, idx+1)
	} else {
		s.state.AnswerChoice(ctx, q.Options[idx])
	}
	return s.next(ctx)
}

// next advances to the following question, or finishes the session.
func (s *QuizScreen) next(ctx context.Context) (screen.Screen, tea.Cmd) {
	if !s.state.Done() {
		s.loadQuestion()
		if s.textMode {
			return s, s.input.Init()
		}
		return s, nil
	}

	s.completed = true

	if s.state.Assessment.Kind == catalog.AssessBirthChart {
		if _, err := session.Complete(ctx, s.state, nil); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		profile := birthdata.FromAnswers(s.state.Texts)
		if s.profilePath != "" {
			// Best effort; the chart still renders if the save fails.
			_ = birthdata.Save(s.profilePath, profile)
		}
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: chart.New(profile)}
		}
	}

	saved, err := session.Complete(ctx, s.state, s.results)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}
	scores, _ := session.Score(s.state)
	if saved != nil {
		scores = saved.Scores
	}
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: report.New(scores, s.reader)}
	}
}

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return theme.Incorrect.Render("Error: " + s.errMsg)
	}
	if s.completed {
		return theme.Hint.Render("  Press any key to return home.")
	}

	answered, total := s.state.Progress()
	bar := components.NewProgressBar("", float64(answered)/float64(total), false, min(width-8, 48))
	counter := theme.Subtitle.Render(fmt.Sprintf("Question %d of %d", answered+1, total))

	var body string
	if s.textMode {
		q := s.state.Current()
		body = theme.Body.Bold(true).Render(q.Text) + "\n\n" + s.input.View()
	} else {
		body = s.choice.View()
	}

	card := theme.Card.Width(min(width-4, 76)).Render(body)

	content := strings.Join([]string{
		"",
		lipgloss.PlaceHorizontal(width, lipgloss.Center, counter),
		lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()),
		"",
		lipgloss.PlaceHorizontal(width, lipgloss.Center, card),
	}, "\n")

	return lipgloss.NewStyle().Height(height).Render(content)
}
