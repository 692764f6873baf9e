package app

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/gradebook/internal/grades"
	"github.com/abhisek/gradebook/internal/screen"
	"github.com/abhisek/gradebook/internal/screens/entry"
	"github.com/abhisek/gradebook/internal/ui/layout"
	"github.com/abhisek/gradebook/internal/ui/theme"
)

// ErrAborted is returned when the user quits before entering every mark.
var ErrAborted = errors.New("grade entry aborted")

// AppModel is the root Bubble Tea model.
type AppModel struct {
	active  screen.Screen
	width   int
	height  int
	marks   []float64
	aborted bool
}

func newAppModel(students int, mode grades.FeedbackMode) AppModel {
	return AppModel{
		active: entry.New(students, mode),
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.active.Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.aborted = true
			return m, tea.Quit
		}

	case entry.DoneMsg:
		m.marks = msg.Marks
		return m, tea.Quit

	case entry.AbortedMsg:
		m.aborted = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.active, cmd = m.active.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	return tea.NewView(m.render())
}

// render draws the title, the active screen inside a card, and key hints.
func (m AppModel) render() string {
	title := theme.Title.Render(m.active.Title())
	content := theme.Card.Render(m.active.View(m.width, m.height))

	var hints []layout.KeyHint
	if p, ok := m.active.(screen.KeyHintProvider); ok {
		hints = p.KeyHints()
	}
	footer := layout.RenderFooter(hints)

	return title + "\n\n" + content + "\n\n" + footer + "\n"
}

// Run starts the Bubble Tea program and blocks until every mark has been
// entered or the user quits.
func Run(ctx context.Context, students int, mode grades.FeedbackMode, opts ...tea.ProgramOption) ([]float64, error) {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(newAppModel(students, mode), opts...)

	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("run entry screen: %w", err)
	}

	m, ok := final.(AppModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model %T", final)
	}
	if m.aborted {
		return m.marks, ErrAborted
	}
	return m.marks, nil
}
