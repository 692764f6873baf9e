// Package entry implements the interactive screen that collects one mark
// per student before the report is printed.
package entry

import (
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gradebook/internal/grades"
	"github.com/abhisek/gradebook/internal/intake"
	"github.com/abhisek/gradebook/internal/screen"
	"github.com/abhisek/gradebook/internal/ui/components"
	"github.com/abhisek/gradebook/internal/ui/layout"
	"github.com/abhisek/gradebook/internal/ui/theme"
)

// DoneMsg is emitted once every student has a mark.
type DoneMsg struct {
	Marks []float64
}

// AbortedMsg is emitted when the user leaves before finishing.
type AbortedMsg struct{}

// EntryScreen prompts for marks one student at a time.
type EntryScreen struct {
	total  int
	mode   grades.FeedbackMode
	marks  []float64
	input  components.MarkInput
	errMsg string
	done   bool
}

var _ screen.Screen = (*EntryScreen)(nil)
var _ screen.KeyHintProvider = (*EntryScreen)(nil)

// New creates a screen that collects total marks and previews each one
// using mode.
func New(total int, mode grades.FeedbackMode) *EntryScreen {
	return &EntryScreen{
		total: total,
		mode:  mode,
		marks: make([]float64, 0, total),
		input: components.NewMarkInput("0 - 100", true),
	}
}

func (s *EntryScreen) Title() string {
	return "Enter Grades"
}

func (s *EntryScreen) Init() tea.Cmd {
	return s.input.Init()
}

// Marks returns the marks entered so far.
func (s *EntryScreen) Marks() []float64 {
	return append([]float64(nil), s.marks...)
}

// Student returns the 1-based index of the student being prompted.
func (s *EntryScreen) Student() int {
	return len(s.marks) + 1
}

func (s *EntryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.done {
		return s, nil
	}

	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter":
			return s, s.submit()
		case "esc":
			return s, func() tea.Msg { return AbortedMsg{} }
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *EntryScreen) submit() tea.Cmd {
	raw := strings.TrimSpace(s.input.Value())
	m, err := s.input.Mark()
	s.input.Reset()
	if err != nil {
		s.errMsg = intake.RejectMessage(raw)
		slog.Debug("rejected mark", "student", s.Student(), "err", err)
		return nil
	}

	s.errMsg = ""
	s.marks = append(s.marks, m)
	if len(s.marks) < s.total {
		return nil
	}

	s.done = true
	marks := s.Marks()
	return func() tea.Msg { return DoneMsg{Marks: marks} }
}

func (s *EntryScreen) View(width, height int) string {
	var b strings.Builder

	for i, m := range s.marks {
		label := grades.Classify(m, s.mode)
		style := theme.Fail
		switch {
		case !grades.IsValid(m):
			style = theme.Invalid
		case grades.IsPassing(m):
			style = theme.Pass
		}
		fmt.Fprintf(&b, "  Student %d: %5.1f%%  %s\n", i+1, m, style.Render(label))
	}
	if len(s.marks) > 0 {
		b.WriteString("\n")
	}

	if !s.done {
		b.WriteString(theme.Body.Render(fmt.Sprintf("Enter a grade for student %d:", s.Student())))
		b.WriteString("\n")
		b.WriteString(s.input.View())
		b.WriteString("\n")
	}

	if s.errMsg != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
		b.WriteString("\n")
	}

	barWidth := 20
	if width > 0 && width < barWidth+10 {
		barWidth = width - 10
	}
	b.WriteString("\n")
	b.WriteString(layout.RenderProgress(len(s.marks), s.total, barWidth))
	b.WriteString(theme.Hint.Render(fmt.Sprintf("  %d/%d", len(s.marks), s.total)))

	return b.String()
}

// KeyHints returns the footer hints for this screen.
func (s *EntryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Quit"},
	}
}
