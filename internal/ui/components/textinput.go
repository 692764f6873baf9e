package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/gradebook/internal/intake"
	"github.com/abhisek/gradebook/internal/ui/theme"
)

// markChars are the single keys a mark can be typed with.
const markChars = "0123456789.-+eE"

// MarkInput wraps bubbles/textinput for entering one numeric mark.
type MarkInput struct {
	Model       textinput.Model
	NumericOnly bool
}

// NewMarkInput creates a focused input. With numericOnly set, single-rune
// keys outside the characters of a decimal number are dropped.
func NewMarkInput(placeholder string, numericOnly bool) MarkInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	ti.CharLimit = 16
	ti.Focus()

	return MarkInput{
		Model:       ti,
		NumericOnly: numericOnly,
	}
}

// Init returns the initial command.
func (t MarkInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t MarkInput) Update(msg tea.Msg) (MarkInput, tea.Cmd) {
	if t.NumericOnly {
		if kmsg, ok := msg.(tea.KeyPressMsg); ok {
			key := kmsg.String()
			if len(key) == 1 && !strings.Contains(markChars, key) {
				return t, nil
			}
		}
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input.
func (t MarkInput) View() string {
	return theme.Body.Render(t.Model.View())
}

// Value returns the raw text.
func (t MarkInput) Value() string {
	return t.Model.Value()
}

// Mark parses the current text as a mark.
func (t MarkInput) Mark() (float64, error) {
	return intake.ParseMark(t.Model.Value())
}

// Reset clears the text.
func (t *MarkInput) Reset() {
	t.Model.Reset()
}
