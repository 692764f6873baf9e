package entry

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/gradebook/internal/grades"
	"github.com/abhisek/gradebook/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typeMark(s screen.Screen, text string) (screen.Screen, tea.Cmd) {
	for _, r := range text {
		s, _ = s.Update(keyPress(r))
	}
	return s.Update(specialKey(tea.KeyEnter))
}

func TestEntryScreen_Title(t *testing.T) {
	assert.Equal(t, "Enter Grades", New(5, grades.LetterGrade).Title())
}

func TestEntryScreen_CollectsMarks(t *testing.T) {
	e := New(3, grades.LetterGrade)
	var s screen.Screen = e

	s, cmd := typeMark(s, "95")
	assert.Nil(t, cmd)
	s, cmd = typeMark(s, "-5")
	assert.Nil(t, cmd)
	assert.Equal(t, 3, e.Student())

	_, cmd = typeMark(s, "72.5")
	require.NotNil(t, cmd)

	msg := cmd()
	done, ok := msg.(DoneMsg)
	require.True(t, ok, "expected DoneMsg, got %T", msg)
	assert.Equal(t, []float64{95, -5, 72.5}, done.Marks)
}

func TestEntryScreen_RejectsBadInput(t *testing.T) {
	e := New(2, grades.LetterGrade)

	_, cmd := typeMark(e, "1..2")
	assert.Nil(t, cmd)
	assert.Equal(t, 1, e.Student(), "student index must not advance")
	assert.Contains(t, e.errMsg, `can't convert "1..2"`)
	assert.Contains(t, e.View(80, 24), "try again")

	typeMark(e, "60")
	assert.Empty(t, e.errMsg)
	assert.Equal(t, []float64{60}, e.Marks())
}

func TestEntryScreen_EmptySubmitRejected(t *testing.T) {
	e := New(1, grades.LetterGrade)
	_, cmd := e.Update(specialKey(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.Empty(t, e.Marks())
	assert.NotEmpty(t, e.errMsg)
}

func TestEntryScreen_LettersDropped(t *testing.T) {
	e := New(1, grades.LetterGrade)
	_, cmd := typeMark(e, "8a0")
	require.NotNil(t, cmd)
	assert.Equal(t, []float64{80}, e.Marks())
}

func TestEntryScreen_EscAborts(t *testing.T) {
	e := New(1, grades.LetterGrade)
	_, cmd := e.Update(specialKey(tea.KeyEscape))
	require.NotNil(t, cmd)
	_, ok := cmd().(AbortedMsg)
	assert.True(t, ok)
}

func TestEntryScreen_ViewPreviewsFeedback(t *testing.T) {
	e := New(3, grades.Description)
	typeMark(e, "91")
	typeMark(e, "150")

	view := e.View(80, 24)
	assert.Contains(t, view, "Outstanding")
	assert.Contains(t, view, grades.Invalid)
	assert.Contains(t, view, "student 3")
	assert.Contains(t, view, "2/3")
}

func TestEntryScreen_IgnoresInputWhenDone(t *testing.T) {
	e := New(1, grades.LetterGrade)
	typeMark(e, "50")

	_, cmd := typeMark(e, "60")
	assert.Nil(t, cmd)
	assert.Equal(t, []float64{50}, e.Marks())
}
