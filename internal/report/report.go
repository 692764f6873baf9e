// Package report turns a list of marks into a per-student feedback report
// with summary statistics, and renders it as text or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/colorprofile"

	"github.com/abhisek/gradebook/internal/grades"
	"github.com/abhisek/gradebook/internal/ui/theme"
)

// Line is one student's row in the report.
type Line struct {
	Student  int     `json:"student"`
	Mark     float64 `json:"mark"`
	Feedback string  `json:"feedback"`
	Valid    bool    `json:"valid"`
	Passing  bool    `json:"passing"`
}

// Report holds everything printed for a class.
type Report struct {
	Mode  grades.FeedbackMode `json:"-"`
	Lines []Line              `json:"students"`
	Stats grades.GradeStats   `json:"stats"`
	Count int                 `json:"count"`
}

// Build aggregates marks once and classifies each mark with mode.
func Build(marks []float64, mode grades.FeedbackMode) Report {
	stats, count := grades.CalculateStats(marks)

	lines := make([]Line, len(marks))
	for i, m := range marks {
		lines[i] = Line{
			Student:  i + 1,
			Mark:     m,
			Feedback: grades.Classify(m, mode),
			Valid:    grades.IsValid(m),
			Passing:  grades.IsPassing(m),
		}
	}

	return Report{
		Mode:  mode,
		Lines: lines,
		Stats: stats,
		Count: count,
	}
}

// Options controls text rendering.
type Options struct {
	// Color styles feedback by outcome. Styles are downsampled to what w
	// supports, so pipes and files receive plain text.
	Color bool
}

// Render writes the report in the classic console layout.
func Render(w io.Writer, r Report, opts Options) error {
	if opts.Color {
		w = colorprofile.NewWriter(w, os.Environ())
	}

	for _, l := range r.Lines {
		feedback := l.Feedback
		if opts.Color {
			feedback = styleFor(l).Render(feedback)
		}
		if _, err := fmt.Fprintf(w, "Student %d: %5.1f%% : %s\n", l.Student, l.Mark, feedback); err != nil {
			return err
		}
	}

	rows := []struct {
		label string
		value string
	}{
		{"Count:", fmt.Sprintf("%5d", r.Count)},
		{"Passed:", fmt.Sprintf("%5d", r.Stats.PassCount)},
		{"Failed:", fmt.Sprintf("%5d", r.Stats.FailCount)},
		{"Invalid:", fmt.Sprintf("%5d", r.Stats.InvalidCount)},
		{"Average:", fmt.Sprintf("%5.1f%%", r.Stats.Average)},
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for _, row := range rows {
		label := fmt.Sprintf("%-9s", row.label)
		if opts.Color {
			label = theme.Title.Render(label)
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", label, row.value); err != nil {
			return err
		}
	}
	return nil
}

type jsonReport struct {
	Mode string `json:"mode"`
	Report
}

// RenderJSON writes the report as indented JSON.
func RenderJSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(jsonReport{Mode: r.Mode.String(), Report: r}); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}
