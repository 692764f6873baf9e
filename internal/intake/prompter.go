package intake

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Prompter asks for marks one student at a time over a line-oriented
// reader/writer pair, re-prompting when a line does not parse.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer

	// MaxAttempts bounds consecutive rejected lines per student.
	// Zero means unbounded.
	MaxAttempts int
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithMaxAttempts sets the retry bound per student.
func WithMaxAttempts(n int) Option {
	return func(p *Prompter) { p.MaxAttempts = n }
}

// NewPrompter creates a Prompter reading from in and prompting on out.
func NewPrompter(in io.Reader, out io.Writer, opts ...Option) *Prompter {
	p := &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Collect reads n marks. On failure the marks read so far are returned
// alongside the error.
func (p *Prompter) Collect(ctx context.Context, n int) ([]float64, error) {
	marks := make([]float64, 0, n)
	for student := 1; student <= n; student++ {
		m, err := p.readMark(ctx, student)
		if err != nil {
			return marks, fmt.Errorf("student %d: %w", student, err)
		}
		marks = append(marks, m)
	}
	return marks, nil
}

func (p *Prompter) readMark(ctx context.Context, student int) (float64, error) {
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		fmt.Fprintf(p.out, "\nEnter a grade for student %d: ", student)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return 0, fmt.Errorf("read input: %w", err)
			}
			return 0, ErrInputClosed
		}

		m, err := ParseMark(p.in.Text())
		if err == nil {
			return m, nil
		}

		var perr *ParseError
		if errors.As(err, &perr) {
			fmt.Fprintln(p.out, RejectMessage(perr.Input))
		}
		slog.Debug("rejected mark", "student", student, "attempt", attempt, "err", err)

		if p.MaxAttempts > 0 && attempt >= p.MaxAttempts {
			return 0, ErrTooManyAttempts
		}
	}
}

// RejectMessage is shown to the user when input cannot be read as a mark.
func RejectMessage(input string) string {
	return fmt.Sprintf("Sorry, I can't convert %q into a numeric value, try again!", input)
}

// Pause writes prompt and waits for one line of input. End of input is
// treated as a keypress.
func (p *Prompter) Pause(prompt string) error {
	fmt.Fprint(p.out, prompt)
	p.in.Scan()
	if err := p.in.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
