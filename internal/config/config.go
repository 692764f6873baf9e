package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/abhisek/gradebook/internal/grades"
)

// Config holds the settings for a grading run.
type Config struct {
	// Mode selects letter grades or descriptions.
	Mode grades.FeedbackMode

	// Students is how many marks are prompted for. Default: 5.
	Students int

	// MaxAttempts bounds consecutive bad inputs per student.
	// Zero means keep asking.
	MaxAttempts int

	// Color enables styled report output.
	Color bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Mode:     grades.LetterGrade,
		Students: 5,
		Color:    true,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling back
// to defaults for unset values.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if m := os.Getenv("GRADEBOOK_MODE"); m != "" {
		cfg.Mode = grades.ParseMode(m)
	}

	if s := os.Getenv("GRADEBOOK_STUDENTS"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return cfg, fmt.Errorf("GRADEBOOK_STUDENTS: %w", err)
		}
		cfg.Students = n
	}

	if s := os.Getenv("GRADEBOOK_MAX_ATTEMPTS"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			return cfg, fmt.Errorf("GRADEBOOK_MAX_ATTEMPTS: %w", err)
		}
		cfg.MaxAttempts = n
	}

	// https://no-color.org
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		cfg.Color = false
	}

	return cfg, nil
}

// Validate checks that the config can drive a run.
func (c Config) Validate() error {
	if c.Students < 1 {
		return fmt.Errorf("students must be at least 1, got %d", c.Students)
	}
	if c.MaxAttempts < 0 {
		return fmt.Errorf("max attempts must not be negative, got %d", c.MaxAttempts)
	}
	return nil
}
