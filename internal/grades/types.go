package grades

import "strings"

const (
	MinGrade     = 0.0
	MaxGrade     = 100.0
	PassingGrade = 50.0
)

// Invalid is the feedback returned for marks outside [MinGrade, MaxGrade].
const Invalid = "INVALID"

// FeedbackMode selects the vocabulary used to describe a mark.
type FeedbackMode int

const (
	LetterGrade FeedbackMode = iota
	Description
)

func (m FeedbackMode) String() string {
	switch m {
	case Description:
		return "description"
	default:
		return "letter"
	}
}

// ParseMode maps a command-line argument to a FeedbackMode. Only
// "description" (any case, no surrounding spaces) selects Description;
// everything else, including the empty string, is LetterGrade.
func ParseMode(arg string) FeedbackMode {
	if strings.ToLower(arg) == "description" {
		return Description
	}
	return LetterGrade
}

// GradeStats summarises a set of marks.
type GradeStats struct {
	Average      float64 `json:"average"`
	PassCount    int     `json:"pass_count"`
	FailCount    int     `json:"fail_count"`
	InvalidCount int     `json:"invalid_count"`
}

// ValidCount returns the number of marks inside the valid range.
func (s GradeStats) ValidCount() int {
	return s.PassCount + s.FailCount
}

// Total returns the number of marks the stats were computed from.
func (s GradeStats) Total() int {
	return s.PassCount + s.FailCount + s.InvalidCount
}

// IsValid reports whether mark lies in [MinGrade, MaxGrade].
func IsValid(mark float64) bool {
	return mark >= MinGrade && mark <= MaxGrade
}

// IsPassing reports whether mark is valid and at least PassingGrade.
func IsPassing(mark float64) bool {
	return IsValid(mark) && mark >= PassingGrade
}
