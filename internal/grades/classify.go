package grades

// Band is one step of the grading ladder. A mark belongs to the first band
// whose Min it meets or exceeds.
type Band struct {
	Min         float64
	Letter      string
	Description string
}

// Label returns the band's label in the given mode.
func (b Band) Label(mode FeedbackMode) string {
	switch mode {
	case Description:
		return b.Description
	default:
		return b.Letter
	}
}

// bands is ordered by descending Min. The last band catches every valid mark.
var bands = []Band{
	{Min: 90.0, Letter: "A+", Description: "Outstanding"},
	{Min: 85.0, Letter: "A", Description: "Exemplary"},
	{Min: 80.0, Letter: "A-", Description: "Excellent"},
	{Min: 75.0, Letter: "B+", Description: "Very Good"},
	{Min: 70.0, Letter: "B", Description: "Good"},
	{Min: 65.0, Letter: "C+", Description: "Satisfactory"},
	{Min: 60.0, Letter: "C", Description: "Acceptable"},
	{Min: 55.0, Letter: "D+", Description: "Conditional Pass"},
	{Min: 50.0, Letter: "D", Description: "Conditional Pass"},
	{Min: MinGrade, Letter: "F", Description: "Failure"},
}

// Bands returns the grading ladder, highest band first.
func Bands() []Band {
	out := make([]Band, len(bands))
	copy(out, bands)
	return out
}

// Classify returns the feedback for a single mark, or Invalid when the mark
// is out of range.
func Classify(mark float64, mode FeedbackMode) string {
	if !IsValid(mark) {
		return Invalid
	}
	for _, b := range bands {
		if mark >= b.Min {
			return b.Label(mode)
		}
	}
	return Invalid
}
