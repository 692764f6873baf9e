package grades

// CalculateStats aggregates marks into GradeStats and returns the number of
// marks processed. Invalid marks are counted but excluded from the average.
func CalculateStats(marks []float64) (GradeStats, int) {
	var (
		stats GradeStats
		total float64
	)

	for _, m := range marks {
		if !IsValid(m) {
			stats.InvalidCount++
			continue
		}
		total += m
		if m >= PassingGrade {
			stats.PassCount++
		} else {
			stats.FailCount++
		}
	}

	if n := stats.ValidCount(); n > 0 {
		stats.Average = total / float64(n)
	}

	return stats, len(marks)
}
