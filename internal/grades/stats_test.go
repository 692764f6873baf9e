package grades

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateStats(t *testing.T) {
	tests := []struct {
		name  string
		marks []float64
		want  GradeStats
		count int
	}{
		{
			name:  "mixed",
			marks: []float64{95, 40, 150, -5, 72},
			want:  GradeStats{Average: 69.0, PassCount: 2, FailCount: 1, InvalidCount: 2},
			count: 5,
		},
		{
			name:  "empty",
			marks: nil,
			want:  GradeStats{},
			count: 0,
		},
		{
			name:  "all invalid",
			marks: []float64{-1, 101, 1000},
			want:  GradeStats{InvalidCount: 3},
			count: 3,
		},
		{
			name:  "range edges",
			marks: []float64{0.0, 100.0},
			want:  GradeStats{Average: 50.0, PassCount: 1, FailCount: 1},
			count: 2,
		},
		{
			name:  "just outside range",
			marks: []float64{100.0001, -0.0001},
			want:  GradeStats{InvalidCount: 2},
			count: 2,
		},
		{
			name:  "pass threshold",
			marks: []float64{50.0, 49.999},
			want:  GradeStats{Average: 49.9995, PassCount: 1, FailCount: 1},
			count: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, count := CalculateStats(tt.marks)
			assert.Equal(t, tt.count, count)
			assert.Equal(t, tt.want.PassCount, got.PassCount)
			assert.Equal(t, tt.want.FailCount, got.FailCount)
			assert.Equal(t, tt.want.InvalidCount, got.InvalidCount)
			assert.InDelta(t, tt.want.Average, got.Average, 1e-9)
		})
	}
}

func TestCalculateStatsOrderIndependent(t *testing.T) {
	a, _ := CalculateStats([]float64{95, 40, 150, -5, 72})
	b, _ := CalculateStats([]float64{72, -5, 150, 40, 95})
	assert.Equal(t, a.PassCount, b.PassCount)
	assert.Equal(t, a.FailCount, b.FailCount)
	assert.Equal(t, a.InvalidCount, b.InvalidCount)
	assert.InDelta(t, a.Average, b.Average, 1e-9)
}

func TestCalculateStatsCountsEveryMark(t *testing.T) {
	f := func(marks []float64) bool {
		stats, count := CalculateStats(marks)
		return count == len(marks) && stats.Total() == len(marks)
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestCalculateStatsAverageWithinRange(t *testing.T) {
	// Raw values are scaled into [0, 100] in hundredths.
	f := func(raw []uint16) bool {
		if len(raw) == 0 {
			return true
		}
		marks := make([]float64, len(raw))
		lo, hi := MaxGrade, MinGrade
		for i, r := range raw {
			m := float64(r%10001) / 100
			marks[i] = m
			lo = min(lo, m)
			hi = max(hi, m)
		}
		stats, _ := CalculateStats(marks)
		return stats.InvalidCount == 0 &&
			stats.Average >= lo-1e-9 && stats.Average <= hi+1e-9
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestIsPassing(t *testing.T) {
	assert.True(t, IsPassing(50.0))
	assert.True(t, IsPassing(100.0))
	assert.False(t, IsPassing(49.999))
	assert.False(t, IsPassing(0.0))
	assert.False(t, IsPassing(150.0), "invalid marks never pass")
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		arg  string
		want FeedbackMode
	}{
		{"description", Description},
		{"DESCRIPTION", Description},
		{"Description", Description},
		{"", LetterGrade},
		{"letter", LetterGrade},
		{"descriptions", LetterGrade},
		{" description", LetterGrade},
		{"description ", LetterGrade},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseMode(tt.arg))
		})
	}
}
