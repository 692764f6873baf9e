package intake

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var errNotFinite = errors.New("not a finite number")

// ParseMark reads a single mark. Range is not checked here: out-of-range
// numbers are legal marks and are classified as invalid later.
func ParseMark(s string) (float64, error) {
	text := strings.TrimSpace(s)
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &ParseError{Input: text, Err: err}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &ParseError{Input: text, Err: errNotFinite}
	}
	return v, nil
}

// ParseList reads marks separated by commas and/or whitespace.
func ParseList(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	marks := make([]float64, 0, len(fields))
	for _, f := range fields {
		m, err := ParseMark(f)
		if err != nil {
			return nil, err
		}
		marks = append(marks, m)
	}
	return marks, nil
}
