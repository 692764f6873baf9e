package report

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/gradebook/internal/ui/theme"
)

func styleFor(l Line) lipgloss.Style {
	switch {
	case !l.Valid:
		return theme.Invalid
	case l.Passing:
		return theme.Pass
	default:
		return theme.Fail
	}
}
