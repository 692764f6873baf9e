package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/gradebook/internal/grades"
)

func newScaleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scale",
		Short: "Show the grading scale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			// Header.
			fmt.Fprintf(out, "%-7s  %-6s  %s\n", "From", "Letter", "Description")
			fmt.Fprintln(out, strings.Repeat("─", 34))

			for _, b := range grades.Bands() {
				fmt.Fprintf(out, "%6.1f%%  %-6s  %s\n", b.Min, b.Letter, b.Description)
			}

			fmt.Fprintf(out, "\nMarks outside %.0f-%.0f are reported as %s.\n",
				grades.MinGrade, grades.MaxGrade, grades.Invalid)
			return nil
		},
	}
}
