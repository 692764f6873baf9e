package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/gradebook/internal/grades"
	"github.com/abhisek/gradebook/internal/intake"
)

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <mark>...",
		Short: "Print feedback for individual marks",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, nil)
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			marks := make([]float64, 0, len(args))
			for _, a := range args {
				v, err := intake.ParseMark(a)
				if err != nil {
					return err
				}
				marks = append(marks, v)
			}

			out := cmd.OutOrStdout()
			for _, v := range marks {
				// Full precision so the printed mark agrees with its band.
				fmt.Fprintf(out, "%8s%%  %s\n", strconv.FormatFloat(v, 'f', -1, 64), grades.Classify(v, cfg.Mode))
			}
			return nil
		},
	}
}
