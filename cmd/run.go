package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/gradebook/internal/app"
	"github.com/abhisek/gradebook/internal/intake"
	"github.com/abhisek/gradebook/internal/report"
)

// runReport collects marks, then prints the per-student report and summary.
func runReport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	slog.Debug("starting report", "mode", cfg.Mode, "students", cfg.Students)

	out := cmd.OutOrStdout()
	prompter := intake.NewPrompter(cmd.InOrStdin(), out, intake.WithMaxAttempts(cfg.MaxAttempts))

	var marks []float64
	useTUI, _ := cmd.Flags().GetBool("tui")
	switch {
	case cmd.Flags().Changed("marks"):
		list, _ := cmd.Flags().GetString("marks")
		marks, err = intake.ParseList(list)
		if err != nil {
			return fmt.Errorf("parse --marks: %w", err)
		}
	case useTUI:
		marks, err = app.Run(ctx, cfg.Students, cfg.Mode)
		if errors.Is(err, app.ErrAborted) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Grade entry cancelled.")
			return nil
		}
		if err != nil {
			return err
		}
	default:
		marks, err = prompter.Collect(ctx, cfg.Students)
		if err != nil {
			return fmt.Errorf("collect marks: %w", err)
		}
		fmt.Fprintln(out)
	}

	r := report.Build(marks, cfg.Mode)
	slog.Debug("computed stats",
		"count", r.Count,
		"passed", r.Stats.PassCount,
		"failed", r.Stats.FailCount,
		"invalid", r.Stats.InvalidCount,
		"average", r.Stats.Average,
	)

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		if err := report.RenderJSON(out, r); err != nil {
			return err
		}
	} else if err := report.Render(out, r, report.Options{Color: cfg.Color}); err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	if wait, _ := cmd.Flags().GetBool("wait"); wait {
		return prompter.Pause("\nPress Enter to exit...")
	}
	return nil
}
