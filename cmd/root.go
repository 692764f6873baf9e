package cmd

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/gradebook/internal/config"
	"github.com/abhisek/gradebook/internal/grades"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gradebook [description]",
		Short: "Grade report for a small class",
		Long: "gradebook reads a mark for each student, prints letter-grade or descriptive\n" +
			"feedback per student, and summarises passes, failures, invalid marks and the\n" +
			"class average. Pass \"description\" as the first argument for descriptive feedback.",
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging,
		RunE:              runReport,
	}

	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().String("mode", "", `Feedback mode: "letter" or "description" (overrides GRADEBOOK_MODE)`)

	rootCmd.Flags().String("marks", "", "Comma separated marks; skips prompting")
	rootCmd.Flags().Int("students", 0, "Number of students to prompt for (overrides GRADEBOOK_STUDENTS)")
	rootCmd.Flags().Int("max-attempts", 0, "Give up after this many bad inputs in a row (0 = never)")
	rootCmd.Flags().Bool("tui", false, "Enter marks in an interactive terminal UI")
	rootCmd.Flags().Bool("json", false, "Print the report as JSON")
	rootCmd.Flags().Bool("no-color", false, "Disable coloured output")
	rootCmd.Flags().Bool("wait", false, "Wait for Enter before exiting")

	rootCmd.AddCommand(newClassifyCmd())
	rootCmd.AddCommand(newScaleCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	})))
	return nil
}

// resolveConfig layers the positional mode argument and flags over the
// environment config.
func resolveConfig(cmd *cobra.Command, args []string) (config.Config, error) {
	cfg, err := config.ConfigFromEnv()
	if err != nil {
		return cfg, err
	}

	if len(args) > 0 {
		cfg.Mode = grades.ParseMode(args[0])
	}
	if cmd.Flags().Changed("mode") {
		m, _ := cmd.Flags().GetString("mode")
		cfg.Mode = grades.ParseMode(m)
	}
	if cmd.Flags().Changed("students") {
		cfg.Students, _ = cmd.Flags().GetInt("students")
	}
	if cmd.Flags().Changed("max-attempts") {
		cfg.MaxAttempts, _ = cmd.Flags().GetInt("max-attempts")
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		cfg.Color = false
	}

	return cfg, cfg.Validate()
}
