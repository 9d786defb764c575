package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/stechuhr/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "stechuhr",
	Short: "Work-hour calculator for a single day",
	Long: `Stechuhr computes how long you have worked today, how much break time
you have consumed, how far along your daily goal you are, and when you can
clock out under the common 9h and 10h limits.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		return cfg.Validate()
	},
	RunE: runReport,
}

func init() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	rootCmd.Flags().StringP("start", "s", "", "Time when work started <HH:MM[:SS]>")
	rootCmd.Flags().StringP("end", "e", "", "Time when work ended <HH:MM[:SS]>")
	rootCmd.Flags().StringP("daily-goal", "d", "", "Daily work goal <HH:MM[:SS]>")
	rootCmd.Flags().StringP("weekly-goal", "w", "", "Weekly work goal <HH:MM[:SS]>, divided across the work week")
	rootCmd.Flags().StringArrayP("break", "b", nil, "Break start and end <HH:MM-HH:MM>, repeatable")
	rootCmd.Flags().Bool("plain", false, "Force plain line output")

	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(completionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
