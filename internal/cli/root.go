package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "littles",
		Short: "CLI tool for The Daily Littles puzzle API",
		Long: `littles is a CLI tool for The Daily Littles puzzle API.

It fetches each day's Cipher, Gridgram, Shift, Sort and Mini puzzles,
checks answers, tracks the daily challenge and formats share text.
Dates are YYYY-MM-DD or "today" (the default).`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			client = NewClient(cfg.ServerURL, logger)
			return nil
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: LITTLES_SERVER)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	rootCmd.AddCommand(newHealthCmd())
	rootCmd.AddCommand(newCipherCmd())
	rootCmd.AddCommand(newGridgramCmd())
	rootCmd.AddCommand(newShiftCmd())
	rootCmd.AddCommand(newSortCmd())
	rootCmd.AddCommand(newMiniCmd())
	rootCmd.AddCommand(newStarsCmd())
	rootCmd.AddCommand(newChallengeCmd())
	rootCmd.AddCommand(newShareCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func output(cmd *cobra.Command) *Output {
	return NewOutput(cfg.Output, cmd.OutOrStdout())
}
