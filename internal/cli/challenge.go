package cli

import (
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/cobra"

	"github.com/mcoot/dailypuzzles/internal/api/request"
	"github.com/mcoot/dailypuzzles/internal/api/response"
)

func newStarsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stars <difficulty> <elapsed>",
		Short: "Rate a solve time, e.g. stars medium 1m45s",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			elapsed, err := time.ParseDuration(args[1])
			if err != nil {
				return fmt.Errorf("invalid elapsed time %q: %w", args[1], err)
			}

			req := request.StarsRequest{Difficulty: args[0], ElapsedMS: elapsed.Milliseconds()}

			var result response.Stars
			if err := client.Post("/api/v1/stars", req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}
}

func newChallengeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "challenge",
		Short: "Daily challenge commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "status <player>",
		Short: "Show today's challenge progress and streak",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Challenge

			if err := client.Get(fmt.Sprintf("/api/v1/challenge/%s", url.PathEscape(args[0])), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	})
	cmd.AddCommand(newChallengeCompleteCmd())

	return cmd
}

func newChallengeCompleteCmd() *cobra.Command {
	var (
		score   int
		elapsed time.Duration
	)

	cmd := &cobra.Command{
		Use:   "complete <player> <cipher|gridgram|shift>",
		Short: "Record a finished game",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.CompleteRequest{Game: args[1], Score: score, ElapsedMS: elapsed.Milliseconds()}

			var result response.Challenge
			path := fmt.Sprintf("/api/v1/challenge/%s/complete", url.PathEscape(args[0]))
			if err := client.Post(path, req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&score, "score", 0, "Score for the game")
	cmd.Flags().DurationVar(&elapsed, "elapsed", 0, "Solve time, e.g. 2m10s")
	return cmd
}
