package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mcoot/dailypuzzles/internal/model"
	"github.com/mcoot/dailypuzzles/internal/services/share"
)

// Share text is formatted locally; nothing is sent to the server.
func newShareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share",
		Short: "Format share text for a finished puzzle",
	}

	cmd.AddCommand(newShareCipherCmd())
	cmd.AddCommand(newShareSortCmd())
	cmd.AddCommand(newShareMiniCmd())

	return cmd
}

func newShareCipherCmd() *cobra.Command {
	var (
		difficulty string
		streak     int
		link       string
	)

	cmd := &cobra.Command{
		Use:   "cipher <puzzle-number> <elapsed>",
		Short: "Cipher share text",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, elapsed, err := numberAndElapsed(args)
			if err != nil {
				return err
			}
			d, err := model.ParseDifficulty(difficulty)
			if err != nil {
				return err
			}

			output(cmd).PrintMessage(share.Cipher(share.CipherResult{
				PuzzleNumber: number,
				Difficulty:   d,
				Elapsed:      elapsed,
				Streak:       streak,
				URL:          link,
			}))
			return nil
		},
	}

	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "easy", "Difficulty: easy, medium, hard")
	cmd.Flags().IntVar(&streak, "streak", 0, "Current streak in days")
	cmd.Flags().StringVar(&link, "url", "", "Link appended to the share text")
	return cmd
}

func newShareSortCmd() *cobra.Command {
	var (
		solved   string
		mistakes int
		lost     bool
		link     string
	)

	cmd := &cobra.Command{
		Use:   "sort <puzzle-number>",
		Short: "Sort share text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid puzzle number %q", args[0])
			}

			var levels []int
			for _, s := range strings.Split(solved, ",") {
				if s = strings.TrimSpace(s); s == "" {
					continue
				}
				level, err := strconv.Atoi(s)
				if err != nil || level < 1 || level > 4 {
					return fmt.Errorf("solved levels must be 1-4, got %q", s)
				}
				levels = append(levels, level)
			}

			output(cmd).PrintMessage(share.Sort(share.SortResult{
				PuzzleNumber: number,
				Difficulties: levels,
				Mistakes:     mistakes,
				Won:          !lost,
				URL:          link,
			}))
			return nil
		},
	}

	cmd.Flags().StringVar(&solved, "solved", "", "Group levels in the order solved, e.g. 2,1,4,3")
	cmd.Flags().IntVar(&mistakes, "mistakes", 0, "Mistakes made")
	cmd.Flags().BoolVar(&lost, "lost", false, "The puzzle was lost")
	cmd.Flags().StringVar(&link, "url", "", "Link appended to the share text")
	return cmd
}

func newShareMiniCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mini <puzzle-number> <elapsed>",
		Short: "Mini share text",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			number, elapsed, err := numberAndElapsed(args)
			if err != nil {
				return err
			}
			output(cmd).PrintMessage(share.Mini(number, elapsed))
			return nil
		},
	}
}

func numberAndElapsed(args []string) (int, time.Duration, error) {
	number, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid puzzle number %q", args[0])
	}
	elapsed, err := time.ParseDuration(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid elapsed time %q: %w", args[1], err)
	}
	return number, elapsed, nil
}
