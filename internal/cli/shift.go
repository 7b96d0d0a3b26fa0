package cli

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/mcoot/dailypuzzles/internal/api/request"
	"github.com/mcoot/dailypuzzles/internal/api/response"
)

func newShiftCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shift",
		Short: "Shift commands",
	}

	cmd.AddCommand(newShiftGetCmd())
	cmd.AddCommand(newShiftCheckCmd())

	return cmd
}

func newShiftGetCmd() *cobra.Command {
	var difficulty string

	cmd := &cobra.Command{
		Use:   "get [date]",
		Short: "Show the scrambled grid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Shift

			path := withQuery(fmt.Sprintf("/api/v1/shift/%s", dateArg(args)), "difficulty", difficulty)
			if err := client.Get(path, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "easy", "Difficulty: easy, medium, hard")
	return cmd
}

func newShiftCheckCmd() *cobra.Command {
	var (
		difficulty string
		date       string
	)

	cmd := &cobra.Command{
		Use:   "check <row> <row> ...",
		Short: "Check whether every row of a grid is a word",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.ShiftCheckRequest{
				Difficulty: difficulty,
				Grid:       lo.Map(args, func(r string, _ int) string { return strings.ToUpper(r) }),
			}

			var result response.Solved
			if err := client.Post(fmt.Sprintf("/api/v1/shift/%s/check", dateArg([]string{date})), req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "easy", "Difficulty: easy, medium, hard")
	cmd.Flags().StringVar(&date, "date", "", "Puzzle date (default today)")
	return cmd
}
