package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/dailypuzzles/internal/api/request"
	"github.com/mcoot/dailypuzzles/internal/api/response"
)

func newMiniCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mini",
		Short: "Mini crossword commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get [date]",
		Short: "Show the grid and clues",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Mini

			if err := client.Get(fmt.Sprintf("/api/v1/mini/%s", dateArg(args)), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	})
	cmd.AddCommand(newMiniCheckCmd())

	return cmd
}

func newMiniCheckCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "check <row> <row> ...",
		Short: "Check filled rows; use # for black squares and . for blanks",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.MiniCheckRequest{Entries: args}

			var result response.MiniCheck
			if err := client.Post(fmt.Sprintf("/api/v1/mini/%s/check", dateArg([]string{date})), req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Puzzle date (default today)")
	return cmd
}
