package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/dailypuzzles/internal/api/request"
	"github.com/mcoot/dailypuzzles/internal/api/response"
)

func newSortCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Sort word grouping commands",
	}

	cmd.AddCommand(newSortGetCmd())
	cmd.AddCommand(newSortGuessCmd())
	cmd.AddCommand(newSortPlayCmd())

	return cmd
}

func newSortGetCmd() *cobra.Command {
	var variant string

	cmd := &cobra.Command{
		Use:   "get [date]",
		Short: "Show the sixteen words",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Sort

			path := withQuery(fmt.Sprintf("/api/v1/sort/%s", dateArg(args)), "variant", variant)
			if err := client.Get(path, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&variant, "variant", "", `Puzzle variant: "" for the daily bank, "generated" for the procedural puzzle`)
	return cmd
}

func newSortGuessCmd() *cobra.Command {
	var (
		variant string
		date    string
	)

	cmd := &cobra.Command{
		Use:   "guess <word> <word> <word> <word>",
		Short: "Guess a group of four words",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.SortGuessRequest{Words: args, Variant: variant}

			var result response.SortGuess
			if err := client.Post(fmt.Sprintf("/api/v1/sort/%s/guess", dateArg([]string{date})), req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&variant, "variant", "", `Puzzle variant: "" for the daily bank, "generated" for the procedural puzzle`)
	cmd.Flags().StringVar(&date, "date", "", "Puzzle date (default today)")
	return cmd
}
