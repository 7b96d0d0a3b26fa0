package cli

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/mcoot/dailypuzzles/internal/api/request"
	"github.com/mcoot/dailypuzzles/internal/api/response"
)

func newSortPlayCmd() *cobra.Command {
	var (
		variant string
		date    string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the Sort puzzle as a saved session",
	}
	cmd.PersistentFlags().StringVar(&variant, "variant", "", `Puzzle variant: "" for the daily bank, "generated" for the procedural puzzle`)
	cmd.PersistentFlags().StringVar(&date, "date", "", "Puzzle date (default today)")

	sessionPath := func(player, action string) string {
		path := fmt.Sprintf("/api/v1/sort/%s/play/%s", dateArg([]string{date}), url.PathEscape(player))
		if action != "" {
			path += "/" + action
		}
		return path
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "status <player>",
		Short: "Show the board, solved groups and mistakes left",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.SortSession
			if err := client.Get(withQuery(sessionPath(args[0], ""), "variant", variant), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "guess <player> <word> <word> <word> <word>",
		Short: "Guess a group of four words",
		Args:  cobra.ExactArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.SortGuessRequest{Words: args[1:], Variant: variant}

			var result response.SortSession
			if err := client.Post(sessionPath(args[0], "guess"), req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "shuffle <player>",
		Short: "Reorder the remaining words",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.SortSession
			if err := client.Post(withQuery(sessionPath(args[0], "shuffle"), "variant", variant), nil, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	})

	return cmd
}
