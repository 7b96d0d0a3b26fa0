package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/dailypuzzles/internal/api/request"
	"github.com/mcoot/dailypuzzles/internal/api/response"
)

func newGridgramCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gridgram",
		Short: "Gridgram commands",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get [date]",
		Short: "Show the letter rack",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Grid

			if err := client.Get(fmt.Sprintf("/api/v1/gridgram/%s", dateArg(args)), &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	})
	cmd.AddCommand(newGridgramValidateCmd())

	return cmd
}

func newGridgramValidateCmd() *cobra.Command {
	var tiles []string

	cmd := &cobra.Command{
		Use:   "validate [date] --tile 0,0,C --tile 0,1,A ...",
		Short: "Validate and score a grid of placed tiles",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.GridValidateRequest{Positions: make([]request.Tile, 0, len(tiles))}
			for _, t := range tiles {
				row, col, letter, err := parseTile(t)
				if err != nil {
					return err
				}
				req.Positions = append(req.Positions, request.Tile{Row: row, Col: col, Letter: letter})
			}

			var result response.GridValidation
			if err := client.Post(fmt.Sprintf("/api/v1/gridgram/%s/validate", dateArg(args)), req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&tiles, "tile", "t", nil, "Placed tile as row,col,letter (repeatable)")
	return cmd
}
