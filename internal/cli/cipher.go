package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/dailypuzzles/internal/api/request"
	"github.com/mcoot/dailypuzzles/internal/api/response"
)

func newCipherCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cipher",
		Short: "Substitution cipher commands",
	}

	cmd.AddCommand(newCipherGetCmd())
	cmd.AddCommand(newCipherCheckCmd())

	return cmd
}

func newCipherGetCmd() *cobra.Command {
	var difficulty string

	cmd := &cobra.Command{
		Use:   "get [date]",
		Short: "Show the encoded phrase",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result response.Cipher

			path := withQuery(fmt.Sprintf("/api/v1/cipher/%s", dateArg(args)), "difficulty", difficulty)
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

func newCipherCheckCmd() *cobra.Command {
	var (
		difficulty string
		guesses    []string
	)

	cmd := &cobra.Command{
		Use:   "check [date] --guess X=E --guess Q=T ...",
		Short: "Check a full set of letter guesses",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := request.CipherCheckRequest{
				Difficulty: difficulty,
				Guesses:    make(map[string]string, len(guesses)),
			}
			for _, g := range guesses {
				c, p, err := parseGuess(g)
				if err != nil {
					return err
				}
				req.Guesses[c] = p
			}

			var result response.Solved
			if err := client.Post(fmt.Sprintf("/api/v1/cipher/%s/check", dateArg(args)), req, &result); err != nil {
				return err
			}

			output(cmd).Print(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "easy", "Difficulty: easy, medium, hard")
	cmd.Flags().StringArrayVarP(&guesses, "guess", "g", nil, "Cipher letter and its plain letter, e.g. X=E (repeatable)")
	return cmd
}
