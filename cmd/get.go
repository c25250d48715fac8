package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/arcanaland/frenchdeck/internal/deck"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [index]",
		Short: "Print the card at a position in the deck",
		Long: `Get prints the card at the given position, counting from 0.
Negative positions count back from the end; put them after -- so they are
not read as flags.

Examples:
  frenchdeck get 0
  frenchdeck get -- -1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q: must be an integer", args[0])
			}

			c, err := deck.New().At(index)
			if err != nil {
				return err
			}

			p, err := newPrinter(cmd)
			if err != nil {
				return err
			}
			return p.Print(c)
		},
	}
}
