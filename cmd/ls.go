package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arcanaland/frenchdeck/internal/deck"
)

func newLsCmd() *cobra.Command {
	var reverse bool

	lsCmd := &cobra.Command{
		Use:   "ls",
		Short: "List the deck in the order it was built",
		Long: `List every card in deck order: spades, diamonds, clubs, hearts,
each from 2 to ace. Use --reverse to walk the deck backwards.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := newPrinter(cmd)
			if err != nil {
				return err
			}

			d := deck.New()
			cards := d.All()
			if reverse {
				cards = d.Backward()
			}

			for _, c := range cards {
				if err := p.Print(c); err != nil {
					return err
				}
			}
			return nil
		},
	}

	lsCmd.Flags().BoolVarP(&reverse, "reverse", "r", false, "List from the last card to the first")

	return lsCmd
}
