package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arcanaland/frenchdeck/internal/deck"
)

func newSliceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slice [start:stop:step]",
		Short: "Print a range of cards",
		Long: `Slice prints the cards from start up to, but not including, stop,
taking every step-th card. Each part is optional and may be negative;
a range starting with a minus sign goes after --.

Examples:
  frenchdeck slice :3        # top three cards
  frenchdeck slice 12::13    # the four aces
  frenchdeck slice ::-1      # the whole deck backwards
  frenchdeck slice -- -3:`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := deck.ParseRange(args[0])
			if err != nil {
				return err
			}

			cards, err := deck.New().Slice(r)
			if err != nil {
				return err
			}

			p, err := newPrinter(cmd)
			if err != nil {
				return err
			}
			return p.Print(cards...)
		},
	}
}
