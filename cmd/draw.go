package cmd

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/arcanaland/frenchdeck/internal/card"
	"github.com/arcanaland/frenchdeck/internal/deck"
)

func newDrawCmd() *cobra.Command {
	var (
		count int
		seed  uint64
	)

	drawCmd := &cobra.Command{
		Use:   "draw",
		Short: "Pick random cards from the deck",
		Long: `Draw picks cards at random. Every pick is made from the full deck,
so the same card can come up more than once. Pass --seed to repeat a draw.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("invalid count %d: must be at least 1", count)
			}

			r := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
			if cmd.Flags().Changed("seed") {
				r = rand.New(rand.NewPCG(seed, seed))
			}

			d := deck.New()
			cards := make([]card.Card, 0, count)
			for i := 0; i < count; i++ {
				cards = append(cards, d.Choice(r))
			}

			p, err := newPrinter(cmd)
			if err != nil {
				return err
			}
			return p.Print(cards...)
		},
	}

	drawCmd.Flags().IntVarP(&count, "count", "n", 1, "Number of cards to draw")
	drawCmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for a reproducible draw")

	return drawCmd
}
