package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/frenchdeck/internal/card"
	"github.com/arcanaland/frenchdeck/internal/deck"
	"github.com/arcanaland/frenchdeck/internal/ranking"
	"github.com/arcanaland/frenchdeck/internal/render"
)

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [index|card_id]",
		Short: "Display a card with its position and sort key",
		Long: `Show draws a card and prints where it sits in the deck and in the
spades-high order. The card can be given by position or by id.
Show always draws the card face, so it does not take --format.

Examples:
  frenchdeck show 0
  frenchdeck show hearts.Q
  frenchdeck show 10s
  frenchdeck show -- -1`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("format") {
				return fmt.Errorf("show does not support --format")
			}

			d := deck.New()

			c, err := resolveCard(d, args[0])
			if err != nil {
				return err
			}

			p, err := newPrinter(cmd)
			if err != nil {
				return err
			}

			displayCard(cmd, p, c, d.Index(c), d.Len())
			return nil
		},
	}
}

// resolveCard finds a card by position or by id
func resolveCard(d *deck.Deck, arg string) (card.Card, error) {
	if index, err := strconv.Atoi(arg); err == nil {
		return d.At(index)
	}

	c, err := card.Parse(arg)
	if err != nil {
		return card.Card{}, err
	}
	return c, nil
}

// displayCard prints the card face with the card info next to it, or below
// it when the terminal is too narrow.
func displayCard(cmd *cobra.Command, p *render.Printer, c card.Card, position, size int) {
	out := cmd.OutOrStdout()

	infoLines := []string{
		p.Label("Card:     ") + c.String(),
		p.Label("ID:       ") + c.ID(),
		p.Label("Position: ") + fmt.Sprintf("%d (%d)", position, position-size),
		p.Label("Key:      ") + fmt.Sprintf("%d of 51", ranking.SpadesHigh(c)),
	}
	faceLines := p.Face(c)

	width := 80
	if f, ok := out.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			width = w
		}
	}

	spacing := 4
	faceWidth := render.VisibleWidth(faceLines[0])
	infoWidth := 0
	for _, line := range infoLines {
		infoWidth = max(infoWidth, render.VisibleWidth(line))
	}

	if 2+faceWidth+spacing+infoWidth > width {
		for _, line := range faceLines {
			fmt.Fprintln(out, "  "+line)
		}
		fmt.Fprintln(out)
		for _, line := range infoLines {
			fmt.Fprintln(out, "  "+line)
		}
		return
	}

	for i := 0; i < max(len(faceLines), len(infoLines)); i++ {
		line := "  "
		if i < len(faceLines) {
			line += faceLines[i]
		} else {
			line += strings.Repeat(" ", faceWidth)
		}
		if i < len(infoLines) {
			line += strings.Repeat(" ", spacing) + infoLines[i]
		}
		fmt.Fprintln(out, line)
	}
}
