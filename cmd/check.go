package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/frenchdeck/internal/card"
	"github.com/arcanaland/frenchdeck/internal/deck"
	"github.com/arcanaland/frenchdeck/internal/validator"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [deck.toml]",
		Short: "Check that a deck holds each of the 52 cards exactly once",
		Long: `Check verifies the built-in deck, or the cards listed in a TOML deck file:
52 cards, no unknown or duplicate card, every rank and suit combination present
and a distinct sort key for each card. Cards out of deck order are reported as
warnings.

A deck file lists cards as:

  [[cards]]
  rank = "2"
  suit = "spades"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "built-in deck"
			var cards []card.Card

			if len(args) == 1 {
				name = args[0]
				loaded, err := validator.LoadCards(args[0])
				if err != nil {
					return err
				}
				cards = loaded
			} else {
				cards = deck.New().Cards()
			}

			p, err := newPrinter(cmd)
			if err != nil {
				return err
			}

			results := validator.NewValidator(cards).Validate()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Check Results:")
			fmt.Fprintln(out, "--------------")

			if len(results.Errors) == 0 {
				fmt.Fprintf(out, "✅ '%s' is a complete French deck.\n", name)
			} else {
				fmt.Fprintf(out, "❌ '%s' has %d errors:\n", name, len(results.Errors))
				for i, err := range results.Errors {
					fmt.Fprintf(out, "%d. %s\n", i+1, err)
				}
			}

			if len(results.Warnings) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, p.Warn("Warnings:"))
				for i, warn := range results.Warnings {
					fmt.Fprintf(out, "%d. %s\n", i+1, warn)
				}
			}

			if len(results.Errors) > 0 {
				return fmt.Errorf("check failed")
			}
			return nil
		},
	}
}
