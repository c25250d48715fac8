package validator

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/frenchdeck/internal/card"
	"github.com/arcanaland/frenchdeck/internal/deck"
	"github.com/arcanaland/frenchdeck/internal/ranking"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	Cards   []card.Card
	Results ValidationResults
}

// DeckFile is the TOML layout of a deck file
type DeckFile struct {
	Cards []card.Card `toml:"cards"`
}

func NewValidator(cards []card.Card) *Validator {
	return &Validator{
		Cards:   cards,
		Results: ValidationResults{},
	}
}

// LoadCards reads the cards listed in a TOML deck file
func LoadCards(path string) ([]card.Card, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("deck file not found: %s", path)
	}

	var f DeckFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}

	return f.Cards, nil
}

func (v *Validator) Validate() ValidationResults {
	v.validateSize()
	valid := v.validateCards()
	v.validateCompleteness(valid)
	v.validateKeys(valid)
	v.validateOrder()

	return v.Results
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

func (v *Validator) validateSize() {
	want := len(card.Ranks()) * len(card.Suits())
	if len(v.Cards) != want {
		v.errorf("deck has %d cards, expected %d", len(v.Cards), want)
	}
}

// validateCards reports unknown and duplicate cards and returns the valid ones
func (v *Validator) validateCards() []card.Card {
	seen := make(map[card.Card]int)
	var valid []card.Card

	for i, c := range v.Cards {
		if !c.Valid() {
			v.errorf("card %d is not a French deck card: %s", i, c)
			continue
		}
		if first, ok := seen[c]; ok {
			v.errorf("duplicate card at %d: %s (first at %d)", i, c, first)
			continue
		}
		seen[c] = i
		valid = append(valid, c)
	}

	return valid
}

func (v *Validator) validateCompleteness(valid []card.Card) {
	present := make(map[card.Card]bool, len(valid))
	for _, c := range valid {
		present[c] = true
	}

	for _, suit := range card.Suits() {
		for _, rank := range card.Ranks() {
			c := card.Card{Rank: rank, Suit: suit}
			if !present[c] {
				v.errorf("missing card: %s", c)
			}
		}
	}
}

func (v *Validator) validateKeys(valid []card.Card) {
	owners := make(map[int]card.Card, len(valid))
	for _, c := range valid {
		k := ranking.SpadesHigh(c)
		if other, ok := owners[k]; ok {
			v.errorf("sort key %d shared by %s and %s", k, other, c)
			continue
		}
		owners[k] = c
	}
}

// validateOrder warns when the cards are not in deck generation order
func (v *Validator) validateOrder() {
	d := deck.New()
	for i, c := range v.Cards {
		want, err := d.At(i)
		if err != nil {
			return
		}
		if c != want {
			v.warnf("card %d is %s, deck order has %s", i, c, want)
			return
		}
	}
}
