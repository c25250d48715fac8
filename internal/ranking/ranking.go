// Package ranking orders cards "spades high": rank decides first, and among
// equal ranks spades beat hearts, hearts beat diamonds, diamonds beat clubs.
package ranking

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/arcanaland/frenchdeck/internal/card"
)

var suitValues = map[string]int{
	"spades":   3,
	"hearts":   2,
	"diamonds": 1,
	"clubs":    0,
}

var ranks = card.Ranks()

// SuitValues returns the tie-breaking weight of each suit
func SuitValues() map[string]int {
	values := make(map[string]int, len(suitValues))
	for suit, v := range suitValues {
		values[suit] = v
	}
	return values
}

// Key computes the sort key of c from a rank order and suit weights:
// rank index * number of suits + suit weight.
func Key(c card.Card, ranks []string, suitValues map[string]int) (int, error) {
	rankValue := slices.Index(ranks, c.Rank)
	if rankValue < 0 {
		return 0, fmt.Errorf("%w: unknown rank %q", card.ErrInvalidCard, c.Rank)
	}

	suitValue, ok := suitValues[c.Suit]
	if !ok {
		return 0, fmt.Errorf("%w: unknown suit %q", card.ErrInvalidCard, c.Suit)
	}

	return rankValue*len(suitValues) + suitValue, nil
}

// SpadesHigh returns the sort key of c, from 0 (2 of clubs) to 51 (ace of
// spades). It panics if c is not a French deck card.
func SpadesHigh(c card.Card) int {
	k, err := Key(c, ranks, suitValues)
	if err != nil {
		panic(err)
	}
	return k
}

// Sort returns a copy of cards in ascending SpadesHigh order
func Sort(cards []card.Card) []card.Card {
	sorted := slices.Clone(cards)
	slices.SortStableFunc(sorted, func(a, b card.Card) int {
		return cmp.Compare(SpadesHigh(a), SpadesHigh(b))
	})
	return sorted
}
