package deck

import (
	"errors"
	"fmt"
	"iter"
	"math/rand/v2"

	"github.com/arcanaland/frenchdeck/internal/card"
)

// ErrIndexOutOfRange is returned when a position falls outside the deck
var ErrIndexOutOfRange = errors.New("deck index out of range")

// Deck is a read-only sequence of the 52 cards of a French deck.
// The order is fixed when the deck is built: suits outer, ranks inner.
type Deck struct {
	cards []card.Card
}

// New builds a deck
func New() *Deck {
	ranks := card.Ranks()
	suits := card.Suits()

	cards := make([]card.Card, 0, len(ranks)*len(suits))
	for _, suit := range suits {
		for _, rank := range ranks {
			cards = append(cards, card.Card{Rank: rank, Suit: suit})
		}
	}

	return &Deck{cards: cards}
}

// Len returns the number of cards in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// At returns the card at position i. Negative positions count back from the
// end of the deck, so At(-1) is the last card.
func (d *Deck) At(i int) (card.Card, error) {
	n := len(d.cards)
	pos := i
	if pos < 0 {
		pos += n
	}
	if pos < 0 || pos >= n {
		return card.Card{}, fmt.Errorf("%w: %d (deck has %d cards)", ErrIndexOutOfRange, i, n)
	}
	return d.cards[pos], nil
}

// All iterates over the cards in deck order
func (d *Deck) All() iter.Seq2[int, card.Card] {
	return func(yield func(int, card.Card) bool) {
		for i, c := range d.cards {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Backward iterates over the cards from the last to the first
func (d *Deck) Backward() iter.Seq2[int, card.Card] {
	return func(yield func(int, card.Card) bool) {
		for i := len(d.cards) - 1; i >= 0; i-- {
			if !yield(i, d.cards[i]) {
				return
			}
		}
	}
}

// Cards returns a copy of the cards in deck order
func (d *Deck) Cards() []card.Card {
	return append([]card.Card(nil), d.cards...)
}

// Choice returns a card picked uniformly at random
func (d *Deck) Choice(r *rand.Rand) card.Card {
	return d.cards[r.IntN(len(d.cards))]
}

// Index returns the position of c in the deck, or -1 if it is not there
func (d *Deck) Index(c card.Card) int {
	for i, dc := range d.cards {
		if dc == c {
			return i
		}
	}
	return -1
}

// Contains reports whether c is in the deck
func (d *Deck) Contains(c card.Card) bool {
	return d.Index(c) >= 0
}
