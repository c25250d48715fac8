package card

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when a rank or suit is not part of the French deck
var ErrInvalidCard = errors.New("invalid card")

var ranks = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

var suits = []string{"spades", "diamonds", "clubs", "hearts"}

var suitSymbols = map[string]string{
	"spades":   "♠",
	"diamonds": "♦",
	"clubs":    "♣",
	"hearts":   "♥",
}

// Card represents a playing card
type Card struct {
	Rank string `json:"rank" toml:"rank"` // 2..10, J, Q, K, A
	Suit string `json:"suit" toml:"suit"` // spades, diamonds, clubs, hearts
}

// Ranks returns the ranks from lowest to highest
func Ranks() []string {
	return append([]string(nil), ranks...)
}

// Suits returns the suits in deck generation order
func Suits() []string {
	return append([]string(nil), suits...)
}

// Valid reports whether both rank and suit belong to the French deck
func (c Card) Valid() bool {
	return rankIndex(c.Rank) >= 0 && suitSymbols[c.Suit] != ""
}

func (c Card) String() string {
	return fmt.Sprintf("Card(rank='%s', suit='%s')", c.Rank, c.Suit)
}

// Short returns the rank followed by the suit symbol, e.g. 10♥
func (c Card) Short() string {
	symbol, ok := suitSymbols[c.Suit]
	if !ok {
		symbol = "?"
	}
	return c.Rank + symbol
}

// ID returns the canonical ID (e.g., hearts.Q)
func (c Card) ID() string {
	return c.Suit + "." + c.Rank
}

// Parse reads a card from its canonical ID (hearts.Q), its short form (Q♥)
// or a rank followed by a suit letter (Qh, 10s).
func Parse(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Card{}, fmt.Errorf("%w: empty card", ErrInvalidCard)
	}

	if suit, rank, ok := strings.Cut(s, "."); ok {
		return newCard(rank, suit, s)
	}

	for suit, symbol := range suitSymbols {
		if rank, ok := strings.CutSuffix(s, symbol); ok {
			return newCard(rank, suit, s)
		}
	}

	rank, letter := s[:len(s)-1], s[len(s)-1:]
	for _, suit := range suits {
		if strings.EqualFold(suit[:1], letter) {
			return newCard(rank, suit, s)
		}
	}

	return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, s)
}

func newCard(rank, suit, input string) (Card, error) {
	c := Card{Rank: strings.ToUpper(rank), Suit: strings.ToLower(suit)}
	if !c.Valid() {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, input)
	}
	return c, nil
}

func rankIndex(rank string) int {
	for i, r := range ranks {
		if r == rank {
			return i
		}
	}
	return -1
}
