package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/frenchdeck/internal/card"
	"github.com/arcanaland/frenchdeck/internal/deck"
)

func TestSpadesHighIsInjective(t *testing.T) {
	keys := make(map[int]card.Card)
	for _, c := range deck.New().All() {
		k := SpadesHigh(c)
		if other, ok := keys[k]; ok {
			t.Fatalf("%s and %s share key %d", c, other, k)
		}
		keys[k] = c
	}

	require.Len(t, keys, 52)
	for k := 0; k < 52; k++ {
		assert.Contains(t, keys, k)
	}
}

func TestSpadesHighKeys(t *testing.T) {
	tests := []struct {
		card card.Card
		want int
	}{
		{card.Card{Rank: "2", Suit: "clubs"}, 0},
		{card.Card{Rank: "2", Suit: "diamonds"}, 1},
		{card.Card{Rank: "2", Suit: "hearts"}, 2},
		{card.Card{Rank: "2", Suit: "spades"}, 3},
		{card.Card{Rank: "3", Suit: "clubs"}, 4},
		{card.Card{Rank: "10", Suit: "hearts"}, 34},
		{card.Card{Rank: "A", Suit: "spades"}, 51},
	}

	for _, tt := range tests {
		t.Run(tt.card.ID(), func(t *testing.T) {
			assert.Equal(t, tt.want, SpadesHigh(tt.card))
		})
	}
}

func TestSpadesHighPanicsOnInvalidCard(t *testing.T) {
	assert.Panics(t, func() { SpadesHigh(card.Card{Rank: "1", Suit: "spades"}) })
}

func TestKeyWithCustomTables(t *testing.T) {
	ranks := []string{"low", "high"}
	suits := map[string]int{"a": 0, "b": 1}

	k, err := Key(card.Card{Rank: "high", Suit: "b"}, ranks, suits)
	require.NoError(t, err)
	assert.Equal(t, 3, k)

	_, err = Key(card.Card{Rank: "mid", Suit: "a"}, ranks, suits)
	assert.ErrorIs(t, err, card.ErrInvalidCard)

	_, err = Key(card.Card{Rank: "low", Suit: "c"}, ranks, suits)
	assert.ErrorIs(t, err, card.ErrInvalidCard)
}

func TestSort(t *testing.T) {
	d := deck.New()
	cards := d.Cards()
	sorted := Sort(cards)

	require.Len(t, sorted, 52)
	assert.Equal(t, d.Cards(), cards, "input must not be reordered")
	assert.Equal(t, card.Card{Rank: "2", Suit: "clubs"}, sorted[0])
	assert.Equal(t, card.Card{Rank: "A", Suit: "spades"}, sorted[51])

	rankOf := func(c card.Card) int {
		for i, r := range card.Ranks() {
			if r == c.Rank {
				return i
			}
		}
		return -1
	}
	values := SuitValues()

	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			a, b := sorted[i], sorted[j]
			if rankOf(a) == rankOf(b) {
				assert.Less(t, values[a.Suit], values[b.Suit], "%s before %s", a, b)
			} else {
				assert.Less(t, rankOf(a), rankOf(b), "%s before %s", a, b)
			}
		}
	}
}

func TestSuitOrder(t *testing.T) {
	sorted := Sort(deck.New().Cards())
	var suits []string
	for _, c := range sorted[:4] {
		suits = append(suits, c.Suit)
	}
	assert.Equal(t, []string{"clubs", "diamonds", "hearts", "spades"}, suits)
}

func TestSuitValuesIsACopy(t *testing.T) {
	v := SuitValues()
	v["spades"] = -1
	assert.Equal(t, 3, SuitValues()["spades"])
}
