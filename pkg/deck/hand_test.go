package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustCards(t *testing.T, s string) []Card {
	t.Helper()

	cards, err := CardsFromString(s)
	if err != nil {
		t.Fatal(err)
	}

	return cards
}

func TestHand_HasCard(t *testing.T) {
	hand := Hand(mustCards(t, "♣2,♣3,♦4"))
	assert.True(t, hand.HasCard(Card{Suit: Club, Rank: Three}))
	assert.False(t, hand.HasCard(Card{Suit: Spade, Rank: Three}))
}

func TestHand_HasDuplicates(t *testing.T) {
	assert.False(t, Hand(mustCards(t, "♣2,♣3,♦4")).HasDuplicates())
	assert.True(t, Hand(mustCards(t, "♣2,♣3,♣2")).HasDuplicates())
}

func TestHand_AddCard(t *testing.T) {
	h := make(Hand, 0)
	h.AddCard(Card{Suit: Spade, Rank: Ace})
	h.AddCard(Card{Suit: Club, Rank: Three})
	assert.Equal(t, "♠A,♣3", h.String())

	h2 := h.Clone()
	h2[0] = Card{Suit: Heart, Rank: Two}
	assert.Equal(t, "♠A,♣3", h.String())
}
