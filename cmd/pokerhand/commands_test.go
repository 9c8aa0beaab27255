package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"pokerhand/internal/rng"
	"pokerhand/pkg/deck"
	"pokerhand/pkg/poker"
)

func TestDrawCards(t *testing.T) {
	a := assert.New(t)
	d := deck.NewWithGenerator(rng.NewSeeded(3))
	front := d.Cards[0]

	cards, err := drawCards(d, 5)
	a.NoError(err)
	a.Equal(5, len(cards))
	a.Equal(front, cards[0])
	a.Equal(47, d.CardsLeft())

	cards, err = drawCards(d, 48)
	a.Equal(deck.ErrEndOfDeck, err)
	a.Nil(cards)

	_, err = drawCards(d, -1)
	a.EqualError(err, "cannot draw -1 cards")
}

func TestJudgeTokens(t *testing.T) {
	a := assert.New(t)

	hand, role, err := judgeTokens([]string{"♠2", "♥2", "♦2", "♠3", "♥3"})
	a.NoError(err)
	a.Equal(poker.FullHouse, role)
	a.Equal("♠2,♥2,♦2,♠3,♥3", hand.String())

	_, _, err = judgeTokens([]string{"♠2", "♥2"})
	a.Equal(errHandSize, err)

	_, _, err = judgeTokens([]string{"♠2", "♥2", "♦2", "♠3", "♥K"})
	a.True(errors.Is(err, deck.ErrParse))

	_, _, err = judgeTokens([]string{"♠2", "♠2", "♦2", "♠3", "♥3"})
	a.Equal(errDuplicateCard, err)
}

func TestPlainPrinter(t *testing.T) {
	a := assert.New(t)
	buf := &bytes.Buffer{}
	p := plainPrinter{w: buf}

	hand, role, err := judgeTokens([]string{"♠10", "♥11", "♦12", "♣13", "♠A"})
	a.NoError(err)

	a.NoError(p.PrintCards(hand[:2]))
	a.NoError(p.PrintRole(hand, role))
	a.Equal("♠10\n♥11\nSTRAIGHT\n", buf.String())
}
