package main

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"pokerhand/pkg/deck"
	"pokerhand/pkg/poker"
)

// errHandSize is returned when judge is given the wrong number of cards
var errHandSize = fmt.Errorf("a hand must have exactly %d cards", poker.HandSize)

// errDuplicateCard is returned when judge is given the same card twice
var errDuplicateCard = errors.New("a hand cannot contain the same card twice")

// drawCards draws n cards from the front of the deck
func drawCards(d *deck.Deck, n int) ([]deck.Card, error) {
	if n < 0 {
		return nil, fmt.Errorf("cannot draw %d cards", n)
	}

	cards := make([]deck.Card, 0, n)
	for i := 0; i < n; i++ {
		card, err := d.Draw()
		if err != nil {
			return nil, err
		}

		logrus.WithFields(logrus.Fields{
			"card":      card.String(),
			"cardsLeft": d.CardsLeft(),
		}).Debug("card drawn")
		cards = append(cards, card)
	}

	return cards, nil
}

// judgeTokens parses the tokens into a hand and judges it
// The core evaluator doesn't validate hands, so it's done here.
func judgeTokens(tokens []string) (deck.Hand, poker.Role, error) {
	if len(tokens) != poker.HandSize {
		return nil, 0, errHandSize
	}

	cards, err := deck.CardsFromStrings(tokens)
	if err != nil {
		return nil, 0, err
	}

	hand := deck.Hand(cards)
	if hand.HasDuplicates() {
		return nil, 0, errDuplicateCard
	}

	role := poker.Judge(hand)
	logrus.WithFields(logrus.Fields{
		"hand": hand.String(),
		"role": role.String(),
	}).Debug("hand judged")

	return hand, role, nil
}
