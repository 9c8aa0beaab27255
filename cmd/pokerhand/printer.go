package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"

	"pokerhand/pkg/deck"
	"pokerhand/pkg/poker"
)

type printer interface {
	PrintCards(cards []deck.Card) error
	PrintRole(hand deck.Hand, role poker.Role) error
}

// plainPrinter writes one card per line and the bare role name so the output can be piped
type plainPrinter struct {
	w io.Writer
}

func (p plainPrinter) PrintCards(cards []deck.Card) error {
	for _, card := range cards {
		if _, err := fmt.Fprintln(p.w, card.String()); err != nil {
			return err
		}
	}

	return nil
}

func (p plainPrinter) PrintRole(_ deck.Hand, role poker.Role) error {
	_, err := fmt.Fprintln(p.w, role.String())
	return err
}

// ptermPrinter is used when stdout is a terminal
type ptermPrinter struct{}

func styleCard(card deck.Card) string {
	if card.Suit.IsRed() {
		return pterm.LightRed(card.String())
	}

	return pterm.LightWhite(card.String())
}

func styleCards(cards []deck.Card) string {
	s := make([]string, len(cards))
	for i, card := range cards {
		s[i] = styleCard(card)
	}

	return strings.Join(s, " ")
}

func (ptermPrinter) PrintCards(cards []deck.Card) error {
	pterm.DefaultBox.
		WithTitle(pterm.LightYellow("|DRAW|")).
		WithTitleTopCenter().
		WithHorizontalPadding(2).
		Println(styleCards(cards))

	return nil
}

func (ptermPrinter) PrintRole(hand deck.Hand, role poker.Role) error {
	pterm.DefaultBox.
		WithTitle(pterm.LightGreen("|" + role.String() + "|")).
		WithTitleTopCenter().
		WithHorizontalPadding(2).
		Println(styleCards(hand))

	return nil
}
