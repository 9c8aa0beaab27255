package deck

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrParse is an error when a suit, rank, or card symbol is not recognized
var ErrParse = errors.New("could not parse")

// Suit represents a card suit
type Suit int

// suit constants
const (
	Spade Suit = iota
	Heart
	Diamond
	Club
)

var suitSymbols = [...]string{
	Spade:   "♠",
	Heart:   "♥",
	Diamond: "♦",
	Club:    "♣",
}

// AllSuits returns every suit in enumeration order
func AllSuits() []Suit {
	return []Suit{Spade, Heart, Diamond, Club}
}

// SuitOf returns the suit with the exact symbol
func SuitOf(symbol string) (Suit, error) {
	for _, s := range AllSuits() {
		if suitSymbols[s] == symbol {
			return s, nil
		}
	}

	return 0, fmt.Errorf("%w suit %q", ErrParse, symbol)
}

// Symbol returns the display symbol, i.e., ♠
func (s Suit) Symbol() string {
	if s < Spade || s > Club {
		return "?"
	}

	return suitSymbols[s]
}

func (s Suit) String() string {
	return s.Symbol()
}

// IsRed returns true for hearts and diamonds
func (s Suit) IsRed() bool {
	return s == Heart || s == Diamond
}

// Rank represents a card rank
type Rank int

// rank constants
const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

var rankSymbols = [...]string{
	Two:   "2",
	Three: "3",
	Four:  "4",
	Five:  "5",
	Six:   "6",
	Seven: "7",
	Eight: "8",
	Nine:  "9",
	Ten:   "10",
	Jack:  "11",
	Queen: "12",
	King:  "13",
	Ace:   "A",
}

// AllRanks returns every rank in enumeration order (Two through King, then Ace)
func AllRanks() []Rank {
	ranks := make([]Rank, 0, len(rankSymbols))
	for r := Two; r <= Ace; r++ {
		ranks = append(ranks, r)
	}

	return ranks
}

// RankOf returns the rank with the exact symbol
func RankOf(symbol string) (Rank, error) {
	for _, r := range AllRanks() {
		if rankSymbols[r] == symbol {
			return r, nil
		}
	}

	return 0, fmt.Errorf("%w rank %q", ErrParse, symbol)
}

// Symbol returns the display symbol, i.e., 12 for a queen
func (r Rank) Symbol() string {
	if r < Two || r > Ace {
		return "?"
	}

	return rankSymbols[r]
}

func (r Rank) String() string {
	return r.Symbol()
}

// Value returns the numeric value of the rank
// Ace is always low (1). An ace-high straight needs to be special cased by the caller.
func (r Rank) Value() int {
	if r == Ace {
		return 1
	}

	return int(r) + 2
}

// Card is an individual playing card
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

// String returns the card in the format of <suit><rank>, i.e., ♠A
func (c Card) String() string {
	return c.Suit.Symbol() + c.Rank.Symbol()
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c Card) Equal(card Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// CardFromString returns a Card from the string.
// The first character is the suit symbol and the remainder is the rank symbol, i.e., ♥10
func CardFromString(s string) (Card, error) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return Card{}, fmt.Errorf("%w card %q", ErrParse, s)
	}

	suit, err := SuitOf(s[:size])
	if err != nil {
		return Card{}, fmt.Errorf("card %q: %w", s, err)
	}

	rank, err := RankOf(s[size:])
	if err != nil {
		return Card{}, fmt.Errorf("card %q: %w", s, err)
	}

	return Card{Suit: suit, Rank: rank}, nil
}

// CardsFromStrings will parse every token, failing on the first that can't be parsed
func CardsFromStrings(tokens []string) ([]Card, error) {
	cards := make([]Card, len(tokens))
	for i, token := range tokens {
		card, err := CardFromString(token)
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// CardsFromString will parse a comma separated list of cards, i.e., ♠2,♥3
func CardsFromString(s string) ([]Card, error) {
	if s == "" {
		return []Card{}, nil
	}

	return CardsFromStrings(strings.Split(s, ","))
}

// CardsToString will convert a slice of cards to a string in the format of ♠2,♥3,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = card.String()
	}

	return strings.Join(c, ",")
}
