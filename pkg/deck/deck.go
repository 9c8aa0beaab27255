package deck

import (
	"crypto/sha1" // nolint:gosec
	"encoding/hex"
	"errors"

	"pokerhand/internal/rng"
)

// ErrEndOfDeck is an error when Draw() is attempted and there are no more cards
var ErrEndOfDeck = errors.New("end of deck reached")

// Size is the number of cards in a full deck
const Size = 52

// Deck represents a playing deck
// A Deck is owned by a single caller and is not safe for concurrent use.
type Deck struct {
	Cards []Card `json:"cards"`
}

// New returns a new shuffled deck of cards using a crypto random source
func New() *Deck {
	return NewWithGenerator(rng.Crypto{})
}

// NewWithGenerator returns a new deck of cards shuffled with the provided generator
func NewWithGenerator(g rng.Generator) *Deck {
	d := &Deck{}
	d.buildDeck()
	d.shuffle(g)

	return d
}

func (d *Deck) buildDeck() {
	cards := make([]Card, 0, Size)
	for _, suit := range AllSuits() {
		for _, rank := range AllRanks() {
			cards = append(cards, Card{
				Suit: suit,
				Rank: rank,
			})
		}
	}

	d.Cards = cards
}

// shuffle is a Fisher-Yates shuffle
func (d *Deck) shuffle(g rng.Generator) {
	for j := len(d.Cards) - 1; j > 0; j-- {
		i := g.Intn(j + 1)

		d.Cards[i], d.Cards[j] = d.Cards[j], d.Cards[i]
	}
}

// HashCode returns a SHA1 hash code of the remaining cards.
func (d *Deck) HashCode() string {
	hash := sha1.New() // nolint:gosec
	for _, card := range d.Cards {
		_, _ = hash.Write([]byte(card.String()))
	}

	return hex.EncodeToString(hash.Sum(nil)[:])
}

// Draw will draw the next card
// If there are no more cards, an ErrEndOfDeck is returned along with the zero card.
func (d *Deck) Draw() (Card, error) {
	if len(d.Cards) <= 0 {
		return Card{}, ErrEndOfDeck
	}

	card := d.Cards[0]
	d.Cards = d.Cards[1:]

	return card, nil
}

// CanDraw returns true if there are {want} cards left in the deck
func (d *Deck) CanDraw(want int) bool {
	return len(d.Cards) >= want
}

// CardsLeft returns the number of cards left in the deck
func (d *Deck) CardsLeft() int {
	return len(d.Cards)
}
