package poker

import "pokerhand/pkg/deck"

// HandSize is the number of cards a hand must have
const HandSize = 5

// HandAnalyzer can analyze a five card hand
type HandAnalyzer struct {
	cards  deck.Hand
	counts map[deck.Rank]int

	// for each count, how many ranks appear that many times
	countsOfCounts map[int]int

	flush    bool
	royal    bool
	straight bool

	role Role
}

// Judge will return the role of a five card hand
// The hand is expected to contain exactly five distinct cards. That is not checked.
func Judge(hand deck.Hand) Role {
	return NewHandAnalyzer(hand).GetRole()
}

// NewHandAnalyzer will return a new HandAnalyzer instance
func NewHandAnalyzer(hand deck.Hand) *HandAnalyzer {
	h := &HandAnalyzer{
		cards: hand.Clone(),
	}

	// the method order here is required
	h.analyzeHand()
	h.calculateRole()

	return h
}

// analyzeHand will count the ranks and check for a flush and straights
// This method should only be called once from the constructor
func (h *HandAnalyzer) analyzeHand() {
	h.counts = make(map[deck.Rank]int, len(h.cards))
	h.flush = len(h.cards) > 0
	for _, card := range h.cards {
		h.counts[card.Rank]++

		if card.Suit != h.cards[0].Suit {
			h.flush = false
		}
	}

	h.countsOfCounts = make(map[int]int, len(h.counts))
	for _, n := range h.counts {
		h.countsOfCounts[n]++
	}

	h.royal = isRoyalStraight(h.counts)
	h.straight = h.royal || isNumericStraight(h.counts, HandSize)
}

// calculateRole will determine the role, first match wins
// This must be called after analyzeHand() has been called
func (h *HandAnalyzer) calculateRole() {
	distinct := len(h.counts)

	switch {
	case h.flush && h.straight:
		h.role = StraightFlush
	case distinct == 2 && h.hasCount(4):
		h.role = FourOfAKind
	case distinct == 2 && h.hasCount(3) && h.hasCount(2):
		h.role = FullHouse
	case h.flush:
		h.role = Flush
	case h.straight:
		h.role = Straight
	case distinct == 3 && h.hasCount(3):
		h.role = ThreeOfAKind
	case distinct == 3 && h.hasCount(2):
		h.role = TwoPair
	case distinct == 4 && h.hasCount(2):
		h.role = OnePair
	default:
		h.role = HighCards
	}
}

func (h *HandAnalyzer) hasCount(n int) bool {
	return h.countsOfCounts[n] > 0
}

// GetRole will return the role of the hand
func (h *HandAnalyzer) GetRole() Role {
	return h.role
}

// IsFlush returns true if every card shares one suit
func (h *HandAnalyzer) IsFlush() bool {
	return h.flush
}

// IsStraight returns true for a royal straight or five consecutive values
func (h *HandAnalyzer) IsStraight() bool {
	return h.straight
}

// IsRoyalStraight returns true if the ranks are ten through ace
func (h *HandAnalyzer) IsRoyalStraight() bool {
	return h.royal
}

// GetRankCount returns how many times the rank appears in the hand
func (h *HandAnalyzer) GetRankCount(rank deck.Rank) int {
	return h.counts[rank]
}

// DistinctRanks returns the number of different ranks in the hand
func (h *HandAnalyzer) DistinctRanks() int {
	return len(h.counts)
}
