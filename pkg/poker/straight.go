package poker

import "pokerhand/pkg/deck"

// the only straight that can't be found numerically because the ace is low
var royalStraight = []deck.Rank{deck.Ten, deck.Jack, deck.Queen, deck.King, deck.Ace}

// isRoyalStraight returns true if the counted ranks are exactly ten through ace
func isRoyalStraight(counts map[deck.Rank]int) bool {
	if len(counts) != len(royalStraight) {
		return false
	}

	for _, rank := range royalStraight {
		if counts[rank] != 1 {
			return false
		}
	}

	return true
}

// isNumericStraight returns true if there are {size} distinct values spanning {size - 1}
// An ace counts as 1, so A-2-3-4-5 passes and 10-J-Q-K-A does not.
func isNumericStraight(counts map[deck.Rank]int, size int) bool {
	if len(counts) != size {
		return false
	}

	first := true
	var low, high int
	for rank := range counts {
		v := rank.Value()
		if first {
			low, high = v, v
			first = false
			continue
		}

		if v < low {
			low = v
		}

		if v > high {
			high = v
		}
	}

	return high-low == size-1
}
