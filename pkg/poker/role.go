package poker

import "fmt"

// Role is the ranking category of a five card hand, i.e., FULL_HOUSE
type Role int

// Constants for role
const (
	HighCards Role = iota + 1
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

var roleNames = map[Role]string{
	HighCards:     "HIGH_CARDS",
	OnePair:       "ONE_PAIR",
	TwoPair:       "TWO_PAIR",
	ThreeOfAKind:  "THREE_OF_A_KIND",
	Straight:      "STRAIGHT",
	Flush:         "FLUSH",
	FullHouse:     "FULL_HOUSE",
	FourOfAKind:   "FOUR_OF_A_KIND",
	StraightFlush: "STRAIGHT_FLUSH",
}

// AllRoles returns every role, strongest first
func AllRoles() []Role {
	return []Role{
		StraightFlush,
		FourOfAKind,
		FullHouse,
		Flush,
		Straight,
		ThreeOfAKind,
		TwoPair,
		OnePair,
		HighCards,
	}
}

// Rank returns the display ordering of the role (HIGH_CARDS is 1)
// The evaluator does not compare hands with it.
func (r Role) Rank() int {
	return int(r)
}

// String returns the categorical name of the role
func (r Role) String() string {
	name, ok := roleNames[r]
	if !ok {
		panic(fmt.Sprintf("unknown role: %d", r))
	}

	return name
}
