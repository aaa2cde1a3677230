package camel

import "fmt"

// Rules selects how J is treated.
type Rules uint8

const (
	Standard Rules = iota // J ranks between T and Q
	Jokers                // J is a wildcard and ranks below 2
)

// String returns the name of the rule mode.
func (r Rules) String() string {
	switch r {
	case Standard:
		return "standard"
	case Jokers:
		return "jokers"
	default:
		return fmt.Sprintf("rules(%d)", uint8(r))
	}
}

// Card is a single card symbol.
type Card byte

// Face card symbols.
const (
	Ten   Card = 'T'
	Jack  Card = 'J'
	Queen Card = 'Q'
	King  Card = 'K'
	Ace   Card = 'A'
)

// Wildcard is the card that substitutes for any other under Jokers.
const Wildcard = Jack

var faceStrength = map[Card]int{
	Ten:   10,
	Jack:  11,
	Queen: 12,
	King:  13,
	Ace:   14,
}

const jokerStrength = 1

// ParseCard validates a card symbol.
func ParseCard(b byte) (Card, error) {
	c := Card(b)
	if !c.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCard, b)
	}
	return c, nil
}

// Valid reports whether c is one of the 13 card symbols.
func (c Card) Valid() bool {
	if c >= '2' && c <= '9' {
		return true
	}
	_, ok := faceStrength[c]
	return ok
}

// IsWildcard reports whether c substitutes for other cards under r.
func (c Card) IsWildcard(r Rules) bool {
	return r == Jokers && c == Wildcard
}

func (c Card) String() string {
	return string(c)
}

// Strength returns the tie-breaking strength of c under r.
// Digits are worth their face value, T through A are worth 10 through 14.
// Under Jokers the wildcard is worth 1. Invalid symbols are worth 0.
func Strength(c Card, r Rules) int {
	if c >= '2' && c <= '9' {
		return int(c - '0')
	}
	if c.IsWildcard(r) {
		return jokerStrength
	}
	return faceStrength[c]
}
