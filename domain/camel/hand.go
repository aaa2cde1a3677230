package camel

import (
	"fmt"
	"strings"
)

// HandSize is the number of cards in every hand.
const HandSize = 5

// Hand is five cards in dealt order and the bid placed on them.
type Hand struct {
	Cards [HandSize]Card
	Bid   int64
}

// NewHand builds a Hand from a string of exactly five card symbols.
func NewHand(cards string, bid int64) (Hand, error) {
	if len(cards) != HandSize {
		return Hand{}, fmt.Errorf("%w: hand %q has %d cards, want %d", ErrInvalidCard, cards, len(cards), HandSize)
	}
	var h Hand
	for i := 0; i < HandSize; i++ {
		c, err := ParseCard(cards[i])
		if err != nil {
			return Hand{}, fmt.Errorf("hand %q position %d: %w", cards, i, err)
		}
		h.Cards[i] = c
	}
	h.Bid = bid
	return h, nil
}

// MustHand is like NewHand but panics on invalid cards.
func MustHand(cards string, bid int64) Hand {
	h, err := NewHand(cards, bid)
	if err != nil {
		panic(err)
	}
	return h
}

// String returns the five card symbols in dealt order.
func (h Hand) String() string {
	var sb strings.Builder
	for _, c := range h.Cards {
		sb.WriteByte(byte(c))
	}
	return sb.String()
}
