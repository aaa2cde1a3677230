package camel

import "errors"

var (
	// ErrInvalidCard is returned for a symbol outside 2-9, T, J, Q, K, A
	// or a hand that does not hold exactly five cards.
	ErrInvalidCard = errors.New("invalid card")
	// ErrMalformedLine is returned for an input line without a bid separator.
	ErrMalformedLine = errors.New("malformed line")
)
