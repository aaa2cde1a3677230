// Package camel implements the domain logic for scoring Camel Cards,
// a poker-like game played with five-card hands and bids.
//
// # Core Types
//
// Card: a single symbol, one of 2-9, T, J, Q, K, A.
//
// Hand: five cards in dealt order plus the bid placed on them.
//
// Rules: the rule mode. Under Jokers, J is a wildcard that joins the
// largest group of a hand but is the weakest card when breaking ties.
//
// Signature: the (groups, largest) pair that decides the hand category.
//
// # Scoring
//
// Hands are sorted weakest first. Each hand wins its bid multiplied by
// its 1-based rank, and the winnings of every hand are summed. Solve runs
// the whole pipeline once per rule mode over the same parsed hands.
package camel
