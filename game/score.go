package game

import (
	"blackjackd/deck"
)

// Hand is the ordered sequence of cards held by one seat.
type Hand []deck.Card

// Raw returns the unreduced total, aces counted as 11, and the number
// of aces in the hand.
func (h Hand) Raw() (total, aces int) {
	for _, c := range h {
		total += c.Value()
		if c.IsAce() {
			aces++
		}
	}
	return total, aces
}

// Score reduces the hand to its best total of 21 or under when aces
// allow it. It always recomputes over the full hand; a score is never
// carried as incrementally patched state.
func (h Hand) Score() int {
	return OptimalScore(h.Raw())
}

// OptimalScore demotes aces from 11 to 1, one at a time, while the
// total is bust. With no aces, or a total of 21 or under, the raw
// total is already optimal.
func OptimalScore(rawTotal, aceCount int) int {
	for rawTotal > 21 && aceCount > 0 {
		rawTotal -= 10
		aceCount--
	}
	return rawTotal
}
