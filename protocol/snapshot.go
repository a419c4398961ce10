package protocol

import (
	"blackjackd/deck"
)

// SnapshotVersion identifies the snapshot wire schema. Bump it when a
// field changes meaning so clients can refuse what they don't speak.
const SnapshotVersion = 1

// Snapshot is one player's view of the table, built fresh by the
// session on every state change and never mutated afterwards. The
// dealer's hand may be partially redacted depending on the game state;
// see DealerView.
type Snapshot struct {
	Version     int        `json:"version"`
	State       string     `json:"state"`
	Players     []SeatView `json:"players"`
	Dealer      DealerView `json:"dealer"`
	CurrentTurn int        `json:"currentTurn"`
	YourSeat    int        `json:"yourSeat"`
}

// SeatView is one player's public state. Player hands are never
// redacted.
type SeatView struct {
	Name   string     `json:"name"`
	Hand   []CardView `json:"hand"`
	Score  int        `json:"score"`
	Money  int        `json:"money"`
	Bet    int        `json:"bet"`
	Result string     `json:"result,omitempty"`
}

// DealerView carries the dealer's hand. Until the dealer plays, the
// hole card is replaced by a hidden marker and Score covers the
// visible cards only.
type DealerView struct {
	Hand  []CardView `json:"hand"`
	Score int        `json:"score"`
}

// CardView is a card on the wire. A hidden card carries no rank or
// suit at all; redaction happens before serialization, not after.
type CardView struct {
	Rank   string `json:"rank,omitempty"`
	Suit   string `json:"suit,omitempty"`
	Hidden bool   `json:"hidden,omitempty"`
}

// HiddenCard is the opaque placeholder for the dealer's hole card.
var HiddenCard = CardView{Hidden: true}

// CardViewOf exposes a card for the wire.
func CardViewOf(c deck.Card) CardView {
	return CardView{Rank: c.Rank(), Suit: c.Suit()}
}

// Label renders the card for display, "??" when hidden.
func (c CardView) Label() string {
	if c.Hidden {
		return "??"
	}
	return c.Rank + "-" + c.Suit
}
