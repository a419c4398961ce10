package deck

import (
	"math/rand"
)

// Deck represents a deck of cards, consumed from the end
type Deck []Card

// New creates a full, ordered 52-card deck
func New() Deck {
	cards := make(Deck, 0, 52)
	for suit := range suitNames {
		for rank := range rankNames {
			cards = append(cards, NewCard(Rank(rank), Suit(suit)))
		}
	}
	return cards
}

// Shuffle shuffles the deck of cards in place
func (d Deck) Shuffle() {
	rand.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
}

// Draw removes and returns the top card. The second return value is
// false if the deck is empty.
func (d *Deck) Draw() (Card, bool) {
	if len(*d) == 0 {
		return Card{}, false
	}
	top := (*d)[len(*d)-1]
	*d = (*d)[:len(*d)-1]
	return top, true
}
