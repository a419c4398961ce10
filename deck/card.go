package deck

// Rank represents a rank in a deck of cards
type Rank int

const (
	Ace Rank = iota
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var rankNames = []string{"A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// Blackjack point values per rank. Aces start at 11; demoting them to 1
// is the scorer's job, not the card's.
var rankValues = []int{11, 2, 3, 4, 5, 6, 7, 8, 9, 10, 10, 10, 10}

// Suit represents a suit in a deck of cards
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

var suitNames = []string{"C", "D", "H", "S"}

// Card is a single playing card. Immutable once created.
type Card struct {
	rank Rank
	suit Suit
}

// NewCard constructs a card
func NewCard(rank Rank, suit Suit) Card {
	return Card{rank: rank, suit: suit}
}

// Rank returns a card's rank symbol
func (c Card) Rank() string {
	return rankNames[c.rank]
}

// Suit returns a card's suit symbol
func (c Card) Suit() string {
	return suitNames[c.suit]
}

// Value returns the card's blackjack point value
func (c Card) Value() int {
	return rankValues[c.rank]
}

// IsAce reports whether the card is an ace
func (c Card) IsAce() bool {
	return c.rank == Ace
}

// String renders the card as "<rank>-<suit>", e.g. "A-H". Clients use
// this form as an asset lookup key, so the format is part of the
// contract.
func (c Card) String() string {
	return rankNames[c.rank] + "-" + suitNames[c.suit]
}
