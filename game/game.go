package game

import (
	"errors"

	"blackjackd/deck"
)

var (
	ErrTooFewPlayers     = errors.New("minimum of 1 player required")
	ErrTooManyPlayers    = errors.New("maximum of 3 players allowed")
	ErrNotBetting        = errors.New("bets are not being taken right now")
	ErrUnknownSeat       = errors.New("unknown seat")
	ErrInvalidBet        = errors.New("bet must be a positive amount")
	ErrInsufficientFunds = errors.New("bet exceeds balance")
	ErrAlreadyBet        = errors.New("bet already placed this round")
	ErrNotPlayerTurn     = errors.New("hits and stands are not accepted right now")
	ErrNotYourTurn       = errors.New("not this seat's turn")
)

const (
	// DefaultStartingMoney is each seat's balance when a table opens.
	DefaultStartingMoney = 1000

	blackjack      = 21
	dealerStandsAt = 17
)

// Seat is one player's place at the table. Money persists across
// rounds within a session; hand, bet and result are per-round.
type Seat struct {
	Name   string
	Hand   Hand
	Money  int
	Bet    int
	Result Result
}

// Blackjack is the authoritative table state: the deck, the dealer's
// hand and every seat. It is owned by exactly one session, which
// serializes all access; the engine itself holds no lock.
type Blackjack struct {
	Deck   deck.Deck
	Dealer Hand
	Seats  []*Seat
	State  State
	Turn   int
}

// BlackjackOpts configures a new table.
type BlackjackOpts struct {
	Names         []string
	StartingMoney int // defaults to DefaultStartingMoney
}

// NewBlackjack constructs a table for the named players, waiting for a
// round to start.
func NewBlackjack(opts BlackjackOpts) (*Blackjack, error) {
	if len(opts.Names) < 1 {
		return nil, ErrTooFewPlayers
	}
	if len(opts.Names) > 3 {
		return nil, ErrTooManyPlayers
	}

	money := opts.StartingMoney
	if money <= 0 {
		money = DefaultStartingMoney
	}

	g := &Blackjack{
		Deck:  deck.New(),
		State: WaitingForPlayers,
	}
	for _, name := range opts.Names {
		g.Seats = append(g.Seats, &Seat{Name: name, Money: money})
	}
	return g, nil
}

// StartRound opens a fresh round: hands, bets and results are cleared,
// a new 52-card deck is built and shuffled, and betting opens.
// Balances carry over.
func (g *Blackjack) StartRound() {
	for _, s := range g.Seats {
		s.Hand = nil
		s.Bet = 0
		s.Result = NoResult
	}
	g.Dealer = nil
	g.Turn = 0

	g.Deck = deck.New()
	g.Deck.Shuffle()

	g.State = Betting
}

// PlaceBet wagers amount for a seat. The amount is debited
// immediately; payouts at settlement return it for pushes and wins.
// Once every seat has wagered, the initial cards are dealt.
func (g *Blackjack) PlaceBet(seat, amount int) error {
	if g.State != Betting {
		return ErrNotBetting
	}
	if seat < 0 || seat >= len(g.Seats) {
		return ErrUnknownSeat
	}

	s := g.Seats[seat]
	if s.Bet != 0 {
		return ErrAlreadyBet
	}
	if amount <= 0 {
		return ErrInvalidBet
	}
	if amount > s.Money {
		return ErrInsufficientFunds
	}

	s.Bet = amount
	s.Money -= amount

	for _, other := range g.Seats {
		if other.Bet == 0 {
			return nil
		}
	}

	g.State = Dealing
	g.dealInitialCards()
	return nil
}

// Hit draws one card for the seat. A bust marks the seat as lost and
// passes the turn on, as an implicit stand.
func (g *Blackjack) Hit(seat int) error {
	if err := g.checkTurn(seat); err != nil {
		return err
	}

	s := g.Seats[seat]
	s.Hand = append(s.Hand, g.draw())
	if s.Hand.Score() > blackjack {
		s.Result = Lose
		g.advanceTurn()
	}
	return nil
}

// Stand passes the turn to the next seat. After the last seat the
// dealer plays out its hand and the round settles.
func (g *Blackjack) Stand(seat int) error {
	if err := g.checkTurn(seat); err != nil {
		return err
	}
	g.advanceTurn()
	return nil
}

func (g *Blackjack) checkTurn(seat int) error {
	if g.State != PlayerTurn {
		return ErrNotPlayerTurn
	}
	if seat < 0 || seat >= len(g.Seats) {
		return ErrUnknownSeat
	}
	if seat != g.Turn {
		return ErrNotYourTurn
	}
	return nil
}

func (g *Blackjack) advanceTurn() {
	g.Turn++
	if g.Turn < len(g.Seats) {
		return
	}
	g.State = DealerTurn
	g.dealerPlay()
}

// draw takes the top card. Round sizes guarantee the deck cannot run
// dry: a two-seat round consumes at most a fraction of the 52 cards
// rebuilt at every StartRound.
func (g *Blackjack) draw() deck.Card {
	card, _ := g.Deck.Draw()
	return card
}

// dealInitialCards gives two cards to every seat and two to the
// dealer, interleaved round-robin, then checks for natural blackjacks
// before opening the first turn.
func (g *Blackjack) dealInitialCards() {
	for round := 0; round < 2; round++ {
		for _, s := range g.Seats {
			s.Hand = append(s.Hand, g.draw())
		}
		g.Dealer = append(g.Dealer, g.draw())
	}

	g.checkNaturals()

	if g.State == Dealing {
		g.State = PlayerTurn
		g.Turn = 0
	}
}

// checkNaturals resolves the round immediately if any hand came out at
// 21. The dealer's total includes the hole card here; redaction is a
// presentation concern, not an engine one.
func (g *Blackjack) checkNaturals() {
	dealerNatural := g.Dealer.Score() == blackjack

	anyNatural := dealerNatural
	for _, s := range g.Seats {
		if s.Hand.Score() == blackjack {
			anyNatural = true
		}
	}
	if !anyNatural {
		return
	}

	g.State = GameOver
	for _, s := range g.Seats {
		switch {
		case s.Hand.Score() != blackjack:
			// Beaten by a natural, the dealer's or another seat's.
			// The bet stays in the house.
			s.Result = Lose
		case dealerNatural:
			s.Result = Push
			s.Money += s.Bet
		default:
			s.Result = BlackjackWin
			s.Money += s.Bet + s.Bet*3/2
		}
	}
}

// dealerPlay runs the dealer's rule-bound hand: draw until the optimal
// score reaches 17, then settle the round.
func (g *Blackjack) dealerPlay() {
	for g.Dealer.Score() < dealerStandsAt {
		g.Dealer = append(g.Dealer, g.draw())
	}
	g.State = GameOver
	g.settle()
}

// settle applies the payout rules once the dealer has played. A seat
// that busted during its own turn was provisionally marked Lose; if
// the dealer also busts it is corrected to a push.
func (g *Blackjack) settle() {
	dealerScore := g.Dealer.Score()

	for _, s := range g.Seats {
		if s.Result == Lose {
			if dealerScore > blackjack {
				s.Result = Push
				s.Money += s.Bet
			}
			continue
		}

		score := s.Hand.Score()
		switch {
		case dealerScore > blackjack || score > dealerScore:
			s.Result = Win
			s.Money += s.Bet * 2
		case score == dealerScore:
			s.Result = Push
			s.Money += s.Bet
		default:
			s.Result = Lose
		}
	}
}
