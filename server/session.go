package server

import (
	"log"
	"sync"

	uuid "github.com/satori/go.uuid"

	"blackjackd/game"
	"blackjackd/protocol"
)

// SeatsPerTable is how many players share one session.
const SeatsPerTable = 2

// Session owns one game engine and the two peers seated at it. Every
// read or write of the engine happens under mu, so connection
// goroutines never observe the game mid-mutation. The engine and the
// snapshot broadcast for a command run as one unit under the lock.
type Session struct {
	id    string
	game  *game.Blackjack
	peers [SeatsPerTable]Peer

	mu    sync.Mutex
	votes [SeatsPerTable]bool
	ended bool
}

// NewSession seats two peers at a fresh engine.
func NewSession(g *game.Blackjack, p0, p1 Peer) *Session {
	return &Session{
		id:    uuid.NewV4().String(),
		game:  g,
		peers: [SeatsPerTable]Peer{p0, p1},
	}
}

// ID returns the session's identifier.
func (s *Session) ID() string {
	return s.id
}

// Start opens the first round and sends both players their view of it.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	log.Printf("session %s: %q vs %q", s.id, s.peers[0].Name(), s.peers[1].Name())
	s.game.StartRound()
	s.broadcast()
}

// HandleCommand runs one parsed command for a seat. Commands that are
// not legal for the sender in the current state are dropped without a
// reply; the engine's own guards back this up. Rejected bets are the
// exception and get a targeted error.
func (s *Session) HandleCommand(seat int, cmd protocol.Command) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended || seat < 0 || seat >= SeatsPerTable {
		return
	}

	switch cmd.Cmd {
	case protocol.Bet:
		s.placeBet(seat, cmd.Amount)
	case protocol.Hit, protocol.Stand:
		s.play(seat, cmd.Cmd)
	case protocol.RequestNewGame, protocol.AcceptNewGame:
		s.voteNewRound(seat)
	case protocol.DeclineNewGame:
		s.declineNewRound()
	}
}

// HandleDisconnect tears the session down. The first call wins; any
// later disconnect signal for the same session is a no-op.
func (s *Session) HandleDisconnect(seat int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ended || seat < 0 || seat >= SeatsPerTable {
		return
	}
	s.teardown(seat)
}

func (s *Session) placeBet(seat, amount int) {
	if err := s.game.PlaceBet(seat, amount); err != nil {
		s.send(seat, protocol.BettingError(err.Error()))
		return
	}
	log.Printf("session %s: %q bet %d", s.id, s.peers[seat].Name(), amount)
	s.broadcast()
}

func (s *Session) play(seat int, cmd protocol.Cmd) {
	// The engine re-validates; this keeps out-of-turn messages from
	// producing any traffic at all.
	if s.game.State != game.PlayerTurn || s.game.Turn != seat {
		return
	}

	var err error
	if cmd == protocol.Hit {
		err = s.game.Hit(seat)
	} else {
		err = s.game.Stand(seat)
	}
	if err != nil {
		return
	}
	s.broadcast()
}

// voteNewRound records a rematch vote. The round restarts only once
// both seats have voted; a lone vote notifies the other seat and a
// repeat vote from the same seat changes nothing.
func (s *Session) voteNewRound(seat int) {
	if s.votes[seat] {
		return
	}
	s.votes[seat] = true

	if s.votes[0] && s.votes[1] {
		s.votes = [SeatsPerTable]bool{}
		log.Printf("session %s: both players agreed, starting a new round", s.id)
		s.game.StartRound()
		s.broadcast()
		return
	}

	s.send(otherSeat(seat), protocol.NewGameRequested)
}

func (s *Session) declineNewRound() {
	s.votes = [SeatsPerTable]bool{}
	s.send(0, protocol.NewGameDeclined)
	s.send(1, protocol.NewGameDeclined)
}

// broadcast sends every seat its own redacted snapshot. A failed send
// is a dead connection and triggers the same teardown as a failed
// read.
func (s *Session) broadcast() {
	for seat, p := range s.peers {
		if s.ended {
			return
		}
		if err := p.SendSnapshot(s.snapshotFor(seat)); err != nil {
			s.teardown(seat)
			return
		}
	}
}

func (s *Session) send(seat int, msg string) {
	if s.ended {
		return
	}
	if err := s.peers[seat].SendControl(msg); err != nil {
		s.teardown(seat)
	}
}

// teardown ends the session exactly once: the surviving seat is told,
// then both connections are closed. Callers must hold mu and have
// checked s.ended.
func (s *Session) teardown(failed int) {
	s.ended = true
	log.Printf("session %s: %q disconnected, ending session", s.id, s.peers[failed].Name())

	// Best effort; the survivor may be gone too.
	s.peers[otherSeat(failed)].SendControl(protocol.OpponentDisconnected)

	for _, p := range s.peers {
		p.Close()
	}
}

// snapshotFor projects the engine's ground truth into one seat's view.
func (s *Session) snapshotFor(seat int) protocol.Snapshot {
	g := s.game

	snap := protocol.Snapshot{
		Version:     protocol.SnapshotVersion,
		State:       g.State.String(),
		Dealer:      dealerView(g),
		CurrentTurn: g.Turn,
		YourSeat:    seat,
	}

	for _, st := range g.Seats {
		view := protocol.SeatView{
			Name:   st.Name,
			Score:  st.Hand.Score(),
			Money:  st.Money,
			Bet:    st.Bet,
			Result: st.Result.String(),
		}
		for _, c := range st.Hand {
			view.Hand = append(view.Hand, protocol.CardViewOf(c))
		}
		snap.Players = append(snap.Players, view)
	}

	return snap
}

// dealerView hides the dealer's hole card until the dealer plays.
// Before the reveal, the score sums the visible cards only; the full
// hand must never leak into a pre-reveal snapshot.
func dealerView(g *game.Blackjack) protocol.DealerView {
	var view protocol.DealerView

	if g.State == game.DealerTurn || g.State == game.GameOver {
		for _, c := range g.Dealer {
			view.Hand = append(view.Hand, protocol.CardViewOf(c))
		}
		view.Score = g.Dealer.Score()
		return view
	}

	for i, c := range g.Dealer {
		if i == 0 {
			view.Hand = append(view.Hand, protocol.HiddenCard)
			continue
		}
		view.Hand = append(view.Hand, protocol.CardViewOf(c))
		view.Score += c.Value()
	}
	return view
}

func otherSeat(seat int) int {
	return 1 - seat
}
