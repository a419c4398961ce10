package server

import (
	"log"
	"sync"

	"blackjackd/game"
)

// Placement tells a queued connection which session and seat it was
// given.
type Placement struct {
	Session *Session
	Seat    int
}

type waiter struct {
	peer   Peer
	placed chan Placement
}

// Matchmaker pairs handshaken connections first come, first served.
// Its lock covers only the waiting queue and is disjoint from any
// session's lock, so pairing new players never contends with a round
// in progress.
type Matchmaker struct {
	startingMoney int

	mu      sync.Mutex
	waiting []waiter
}

// NewMatchmaker constructs the pairing service. One instance serves
// the whole process.
func NewMatchmaker(cfg Config) *Matchmaker {
	return &Matchmaker{startingMoney: cfg.StartingMoney}
}

// Enqueue adds a named connection to the queue. The returned channel
// yields the peer's placement once an opponent arrives; until then
// nobody reads from the connection.
func (m *Matchmaker) Enqueue(p Peer) <-chan Placement {
	placed := make(chan Placement, 1)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.waiting = append(m.waiting, waiter{peer: p, placed: placed})
	log.Printf("%q is waiting for an opponent (%d of %d seats filled)", p.Name(), len(m.waiting), SeatsPerTable)

	if len(m.waiting) < SeatsPerTable {
		return placed
	}

	w0, w1 := m.waiting[0], m.waiting[1]
	m.waiting = m.waiting[SeatsPerTable:]

	g, err := game.NewBlackjack(game.BlackjackOpts{
		Names:         []string{w0.peer.Name(), w1.peer.Name()},
		StartingMoney: m.startingMoney,
	})
	if err != nil {
		// Unreachable with two named seats; fail closed regardless.
		log.Printf("could not open table for %q and %q: %v", w0.peer.Name(), w1.peer.Name(), err)
		w0.peer.Close()
		w1.peer.Close()
		close(w0.placed)
		close(w1.placed)
		return placed
	}

	sess := NewSession(g, w0.peer, w1.peer)
	sess.Start()

	w0.placed <- Placement{Session: sess, Seat: 0}
	w1.placed <- Placement{Session: sess, Seat: 1}
	return placed
}

// Waiting reports the current queue depth.
func (m *Matchmaker) Waiting() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.waiting)
}
