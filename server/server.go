package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"

	"blackjackd/protocol"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// GameServer accepts player connections and hands them to the
// matchmaker.
type GameServer struct {
	matchmaker *Matchmaker
	http.Server
}

// NewServer creates a new GameServer
func NewServer(cfg Config, m *Matchmaker) *GameServer {
	s := &GameServer{matchmaker: m}

	router := chi.NewRouter()
	router.Get("/health", s.handleHealth)
	router.Get("/ws", s.handleWS)

	s.Addr = fmt.Sprintf(":%d", cfg.Port)
	s.Handler = handlers.LoggingHandler(os.Stdout, router)

	return s
}

func (g *GameServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// handleWS upgrades the connection, performs the name handshake and
// parks the peer in the matchmaking queue. Once paired, the handler
// goroutine becomes the connection's read loop for the lifetime of
// the session.
func (g *GameServer) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("could not upgrade to websocket: %v", err)
		return
	}

	// First message is the player's display name.
	_, raw, err := conn.ReadMessage()
	if err != nil {
		conn.Close()
		return
	}
	name := strings.TrimSpace(string(raw))
	if name == "" {
		conn.WriteMessage(websocket.TextMessage, []byte("a display name is required"))
		conn.Close()
		return
	}

	peer := newWSPeer(name, conn)
	placement, ok := <-g.matchmaker.Enqueue(peer)
	if !ok {
		return
	}

	readLoop(placement.Session, placement.Seat, peer)
}

// readLoop feeds one peer's messages into its session until the
// connection dies. Messages are parsed exactly once, here at the
// boundary; unintelligible input is dropped, except malformed bets,
// which get a targeted error back.
func readLoop(sess *Session, seat int, peer Peer) {
	for {
		raw, err := peer.ReadCommand()
		if err != nil {
			sess.HandleDisconnect(seat)
			return
		}

		cmd, err := protocol.Parse(raw)
		if err != nil {
			if errors.Is(err, protocol.ErrBadBetAmount) {
				peer.SendControl(protocol.BettingError("bet amount must be a number"))
			}
			continue
		}

		sess.HandleCommand(seat, cmd)
	}
}
