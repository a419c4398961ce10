package server

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"blackjackd/protocol"
)

// Time allowed to write a message to the peer.
const writeWait = 10 * time.Second

// Peer is a connected player: a display name plus a way to reach them.
// Reads belong to the peer's own loop; sends may come from either
// seat's command handling, so implementations must tolerate concurrent
// senders.
type Peer interface {
	Name() string
	ReadCommand() (string, error)
	SendSnapshot(protocol.Snapshot) error
	SendControl(msg string) error
	Close() error
}

type wsPeer struct {
	name string
	conn *websocket.Conn

	mu sync.Mutex // serializes writes
}

func newWSPeer(name string, conn *websocket.Conn) *wsPeer {
	return &wsPeer{name: name, conn: conn}
}

func (p *wsPeer) Name() string {
	return p.name
}

// ReadCommand blocks until the peer's next message arrives.
func (p *wsPeer) ReadCommand() (string, error) {
	_, msg, err := p.conn.ReadMessage()
	if err != nil {
		return "", err
	}
	return string(msg), nil
}

func (p *wsPeer) SendSnapshot(snap protocol.Snapshot) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return p.conn.WriteJSON(snap)
}

func (p *wsPeer) SendControl(msg string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return p.conn.WriteMessage(websocket.TextMessage, []byte(msg))
}

func (p *wsPeer) Close() error {
	return p.conn.Close()
}
