// Command blackjack-cli is a terminal client for the blackjack server.
// It holds no game logic: it renders the snapshots the server sends
// and forwards command strings typed by the player.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"blackjackd/protocol"
)

func main() {
	addr := flag.String("addr", "localhost:12345", "server host:port")
	flag.Parse()

	banner, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("Black", pterm.FgLightWhite.ToStyle()),
		putils.LettersFromStringWithStyle("jack", pterm.FgRed.ToStyle()),
	).Srender()
	if err == nil {
		pterm.Print(banner)
	}

	name, _ := pterm.DefaultInteractiveTextInput.WithDefaultText("Enter your display name").Show()
	name = strings.TrimSpace(name)
	if name == "" {
		pterm.Error.Println("a display name is required")
		os.Exit(1)
	}

	url := fmt.Sprintf("ws://%s/ws", *addr)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		pterm.Error.Printfln("could not connect to %s: %v", url, err)
		os.Exit(1)
	}
	defer conn.Close()

	if err := conn.WriteMessage(websocket.TextMessage, []byte(name)); err != nil {
		pterm.Error.Printfln("handshake failed: %v", err)
		os.Exit(1)
	}

	pterm.Info.Printfln("Connected as %s. Waiting for an opponent...", name)
	pterm.Info.Println("Commands: bet <amount>, hit, stand, new, accept, decline, quit")

	go receive(conn)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		wire, ok := toWire(scanner.Text())
		if !ok {
			continue
		}
		if err := conn.WriteMessage(websocket.TextMessage, []byte(wire)); err != nil {
			pterm.Warning.Println("connection lost")
			return
		}
	}
}

// toWire maps a typed line to its wire command.
func toWire(line string) (string, bool) {
	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return "", false
	}

	switch fields[0] {
	case "hit":
		return protocol.Hit.String(), true
	case "stand":
		return protocol.Stand.String(), true
	case "bet":
		if len(fields) != 2 {
			pterm.Warning.Println("usage: bet <amount>")
			return "", false
		}
		amount, err := strconv.Atoi(fields[1])
		if err != nil {
			pterm.Warning.Println("the bet amount must be a number")
			return "", false
		}
		return protocol.FormatBet(amount), true
	case "new":
		return protocol.RequestNewGame.String(), true
	case "accept":
		return protocol.AcceptNewGame.String(), true
	case "decline":
		return protocol.DeclineNewGame.String(), true
	case "quit", "exit":
		os.Exit(0)
	}

	pterm.Warning.Printfln("unknown command %q", fields[0])
	return "", false
}

func receive(conn *websocket.Conn) {
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			pterm.Warning.Println("connection closed")
			os.Exit(0)
		}

		text := string(msg)
		if !strings.HasPrefix(text, "{") {
			renderControl(text)
			continue
		}

		var snap protocol.Snapshot
		if err := json.Unmarshal(msg, &snap); err != nil {
			pterm.Debug.Printfln("unreadable message from server: %v", err)
			continue
		}
		render(snap)
	}
}

func renderControl(msg string) {
	switch {
	case msg == protocol.OpponentDisconnected:
		pterm.Warning.Println("Your opponent disconnected. The table is closed.")
		os.Exit(0)
	case msg == protocol.NewGameRequested:
		pterm.Info.Println("Your opponent wants a new round. Type accept or decline.")
	case msg == protocol.NewGameDeclined:
		pterm.Info.Println("The new round was declined.")
	case strings.HasPrefix(msg, protocol.BettingErrorPrefix):
		pterm.Error.Println(strings.TrimPrefix(msg, protocol.BettingErrorPrefix))
	default:
		pterm.Info.Println(msg)
	}
}

func render(snap protocol.Snapshot) {
	pterm.DefaultSection.Println(strings.ReplaceAll(snap.State, "_", " "))

	pterm.Printfln("Dealer: %s  (%d)", handLabel(snap.Dealer.Hand), snap.Dealer.Score)
	for i, p := range snap.Players {
		marker := "  "
		if snap.State == protocol.StatePlayerTurn && snap.CurrentTurn == i {
			marker = "> "
		}
		who := p.Name
		if i == snap.YourSeat {
			who += " (you)"
		}
		line := fmt.Sprintf("%s%s: %s  (%d)  $%d, bet $%d", marker, who, handLabel(p.Hand), p.Score, p.Money, p.Bet)
		if p.Result != "" {
			line += "  -> " + p.Result
		}
		pterm.Println(line)
	}

	you := snap.Players[snap.YourSeat]
	switch {
	case snap.State == protocol.StateBetting && you.Bet == 0:
		pterm.Info.Println("Place your bet: bet <amount>")
	case snap.State == protocol.StatePlayerTurn && snap.CurrentTurn == snap.YourSeat:
		pterm.Info.Println("Your move: hit or stand")
	case snap.State == protocol.StateGameOver:
		pterm.Info.Println("Round over. Type new to request another.")
	}
}

func handLabel(hand []protocol.CardView) string {
	if len(hand) == 0 {
		return "-"
	}
	labels := make([]string, 0, len(hand))
	for _, c := range hand {
		labels = append(labels, c.Label())
	}
	return strings.Join(labels, " ")
}
