package protocol

import (
	"errors"
	"strconv"
	"strings"
)

// Cmd identifies a client instruction. The set is closed: anything a
// connection sends either parses to one of these or is rejected at the
// boundary, so nothing downstream branches on raw strings.
type Cmd int

const (
	Null Cmd = iota
	Hit
	Stand
	Bet
	RequestNewGame
	AcceptNewGame
	DeclineNewGame
)

var cmdNames = map[Cmd]string{
	Null:           "",
	Hit:            "HIT",
	Stand:          "STAND",
	Bet:            "BET",
	RequestNewGame: "REQUEST_NEW_GAME",
	AcceptNewGame:  "ACCEPT_NEW_GAME",
	DeclineNewGame: "DECLINE_NEW_GAME",
}

var nameToCmd = map[string]Cmd{
	"HIT":              Hit,
	"STAND":            Stand,
	"REQUEST_NEW_GAME": RequestNewGame,
	"ACCEPT_NEW_GAME":  AcceptNewGame,
	"DECLINE_NEW_GAME": DeclineNewGame,
}

func (c Cmd) String() string {
	return cmdNames[c]
}

// Command is one parsed client instruction. Amount is meaningful for
// Bet only.
type Command struct {
	Cmd    Cmd
	Amount int
}

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadBetAmount   = errors.New("malformed bet amount")
)

const betPrefix = "BET:"

// Parse turns a wire message into a Command. Bets arrive as
// "BET:<positive integer>"; every other command is a bare word.
func Parse(raw string) (Command, error) {
	msg := strings.TrimSpace(raw)

	if strings.HasPrefix(msg, betPrefix) {
		amount, err := strconv.Atoi(strings.TrimPrefix(msg, betPrefix))
		if err != nil {
			return Command{}, ErrBadBetAmount
		}
		return Command{Cmd: Bet, Amount: amount}, nil
	}

	cmd, ok := nameToCmd[msg]
	if !ok {
		return Command{}, ErrUnknownCommand
	}
	return Command{Cmd: cmd}, nil
}

// FormatBet renders a bet command in its wire form.
func FormatBet(amount int) string {
	return betPrefix + strconv.Itoa(amount)
}

// Control messages sent server to client outside of snapshots.
const (
	OpponentDisconnected = "OPPONENT_DISCONNECTED"
	NewGameRequested     = "NEW_GAME_REQUESTED"
	NewGameDeclined      = "NEW_GAME_DECLINED"

	BettingErrorPrefix = "BETTING_ERROR:"
)

// BettingError renders a targeted bet rejection for one seat.
func BettingError(reason string) string {
	return BettingErrorPrefix + reason
}

// Game state names as they appear in a snapshot's state field.
const (
	StateWaitingForPlayers = "WAITING_FOR_PLAYERS"
	StateBetting           = "BETTING"
	StateDealing           = "DEALING"
	StatePlayerTurn        = "PLAYER_TURN"
	StateDealerTurn        = "DEALER_TURN"
	StateGameOver          = "GAME_OVER"
)

// Round outcome labels as they appear in a snapshot's result fields.
// An empty result means the seat's round is still undecided.
const (
	ResultWin       = "WIN"
	ResultLose      = "LOSE"
	ResultPush      = "PUSH"
	ResultBlackjack = "BLACKJACK"
)
