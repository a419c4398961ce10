package game

import (
	"blackjackd/protocol"
)

// State is the engine's current mode. Exactly one is active at a time
// and it gates which commands the engine accepts.
type State int

const (
	WaitingForPlayers State = iota
	Betting
	Dealing
	PlayerTurn
	DealerTurn
	GameOver
)

var stateNames = []string{
	protocol.StateWaitingForPlayers,
	protocol.StateBetting,
	protocol.StateDealing,
	protocol.StatePlayerTurn,
	protocol.StateDealerTurn,
	protocol.StateGameOver,
}

func (s State) String() string {
	return stateNames[s]
}

// Result is a seat's outcome for the round just played.
type Result int

const (
	NoResult Result = iota
	Win
	Lose
	Push
	BlackjackWin
)

var resultNames = []string{
	"",
	protocol.ResultWin,
	protocol.ResultLose,
	protocol.ResultPush,
	protocol.ResultBlackjack,
}

func (r Result) String() string {
	return resultNames[r]
}
