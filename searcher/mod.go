package searcher

import "github.com/R3Kr/seven-wonders/game"

// Simulator is the rules engine the search replays moves against. *game.Game implements it.
type Simulator interface {
	PrepareMove(seat int, move game.PlayerMove) error
	AllPlayersPreparedTheirMove() bool
	PlayTurn() error
	CurrentTurnInfo() []game.PlayerTurnInfo
	EndOfGameReached() bool
	ComputeScore() game.ScoreBoard
}

// SimulatorFactory must return a simulator in the same initial state on every call.
type SimulatorFactory func() Simulator

// Seats names the searching seat and its two opponents.
type Seats struct {
	Self   int
	First  int
	Second int
}

func SeatsFor(self int) Seats {
	s := Seats{Self: self, First: 0, Second: 2}
	if self == 0 {
		s.First = 1
	}
	if self == 2 {
		s.Second = 1
	}
	return s
}
