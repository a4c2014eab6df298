package game

import (
	"fmt"

	"golang.org/x/exp/slices"
)

type MoveType int

const (
	Play MoveType = iota
	UpgradeWonder
	Discard
	PlayFreeDiscarded
)

var moveTypeNames = []string{"PLAY", "UPGRADE_WONDER", "DISCARD", "PLAY_FREE_DISCARDED"}

func (t MoveType) String() string {
	if t < 0 || int(t) >= len(moveTypeNames) {
		return "UNKNOWN"
	}
	return moveTypeNames[t]
}

type Provider int

const (
	LeftPlayer Provider = iota
	RightPlayer
)

func (p Provider) String() string {
	if p == LeftPlayer {
		return "LEFT"
	}
	return "RIGHT"
}

// Transaction buys resources from a neighbour.
type Transaction struct {
	Provider  Provider
	Resources Resources
	Price     int
}

type Transactions []Transaction

func (ts Transactions) Price() int {
	total := 0
	for _, t := range ts {
		total += t.Price
	}
	return total
}

func (ts Transactions) Equal(other Transactions) bool {
	return slices.Equal(ts, other)
}

// TransactionOptions are ordered from cheapest to most expensive.
type TransactionOptions []Transactions

func (opts TransactionOptions) contains(ts Transactions) bool {
	return slices.ContainsFunc(opts, ts.Equal)
}

type MoveKey struct {
	Type     MoveType
	CardName string
}

type PlayerMove struct {
	Type         MoveType
	CardName     string
	Transactions Transactions
}

// Key identifies the move regardless of how it is paid.
func (m PlayerMove) Key() MoveKey {
	return MoveKey{Type: m.Type, CardName: m.CardName}
}

func (m PlayerMove) Equal(other PlayerMove) bool {
	return m.Key() == other.Key() && m.Transactions.Equal(other.Transactions)
}

func (m PlayerMove) String() string {
	return fmt.Sprintf("%s %s", m.Type, m.CardName)
}

// PlayedMove is a resolved move as seen by everyone at the table.
type PlayedMove struct {
	Seat         int
	Type         MoveType
	CardName     string
	Color        Color
	Transactions Transactions
}

func (m PlayedMove) Move() PlayerMove {
	return PlayerMove{Type: m.Type, CardName: m.CardName, Transactions: m.Transactions}
}
