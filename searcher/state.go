package searcher

import "github.com/R3Kr/seven-wonders/game"

// Knowledge is either Undetermined or Determined.
type Knowledge interface {
	knowledge()
}

// Undetermined means the opponents' hands have not been read from a replayed simulator yet.
type Undetermined struct{}

// Determined holds the opponents' decision contexts. A seat watching the score has an empty hand.
type Determined struct {
	First  game.PlayerTurnInfo
	Second game.PlayerTurnInfo
}

func (Undetermined) knowledge() {}
func (Determined) knowledge()   {}

// State is the immutable snapshot a node is built around.
type State struct {
	Seats Seats
	// History holds the searching seat's turn infos from the root down to this node. Replaying the
	// played moves of every entry against a fresh simulator reconstructs the node's position.
	History   []game.PlayerTurnInfo
	Move      game.PlayerMove
	Hand      []game.HandCard
	Opponents Knowledge
}

func NewRootState(ti game.PlayerTurnInfo) State {
	return State{
		Seats:     SeatsFor(ti.Seat),
		History:   []game.PlayerTurnInfo{ti},
		Move:      game.PlayerMove{Type: game.Discard},
		Hand:      ti.Action.Hand,
		Opponents: Undetermined{},
	}
}

// Current is the searching seat's turn info at this node.
func (s State) Current() game.PlayerTurnInfo {
	return s.History[len(s.History)-1]
}
