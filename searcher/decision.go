package searcher

import (
	"fmt"

	"github.com/R3Kr/seven-wonders/game"
	"github.com/R3Kr/seven-wonders/searcher/agent"

	"golang.org/x/exp/slices"
)

// SelectChild descends from id until it expands a new child or reaches a leaf. It reports whether
// the returned node was just expanded.
func (t *Tree) SelectChild(id NodeID) (NodeID, bool, error) {
	for {
		if err := t.enumerate(id); err != nil {
			return id, false, err
		}
		if len(t.nodes[id].pending) > 0 {
			child, err := t.expand(id)
			return child, err == nil, err
		}

		best := t.pickChild(id)
		if best == NoNode { // Leaf
			return id, false, nil
		}
		id = best
	}
}

func (t *Tree) pickChild(id NodeID) NodeID {
	children := t.nodes[id].children
	if len(children) == 0 {
		return NoNode
	}
	best := children[0]
	bestScore := t.UCT(best)
	for _, child := range children[1:] {
		if score := t.UCT(child); score > bestScore {
			best, bestScore = child, score
		}
	}
	return best
}

// enumerate determinizes the node if needed and lists its joint moves, once.
func (t *Tree) enumerate(id NodeID) error {
	if t.nodes[id].enumerated {
		return nil
	}
	state := t.nodes[id].state
	if _, ok := state.Opponents.(Undetermined); ok {
		determined, err := Determinize(t.factory, state.History, state.Seats)
		if err != nil {
			return err
		}
		state.Opponents = determined
		t.nodes[id].state = state
	}
	t.nodes[id].pending = t.jointMoves(state)
	t.nodes[id].enumerated = true
	return nil
}

// jointMoves iterates the first opponent's moves in the outer loop and the searching seat's moves in
// the inner loop.
func (t *Tree) jointMoves(state State) []JointMove {
	opponents, ok := state.Opponents.(Determined)
	if !ok {
		panic("joint moves need determined opponents")
	}
	own := AvailableMoves(state.Hand, state.Current().WonderBuildability)
	first := t.opponentMoves(opponents.First)
	second := t.opponentMoves(opponents.Second)

	moves := make([]JointMove, 0, len(own)*len(first)*len(second))
	for _, f := range first {
		for _, s := range second {
			for _, m := range own {
				moves = append(moves, JointMove{Self: m, First: f, Second: s})
			}
		}
	}
	return moves
}

func (t *Tree) opponentMoves(ti game.PlayerTurnInfo) []game.PlayerMove {
	if t.opponent == nil {
		return AvailableMoves(ti.Action.Hand, ti.WonderBuildability)
	}
	move := t.opponent.MoveToPerform(ti)
	if move == nil {
		return nil
	}
	return []game.PlayerMove{*move}
}

func (t *Tree) expand(id NodeID) (NodeID, error) {
	n := &t.nodes[id]
	move := n.pending[0]
	n.pending = n.pending[1:]

	state, err := t.materialize(n.state, move)
	if err != nil {
		return id, err
	}
	return t.add(id, state), nil
}

// materialize replays the parent, plays the joint move and captures the searching seat's view.
func (t *Tree) materialize(parent State, move JointMove) (State, error) {
	sim, err := Replay(t.factory, parent.History)
	if err != nil {
		return State{}, fmt.Errorf("expanding: %w", err)
	}
	seats := parent.Seats
	for _, p := range []struct {
		seat int
		move game.PlayerMove
	}{{seats.Self, move.Self}, {seats.First, move.First}, {seats.Second, move.Second}} {
		if err := sim.PrepareMove(p.seat, p.move); err != nil {
			return State{}, fmt.Errorf("expanding %s for seat %d: %w", p.move, p.seat, err)
		}
	}
	if err := sim.PlayTurn(); err != nil {
		return State{}, fmt.Errorf("expanding: %w", err)
	}

	history := slices.Clone(parent.History)
	infos := sim.CurrentTurnInfo()
	// Free plays from the discard pile are not searched. Each one is recorded so replays stay aligned.
	for hasFreePlay(infos) {
		history = append(history, infos[seats.Self])
		for _, ti := range infos {
			if move := freePlayer.MoveToPerform(ti); move != nil {
				if err := sim.PrepareMove(ti.Seat, *move); err != nil {
					return State{}, fmt.Errorf("expanding free play for seat %d: %w", ti.Seat, err)
				}
			}
		}
		if err := sim.PlayTurn(); err != nil {
			return State{}, fmt.Errorf("expanding free play: %w", err)
		}
		infos = sim.CurrentTurnInfo()
	}
	self := infos[seats.Self]
	var hand []game.HandCard
	switch self.Action.Kind {
	case game.PlayFromHand:
		hand = self.Action.Hand
	case game.WatchScore:
		hand = []game.HandCard{}
	default:
		panic(fmt.Sprintf("seat %d: unhandled action %s after expansion", seats.Self, self.Action.Kind))
	}

	var opponents Knowledge = Undetermined{}
	if determined, ok := observed(infos, seats); ok {
		opponents = determined
	}
	return State{
		Seats:     seats,
		History:   append(history, self),
		Move:      move.Self,
		Hand:      hand,
		Opponents: opponents,
	}, nil
}

var freePlayer = agent.NewDiscardAgent()

func hasFreePlay(infos []game.PlayerTurnInfo) bool {
	return slices.ContainsFunc(infos, func(ti game.PlayerTurnInfo) bool {
		return ti.Action.Kind == game.PlayFromDiscarded
	})
}
