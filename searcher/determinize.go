package searcher

import (
	"fmt"

	"github.com/R3Kr/seven-wonders/game"
)

// Replay builds a fresh simulator and plays every move recorded in history.
func Replay(factory SimulatorFactory, history []game.PlayerTurnInfo) (Simulator, error) {
	sim := factory()
	for _, ti := range history {
		for _, played := range ti.Table.LastPlayedMoves {
			if err := sim.PrepareMove(played.Seat, played.Move()); err != nil {
				return nil, fmt.Errorf("replaying %s for seat %d: %w", played.Move(), played.Seat, err)
			}
			if sim.AllPlayersPreparedTheirMove() {
				if err := sim.PlayTurn(); err != nil {
					return nil, fmt.Errorf("replaying turn: %w", err)
				}
			}
		}
	}
	return sim, nil
}

// Determinize reads the opponents' actual hands from a replayed simulator.
func Determinize(factory SimulatorFactory, history []game.PlayerTurnInfo, seats Seats) (Determined, error) {
	sim, err := Replay(factory, history)
	if err != nil {
		return Determined{}, fmt.Errorf("determinizing: %w", err)
	}
	return determinize(sim.CurrentTurnInfo(), seats), nil
}

func determinize(infos []game.PlayerTurnInfo, seats Seats) Determined {
	contexts := map[int]game.PlayerTurnInfo{}
	for _, ti := range infos {
		if ti.Seat == seats.Self {
			continue
		}
		switch ti.Action.Kind {
		case game.PlayFromHand:
			contexts[ti.Seat] = ti
		case game.WatchScore:
			ti.Action.Hand = []game.HandCard{}
			ti.WonderBuildability = game.WonderBuildability{}
			contexts[ti.Seat] = ti
		default:
			panic(fmt.Sprintf("cannot determinize seat %d: unhandled action %s", ti.Seat, ti.Action.Kind))
		}
	}

	first, okFirst := contexts[seats.First]
	second, okSecond := contexts[seats.Second]
	if !okFirst || !okSecond {
		panic(fmt.Sprintf("determinization found %d opponent contexts for seats %d and %d, want 2",
			len(contexts), seats.First, seats.Second))
	}
	return Determined{First: first, Second: second}
}

// observed returns the opponents' contexts when both of them play from hand.
func observed(infos []game.PlayerTurnInfo, seats Seats) (Determined, bool) {
	if len(infos) <= max(seats.First, seats.Second) {
		return Determined{}, false
	}
	first, second := infos[seats.First], infos[seats.Second]
	if first.Action.Kind != game.PlayFromHand || second.Action.Kind != game.PlayFromHand {
		return Determined{}, false
	}
	return Determined{First: first, Second: second}, true
}
