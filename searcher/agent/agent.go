package agent

import (
	"fmt"

	"github.com/R3Kr/seven-wonders/game"
)

type Agent interface {
	// MoveToPerform returns the move for the seat's current decision point, or nil when the seat
	// has nothing to do (waiting or watching the score).
	MoveToPerform(ti game.PlayerTurnInfo) *game.PlayerMove
}

func play(card game.HandCard) *game.PlayerMove {
	return &game.PlayerMove{
		Type:         game.Play,
		CardName:     card.Name,
		Transactions: card.Playability.TransactionOptions[0],
	}
}

func upgrade(card game.HandCard, wonder game.WonderBuildability) *game.PlayerMove {
	return &game.PlayerMove{
		Type:         game.UpgradeWonder,
		CardName:     card.Name,
		Transactions: wonder.TransactionOptions[0],
	}
}

func discard(card game.HandCard) *game.PlayerMove {
	return &game.PlayerMove{Type: game.Discard, CardName: card.Name}
}

// playFirstDiscarded picks the first discarded card the seat has not built yet.
func playFirstDiscarded(ti game.PlayerTurnInfo) *game.PlayerMove {
	built := map[string]bool{}
	for _, name := range ti.Table.Boards[ti.Seat].Played {
		built[name] = true
	}
	for _, card := range ti.Action.Discarded {
		if !built[card.Name] {
			return &game.PlayerMove{Type: game.PlayFreeDiscarded, CardName: card.Name}
		}
	}
	return nil
}

func unhandled(ti game.PlayerTurnInfo) string {
	return fmt.Sprintf("seat %d: unhandled action %s", ti.Seat, ti.Action.Kind)
}
