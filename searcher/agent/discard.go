package agent

import "github.com/R3Kr/seven-wonders/game"

type discardAgent struct{}

// NewDiscardAgent returns an agent that always discards the first card in hand.
func NewDiscardAgent() Agent {
	return discardAgent{}
}

func (discardAgent) MoveToPerform(ti game.PlayerTurnInfo) *game.PlayerMove {
	switch ti.Action.Kind {
	case game.PlayFromHand:
		if len(ti.Action.Hand) == 0 {
			return nil
		}
		return discard(ti.Action.Hand[0])
	case game.PlayFromDiscarded:
		return playFirstDiscarded(ti)
	case game.Wait, game.WatchScore:
		return nil
	default:
		panic(unhandled(ti))
	}
}
