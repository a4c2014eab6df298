package agent

import (
	"github.com/R3Kr/seven-wonders/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns the rollout policy: a uniform choice among playable cards and the wonder
// upgrade, falling back to a random discard.
func NewRandomAgent(seed int64) Agent {
	return &randomAgent{rng: game.NewRand(seed)}
}

func (a *randomAgent) MoveToPerform(ti game.PlayerTurnInfo) *game.PlayerMove {
	switch ti.Action.Kind {
	case game.PlayFromHand:
		hand := ti.Action.Hand
		if len(hand) == 0 {
			return nil
		}
		candidates := []*game.PlayerMove{}
		for _, card := range hand {
			if card.Playability.IsPlayable {
				candidates = append(candidates, play(card))
			}
		}
		if ti.WonderBuildability.IsBuildable {
			candidates = append(candidates, upgrade(hand[0], ti.WonderBuildability))
		}
		if len(candidates) == 0 {
			return discard(hand[a.rng.Intn(len(hand))])
		}
		return candidates[a.rng.Intn(len(candidates))]
	case game.PlayFromDiscarded:
		return playFirstDiscarded(ti)
	case game.Wait, game.WatchScore:
		return nil
	default:
		panic(unhandled(ti))
	}
}
