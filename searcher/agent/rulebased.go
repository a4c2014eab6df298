package agent

import (
	"github.com/R3Kr/seven-wonders/game"

	"golang.org/x/exp/rand"
)

// Lower wins.
const (
	priorityMilitary    = 1
	priorityRawEarly    = 2
	priorityCivil       = 3
	priorityScience     = 4
	priorityGuild       = 4
	priorityResources   = 5
	priorityNotRelevant = -1
)

type ruleBasedAgent struct {
	rng *rand.Rand
}

func NewRuleBasedAgent(seed int64) Agent {
	return &ruleBasedAgent{rng: game.NewRand(seed)}
}

func (a *ruleBasedAgent) MoveToPerform(ti game.PlayerTurnInfo) *game.PlayerMove {
	switch ti.Action.Kind {
	case game.PlayFromHand:
		hand := ti.Action.Hand
		if len(hand) == 0 {
			return nil
		}
		wonder := ti.WonderBuildability
		if wonder.IsBuildable && (wonder.IsFree || a.rng.Intn(2) == 0) {
			return upgrade(hand[0], wonder)
		}
		return a.pickCard(ti)
	case game.PlayFromDiscarded:
		return playFirstDiscarded(ti)
	case game.Wait, game.WatchScore:
		return nil
	default:
		panic(unhandled(ti))
	}
}

func (a *ruleBasedAgent) pickCard(ti game.PlayerTurnInfo) *game.PlayerMove {
	mine := ti.Table.Boards[ti.Seat].Military.Shields
	strongest := 0
	for _, board := range ti.Table.Boards {
		if board.Seat != ti.Seat && board.Military.Shields > strongest {
			strongest = board.Military.Shields
		}
	}

	best := -1
	bestPriority := 0
	for i, card := range ti.Action.Hand {
		if !card.Playability.IsPlayable {
			continue
		}
		p := a.priority(card.Color, strongest > mine)
		if p == priorityNotRelevant {
			continue
		}
		if best < 0 || p < bestPriority {
			best, bestPriority = i, p
		}
	}

	if best < 0 {
		return discard(ti.Action.Hand[0])
	}
	return play(ti.Action.Hand[best])
}

func (a *ruleBasedAgent) priority(color game.Color, behindInShields bool) int {
	switch color {
	case game.Brown:
		if a.rng.Intn(2) == 0 {
			return priorityRawEarly
		}
		return priorityResources
	case game.Grey, game.Yellow:
		return priorityResources
	case game.Red:
		if behindInShields {
			return priorityMilitary
		}
		return priorityNotRelevant
	case game.Blue:
		return priorityCivil
	case game.Green:
		return priorityScience
	case game.Purple:
		return priorityGuild
	}
	return priorityNotRelevant
}
