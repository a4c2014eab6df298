package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/R3Kr/seven-wonders/game"
	"github.com/R3Kr/seven-wonders/searcher"
	"github.com/R3Kr/seven-wonders/searcher/agent"

	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// treeDumpDepth is how deep the tree of every search is logged at debug level.
const treeDumpDepth = 1

// MCTSAgent searches a fresh tree on every turn played from hand. Other decisions are left to a
// discard-only policy.
type MCTSAgent struct {
	factory  *DeterministicFactory
	options  []searcher.Option
	fallback agent.Agent
	last     searcher.Result
}

func NewMCTSAgent(factory *DeterministicFactory, options ...searcher.Option) *MCTSAgent {
	return &MCTSAgent{
		factory:  factory,
		options:  options,
		fallback: agent.NewDiscardAgent(),
	}
}

// MoveToPerform searches without a deadline. A failed search means the recorded game and the
// simulator disagree, so it panics.
func (a *MCTSAgent) MoveToPerform(ti game.PlayerTurnInfo) *game.PlayerMove {
	move, err := a.MoveToPerformContext(context.Background(), ti)
	if err != nil {
		panic(fmt.Errorf("seat %d: %w", ti.Seat, err))
	}
	return move
}

func (a *MCTSAgent) MoveToPerformContext(ctx context.Context, ti game.PlayerTurnInfo) (*game.PlayerMove, error) {
	if ti.Action.Kind != game.PlayFromHand {
		return a.fallback.MoveToPerform(ti), nil
	}

	result, err := searcher.NewMCTS(a.options...).Search(ctx, searcher.NewRootState(ti), a.factory.For(ti))
	if err != nil {
		log.Error().Err(err).Msgf("seat %d: search failed", ti.Seat)
		return nil, fmt.Errorf("searching: %w", err)
	}
	a.last = result
	if result.Move == nil && ctx.Err() != nil {
		return nil, ctx.Err()
	}
	log.Debug().Msgf("seat %d: %s after %d episodes", ti.Seat, result.Move, result.Metrics.Episodes)
	if zerolog.GlobalLevel() <= zerolog.DebugLevel && log.Logger.GetLevel() <= zerolog.DebugLevel {
		a.logTree(ti.Seat)
	}
	return result.Move, nil
}

func (a *MCTSAgent) logTree(seat int) {
	var tree strings.Builder
	if err := searcher.PrintTree(&tree, a.last.Tree, treeDumpDepth, termenv.WithProfile(termenv.Ascii)); err != nil {
		log.Error().Err(err).Msg("failed to print search tree")
		return
	}
	log.Debug().Msgf("seat %d search tree:\n%s", seat, tree.String())
}

func (a *MCTSAgent) LastMetrics() searcher.MoveMetrics {
	return a.last.Metrics
}

// LastTree is the tree of the latest search, nil before the first one.
func (a *MCTSAgent) LastTree() *searcher.Tree {
	return a.last.Tree
}
