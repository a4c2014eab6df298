package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/R3Kr/seven-wonders/experiments/metrics"
	"github.com/R3Kr/seven-wonders/game"
	"github.com/R3Kr/seven-wonders/searcher"
	"github.com/R3Kr/seven-wonders/searcher/agent"

	"github.com/rs/zerolog/log"
)

type LocalEngine struct {
	id       int
	playouts int
	game     *game.Game
	factory  *DeterministicFactory
	agents   []agent.Agent
}

// NewLocalEngine seats one agent per player of the factory's real game. The game id is the
// factory's seed.
func NewLocalEngine(playouts int, factory *DeterministicFactory, agents []agent.Agent) *LocalEngine {
	g := factory.Real()
	if len(agents) != g.Players() {
		panic(fmt.Sprintf("need %d agents, got %d", g.Players(), len(agents)))
	}
	return &LocalEngine{
		id:       g.ID(),
		playouts: playouts,
		game:     g,
		factory:  factory,
		agents:   agents,
	}
}

// Run executes the game loop until the end of the game.
func (e *LocalEngine) Run(ctx context.Context) (metrics.GameRecord, []metrics.SearchRecord, error) {
	start := time.Now()
	moves := []game.PlayedMove{}
	searches := []metrics.SearchRecord{}
	steps := make([]int, len(e.agents))

	for turn := 0; !e.game.EndOfGameReached(); turn++ {
		if err := ctx.Err(); err != nil {
			return metrics.GameRecord{}, nil, fmt.Errorf("game %d stopped at turn %d: %w", e.id, turn, err)
		}

		for _, ti := range e.game.CurrentTurnInfo() {
			a := e.agents[ti.Seat]
			move, err := e.moveFor(ctx, a, ti)
			if err != nil {
				return metrics.GameRecord{}, nil, fmt.Errorf("game %d seat %d: %w", e.id, ti.Seat, err)
			}
			if mcts, ok := a.(*MCTSAgent); ok && ti.Action.Kind == game.PlayFromHand {
				searches = append(searches, metrics.SearchRecord{
					Game:        e.id,
					Step:        steps[ti.Seat],
					Seat:        ti.Seat,
					MoveMetrics: mcts.LastMetrics(),
				})
				steps[ti.Seat]++
			}
			if move == nil {
				continue
			}
			if err := e.game.PrepareMove(ti.Seat, *move); err != nil {
				log.Error().Err(err).Msgf("game %d: seat %d prepared %s", e.id, ti.Seat, move)
				return metrics.GameRecord{}, nil, fmt.Errorf("game %d seat %d: %w", e.id, ti.Seat, err)
			}
		}
		if err := e.game.PlayTurn(); err != nil {
			return metrics.GameRecord{}, nil, fmt.Errorf("game %d turn %d: %w", e.id, turn, err)
		}

		played := e.game.CurrentTurnInfo()[0].Table.LastPlayedMoves
		e.factory.Record(played)
		moves = append(moves, played...)
	}

	scores := e.game.ComputeScore()
	wonders := []string{}
	for _, w := range e.factory.Wonders() {
		wonders = append(wonders, w.Name)
	}
	log.Info().Msgf("game %d over after %d turns, seat 0 scored %d", e.id, e.factory.Turns(), scores.Scores[0].TotalPoints)

	return metrics.GameRecord{
		ID:        e.id,
		Playouts:  e.playouts,
		Wonders:   wonders,
		Scores:    scores,
		Moves:     moves,
		StartTime: start,
		Duration:  time.Since(start),
	}, searches, nil
}

func (e *LocalEngine) moveFor(ctx context.Context, a agent.Agent, ti game.PlayerTurnInfo) (*game.PlayerMove, error) {
	if c, ok := a.(contextAgent); ok {
		return c.MoveToPerformContext(ctx, ti)
	}
	return a.MoveToPerform(ti), nil
}

// RunGame plays an MCTS agent in seat 0 against two rule-based agents seeded with the game id.
func RunGame(ctx context.Context, def *game.Definition, id, playouts int) (metrics.GameRecord, []metrics.SearchRecord, error) {
	factory := NewDeterministicFactory(def, int64(id))
	agents := []agent.Agent{
		NewMCTSAgent(factory, searcher.WithEpisodes(playouts), searcher.WithSeed(int64(id)), searcher.WithMetrics()),
		agent.NewRuleBasedAgent(int64(id)),
		agent.NewRuleBasedAgent(int64(id)),
	}
	log.Info().Msgf("game %d started with %d playouts", id, playouts)
	return NewLocalEngine(playouts, factory, agents).Run(ctx)
}
