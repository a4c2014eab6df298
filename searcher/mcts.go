package searcher

import (
	"context"
	"fmt"
	"time"

	"github.com/R3Kr/seven-wonders/game"
	"github.com/R3Kr/seven-wonders/searcher/agent"

	"github.com/rs/zerolog/log"
)

type Option func(mcts *MCTS)

// Observer is called after every episode. It must not modify the tree.
type Observer func(episode int, tree *Tree)

type MCTS struct {
	episodes int
	duration time.Duration
	seed     int64
	opponent agent.Agent
	observer Observer
	metrics  MetricsCollector
}

func WithEpisodes(episodes int) Option {
	return func(m *MCTS) {
		if episodes > 0 {
			m.episodes = episodes
		}
	}
}

func WithDuration(duration time.Duration) Option {
	return func(m *MCTS) {
		if duration > 0 {
			m.duration = duration
		}
	}
}

// WithSeed offsets the seed of every rollout.
func WithSeed(seed int64) Option {
	return func(m *MCTS) {
		m.seed = seed
	}
}

// WithOpponentModel replaces the opponents' full move lists with the agent's single choice during
// expansion.
func WithOpponentModel(opponent agent.Agent) Option {
	return func(m *MCTS) {
		m.opponent = opponent
	}
}

func WithObserver(observer Observer) Option {
	return func(m *MCTS) {
		m.observer = observer
	}
}

func WithMetrics() Option {
	return func(m *MCTS) {
		m.metrics = NewMetricsCollector()
	}
}

func NewMCTS(options ...Option) *MCTS {
	m := &MCTS{ // Default values
		metrics: NewNoMetricsCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.episodes <= 0 && m.duration <= 0 {
		panic("Must specify search episodes or duration")
	}
	return m
}

type Result struct {
	Move    *game.PlayerMove // nil when the root has no legal move
	Policy  []MoveReward
	Metrics MoveMetrics
	Tree    *Tree
}

// Search runs episodes from root until the budget is spent or ctx is done. A cancelled search
// still recommends the best move found so far.
func (m *MCTS) Search(ctx context.Context, root State, factory SimulatorFactory) (Result, error) {
	tree := NewTree(root, factory)
	tree.seed = m.seed
	tree.opponent = m.opponent

	m.metrics.Start()
	start := time.Now()
	for episode := 0; m.hasBudget(episode, start); episode++ {
		if ctx.Err() != nil {
			m.metrics.Interrupt()
			log.Debug().Msgf("search interrupted after %d episodes", episode)
			break
		}
		if err := m.simulate(tree); err != nil {
			return Result{}, fmt.Errorf("episode %d: %w", episode, err)
		}
		m.metrics.AddEpisode()
		if m.observer != nil {
			m.observer(episode, tree)
		}
	}
	metrics := m.metrics.Complete()
	metrics.TreeSize = tree.Size()

	result := Result{Policy: tree.Policy(), Metrics: metrics, Tree: tree}
	if move, ok := tree.BestMove(); ok {
		result.Move = &move
	}
	return result, nil
}

func (m *MCTS) hasBudget(episode int, start time.Time) bool {
	if m.episodes > 0 {
		return episode < m.episodes
	}
	return time.Since(start) < m.duration
}

func (m *MCTS) simulate(tree *Tree) error {
	leaf, expanded, err := tree.SelectChild(tree.Root())
	if err != nil {
		return err
	}
	if expanded {
		m.metrics.AddExpansion()
	}
	reward, err := tree.Simulate(leaf)
	if err != nil {
		return err
	}
	m.metrics.AddFullPlayout()
	tree.Backpropagate(leaf, reward)
	return nil
}

// Simulate replays the node and plays random moves for every seat until the game ends. It returns
// Win only when the searching seat is the sole top scorer.
func (t *Tree) Simulate(id NodeID) (int, error) {
	state := t.nodes[id].state
	sim, err := Replay(t.factory, state.History)
	if err != nil {
		return Loss, fmt.Errorf("simulating: %w", err)
	}

	rollout := agent.NewRandomAgent(t.seed + int64(t.nodes[id].visits))
	for !sim.EndOfGameReached() {
		for _, ti := range sim.CurrentTurnInfo() {
			move := rollout.MoveToPerform(ti)
			if move == nil {
				continue
			}
			if err := sim.PrepareMove(ti.Seat, *move); err != nil {
				return Loss, fmt.Errorf("rollout %s for seat %d: %w", move, ti.Seat, err)
			}
		}
		if err := sim.PlayTurn(); err != nil {
			return Loss, fmt.Errorf("rollout: %w", err)
		}
	}

	if sim.ComputeScore().IsSoleWinner(state.Seats.Self) {
		return Win, nil
	}
	return Loss, nil
}
