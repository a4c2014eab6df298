package searcher

import (
	"testing"

	"github.com/R3Kr/seven-wonders/game"

	"github.com/stretchr/testify/require"
)

type mockSimulator struct {
	infos    []game.PlayerTurnInfo
	score    game.ScoreBoard
	ended    bool
	prepared []game.PlayedMove
}

func (m *mockSimulator) PrepareMove(seat int, move game.PlayerMove) error {
	m.prepared = append(m.prepared, game.PlayedMove{Seat: seat, Type: move.Type, CardName: move.CardName})
	return nil
}

func (m *mockSimulator) AllPlayersPreparedTheirMove() bool      { return true }
func (m *mockSimulator) PlayTurn() error                        { return nil }
func (m *mockSimulator) CurrentTurnInfo() []game.PlayerTurnInfo { return m.infos }
func (m *mockSimulator) EndOfGameReached() bool                 { return m.ended }
func (m *mockSimulator) ComputeScore() game.ScoreBoard          { return m.score }

func mockFactory(sim *mockSimulator) SimulatorFactory {
	return func() Simulator { return sim }
}

func stateWithMove(move game.PlayerMove) State {
	return State{Seats: SeatsFor(0), History: []game.PlayerTurnInfo{{}}, Move: move, Opponents: Undetermined{}}
}

func TestBackpropagate(t *testing.T) {
	t.Run("updates a depth-3 leaf and its ancestors only", func(t *testing.T) {
		tree := NewTree(State{}, nil)
		first := tree.add(tree.Root(), State{})
		second := tree.add(first, State{})
		leaf := tree.add(second, State{})
		sibling := tree.add(tree.Root(), State{})
		cousin := tree.add(first, State{})

		tree.Backpropagate(leaf, Win)

		for _, id := range []NodeID{leaf, second, first, tree.Root()} {
			require.Equal(t, 1, tree.Visits(id), "Leaf and ancestors should be visited once")
			require.Equal(t, 1, tree.Rewards(id), "Leaf and ancestors should receive the reward")
		}
		for _, id := range []NodeID{sibling, cousin} {
			require.Equal(t, 0, tree.Visits(id), "Other branches should not change")
			require.Equal(t, 0, tree.Rewards(id), "Other branches should not change")
		}
	})

	t.Run("losses only add visits", func(t *testing.T) {
		tree := NewTree(State{}, nil)
		child := tree.add(tree.Root(), State{})

		tree.Backpropagate(child, Win)
		tree.Backpropagate(child, Loss)

		require.Equal(t, 2, tree.Visits(tree.Root()))
		require.Equal(t, 1, tree.Rewards(tree.Root()))
		require.Equal(t, 0.5, tree.AverageReward(child))
	})

	t.Run("panics on a reward that is not a win or a loss", func(t *testing.T) {
		tree := NewTree(State{}, nil)

		require.Panics(t, func() { tree.Backpropagate(tree.Root(), 2) }, "Rewards are 0 or 1")
	})
}

func TestBestMove(t *testing.T) {
	altar := game.PlayerMove{Type: game.Play, CardName: "Altar", Transactions: game.Transactions{}}
	altarBought := game.PlayerMove{Type: game.Play, CardName: "Altar", Transactions: game.Transactions{
		{Provider: game.RightPlayer, Resources: game.Of(game.Stone), Price: 2},
	}}
	discardAltar := game.PlayerMove{Type: game.Discard, CardName: "Altar"}
	discardLoom := game.PlayerMove{Type: game.Discard, CardName: "Loom"}

	build := func(rewards map[int]int, moves ...game.PlayerMove) *Tree {
		tree := NewTree(State{}, nil)
		for i, move := range moves {
			child := tree.add(tree.Root(), stateWithMove(move))
			tree.nodes[child].visits = 2
			tree.nodes[child].rewards = rewards[i]
		}
		return tree
	}

	t.Run("groups children by move identity", func(t *testing.T) {
		tree := build(map[int]int{0: 1, 1: 1, 2: 1}, altar, discardAltar, altarBought)

		policy := tree.Policy()

		require.Len(t, policy, 2, "Payment should not split a group")
		require.Equal(t, MoveReward{Move: altar, Rewards: 2, Visits: 4}, policy[0])
		require.Equal(t, MoveReward{Move: discardAltar, Rewards: 1, Visits: 2}, policy[1])
	})

	t.Run("picks the group with the highest summed reward", func(t *testing.T) {
		tree := build(map[int]int{0: 1, 1: 0, 2: 2}, altar, discardAltar, discardLoom)

		move, ok := tree.BestMove()

		require.True(t, ok)
		require.Equal(t, discardLoom, move)
	})

	t.Run("breaks ties with the first group", func(t *testing.T) {
		tree := build(map[int]int{0: 1, 1: 1}, discardAltar, altar)

		move, ok := tree.BestMove()

		require.True(t, ok)
		require.Equal(t, discardAltar, move, "First expanded group should win a tie")
	})

	t.Run("no move without children", func(t *testing.T) {
		_, ok := NewTree(State{}, nil).BestMove()

		require.False(t, ok)
	})
}

func TestSimulateAtEndOfGame(t *testing.T) {
	scores := func(totals ...int) game.ScoreBoard {
		board := game.ScoreBoard{}
		for seat, total := range totals {
			board.Scores = append(board.Scores, game.PlayerScore{Seat: seat, TotalPoints: total})
		}
		return board
	}

	tests := []struct {
		name   string
		totals []int
		want   int
	}{
		{"sole top scorer wins", []int{50, 40, 49}, Win},
		{"tie for first is a loss", []int{50, 50, 10}, Loss},
		{"lower score is a loss", []int{30, 40, 20}, Loss},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim := &mockSimulator{ended: true, score: scores(tt.totals...)}
			tree := NewTree(stateWithMove(game.PlayerMove{}), mockFactory(sim))

			got, err := tree.Simulate(tree.Root())

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
