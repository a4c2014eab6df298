package searcher

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUCB(t *testing.T) {
	t.Run("panics with zero parent visits", func(t *testing.T) {
		require.Panics(t, func() {
			newUCB(0)
		}, "Should panic when N is 0")
	})

	t.Run("panics with zero child visits", func(t *testing.T) {
		require.Panics(t, func() {
			newUCB(10).score(1, 0)
		}, "Should panic when n is 0")
	})

	t.Run("computing UCB value", func(t *testing.T) {
		got := newUCB(100).score(5, 10)

		expected := 5.0/10 + ExploreConstant*math.Sqrt(2*math.Log(100)/10)
		require.InDelta(t, expected, got, 0.0001,
			"Should compute avg + C*sqrt(2*ln(N)/n)")
	})

	t.Run("exploration term decreases with child visits", func(t *testing.T) {
		u := newUCB(100)

		require.Greater(t, u.score(5, 10), u.score(10, 20),
			"More child visits should decrease exploration term")
	})
}

func TestTreeUCT(t *testing.T) {
	t.Run("panics on the root", func(t *testing.T) {
		tree := NewTree(State{}, nil)
		tree.Backpropagate(tree.Root(), Win)

		require.Panics(t, func() {
			tree.UCT(tree.Root())
		}, "UCT is undefined for the root")
	})

	t.Run("scores a visited child", func(t *testing.T) {
		tree := NewTree(State{}, nil)
		child := tree.add(tree.Root(), State{})
		tree.Backpropagate(child, Win)
		tree.Backpropagate(tree.Root(), Loss)

		expected := 1.0 + ExploreConstant*math.Sqrt(2*math.Log(2))
		require.InDelta(t, expected, tree.UCT(child), 0.0001)
	})

	t.Run("panics on an unvisited child", func(t *testing.T) {
		tree := NewTree(State{}, nil)
		child := tree.add(tree.Root(), State{})
		tree.Backpropagate(tree.Root(), Win)

		require.Panics(t, func() { tree.UCT(child) })
	})
}
