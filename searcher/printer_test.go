package searcher

import (
	"bytes"
	"strings"
	"testing"

	"github.com/R3Kr/seven-wonders/game"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func TestPrintTree(t *testing.T) {
	tree := NewTree(stateWithMove(game.PlayerMove{}), nil)
	altar := tree.add(tree.Root(), stateWithMove(game.PlayerMove{Type: game.Play, CardName: "Altar"}))
	loom := tree.add(tree.Root(), stateWithMove(game.PlayerMove{Type: game.Discard, CardName: "Loom"}))
	deep := tree.add(altar, stateWithMove(game.PlayerMove{Type: game.Discard, CardName: "Baths"}))
	tree.Backpropagate(deep, Win)
	tree.Backpropagate(loom, Loss)

	t.Run("prints one line per node", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, PrintTree(&buf, tree, 5, termenv.WithProfile(termenv.Ascii)))

		require.Equal(t, strings.Join([]string{
			"1",
			"\t1 (1 visits) PLAY Altar",
			"\t\t1 (1 visits) DISCARD Baths",
			"\t0 (1 visits) DISCARD Loom",
			"",
		}, "\n"), buf.String())
	})

	t.Run("stops at the maximum depth", func(t *testing.T) {
		var buf bytes.Buffer

		require.NoError(t, PrintTree(&buf, tree, 1, termenv.WithProfile(termenv.Ascii)))

		require.NotContains(t, buf.String(), "Baths")
		require.Equal(t, 3, strings.Count(buf.String(), "\n"))
	})
}
