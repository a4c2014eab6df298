package searcher

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintTree writes one line per node, indented with one tab per depth: the accumulated reward, then
// the visits and the move leading to the node. Nodes deeper than maxDepth are skipped.
func PrintTree(w io.Writer, tree *Tree, maxDepth int, opts ...termenv.OutputOption) error {
	out := termenv.NewOutput(w, opts...)
	return printNode(out, tree, tree.Root(), 0, maxDepth)
}

func printNode(out *termenv.Output, tree *Tree, id NodeID, depth, maxDepth int) error {
	if depth > maxDepth {
		return nil
	}

	reward := out.String(fmt.Sprint(tree.Rewards(id)))
	switch avg := tree.AverageReward(id); {
	case depth == 0:
		reward = reward.Bold()
	case avg >= 0.5:
		reward = reward.Foreground(out.Color("2"))
	case avg > 0:
		reward = reward.Foreground(out.Color("3"))
	default:
		reward = reward.Faint()
	}

	line := strings.Repeat("\t", depth) + reward.String()
	if depth > 0 {
		line += fmt.Sprintf(" (%d visits) %s", tree.Visits(id), tree.State(id).Move)
	}
	if _, err := fmt.Fprintln(out, line); err != nil {
		return err
	}

	for _, child := range tree.Children(id) {
		if err := printNode(out, tree, child, depth+1, maxDepth); err != nil {
			return err
		}
	}
	return nil
}
