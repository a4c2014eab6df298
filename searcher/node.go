package searcher

import (
	"fmt"

	"github.com/R3Kr/seven-wonders/game"
	"github.com/R3Kr/seven-wonders/searcher/agent"

	"golang.org/x/exp/slices"
)

type NodeID int

const NoNode NodeID = -1

// JointMove is one move per seat, prepared together before the turn resolves.
type JointMove struct {
	Self   game.PlayerMove
	First  game.PlayerMove
	Second game.PlayerMove
}

type node struct {
	parent     NodeID
	state      State
	children   []NodeID
	pending    []JointMove
	enumerated bool
	visits     int
	rewards    int
}

// Tree is an arena of nodes. Node 0 is the root. Nodes are never removed during a search.
// A tree must only be used from one goroutine.
type Tree struct {
	factory  SimulatorFactory
	nodes    []node
	seed     int64
	opponent agent.Agent // optional stand-in for the opponents' moves during expansion
}

func NewTree(root State, factory SimulatorFactory) *Tree {
	t := &Tree{factory: factory}
	t.add(NoNode, root)
	return t
}

func (t *Tree) add(parent NodeID, state State) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, node{parent: parent, state: state})
	if parent != NoNode {
		t.nodes[parent].children = append(t.nodes[parent].children, id)
	}
	return id
}

func (t *Tree) Root() NodeID {
	return 0
}

func (t *Tree) Size() int {
	return len(t.nodes)
}

func (t *Tree) Parent(id NodeID) NodeID {
	return t.nodes[id].parent
}

func (t *Tree) Children(id NodeID) []NodeID {
	return slices.Clone(t.nodes[id].children)
}

func (t *Tree) State(id NodeID) State {
	return t.nodes[id].state
}

func (t *Tree) Visits(id NodeID) int {
	return t.nodes[id].visits
}

func (t *Tree) Rewards(id NodeID) int {
	return t.nodes[id].rewards
}

// Pending returns how many joint moves of the node are not expanded yet.
func (t *Tree) Pending(id NodeID) int {
	return len(t.nodes[id].pending)
}

func (t *Tree) AverageReward(id NodeID) float64 {
	n := t.nodes[id]
	if n.visits == 0 {
		return 0
	}
	return float64(n.rewards) / float64(n.visits)
}

// UCT scores a node against its parent's visits. It is undefined for the root.
func (t *Tree) UCT(id NodeID) float64 {
	n := t.nodes[id]
	if n.parent == NoNode {
		panic("UCT is undefined for the root node")
	}
	return newUCB(t.nodes[n.parent].visits).score(n.rewards, n.visits)
}

// Backpropagate adds one visit and the reward to the node and every ancestor.
func (t *Tree) Backpropagate(id NodeID, reward int) {
	if reward != Win && reward != Loss {
		panic(fmt.Sprintf("reward must be %d or %d, got %d", Loss, Win, reward))
	}
	for id != NoNode {
		t.nodes[id].visits++
		t.nodes[id].rewards += reward
		id = t.nodes[id].parent
	}
}

type MoveReward struct {
	Move    game.PlayerMove
	Rewards int
	Visits  int
}

// Policy groups the root's children by move, ignoring payment, in the order they were expanded.
func (t *Tree) Policy() []MoveReward {
	policy := []MoveReward{}
	index := map[game.MoveKey]int{}
	for _, child := range t.nodes[t.Root()].children {
		n := t.nodes[child]
		key := n.state.Move.Key()
		i, ok := index[key]
		if !ok {
			i = len(policy)
			index[key] = i
			policy = append(policy, MoveReward{Move: n.state.Move})
		}
		policy[i].Rewards += n.rewards
		policy[i].Visits += n.visits
	}
	return policy
}

// BestMove returns the move whose group has the highest summed reward. Ties go to the group that
// was expanded first.
func (t *Tree) BestMove() (game.PlayerMove, bool) {
	policy := t.Policy()
	if len(policy) == 0 {
		return game.PlayerMove{}, false
	}
	best := 0
	for i := range policy {
		if policy[i].Rewards > policy[best].Rewards {
			best = i
		}
	}
	return policy[best].Move, true
}
