package searcher

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/R3Kr/seven-wonders/game"
	"github.com/R3Kr/seven-wonders/searcher/agent"

	"github.com/stretchr/testify/require"
)

func rootOf(factory SimulatorFactory, seat int) State {
	return NewRootState(factory().CurrentTurnInfo()[seat])
}

func TestNewMCTS(t *testing.T) {
	require.Panics(t, func() { NewMCTS() }, "A search needs a budget")
	require.Panics(t, func() { NewMCTS(WithEpisodes(0)) }, "A zero budget is no budget")
	require.NotPanics(t, func() { NewMCTS(WithEpisodes(1)) })
}

func TestSearch(t *testing.T) {
	const episodes = 30
	factory := newGameFactory(21)
	root := rootOf(factory, 0)

	t.Run("recommends a legal move", func(t *testing.T) {
		result, err := NewMCTS(WithEpisodes(episodes), WithSeed(1)).Search(context.Background(), root, factory)

		require.NoError(t, err)
		require.NotNil(t, result.Move)
		require.NoError(t, factory().PrepareMove(0, *result.Move), "Recommended move should be legal")
	})

	t.Run("spends every episode below the root", func(t *testing.T) {
		result, err := NewMCTS(WithEpisodes(episodes), WithSeed(1)).Search(context.Background(), root, factory)
		require.NoError(t, err)

		tree := result.Tree
		require.Equal(t, episodes, tree.Visits(tree.Root()))
		visits := 0
		for _, child := range tree.Children(tree.Root()) {
			visits += tree.Visits(child)
		}
		require.Equal(t, episodes, visits, "Every episode should pass through one root child")
		require.Equal(t, episodes+1, tree.Size(), "Every episode should expand one node")
	})

	t.Run("recommends the best policy group", func(t *testing.T) {
		result, err := NewMCTS(WithEpisodes(episodes), WithSeed(1)).Search(context.Background(), root, factory)
		require.NoError(t, err)

		best := result.Policy[0]
		for _, group := range result.Policy[1:] {
			if group.Rewards > best.Rewards {
				best = group
			}
		}
		require.Equal(t, best.Move, *result.Move)
	})

	t.Run("is deterministic for a given seed", func(t *testing.T) {
		r1, err1 := NewMCTS(WithEpisodes(episodes), WithSeed(4)).Search(context.Background(), root, factory)
		r2, err2 := NewMCTS(WithEpisodes(episodes), WithSeed(4)).Search(context.Background(), root, factory)

		require.NoError(t, err1)
		require.NoError(t, err2)
		require.Equal(t, r1.Move, r2.Move)
		require.Equal(t, r1.Policy, r2.Policy, "Same seed should grow the same tree")
	})

	t.Run("observer sees every episode without changing the result", func(t *testing.T) {
		seen := []int{}
		observed, err := NewMCTS(WithEpisodes(episodes), WithSeed(2), WithObserver(func(episode int, tree *Tree) {
			seen = append(seen, episode)
			require.Equal(t, episode+1, tree.Visits(tree.Root()))
		})).Search(context.Background(), root, factory)
		require.NoError(t, err)
		plain, err := NewMCTS(WithEpisodes(episodes), WithSeed(2)).Search(context.Background(), root, factory)
		require.NoError(t, err)

		require.Len(t, seen, episodes)
		require.Equal(t, 0, seen[0])
		require.Equal(t, episodes-1, seen[len(seen)-1])
		require.Equal(t, plain.Move, observed.Move)
	})

	t.Run("collects metrics", func(t *testing.T) {
		result, err := NewMCTS(WithEpisodes(episodes), WithMetrics()).Search(context.Background(), root, factory)
		require.NoError(t, err)

		require.Equal(t, int64(episodes), result.Metrics.Episodes)
		require.Equal(t, int64(episodes), result.Metrics.Expansions)
		require.Equal(t, int64(episodes), result.Metrics.FullPlayouts)
		require.Equal(t, episodes+1, result.Metrics.TreeSize)
		require.False(t, result.Metrics.Interrupted)
	})

	t.Run("cancelled search returns what it has", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		result, err := NewMCTS(WithEpisodes(episodes), WithMetrics()).Search(ctx, root, factory)

		require.NoError(t, err, "Cancellation is not an error")
		require.Nil(t, result.Move, "Nothing was searched")
		require.True(t, result.Metrics.Interrupted)
		require.Equal(t, 1, result.Tree.Size())
	})
}

func TestSearchWithOpponentModel(t *testing.T) {
	factory := newGameFactory(13)
	root := rootOf(factory, 1)
	own := AvailableMoves(root.Hand, root.Current().WonderBuildability)

	result, err := NewMCTS(WithEpisodes(len(own)), WithOpponentModel(agent.NewDiscardAgent())).
		Search(context.Background(), root, factory)

	require.NoError(t, err)
	tree := result.Tree
	require.Len(t, tree.Children(tree.Root()), len(own), "One child per own move")
	require.Equal(t, 0, tree.Pending(tree.Root()), "Every joint move should be expanded")
	for i, child := range tree.Children(tree.Root()) {
		require.Equal(t, own[i], tree.State(child).Move, "Children follow the move order")
		require.Len(t, tree.State(child).History, 2)
		last := tree.State(child).Current().Table.LastPlayedMoves
		for _, played := range last {
			if played.Seat != 1 {
				require.Equal(t, game.Discard, played.Type, "Opponents should follow the model")
			}
		}
	}
}

func TestSearchAtEndOfGame(t *testing.T) {
	factory := newGameFactory(2)
	sim := factory()
	for !sim.EndOfGameReached() {
		playOneTurn(t, sim)
	}
	ti := sim.CurrentTurnInfo()[0]
	history := []game.PlayerTurnInfo{}
	replaying := factory()
	for !replaying.EndOfGameReached() {
		history = append(history, playOneTurn(t, replaying)[0])
	}
	require.Equal(t, ti, history[len(history)-1])
	root := State{Seats: SeatsFor(0), History: history, Hand: []game.HandCard{}, Opponents: Undetermined{}}

	result, err := NewMCTS(WithEpisodes(3)).Search(context.Background(), root, factory)

	require.NoError(t, err)
	require.Nil(t, result.Move, "No move is left to play")
	require.Equal(t, 3, result.Tree.Visits(result.Tree.Root()), "Terminal root is still evaluated")
	require.Equal(t, 0, result.Tree.Rewards(result.Tree.Root()), "A three-way tie is a loss")
}

// twoPlayableFactory deals seat 0 two free cards and five it cannot afford. No wonder is buildable.
func twoPlayableFactory() SimulatorFactory {
	stage := game.WonderStage{Cost: game.Of(game.Loom, game.Loom, game.Loom), Points: 3}
	wonders := []game.Wonder{
		{Name: "North", Initial: game.Wood, Stages: []game.WonderStage{stage}},
		{Name: "East", Initial: game.Wood, Stages: []game.WonderStage{stage}},
		{Name: "West", Initial: game.Wood, Stages: []game.WonderStage{stage}},
	}

	own := []game.Card{
		{Name: "Altar", Color: game.Blue, Age: 1, Points: 2},
		{Name: "Theater", Color: game.Blue, Age: 1, Points: 2},
	}
	for i := 0; i < 5; i++ {
		own = append(own, game.Card{Name: fmt.Sprintf("Vault %d", i), Color: game.Blue, Age: 1, Points: 5, Cost: game.Cost{Coins: 10}})
	}
	var ageOne []game.Card
	for i := 0; i < game.CardsPerPlayer; i++ {
		ageOne = append(ageOne, own[i],
			game.Card{Name: fmt.Sprintf("Statue %d", i), Color: game.Blue, Age: 1, Points: 1},
			game.Card{Name: fmt.Sprintf("Well %d", i), Color: game.Blue, Age: 1, Points: 1})
	}

	decks := game.LoadDefinition().PrepareDecks(game.Players, game.NewRand(50))
	decks[0] = ageOne
	return func() Simulator {
		return game.NewGame(0, game.Settings{Seed: 50}, wonders, decks)
	}
}

func TestSearchWithTwoPlayableCards(t *testing.T) {
	factory := twoPlayableFactory()
	root := rootOf(factory, 0)
	require.False(t, root.Current().WonderBuildability.IsBuildable)

	result, err := NewMCTS(WithEpisodes(50), WithSeed(50)).Search(context.Background(), root, factory)
	require.NoError(t, err)

	plays, discards := 0, 0
	for _, group := range result.Policy {
		switch group.Move.Type {
		case game.Play:
			plays++
			require.Contains(t, []string{"Altar", "Theater"}, group.Move.CardName, "Only free cards are playable")
		case game.Discard:
			discards++
		default:
			t.Fatalf("unexpected move %s", group.Move)
		}
	}
	require.Equal(t, 2, plays, "One group per playable card")
	require.Equal(t, game.CardsPerPlayer, discards, "One discard group per card in hand")

	best := 0
	for i, group := range result.Policy {
		if group.Rewards > result.Policy[best].Rewards {
			best = i
		}
	}
	require.Equal(t, result.Policy[best].Move, *result.Move, "The first group with the greatest reward wins")

	again, err := NewMCTS(WithEpisodes(50), WithSeed(50)).Search(context.Background(), root, factory)
	require.NoError(t, err)
	require.Equal(t, result.Move, again.Move, "Same seed and budget should recommend the same move")
}

// rootChildOf walks up from id to the root's child it descends from.
func rootChildOf(tree *Tree, id NodeID) NodeID {
	for tree.Parent(id) != tree.Root() {
		id = tree.Parent(id)
	}
	return id
}

func TestSearchDescendsByUCT(t *testing.T) {
	const deeper = 40
	factory := newGameFactory(13)
	root := rootOf(factory, 0)
	own := AvailableMoves(root.Hand, root.Current().WonderBuildability)
	episodes := len(own) + deeper

	predicted := NoNode
	descents := 0
	observer := func(episode int, tree *Tree) {
		expanded := NodeID(tree.Size() - 1)
		if predicted != NoNode {
			require.Equal(t, predicted, rootChildOf(tree, expanded),
				"Episode %d should descend into the root child with the greatest UCT", episode)
			require.NotEqual(t, tree.Root(), tree.Parent(expanded), "Root has nothing left to expand")
			descents++
		}
		predicted = NoNode
		if tree.Pending(tree.Root()) > 0 {
			return
		}
		best := math.Inf(-1)
		for _, child := range tree.Children(tree.Root()) {
			if score := tree.UCT(child); score > best {
				predicted, best = child, score
			}
		}
	}

	result, err := NewMCTS(WithEpisodes(episodes), WithOpponentModel(agent.NewDiscardAgent()), WithObserver(observer)).
		Search(context.Background(), root, factory)

	require.NoError(t, err)
	tree := result.Tree
	require.Equal(t, deeper, descents, "Every episode after the root is full should descend")
	require.Equal(t, episodes+1, tree.Size(), "Every episode should expand one node")
	require.Len(t, tree.Children(tree.Root()), len(own))

	grandchildren := 0
	for _, child := range tree.Children(tree.Root()) {
		grandchildren += len(tree.Children(child))
	}
	require.Positive(t, grandchildren, "Descents should expand below the root")
	require.LessOrEqual(t, grandchildren, deeper)
}

// freePlayFactory gives seat 0 a free first stage that plays a card from the discard pile.
func freePlayFactory() SimulatorFactory {
	locked := game.WonderStage{Cost: game.Of(game.Loom, game.Loom, game.Loom), Points: 3}
	wonders := []game.Wonder{
		{Name: "Mausoleum", Initial: game.Loom, Stages: []game.WonderStage{{PlayDiscarded: true}, locked}},
		{Name: "East", Initial: game.Wood, Stages: []game.WonderStage{locked}},
		{Name: "West", Initial: game.Wood, Stages: []game.WonderStage{locked}},
	}
	decks := game.LoadDefinition().PrepareDecks(game.Players, game.NewRand(17))
	return func() Simulator {
		return game.NewGame(0, game.Settings{Seed: 17}, wonders, decks)
	}
}

func TestSearchRecordsFreePlays(t *testing.T) {
	factory := freePlayFactory()
	root := rootOf(factory, 0)
	require.True(t, root.Current().WonderBuildability.IsFree, "The first stage should cost nothing")

	result, err := NewMCTS(WithEpisodes(200), WithOpponentModel(agent.NewDiscardAgent())).
		Search(context.Background(), root, factory)
	require.NoError(t, err)

	tree := result.Tree
	freePlays := 0
	for id := NodeID(0); int(id) < tree.Size(); id++ {
		state := tree.State(id)
		sim, err := Replay(factory, state.History)
		require.NoError(t, err, "Node %d should replay", id)
		require.Equal(t, state.Current(), sim.CurrentTurnInfo()[state.Seats.Self],
			"Replaying node %d should reach its recorded turn info", id)

		for _, ti := range state.History {
			for _, played := range ti.Table.LastPlayedMoves {
				if played.Type == game.PlayFreeDiscarded {
					freePlays++
				}
			}
		}
	}
	require.Positive(t, freePlays, "Upgrading the wonder should lead to a free play in some history")
}
