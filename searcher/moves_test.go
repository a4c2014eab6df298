package searcher

import (
	"testing"

	"github.com/R3Kr/seven-wonders/game"

	"github.com/stretchr/testify/require"
)

func handCard(name string, playable bool) game.HandCard {
	card := game.HandCard{Name: name}
	if playable {
		card.Playability = game.Playability{
			IsPlayable:         true,
			TransactionOptions: game.TransactionOptions{game.Transactions{}},
		}
	}
	return card
}

func TestAvailableMoves(t *testing.T) {
	hand := []game.HandCard{handCard("Altar", true), handCard("Baths", false), handCard("Loom", true)}
	buildable := game.WonderBuildability{
		IsBuildable:        true,
		TransactionOptions: game.TransactionOptions{{{Provider: game.LeftPlayer, Resources: game.Of(game.Wood), Price: 2}}},
	}

	t.Run("counts discards, plays and upgrades", func(t *testing.T) {
		moves := AvailableMoves(hand, buildable)

		require.Len(t, moves, len(hand)+2+len(hand), "|hand| discards + 2 plays + |hand| upgrades")
	})

	t.Run("lists plays, upgrades then discards", func(t *testing.T) {
		moves := AvailableMoves(hand, buildable)

		types := []game.MoveType{}
		for _, m := range moves {
			types = append(types, m.Type)
		}
		require.Equal(t, []game.MoveType{
			game.Play, game.Play,
			game.UpgradeWonder, game.UpgradeWonder, game.UpgradeWonder,
			game.Discard, game.Discard, game.Discard,
		}, types)
		require.Equal(t, "Loom", moves[1].CardName, "Plays should follow hand order")
		require.Equal(t, buildable.TransactionOptions[0], moves[2].Transactions, "Upgrades pay with the first option")
	})

	t.Run("skips upgrades when the wonder is not buildable", func(t *testing.T) {
		moves := AvailableMoves(hand, game.WonderBuildability{})

		require.Len(t, moves, len(hand)+2)
	})

	t.Run("is stable", func(t *testing.T) {
		require.Equal(t, AvailableMoves(hand, buildable), AvailableMoves(hand, buildable))
	})

	t.Run("empty hand has no moves", func(t *testing.T) {
		require.Empty(t, AvailableMoves(nil, buildable))
	})
}
