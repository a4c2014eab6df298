package searcher

import "github.com/R3Kr/seven-wonders/game"

// AvailableMoves lists every playable card, then one wonder upgrade per card when the wonder is
// buildable, then one discard per card. Payments use the first transaction option.
func AvailableMoves(hand []game.HandCard, wonder game.WonderBuildability) []game.PlayerMove {
	moves := []game.PlayerMove{}
	for _, card := range hand {
		if card.Playability.IsPlayable {
			moves = append(moves, game.PlayerMove{
				Type:         game.Play,
				CardName:     card.Name,
				Transactions: card.Playability.TransactionOptions[0],
			})
		}
	}
	if wonder.IsBuildable {
		for _, card := range hand {
			moves = append(moves, game.PlayerMove{
				Type:         game.UpgradeWonder,
				CardName:     card.Name,
				Transactions: wonder.TransactionOptions[0],
			})
		}
	}
	for _, card := range hand {
		moves = append(moves, game.PlayerMove{Type: game.Discard, CardName: card.Name})
	}
	return moves
}
