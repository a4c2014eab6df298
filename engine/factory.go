package engine

import (
	"github.com/R3Kr/seven-wonders/game"
	"github.com/R3Kr/seven-wonders/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// DeterministicFactory recreates a game from its seed and the turns played so far. It only exposes
// what the searching seat is allowed to know.
type DeterministicFactory struct {
	def     *game.Definition
	seed    int64
	wonders []game.Wonder
	turns   [][]game.PlayedMove
}

func NewDeterministicFactory(def *game.Definition, seed int64) *DeterministicFactory {
	return &DeterministicFactory{
		def:     def,
		seed:    seed,
		wonders: def.DealWonders(game.Players, game.NewRand(seed)),
	}
}

func (f *DeterministicFactory) Wonders() []game.Wonder {
	return slices.Clone(f.wonders)
}

// Real builds the game everyone actually plays.
func (f *DeterministicFactory) Real() *game.Game {
	return f.def.CreateGame(int(f.seed), f.wonders, game.Settings{Seed: f.seed})
}

// Record appends the moves of a resolved turn.
func (f *DeterministicFactory) Record(moves []game.PlayedMove) {
	f.turns = append(f.turns, slices.Clone(moves))
}

func (f *DeterministicFactory) Turns() int {
	return len(f.turns)
}

// For returns simulators positioned one turn before ti. The turn ti reports in its table is replayed
// by the searcher. Cards the seat has not seen are scrambled: the current age on its first turn and
// every later age.
func (f *DeterministicFactory) For(ti game.PlayerTurnInfo) searcher.SimulatorFactory {
	age := ti.Table.CurrentAge
	firstTurn := len(ti.Action.Hand) == game.CardsPerPlayer
	decks := f.def.PrepareDecks(game.Players, game.NewRand(f.seed)).
		ScrambledFor(ti.Seat, age, firstTurn, game.NewRand(f.seed))

	replayed := slices.Clone(f.turns)
	if len(replayed) > 0 {
		replayed = replayed[:len(replayed)-1]
	}
	return func() searcher.Simulator {
		g := game.NewGame(int(f.seed), game.Settings{Seed: f.seed}, f.wonders, decks)
		for _, turn := range replayed {
			for _, played := range turn {
				if err := g.PrepareMove(played.Seat, played.Move()); err != nil {
					// Recorded turns come from the real game, so this is a broken invariant.
					log.Error().Err(err).Msgf("seat %d cannot replay %s", played.Seat, played.Move())
					panic(err)
				}
			}
			if err := g.PlayTurn(); err != nil {
				log.Error().Err(err).Msg("cannot replay turn")
				panic(err)
			}
		}
		return g
	}
}
