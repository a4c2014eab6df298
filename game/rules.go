package game

import (
	"fmt"

	"golang.org/x/exp/rand"
	"golang.org/x/exp/slices"
)

const (
	Players        = 3
	CardsPerPlayer = 7
	TurnsPerAge    = CardsPerPlayer - 1
	LastAge        = 3
)

type Settings struct {
	Seed int64
}

// NewRand returns the generator every seeded component of the game uses.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(uint64(seed)))
}

// Decks holds one deck per age, in dealing order.
type Decks [LastAge][]Card

func (d Decks) Age(age int) []Card {
	return d[age-1]
}

// ScrambledFor hides what seat cannot know. The deck of the given age keeps every card that is dealt
// to seat in place and shuffles the other cards among the remaining positions when scrambleAge is
// set. Decks of later ages are shuffled. Earlier ages are left untouched.
func (d Decks) ScrambledFor(seat, age int, scrambleAge bool, rng *rand.Rand) Decks {
	var scrambled Decks
	for i := range d {
		cards := slices.Clone(d[i])
		switch deckAge := i + 1; {
		case deckAge == age && scrambleAge:
			cards = scrambleExcept(cards, seat, len(cards)/CardsPerPlayer, rng)
		case deckAge > age:
			rng.Shuffle(len(cards), func(a, b int) { cards[a], cards[b] = cards[b], cards[a] })
		}
		scrambled[i] = cards
	}
	return scrambled
}

func scrambleExcept(cards []Card, seat, players int, rng *rand.Rand) []Card {
	others := []Card{}
	for i, card := range cards {
		if i%players != seat {
			others = append(others, card)
		}
	}
	rng.Shuffle(len(others), func(a, b int) { others[a], others[b] = others[b], others[a] })

	result := make([]Card, len(cards))
	next := 0
	for i := range cards {
		if i%players == seat {
			result[i] = cards[i]
		} else {
			result[i] = others[next]
			next++
		}
	}
	return result
}

// Definition is the catalogue a game is created from.
type Definition struct {
	wonders []Wonder
	ages    [LastAge][]Card
	guilds  []Card
}

func LoadDefinition() *Definition {
	return &Definition{
		wonders: standardWonders(),
		ages:    [LastAge][]Card{standardAgeOne(), standardAgeTwo(), standardAgeThree()},
		guilds:  standardGuilds(),
	}
}

// WithoutWonders returns a copy of the definition that never deals the named wonders.
func (d *Definition) WithoutWonders(names ...string) *Definition {
	c := *d
	c.wonders = []Wonder{}
	for _, w := range d.wonders {
		if !slices.Contains(names, w.Name) {
			c.wonders = append(c.wonders, w)
		}
	}
	return &c
}

func (d *Definition) Wonders() []Wonder {
	return slices.Clone(d.wonders)
}

func (d *Definition) DealWonders(players int, rng *rand.Rand) []Wonder {
	if players > len(d.wonders) {
		panic(fmt.Sprintf("cannot deal %d wonders out of %d", players, len(d.wonders)))
	}
	wonders := d.Wonders()
	rng.Shuffle(len(wonders), func(a, b int) { wonders[a], wonders[b] = wonders[b], wonders[a] })
	return wonders[:players]
}

// PrepareDecks shuffles every age deck. Age III receives players+2 random guilds.
func (d *Definition) PrepareDecks(players int, rng *rand.Rand) Decks {
	var decks Decks
	for i := range d.ages {
		cards := slices.Clone(d.ages[i])
		if i+1 == LastAge {
			guilds := slices.Clone(d.guilds)
			rng.Shuffle(len(guilds), func(a, b int) { guilds[a], guilds[b] = guilds[b], guilds[a] })
			cards = append(cards, guilds[:min(players+2, len(guilds))]...)
		}
		rng.Shuffle(len(cards), func(a, b int) { cards[a], cards[b] = cards[b], cards[a] })
		decks[i] = cards
	}
	return decks
}

// CreateGame builds a game whose decks only depend on settings.Seed.
func (d *Definition) CreateGame(id int, wonders []Wonder, settings Settings) *Game {
	return NewGame(id, settings, wonders, d.PrepareDecks(len(wonders), NewRand(settings.Seed)))
}
