package game

type WonderStage struct {
	Cost          Resources
	Points        int
	Shields       int
	Coins         int
	Science       Science
	PlayDiscarded bool // the owner may play a discarded card for free once
}

type Wonder struct {
	Name    string
	Initial Resource
	Stages  []WonderStage
}

// Military tracks shields and the tokens won or lost in conflicts.
type Military struct {
	Shields       int
	VictoryPoints int
	DefeatTokens  int
}

func (m Military) Points() int {
	return m.VictoryPoints - m.DefeatTokens
}

// victoryPointsByAge is indexed by age.
var victoryPointsByAge = []int{0, 1, 3, 5}

const startingCoins = 3

type Board struct {
	Seat        int
	Wonder      Wonder
	StagesBuilt int
	Coins       int
	Played      []Card
	Military    Military

	canPlayDiscarded bool
}

func newBoard(seat int, wonder Wonder) *Board {
	return &Board{
		Seat:   seat,
		Wonder: wonder,
		Coins:  startingCoins,
		Played: []Card{},
	}
}

// Production includes the wonder's initial resource.
func (b *Board) Production() Resources {
	p := Of(b.Wonder.Initial)
	for _, card := range b.Played {
		p = p.Plus(card.Production)
	}
	return p
}

func (b *Board) Has(name string) bool {
	for _, card := range b.Played {
		if card.Name == name {
			return true
		}
	}
	return false
}

func (b *Board) countColor(color Color) int {
	n := 0
	for _, card := range b.Played {
		if card.Color == color {
			n++
		}
	}
	return n
}

func (b *Board) nextStage() (WonderStage, bool) {
	if b.StagesBuilt >= len(b.Wonder.Stages) {
		return WonderStage{}, false
	}
	return b.Wonder.Stages[b.StagesBuilt], true
}

func (b *Board) science() []Science {
	symbols := []Science{}
	for _, card := range b.Played {
		if card.Science != NoScience {
			symbols = append(symbols, card.Science)
		}
	}
	for _, stage := range b.Wonder.Stages[:b.StagesBuilt] {
		if stage.Science != NoScience {
			symbols = append(symbols, stage.Science)
		}
	}
	return symbols
}

func leftOf(seat, players int) int {
	return (seat - 1 + players) % players
}

func rightOf(seat, players int) int {
	return (seat + 1) % players
}
