package game

import "strings"

type Resource int

const (
	Wood Resource = iota
	Stone
	Ore
	Clay
	Glass
	Loom
	Papyrus
	numResources
)

var resourceNames = [numResources]string{"WOOD", "STONE", "ORE", "CLAY", "GLASS", "LOOM", "PAPYRUS"}

func (r Resource) String() string {
	if r < 0 || r >= numResources {
		return "UNKNOWN"
	}
	return resourceNames[r]
}

// Resources counts units per resource type. It is comparable and iterates in a fixed order.
type Resources [numResources]int

// Of builds a Resources value with one unit per listed resource.
func Of(list ...Resource) Resources {
	var r Resources
	for _, resource := range list {
		r[resource]++
	}
	return r
}

func (r Resources) Plus(other Resources) Resources {
	for i := range r {
		r[i] += other[i]
	}
	return r
}

// Missing returns the units of r that are not covered by available.
func (r Resources) Missing(available Resources) Resources {
	var missing Resources
	for i := range r {
		if d := r[i] - available[i]; d > 0 {
			missing[i] = d
		}
	}
	return missing
}

func (r Resources) Count() int {
	total := 0
	for _, n := range r {
		total += n
	}
	return total
}

func (r Resources) IsEmpty() bool {
	return r.Count() == 0
}

func (r Resources) String() string {
	parts := []string{}
	for i, n := range r {
		for j := 0; j < n; j++ {
			parts = append(parts, Resource(i).String())
		}
	}
	return strings.Join(parts, "+")
}

type Color int

const (
	Brown Color = iota
	Grey
	Yellow
	Blue
	Green
	Red
	Purple
)

var colorNames = []string{"BROWN", "GREY", "YELLOW", "BLUE", "GREEN", "RED", "PURPLE"}

func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return "UNKNOWN"
	}
	return colorNames[c]
}

type Science int

const (
	NoScience Science = iota
	Compass
	Gear
	Tablet
)

type Cost struct {
	Coins     int
	Resources Resources
}

// Bonus counts matching cards (and optionally wonder stages) on the selected boards and multiplies
// the count by Amount.
type Bonus struct {
	Colors       []Color
	WonderStages bool
	Self         bool
	Neighbours   bool
	Amount       int
}

func (b *Bonus) count(boards []*Board, seat int) int {
	if b == nil {
		return 0
	}
	targets := []*Board{}
	if b.Self {
		targets = append(targets, boards[seat])
	}
	if b.Neighbours {
		targets = append(targets, boards[leftOf(seat, len(boards))], boards[rightOf(seat, len(boards))])
	}

	n := 0
	for _, board := range targets {
		for _, card := range board.Played {
			for _, color := range b.Colors {
				if card.Color == color {
					n++
					break
				}
			}
		}
		if b.WonderStages {
			n += board.StagesBuilt
		}
	}
	return n * b.Amount
}

// Card is immutable catalogue data. Cards are identified by name.
type Card struct {
	Name       string
	Color      Color
	Age        int
	Cost       Cost
	Production Resources
	Shields    int
	Points     int
	Coins      int
	Science    Science
	Income     *Bonus // coins granted when played
	Reward     *Bonus // points granted at the end of the game
}

func cardNames(cards []Card) []string {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.Name
	}
	return names
}
