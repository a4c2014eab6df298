package game

type ScoreCategory int

const (
	Civil ScoreCategory = iota
	MilitaryCategory
	ScienceCategory
	Trade
	Guild
	WonderCategory
	Gold
	NumScoreCategories
)

var categoryNames = [NumScoreCategories]string{"CIVIL", "MILITARY", "SCIENCE", "TRADE", "GUILD", "WONDER", "GOLD"}

func (c ScoreCategory) String() string {
	if c < 0 || c >= NumScoreCategories {
		return "UNKNOWN"
	}
	return categoryNames[c]
}

type PlayerScore struct {
	Seat        int
	BoardGold   int
	Points      [NumScoreCategories]int
	TotalPoints int
}

// ScoreBoard is indexed by seat.
type ScoreBoard struct {
	Scores []PlayerScore
}

// IsSoleWinner reports whether seat scored strictly more than every other seat.
func (s ScoreBoard) IsSoleWinner(seat int) bool {
	mine := s.Scores[seat].TotalPoints
	for _, other := range s.Scores {
		if other.Seat != seat && other.TotalPoints >= mine {
			return false
		}
	}
	return true
}

func (g *Game) ComputeScore() ScoreBoard {
	scores := make([]PlayerScore, len(g.boards))
	for seat, board := range g.boards {
		var points [NumScoreCategories]int
		for _, card := range board.Played {
			switch card.Color {
			case Blue:
				points[Civil] += card.Points
			case Yellow:
				points[Trade] += card.Reward.count(g.boards, seat)
			case Purple:
				points[Guild] += card.Reward.count(g.boards, seat)
			}
		}
		for _, stage := range board.Wonder.Stages[:board.StagesBuilt] {
			points[WonderCategory] += stage.Points
		}
		points[MilitaryCategory] = board.Military.Points()
		points[ScienceCategory] = sciencePoints(board.science())
		points[Gold] = board.Coins / 3

		total := 0
		for _, p := range points {
			total += p
		}
		scores[seat] = PlayerScore{Seat: seat, BoardGold: board.Coins, Points: points, TotalPoints: total}
	}
	return ScoreBoard{Scores: scores}
}

// sciencePoints is the sum of squares per symbol plus 7 per complete set.
func sciencePoints(symbols []Science) int {
	counts := map[Science]int{}
	for _, s := range symbols {
		counts[s]++
	}
	sets := min(counts[Compass], counts[Gear], counts[Tablet])
	return counts[Compass]*counts[Compass] + counts[Gear]*counts[Gear] + counts[Tablet]*counts[Tablet] + 7*sets
}
