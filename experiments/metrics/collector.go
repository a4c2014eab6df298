package metrics

import (
	"cmp"
	"sync"
	"time"

	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
)

// Band summarizes the games played with the same number of playouts.
type Band struct {
	Playouts     int     `yaml:"playouts"`
	Games        int     `yaml:"games"`
	WinRate      float64 `yaml:"win_rate"`
	MeanPoints   float64 `yaml:"mean_points"`
	StdDevPoints float64 `yaml:"stddev_points"`
}

type Summary struct {
	RunID     string    `yaml:"run_id"`
	StartTime time.Time `yaml:"start_time"`
	Duration  string    `yaml:"duration"`
	Games     int       `yaml:"games"`
	Seat      int       `yaml:"mcts_seat"`
	Bands     []Band    `yaml:"bands"`
}

// Collector gathers records from concurrent games.
type Collector struct {
	mu       sync.Mutex
	games    []GameRecord
	searches []SearchRecord
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Add(record GameRecord, searches []SearchRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.games = append(c.games, record)
	c.searches = append(c.searches, searches...)
}

// Games returns the records ordered by game id.
func (c *Collector) Games() []GameRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	games := slices.Clone(c.games)
	slices.SortFunc(games, func(a, b GameRecord) int { return cmp.Compare(a.ID, b.ID) })
	return games
}

// Searches returns the records ordered by game, seat and step.
func (c *Collector) Searches() []SearchRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	searches := slices.Clone(c.searches)
	slices.SortFunc(searches, func(a, b SearchRecord) int {
		if n := cmp.Compare(a.Game, b.Game); n != 0 {
			return n
		}
		if n := cmp.Compare(a.Seat, b.Seat); n != 0 {
			return n
		}
		return cmp.Compare(a.Step, b.Step)
	})
	return searches
}

// Bands summarizes seat's results per playout count, in ascending playouts. Only a sole top score
// counts as a win.
func (c *Collector) Bands(seat int) []Band {
	byPlayouts := map[int][]GameRecord{}
	for _, record := range c.Games() {
		byPlayouts[record.Playouts] = append(byPlayouts[record.Playouts], record)
	}
	playouts := []int{}
	for p := range byPlayouts {
		playouts = append(playouts, p)
	}
	slices.Sort(playouts)

	bands := []Band{}
	for _, p := range playouts {
		records := byPlayouts[p]
		points := make([]float64, len(records))
		wins := make([]float64, len(records))
		for i, record := range records {
			points[i] = float64(record.Scores.Scores[seat].TotalPoints)
			if record.Scores.IsSoleWinner(seat) {
				wins[i] = 1
			}
		}
		band := Band{Playouts: p, Games: len(records), WinRate: stat.Mean(wins, nil)}
		if len(points) > 1 {
			band.MeanPoints, band.StdDevPoints = stat.MeanStdDev(points, nil)
		} else {
			band.MeanPoints = points[0]
		}
		bands = append(bands, band)
	}
	return bands
}
