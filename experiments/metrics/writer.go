package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/R3Kr/seven-wonders/game"
	"github.com/R3Kr/seven-wonders/searcher"

	"gopkg.in/yaml.v3"
)

// GameRecord is the outcome of one finished game.
type GameRecord struct {
	ID        int
	Playouts  int
	Wonders   []string // by seat
	Scores    game.ScoreBoard
	Moves     []game.PlayedMove // every resolved move, in play order
	StartTime time.Time
	Duration  time.Duration
}

// SearchRecord is one search of an MCTS seat.
type SearchRecord struct {
	Game int // GameRecord.ID
	Step int
	Seat int
	searcher.MoveMetrics
}

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of dir named by the current timestamp.
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(dir, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteScores(records []GameRecord) error {
	header := []string{"gameid", "playouts", "playerindex", "wondername", "boardGold"}
	for c := game.ScoreCategory(0); c < game.NumScoreCategories; c++ {
		header = append(header, c.String())
	}

	rows := [][]string{}
	for _, record := range records {
		for _, score := range record.Scores.Scores {
			row := []string{
				strconv.Itoa(record.ID),
				strconv.Itoa(record.Playouts),
				strconv.Itoa(score.Seat),
				record.Wonders[score.Seat],
				strconv.Itoa(score.BoardGold),
			}
			for _, points := range score.Points {
				row = append(row, strconv.Itoa(points))
			}
			rows = append(rows, row)
		}
	}
	return w.writeCSV("scores.csv", header, rows)
}

func (w *Writer) WritePlayedMoves(records []GameRecord) error {
	rows := [][]string{}
	for _, record := range records {
		for i, move := range record.Moves {
			rows = append(rows, []string{
				strconv.Itoa(record.ID),
				strconv.Itoa(move.Seat),
				strconv.Itoa(i),
				move.Type.String(),
				move.CardName,
			})
		}
	}
	return w.writeCSV("playedmoves.csv", []string{"gameid", "playerindex", "moveid", "movetype", "cardname"}, rows)
}

func (w *Writer) WriteSearchRecords(records []SearchRecord) error {
	header := []string{"game", "step", "seat", "duration", "episodes", "expansions", "full_playouts", "tree_size", "interrupted"}
	rows := [][]string{}
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Seat),
			record.Duration.String(),
			strconv.FormatInt(record.Episodes, 10),
			strconv.FormatInt(record.Expansions, 10),
			strconv.FormatInt(record.FullPlayouts, 10),
			strconv.Itoa(record.TreeSize),
			strconv.FormatBool(record.Interrupted),
		})
	}
	return w.writeCSV("search_records.csv", header, rows)
}

func (w *Writer) WriteSummary(summary Summary) error {
	path := filepath.Join(w.baseDir, "summary.yaml")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer f.Close()

	encoder := yaml.NewEncoder(f)
	defer encoder.Close()
	if err := encoder.Encode(summary); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
