package experiments

import (
	"context"
	"fmt"
	"time"

	"github.com/R3Kr/seven-wonders/engine"
	"github.com/R3Kr/seven-wonders/experiments/metrics"
	"github.com/R3Kr/seven-wonders/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// mctsSeat is the seat engine.RunGame gives the MCTS agent.
const mctsSeat = 0

// Run plays cfg.Games independent games, at most cfg.Workers at a time, and writes their results.
// It returns the directory the results were written to.
func Run(ctx context.Context, cfg Config) (string, error) {
	runID := uuid.New().String()
	def := game.LoadDefinition().WithoutWonders(cfg.ExcludedWonders...)
	collector := metrics.NewCollector()
	start := time.Now()

	log.Info().Msgf("starting run %s: %d games on %d workers", runID, cfg.Games, cfg.Workers)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for id := 0; id < cfg.Games; id++ {
		id := id
		playouts := cfg.PlayoutsFor(id)
		g.Go(func() error {
			record, searches, err := engine.RunGame(ctx, def, id, playouts)
			if err != nil {
				return err
			}
			collector.Add(record, searches)
			log.Info().Msgf("completed game %d of %d in %s", id+1, cfg.Games, record.Duration)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", fmt.Errorf("run %s: %w", runID, err)
	}

	log.Info().Msgf("completed run %s in %s", runID, time.Since(start))

	return write(cfg.OutputDir, collector, metrics.Summary{
		RunID:     runID,
		StartTime: start,
		Duration:  time.Since(start).String(),
		Games:     cfg.Games,
		Seat:      mctsSeat,
		Bands:     collector.Bands(mctsSeat),
	})
}

func write(dir string, collector *metrics.Collector, summary metrics.Summary) (string, error) {
	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	games := collector.Games()
	if err := writer.WriteScores(games); err != nil {
		return "", err
	}
	if err := writer.WritePlayedMoves(games); err != nil {
		return "", err
	}
	if err := writer.WriteSearchRecords(collector.Searches()); err != nil {
		return "", err
	}
	if err := writer.WriteSummary(summary); err != nil {
		return "", err
	}
	log.Info().Msgf("stored results in %s", writer.Dir())
	return writer.Dir(), nil
}
