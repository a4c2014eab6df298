package engine

import (
	"context"

	"github.com/R3Kr/seven-wonders/experiments/metrics"
	"github.com/R3Kr/seven-wonders/game"
)

type Engine interface {
	// Run plays a game until its end and returns its record with every search made along the way
	Run(ctx context.Context) (metrics.GameRecord, []metrics.SearchRecord, error)
}

// contextAgent is an agent whose decisions can be cancelled and can fail.
type contextAgent interface {
	MoveToPerformContext(ctx context.Context, ti game.PlayerTurnInfo) (*game.PlayerMove, error)
}
