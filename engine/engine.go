package engine

import (
	"context"
	"gametree/experiments/metrics"
	"gametree/game"
)

// MaxMoves bounds a game; a tic-tac-toe game always ends before.
const MaxMoves = game.Cells

type Engine interface {
	// Run plays a game until it is over and returns the winner (game.Empty for a draw)
	Run(ctx context.Context) (winner game.Mark, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
