package engine

import (
	"context"
)

// Engine plays one game between two agents.
type Engine interface {
	// Run plays until a player cannot move or forfeits
	Run(ctx context.Context) (GameMetric, []MoveMetric, error)
}
