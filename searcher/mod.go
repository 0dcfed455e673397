package searcher

import (
	"errors"
	"fmt"
	"isolation/game"
	"time"
)

// DefaultMargin is the time kept in reserve to unwind the search and return a move.
const DefaultMargin = 10 * time.Millisecond

// ErrBudgetExpired aborts a search in progress. Only the iterative deepening driver consumes it.
var ErrBudgetExpired = errors.New("search budget expired")

var ErrUnknownMethod = errors.New("unknown search method")

// Method selects the fixed-depth search kernel.
type Method int

const (
	AlphaBeta Method = iota
	Minimax
)

func (m Method) String() string {
	switch m {
	case AlphaBeta:
		return "alphabeta"
	case Minimax:
		return "minimax"
	default:
		return fmt.Sprintf("method(%d)", int(m))
	}
}

func ParseMethod(name string) (Method, error) {
	switch name {
	case "alphabeta", "":
		return AlphaBeta, nil
	case "minimax":
		return Minimax, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownMethod)
	}
}

// Result is the outcome of one search: the chosen move, its score from the root player's
// perspective and the depth that produced it. Depth 0 means no depth completed.
type Result struct {
	Move  game.Move
	Score float64
	Depth int
}
