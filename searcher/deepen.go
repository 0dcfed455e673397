package searcher

import (
	"errors"
	"isolation/game"
	"math"

	"github.com/rs/zerolog/log"
)

// Phase is the state of the iterative deepening driver within one turn.
type Phase int

const (
	Idle Phase = iota
	Deepening
	TimedOut
	Done
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Deepening:
		return "deepening"
	case TimedOut:
		return "timed_out"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

// Search returns the move to play on b within budget. It deepens one ply at a time and keeps
// the result of the last depth that ran to completion; a depth interrupted by the budget is
// discarded. Deepening stops early once the result is a proven win or loss. If not even
// depth 1 completes, the first legal move is returned. NoMove is returned only when the
// active player has no legal move.
func (s *Searcher) Search(b *game.Board, budget *Budget) (Result, SearchMetric) {
	s.metrics.Start()
	result, phase := s.deepen(b, budget)
	if phase == TimedOut {
		s.metrics.TimedOut()
	}
	return result, s.metrics.Complete()
}

func (s *Searcher) deepen(b *game.Board, budget *Budget) (Result, Phase) {
	phase := Idle
	turn := s.newSearch(budget)
	root := b.ActivePlayer()

	moves := b.LegalMoves()
	if len(moves) == 0 {
		return Result{Move: game.NoMove, Score: s.evaluator.Score(b, root)}, Done
	}
	// Fallback until a depth completes
	best := Result{Move: moves[0], Score: s.evaluator.Score(b, root)}

	first, last := 1, math.MaxInt
	if s.depth > 0 {
		first, last = s.depth, s.depth
	}

	kernel := turn.kernel(s.method)
	phase = Deepening
	for depth := first; depth <= last; depth++ {
		result, truncated, err := kernel(b, depth)
		if errors.Is(err, ErrBudgetExpired) {
			phase = TimedOut
			log.Debug().
				Int("depth", depth).
				Int("completed", best.Depth).
				Dur("elapsed", turn.budget.Elapsed()).
				Msg("search budget expired")
			break
		}

		best = result
		s.metrics.CompleteDepth(depth)
		log.Debug().
			Int("depth", depth).
			Stringer("move", result.Move).
			Float64("score", result.Score).
			Dur("elapsed", turn.budget.Elapsed()).
			Msg("depth complete")
		if s.progress != nil {
			s.progress(result)
		}

		// Nothing was cut off by the depth limit, so deeper searches see the same tree.
		// A decided score cannot change with depth either.
		if !truncated || math.IsInf(result.Score, 0) {
			break
		}
	}

	if phase == Deepening {
		phase = Done
	}
	return best, phase
}
