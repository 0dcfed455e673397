package searcher

import (
	"isolation/game"
	"time"
)

type Option func(s *Searcher)

// Searcher picks moves for one agent. A Searcher runs one search at a time; create one per
// agent rather than sharing it across concurrent games.
type Searcher struct {
	evaluator game.Evaluator
	method    Method
	margin    time.Duration
	depth     int // Fixed search depth, 0 for iterative deepening
	metrics   Collector
	progress  func(Result)
}

func WithMethod(method Method) Option {
	return func(s *Searcher) {
		s.method = method
	}
}

func WithMargin(margin time.Duration) Option {
	return func(s *Searcher) {
		if margin >= 0 {
			s.margin = margin
		}
	}
}

// WithFixedDepth disables iterative deepening and searches only the given depth.
func WithFixedDepth(depth int) Option {
	return func(s *Searcher) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.metrics = NewCollector()
	}
}

// WithProgress registers a callback invoked with the result of every completed depth.
func WithProgress(progress func(Result)) Option {
	return func(s *Searcher) {
		s.progress = progress
	}
}

func NewSearcher(evaluator game.Evaluator, options ...Option) *Searcher {
	if evaluator == nil {
		panic("searcher requires an evaluator")
	}
	s := &Searcher{ // Default values
		evaluator: evaluator,
		method:    AlphaBeta,
		margin:    DefaultMargin,
		metrics:   NewDummyCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Searcher) Method() Method            { return s.method }
func (s *Searcher) Margin() time.Duration     { return s.margin }
func (s *Searcher) FixedDepth() int           { return s.depth }
func (s *Searcher) Evaluator() game.Evaluator { return s.evaluator }

// Minimax runs the exhaustive fixed-depth search. It is the reference for AlphaBeta.
func (s *Searcher) Minimax(b *game.Board, depth int, budget *Budget) (Result, error) {
	return s.run(b, depth, budget, Minimax)
}

// AlphaBeta runs the fixed-depth search with alpha-beta pruning.
func (s *Searcher) AlphaBeta(b *game.Board, depth int, budget *Budget) (Result, error) {
	return s.run(b, depth, budget, AlphaBeta)
}

func (s *Searcher) run(b *game.Board, depth int, budget *Budget, method Method) (Result, error) {
	result, _, err := s.newSearch(budget).kernel(method)(b, depth)
	return result, err
}

func (s *Searcher) newSearch(budget *Budget) *search {
	if budget == nil {
		budget = Unbounded()
	}
	return &search{
		evaluator: s.evaluator,
		budget:    budget,
		margin:    s.margin,
		metrics:   s.metrics,
	}
}

// search holds the state of one turn's search
type search struct {
	evaluator game.Evaluator
	budget    *Budget
	margin    time.Duration
	metrics   Collector
	root      game.Player
	truncated bool // Some non-terminal leaf was cut off by the depth limit
}

// kernel returns a fixed-depth search reporting whether the depth limit cut off any leaf
func (s *search) kernel(method Method) func(b *game.Board, depth int) (Result, bool, error) {
	return func(b *game.Board, depth int) (Result, bool, error) {
		s.root = b.ActivePlayer()
		s.truncated = false

		var move game.Move
		var score float64
		var err error
		if method == Minimax {
			move, score, err = s.minimax(b, depth)
		} else {
			move, score, err = s.alphaBeta(b, depth, game.LossScore, game.WinScore)
		}
		if err != nil {
			return Result{}, false, err
		}
		return Result{Move: move, Score: score, Depth: depth}, s.truncated, nil
	}
}

// leaf checks the budget and evaluates the node when the search stops here
func (s *search) leaf(b *game.Board, depth int) (moves []game.Move, score float64, stop bool, err error) {
	if s.budget.Expired(s.margin) {
		return nil, 0, true, ErrBudgetExpired
	}
	s.metrics.AddNode()

	moves = b.LegalMoves()
	if len(moves) == 0 {
		return nil, s.evaluator.Score(b, s.root), true, nil
	}
	if depth <= 0 {
		s.truncated = true
		return nil, s.evaluator.Score(b, s.root), true, nil
	}
	return moves, 0, false, nil
}
