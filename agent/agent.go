package agent

import (
	"isolation/game"
	"isolation/searcher"
	"slices"

	"github.com/rs/zerolog/log"
)

type Agent interface {
	// FindMove returns the move to play on b and the metrics of the search that chose it.
	// timeLeft reports the time remaining in the turn.
	FindMove(b *game.Board, timeLeft searcher.TimeLeft) (game.Move, searcher.SearchMetric)
}

// SearchAgent plays the move chosen by a time-bounded search.
type SearchAgent struct {
	searcher *searcher.Searcher
}

func NewSearchAgent(s *searcher.Searcher) *SearchAgent {
	return &SearchAgent{searcher: s}
}

// GetMove returns a legal move for the active player, or game.NoMove when there is none.
func (a *SearchAgent) GetMove(b *game.Board, timeLeft searcher.TimeLeft) game.Move {
	move, _ := a.FindMove(b, timeLeft)
	return move
}

func (a *SearchAgent) FindMove(b *game.Board, timeLeft searcher.TimeLeft) (game.Move, searcher.SearchMetric) {
	budget := searcher.BudgetFrom(timeLeft)
	result, metric := a.searcher.Search(b, budget)

	legal := b.LegalMoves()
	if len(legal) == 0 {
		return game.NoMove, metric
	}
	if !slices.Contains(legal, result.Move) {
		log.Warn().Msgf("search returned illegal move %s at depth %d, playing %s", result.Move, result.Depth, legal[0])
		return legal[0], metric
	}
	return result.Move, metric
}
