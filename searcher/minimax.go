package searcher

import "isolation/game"

// minimax returns the best move for the active player and the minimax value of b from the
// root player's perspective. Ties keep the first move in enumeration order.
func (s *search) minimax(b *game.Board, depth int) (game.Move, float64, error) {
	moves, score, stop, err := s.leaf(b, depth)
	if stop {
		return game.NoMove, score, err
	}

	maximizing := b.ActivePlayer() == s.root
	best := game.NoMove
	var bestScore float64
	for _, move := range moves {
		_, score, err := s.minimax(b.Play(move), depth-1)
		if err != nil {
			return game.NoMove, 0, err
		}
		if best.IsNone() ||
			(maximizing && score > bestScore) ||
			(!maximizing && score < bestScore) {
			best, bestScore = move, score
		}
	}
	return best, bestScore, nil
}
