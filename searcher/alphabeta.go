package searcher

import "isolation/game"

// alphaBeta computes the same move and value as minimax while skipping subtrees that cannot
// change the result. alpha is the score the maximizing side is already guaranteed, beta the
// score the minimizing side is already guaranteed.
func (s *search) alphaBeta(b *game.Board, depth int, alpha, beta float64) (game.Move, float64, error) {
	moves, score, stop, err := s.leaf(b, depth)
	if stop {
		return game.NoMove, score, err
	}

	maximizing := b.ActivePlayer() == s.root
	best := game.NoMove
	var bestScore float64
	for _, move := range moves {
		_, score, err := s.alphaBeta(b.Play(move), depth-1, alpha, beta)
		if err != nil {
			return game.NoMove, 0, err
		}

		// Strictly better only, so ties resolve to the first move like minimax
		if maximizing {
			if best.IsNone() || score > bestScore {
				best, bestScore = move, score
			}
			if bestScore > alpha {
				alpha = bestScore
			}
		} else {
			if best.IsNone() || score < bestScore {
				best, bestScore = move, score
			}
			if bestScore < beta {
				beta = bestScore
			}
		}

		if alpha >= beta {
			s.metrics.AddPrune()
			break
		}
	}
	return best, bestScore, nil
}
