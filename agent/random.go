package agent

import (
	"isolation/game"
	"isolation/searcher"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent returns a baseline agent that plays uniformly random legal moves.
func NewRandomAgent(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(b *game.Board, _ searcher.TimeLeft) (game.Move, searcher.SearchMetric) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return game.NoMove, searcher.SearchMetric{}
	}
	return moves[a.rng.Intn(len(moves))], searcher.SearchMetric{}
}
