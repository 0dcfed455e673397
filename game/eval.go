package game

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

var ErrUnknownEvaluator = errors.New("unknown evaluator")

// Terminal sentinels. Every heuristic below is finite, so a decided game dominates any
// alpha-beta comparison.
var (
	WinScore  = math.Inf(1)
	LossScore = math.Inf(-1)
)

// Evaluator scores a board from one player's perspective. Implementations must be pure
// functions of the board: the same board always yields the same score.
type Evaluator interface {
	Score(b *Board, player Player) float64
}

// EvaluatorFunc adapts a plain function to Evaluator.
type EvaluatorFunc func(b *Board, player Player) float64

func (f EvaluatorFunc) Score(b *Board, player Player) float64 {
	return f(b, player)
}

var (
	Null       Evaluator = EvaluatorFunc(evaluateNull)
	OpenMove   Evaluator = EvaluatorFunc(evaluateOpenMove)
	Improved   Evaluator = EvaluatorFunc(evaluateImproved)
	Overlap    Evaluator = EvaluatorFunc(evaluateOverlap)
	Proximity  Evaluator = EvaluatorFunc(evaluateProximity)
	BlankAware Evaluator = EvaluatorFunc(evaluateBlankAware)
	Weighted   Evaluator = EvaluatorFunc(evaluateWeighted)
)

var evaluators = map[string]Evaluator{
	"null":        Null,
	"open_move":   OpenMove,
	"improved":    Improved,
	"overlap":     Overlap,
	"proximity":   Proximity,
	"blank_aware": BlankAware,
	"weighted":    Weighted,
}

// EvaluatorByName looks up one of the built-in evaluators.
func EvaluatorByName(name string) (Evaluator, error) {
	e, ok := evaluators[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownEvaluator)
	}
	return e, nil
}

// EvaluatorNames lists the built-in evaluator names in sorted order.
func EvaluatorNames() []string {
	names := make([]string, 0, len(evaluators))
	for name := range evaluators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// utility returns the sentinel score of a decided board
func utility(b *Board, player Player) (float64, bool) {
	if !b.IsTerminal() {
		return 0, false
	}
	if b.ActivePlayer() == player {
		return LossScore, true
	}
	return WinScore, true
}

func evaluateNull(b *Board, player Player) float64 {
	if score, ok := utility(b, player); ok {
		return score
	}
	return 0
}

// evaluateOpenMove counts the player's own legal moves
func evaluateOpenMove(b *Board, player Player) float64 {
	if score, ok := utility(b, player); ok {
		return score
	}
	return float64(b.CountMoves(player))
}

// evaluateImproved is the player's legal-move count minus the opponent's
func evaluateImproved(b *Board, player Player) float64 {
	if score, ok := utility(b, player); ok {
		return score
	}
	return moveDifferential(b, player)
}

// evaluateOverlap counts the player's moves that the opponent cannot also reach
func evaluateOverlap(b *Board, player Player) float64 {
	if score, ok := utility(b, player); ok {
		return score
	}
	own := b.MovesFor(player)
	shared := make(map[Move]bool, len(own))
	for _, m := range b.MovesFor(player.Opponent()) {
		shared[m] = true
	}
	overlap := 0
	for _, m := range own {
		if shared[m] {
			overlap++
		}
	}
	return float64(len(own) - overlap)
}

// evaluateProximity damps the move differential by the distance between the players
func evaluateProximity(b *Board, player Player) float64 {
	if score, ok := utility(b, player); ok {
		return score
	}
	return moveDifferential(b, player) / float64(1+distance(b))
}

// evaluateBlankAware damps the move differential by distance and the remaining blank cells,
// so the same differential weighs more as the board fills up
func evaluateBlankAware(b *Board, player Player) float64 {
	if score, ok := utility(b, player); ok {
		return score
	}
	return moveDifferential(b, player) / float64(1+distance(b)+b.BlankCount())
}

// evaluateWeighted blends the move differential with a proximity/sparsity term. The weight
// shifts from the differential to the proximity term as the board fills.
func evaluateWeighted(b *Board, player Player) float64 {
	if score, ok := utility(b, player); ok {
		return score
	}
	blanks := b.BlankCount()
	fill := 1 - float64(blanks)/float64(b.Rows()*b.Cols())
	features := []float64{
		moveDifferential(b, player),
		1 / float64(1+distance(b)+blanks),
	}
	weights := []float64{1 - fill, fill}
	return floats.Dot(weights, features)
}

func moveDifferential(b *Board, player Player) float64 {
	return float64(b.CountMoves(player) - b.CountMoves(player.Opponent()))
}

// distance is the Manhattan distance between the players, 0 while either is unplaced
func distance(b *Board) int {
	p1, ok1 := b.Location(Player1)
	p2, ok2 := b.Location(Player2)
	if !ok1 || !ok2 {
		return 0
	}
	return p1.Manhattan(p2)
}
