package engine

import (
	"isolation/game"
	"isolation/searcher"
	"time"
)

// Reason records why a game ended.
type Reason int

const (
	NoLegalMove Reason = iota // The loser had no legal move on its turn
	Timeout                   // The loser exceeded the turn limit
	IllegalMove               // The loser played a move outside its legal moves
)

func (r Reason) String() string {
	switch r {
	case NoLegalMove:
		return "no_legal_move"
	case Timeout:
		return "timeout"
	case IllegalMove:
		return "illegal_move"
	default:
		return "unknown"
	}
}

type MoveMetric struct {
	Step   int
	Player game.Player
	Move   game.Move
	searcher.SearchMetric
}

type GameMetric struct {
	Winner     game.Player
	Reason     Reason
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}
