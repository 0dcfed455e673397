package game

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalMove = errors.New("illegal move")
	ErrOutOfBounds = errors.New("position out of bounds")
)

// Player identifies one of the two sides. Player1 always moves first.
type Player int

const (
	NoPlayer Player = iota
	Player1
	Player2
)

func (p Player) Opponent() Player {
	switch p {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return NoPlayer
	}
}

func (p Player) String() string {
	switch p {
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	default:
		return "none"
	}
}

// index maps a player onto its slot in per-player arrays
func (p Player) index() int {
	if p != Player1 && p != Player2 {
		panic(fmt.Sprintf("unexpected player %d", p))
	}
	return int(p) - 1
}

// Position is a (row, column) cell on the board.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Manhattan returns the Manhattan distance between two cells.
func (p Position) Manhattan(other Position) int {
	return abs(p.Row-other.Row) + abs(p.Col-other.Col)
}

// Move is the destination cell of a player's move, or NoMove.
type Move Position

// NoMove is returned when the active player has no legal move.
var NoMove = Move{Row: -1, Col: -1}

func (m Move) IsNone() bool {
	return m == NoMove
}

func (m Move) Position() Position {
	return Position(m)
}

func (m Move) String() string {
	if m.IsNone() {
		return "none"
	}
	return Position(m).String()
}

// knightOffsets fixes the move enumeration order, which is also the tie-break order of the search.
var knightOffsets = [8]Position{
	{-2, -1}, {-2, 1},
	{-1, -2}, {-1, 2},
	{1, -2}, {1, 2},
	{2, -1}, {2, 1},
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
