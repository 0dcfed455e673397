package game

import (
	"fmt"
	"strings"
)

// Board is an immutable snapshot of an isolation game. Every move produces a new Board,
// so sibling search branches never share mutable state.
type Board struct {
	rows      int
	cols      int
	occupied  []bool // Indexed by row*cols+col, only ever gains cells
	locations [2]Position
	placed    [2]bool
	active    Player
	plies     int
}

// NewBoard returns an empty rows x cols board with both players unplaced and Player1 to move.
func NewBoard(rows, cols int) *Board {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("invalid board dimensions %dx%d", rows, cols))
	}
	return &Board{
		rows:     rows,
		cols:     cols,
		occupied: make([]bool, rows*cols),
		active:   Player1,
	}
}

func (b *Board) copy() *Board {
	occupied := make([]bool, len(b.occupied))
	copy(occupied, b.occupied)
	return &Board{
		rows:      b.rows,
		cols:      b.cols,
		occupied:  occupied,
		locations: b.locations,
		placed:    b.placed,
		active:    b.active,
		plies:     b.plies,
	}
}

func (b *Board) Rows() int { return b.rows }
func (b *Board) Cols() int { return b.cols }

// Dimensions returns (rows, cols).
func (b *Board) Dimensions() (int, int) { return b.rows, b.cols }

// Plies returns the number of moves applied since the empty board.
func (b *Board) Plies() int { return b.plies }

func (b *Board) ActivePlayer() Player   { return b.active }
func (b *Board) InactivePlayer() Player { return b.active.Opponent() }

func (b *Board) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < b.rows && p.Col >= 0 && p.Col < b.cols
}

func (b *Board) index(p Position) int {
	return p.Row*b.cols + p.Col
}

// IsOccupied reports whether a cell has been visited. Out of bounds cells count as occupied.
func (b *Board) IsOccupied(p Position) bool {
	if !b.InBounds(p) {
		return true
	}
	return b.occupied[b.index(p)]
}

// BlankCount returns the number of unoccupied cells.
func (b *Board) BlankCount() int {
	count := 0
	for _, occupied := range b.occupied {
		if !occupied {
			count++
		}
	}
	return count
}

// BlankSpaces lists the unoccupied cells in row-major order.
func (b *Board) BlankSpaces() []Position {
	blanks := make([]Position, 0, len(b.occupied))
	for i, occupied := range b.occupied {
		if !occupied {
			blanks = append(blanks, Position{Row: i / b.cols, Col: i % b.cols})
		}
	}
	return blanks
}

// Location returns the player's current cell, false if the player has not been placed yet.
func (b *Board) Location(player Player) (Position, bool) {
	i := player.index()
	return b.locations[i], b.placed[i]
}

// LegalMoves returns the active player's legal moves.
func (b *Board) LegalMoves() []Move {
	return b.MovesFor(b.active)
}

// MovesFor returns the player's legal moves in a fixed order: knight offsets in
// lexicographic order, or every blank cell in row-major order for an unplaced player.
func (b *Board) MovesFor(player Player) []Move {
	var moves []Move
	b.eachMove(player, func(m Move) bool {
		moves = append(moves, m)
		return true
	})
	return moves
}

// CountMoves returns len(MovesFor(player)) without allocating.
func (b *Board) CountMoves(player Player) int {
	count := 0
	b.eachMove(player, func(Move) bool {
		count++
		return true
	})
	return count
}

func (b *Board) HasMoves(player Player) bool {
	found := false
	b.eachMove(player, func(Move) bool {
		found = true
		return false
	})
	return found
}

func (b *Board) eachMove(player Player, yield func(Move) bool) {
	from, placed := b.Location(player)
	if !placed {
		for i, occupied := range b.occupied {
			if !occupied && !yield(Move{Row: i / b.cols, Col: i % b.cols}) {
				return
			}
		}
		return
	}
	for _, offset := range knightOffsets {
		to := Position{Row: from.Row + offset.Row, Col: from.Col + offset.Col}
		if !b.IsOccupied(to) && !yield(Move(to)) {
			return
		}
	}
}

// IsLegal reports whether the active player may move to m.
func (b *Board) IsLegal(m Move) bool {
	if m.IsNone() || b.IsOccupied(m.Position()) {
		return false
	}
	from, placed := b.Location(b.active)
	if !placed {
		return true
	}
	dr, dc := abs(m.Row-from.Row), abs(m.Col-from.Col)
	return (dr == 1 && dc == 2) || (dr == 2 && dc == 1)
}

// Apply returns the successor board after the active player moves to m.
func (b *Board) Apply(m Move) (*Board, error) {
	if !b.InBounds(m.Position()) {
		return nil, fmt.Errorf("%s to %s: %w: %w", b.active, m, ErrIllegalMove, ErrOutOfBounds)
	}
	if !b.IsLegal(m) {
		return nil, fmt.Errorf("%s to %s: %w", b.active, m, ErrIllegalMove)
	}
	next := b.copy()
	i := b.active.index()
	next.locations[i] = m.Position()
	next.placed[i] = true
	next.occupied[next.index(m.Position())] = true
	next.active = b.active.Opponent()
	next.plies++
	return next, nil
}

// Play is Apply for callers that only play moves taken from LegalMoves. An illegal move is a
// bug in the caller and panics.
func (b *Board) Play(m Move) *Board {
	next, err := b.Apply(m)
	if err != nil {
		panic(err)
	}
	return next
}

// IsTerminal reports whether the active player has no legal moves, which loses the game.
func (b *Board) IsTerminal() bool {
	return !b.HasMoves(b.active)
}

// Winner returns the winning player of a terminal board and NoPlayer otherwise.
func (b *Board) Winner() Player {
	if b.IsTerminal() {
		return b.InactivePlayer()
	}
	return NoPlayer
}

func (b *Board) IsWinner(player Player) bool {
	return b.Winner() == player
}

func (b *Board) IsLoser(player Player) bool {
	return b.IsTerminal() && b.active == player
}

// String renders the board in the layout accepted by ParseBoard.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			p := Position{Row: r, Col: c}
			switch {
			case b.placed[0] && b.locations[0] == p:
				sb.WriteByte('1')
			case b.placed[1] && b.locations[1] == p:
				sb.WriteByte('2')
			case b.IsOccupied(p):
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
