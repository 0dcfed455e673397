package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	t.Run("empty board with unplaced players", func(t *testing.T) {
		b := NewBoard(3, 4)

		rows, cols := b.Dimensions()
		require.Equal(t, 3, rows)
		require.Equal(t, 4, cols)
		require.Equal(t, 12, b.BlankCount())
		require.Equal(t, Player1, b.ActivePlayer())
		_, placed := b.Location(Player1)
		require.False(t, placed, "Player1 should start unplaced")
		_, placed = b.Location(Player2)
		require.False(t, placed, "Player2 should start unplaced")
	})

	t.Run("panics on empty dimensions", func(t *testing.T) {
		require.Panics(t, func() { NewBoard(0, 3) })
	})
}

func TestLegalMoves(t *testing.T) {
	t.Run("unplaced player may move to any blank cell in row-major order", func(t *testing.T) {
		b := MustParseBoard(`
			#..
			.#.
		`, Player1)

		require.Equal(t, []Move{{0, 1}, {0, 2}, {1, 0}, {1, 2}}, b.LegalMoves())
	})

	t.Run("knight moves in fixed offset order", func(t *testing.T) {
		b := MustParseBoard(`
			.....
			.....
			..1..
			.....
			....2
		`, Player1)

		expected := []Move{
			{0, 1}, {0, 3},
			{1, 0}, {1, 4},
			{3, 0}, {3, 4},
			{4, 1}, {4, 3},
		}
		require.Equal(t, expected, b.LegalMoves())
		require.Equal(t, 8, b.CountMoves(Player1))
	})

	t.Run("occupied and out of bounds destinations are excluded", func(t *testing.T) {
		b := MustParseBoard(`
			1..
			..#
			.#.
		`, Player1)

		require.Empty(t, b.LegalMoves(), "Both knight destinations are occupied")
		require.True(t, b.IsTerminal())
	})

	t.Run("moves jump over occupied cells", func(t *testing.T) {
		b := MustParseBoard(`
			1#.
			##.
			...
		`, Player1)

		require.Equal(t, []Move{{1, 2}, {2, 1}}, b.LegalMoves())
	})
}

func TestApply(t *testing.T) {
	t.Run("move produces a new board and leaves the original untouched", func(t *testing.T) {
		b := MustParseBoard(`
			1....
			.....
			....2
		`, Player1)

		next, err := b.Apply(Move{1, 2})

		require.NoError(t, err)
		loc, _ := next.Location(Player1)
		require.Equal(t, Position{1, 2}, loc)
		require.True(t, next.IsOccupied(Position{0, 0}), "Vacated cell stays occupied")
		require.True(t, next.IsOccupied(Position{1, 2}))
		require.Equal(t, Player2, next.ActivePlayer())
		require.Equal(t, b.Plies()+1, next.Plies())

		loc, _ = b.Location(Player1)
		require.Equal(t, Position{0, 0}, loc, "Original board should not change")
		require.False(t, b.IsOccupied(Position{1, 2}), "Original board should not change")
		require.Equal(t, Player1, b.ActivePlayer())
	})

	t.Run("illegal move returns ErrIllegalMove", func(t *testing.T) {
		b := MustParseBoard(`
			1....
			.....
			.2...
		`, Player1)

		_, err := b.Apply(Move{1, 1})
		require.ErrorIs(t, err, ErrIllegalMove)

		_, err = b.Apply(NoMove)
		require.ErrorIs(t, err, ErrIllegalMove)
		require.ErrorIs(t, err, ErrOutOfBounds)

		_, err = b.Apply(Move{2, 1})
		require.ErrorIs(t, err, ErrIllegalMove, "Opponent's cell is occupied")
	})

	t.Run("play panics on illegal move", func(t *testing.T) {
		b := NewBoard(3, 3).Play(Move{1, 1})

		require.Panics(t, func() { b.Play(Move{1, 1}) })
	})

	t.Run("occupied set only grows", func(t *testing.T) {
		b := NewBoard(5, 5)
		for !b.IsTerminal() {
			before := b.BlankCount()
			b = b.Play(b.LegalMoves()[0])
			require.Equal(t, before-1, b.BlankCount())
		}
	})
}

func TestWinner(t *testing.T) {
	t.Run("active player without moves loses", func(t *testing.T) {
		b := MustParseBoard(`
			1..
			..#
			.#2
		`, Player1)

		require.True(t, b.IsTerminal())
		require.Equal(t, Player2, b.Winner())
		require.True(t, b.IsWinner(Player2))
		require.True(t, b.IsLoser(Player1))
	})

	t.Run("ongoing game has no winner", func(t *testing.T) {
		b := NewBoard(4, 4)

		require.False(t, b.IsTerminal())
		require.Equal(t, NoPlayer, b.Winner())
		require.False(t, b.IsLoser(Player1))
	})
}

func TestParseBoard(t *testing.T) {
	t.Run("round trips through String", func(t *testing.T) {
		layout := "1.#\n.2.\n#..\n"
		b, err := ParseBoard(layout, Player2)

		require.NoError(t, err)
		require.Equal(t, layout, b.String())
		require.Equal(t, Player2, b.ActivePlayer())
		require.Equal(t, 5, b.BlankCount())
	})

	t.Run("rejects malformed layouts", func(t *testing.T) {
		cases := map[string]string{
			"ragged rows":     "...\n..",
			"unknown cell":    "..x",
			"duplicate":       "1.1",
			"empty":           "  \n ",
			"too many digits": "3..",
		}
		for name, layout := range cases {
			_, err := ParseBoard(layout, Player1)
			require.ErrorIs(t, err, ErrInvalidLayout, name)
		}
	})
}
