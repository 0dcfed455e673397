package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEvaluatorTerminalSentinels(t *testing.T) {
	// Player1 to move with no legal moves: Player1 lost, Player2 won
	lost := MustParseBoard(`
		1..
		..#
		.#2
	`, Player1)

	for _, name := range EvaluatorNames() {
		e, err := EvaluatorByName(name)
		require.NoError(t, err)

		t.Run(name, func(t *testing.T) {
			require.Equal(t, LossScore, e.Score(lost, Player1), "Loser should get the loss sentinel")
			require.Equal(t, WinScore, e.Score(lost, Player2), "Winner should get the win sentinel")
		})
	}
}

func TestEvaluatorDeterminism(t *testing.T) {
	b := MustParseBoard(`
		.......
		..1....
		.......
		...#...
		.......
		....2..
		.......
	`, Player2)

	for _, name := range EvaluatorNames() {
		e, _ := EvaluatorByName(name)

		t.Run(name, func(t *testing.T) {
			first := e.Score(b, Player1)
			for i := 0; i < 10; i++ {
				require.Equal(t, first, e.Score(b, Player1), "Repeated evaluation should not change")
			}
			require.False(t, math.IsInf(first, 0), "Non-terminal score should be finite")
			require.False(t, math.IsNaN(first))
		})
	}
}

func TestEvaluatorFormulas(t *testing.T) {
	// Player1 at (2,2) has 8 moves, Player2 at (0,0) has (1,2) and (2,1)
	b := MustParseBoard(`
		2....
		.....
		..1..
		.....
		.....
	`, Player1)

	t.Run("null is constant", func(t *testing.T) {
		require.Equal(t, 0.0, Null.Score(b, Player1))
		require.Equal(t, 0.0, Null.Score(b, Player2))
	})

	t.Run("open move counts own moves", func(t *testing.T) {
		require.Equal(t, 8.0, OpenMove.Score(b, Player1))
		require.Equal(t, 2.0, OpenMove.Score(b, Player2))
	})

	t.Run("improved is the move differential", func(t *testing.T) {
		require.Equal(t, 6.0, Improved.Score(b, Player1))
		require.Equal(t, -6.0, Improved.Score(b, Player2))
	})

	t.Run("overlap drops moves the opponent can also reach", func(t *testing.T) {
		// (1,2) is not a knight move from (2,2); nothing is shared here
		require.Equal(t, 8.0, Overlap.Score(b, Player1))

		shared := MustParseBoard(`
			1....
			.....
			.....
			.2...
			.....
		`, Player1)
		// Player1 reaches (1,2),(2,1); Player2 reaches (1,0),(1,2),(2,3),(4,3)
		require.Equal(t, 1.0, Overlap.Score(shared, Player1))
	})

	t.Run("proximity divides by 1 + distance", func(t *testing.T) {
		require.InDelta(t, 6.0/5.0, Proximity.Score(b, Player1), 1e-9)
	})

	t.Run("blank aware divides by 1 + distance + blanks", func(t *testing.T) {
		require.InDelta(t, 6.0/(1+4+23), BlankAware.Score(b, Player1), 1e-9)
	})

	t.Run("weighted favours the differential on an open board", func(t *testing.T) {
		fill := 2.0 / 25.0
		expected := (1-fill)*6.0 + fill*(1.0/(1+4+23))
		require.InDelta(t, expected, Weighted.Score(b, Player1), 1e-9)
	})
}

func TestEvaluatorByName(t *testing.T) {
	t.Run("known name", func(t *testing.T) {
		e, err := EvaluatorByName("improved")
		require.NoError(t, err)
		require.Equal(t, 6.0, e.Score(MustParseBoard("2....\n.....\n..1..\n.....\n.....", Player1), Player1))
	})

	t.Run("unknown name", func(t *testing.T) {
		_, err := EvaluatorByName("clairvoyant")
		require.ErrorIs(t, err, ErrUnknownEvaluator)
	})
}
