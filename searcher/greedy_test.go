package searcher

import (
	"ataxx/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func pos(row, col int) game.Position {
	return game.Position{Row: row, Col: col}
}

func mv(r1, c1, r2, c2 int) game.Move {
	return game.Move{From: pos(r1, c1), To: pos(r2, c2)}
}

func board(t *testing.T, turn game.Cell, rows ...string) *game.Board {
	t.Helper()
	b, err := game.NewBoardFromRows(turn, rows...)
	require.NoError(t, err)
	return b
}

// Eight Player 2 pieces around (1,1), reachable only by a jump from (3,3).
func dominantCapture(t *testing.T) *game.Board {
	return board(t, game.Player1,
		"2222100",
		"2.22100",
		"2222100",
		"2221100",
		"1111100",
		"0000000",
		"0000000",
	)
}

func midGame(t *testing.T) *game.Board {
	b := game.NewBoard()
	r := NewSeededRandom(3)
	for i := 0; i < 6; i++ {
		m, err := r.FindMove(b)
		require.NoError(t, err)
		require.NoError(t, b.Play(m))
	}
	require.False(t, b.GameOver())
	return b
}

func TestNewGreedy(t *testing.T) {
	for _, depth := range []int{0, -1, MaxDepth + 1} {
		_, err := NewGreedy(depth)
		require.ErrorIs(t, err, ErrUnsupportedDepth, "Depth %d should be rejected", depth)
	}
	for depth := 1; depth <= MaxDepth; depth++ {
		g, err := NewGreedy(depth)
		require.NoError(t, err)
		require.Equal(t, depth, g.Depth())
	}
}

func TestGreedySearch(t *testing.T) {
	t.Run("depth one takes the biggest capture", func(t *testing.T) {
		g, err := NewGreedy(1)
		require.NoError(t, err)

		result, err := g.Search(dominantCapture(t))

		require.NoError(t, err)
		require.Equal(t, mv(3, 3, 1, 1), result.Move)
		require.Equal(t, 12, result.Score, "Player 1 should lead 18 to 6")
	})

	t.Run("ties go to the first move", func(t *testing.T) {
		g, err := NewGreedy(1)
		require.NoError(t, err)

		result, err := g.Search(game.NewBoard())

		require.NoError(t, err)
		require.Equal(t, mv(0, 0, 0, 1), result.Move, "Every clone scores 1, the first one should win")
		require.Equal(t, 1, result.Score)
	})

	t.Run("depth two sees a win", func(t *testing.T) {
		b := board(t, game.Player1,
			"1......",
			".2.....",
			".......",
			".......",
			".......",
			".......",
			".......",
		)

		shallow, err := NewGreedy(1)
		require.NoError(t, err)
		result, err := shallow.Search(b)
		require.NoError(t, err)
		require.Equal(t, mv(0, 0, 0, 1), result.Move)
		require.Equal(t, 3, result.Score)

		deep, err := NewGreedy(2)
		require.NoError(t, err)
		result, err = deep.Search(b)
		require.NoError(t, err)
		require.Equal(t, mv(0, 0, 0, 1), result.Move)
		require.Equal(t, Win, result.Score, "Leaving Player 2 without pieces should be a win")
	})

	t.Run("no legal moves", func(t *testing.T) {
		b := board(t, game.Player2,
			"2222222",
			"2222222",
			"1111111",
			"1111111",
			".......",
			".......",
			".......",
		)
		g, err := NewGreedy(2)
		require.NoError(t, err)

		_, err = g.Search(b)

		require.ErrorIs(t, err, ErrNoLegalMoves)
	})

	t.Run("search leaves the board untouched", func(t *testing.T) {
		b := midGame(t)
		before := b.Copy()
		g, err := NewGreedy(3)
		require.NoError(t, err)

		_, err = g.Search(b)

		require.NoError(t, err)
		require.Equal(t, before, b)
	})
}

func TestTerminalValue(t *testing.T) {
	t.Run("draw", func(t *testing.T) {
		b := board(t, game.Player2,
			"2222222",
			"2222222",
			"1111111",
			"1111111",
			".......",
			".......",
			".......",
		)
		g, err := NewGreedy(1)
		require.NoError(t, err)

		require.Equal(t, 0, g.value(b, 1, game.Player2))
	})

	t.Run("full board", func(t *testing.T) {
		b := board(t, game.Player2,
			"1111111",
			"1111111",
			"1111111",
			"1111222",
			"2222222",
			"2222222",
			"2222222",
		)
		g, err := NewGreedy(1)
		require.NoError(t, err)

		require.Equal(t, -Win, g.value(b, 3, game.Player2), "Player 2 to move has lost")
		require.Equal(t, Win, terminalValue(b, game.Player1))
	})
}

func TestGreedyOptionsAgree(t *testing.T) {
	positions := map[string]*game.Board{
		"start":            game.NewBoard(),
		"mid game":         midGame(t),
		"dominant capture": dominantCapture(t),
	}
	for name, b := range positions {
		for depth := 1; depth <= MaxDepth; depth++ {
			sequential, err := NewGreedy(depth)
			require.NoError(t, err)
			parallel, err := NewGreedy(depth, WithGoroutines(4))
			require.NoError(t, err)
			cached, err := NewGreedy(depth, WithCache(), WithGoroutines(4))
			require.NoError(t, err)

			want, err := sequential.Search(b)
			require.NoError(t, err)
			got, err := parallel.Search(b)
			require.NoError(t, err)
			require.Equal(t, want.Move, got.Move, "%s at depth %d: parallel search should match", name, depth)
			require.Equal(t, want.Score, got.Score)

			got, err = cached.Search(b)
			require.NoError(t, err)
			require.Equal(t, want.Move, got.Move, "%s at depth %d: cached search should match", name, depth)
			require.Equal(t, want.Score, got.Score)
		}
	}
}

func TestGreedyMetrics(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		g, err := NewGreedy(1)
		require.NoError(t, err)

		result, err := g.Search(game.NewBoard())

		require.NoError(t, err)
		require.Equal(t, SearchMetric{}, result.Metric)
	})

	t.Run("depth one", func(t *testing.T) {
		g, err := NewGreedy(1, WithMetrics())
		require.NoError(t, err)

		result, err := g.Search(game.NewBoard())

		require.NoError(t, err)
		require.Equal(t, 1, result.Metric.Depth)
		require.Equal(t, 1, result.Metric.Goroutines)
		require.EqualValues(t, 16, result.Metric.Nodes)
		require.EqualValues(t, 16, result.Metric.Leaves)
		require.EqualValues(t, 0, result.Metric.Terminals)
	})

	t.Run("depth two", func(t *testing.T) {
		g, err := NewGreedy(2, WithMetrics(), WithGoroutines(2))
		require.NoError(t, err)

		result, err := g.Search(game.NewBoard())

		require.NoError(t, err)
		require.Greater(t, result.Metric.Leaves, int64(16))
		require.Equal(t, result.Metric.Leaves+16, result.Metric.Nodes, "Only the root's candidates should not be leaves")
	})

	t.Run("cache hits on a repeated search", func(t *testing.T) {
		g, err := NewGreedy(3, WithMetrics(), WithCache())
		require.NoError(t, err)
		b := game.NewBoard()

		first, err := g.Search(b)
		require.NoError(t, err)
		second, err := g.Search(b)
		require.NoError(t, err)

		require.Equal(t, first.Move, second.Move)
		require.Equal(t, first.Score, second.Score)
		require.EqualValues(t, 16, second.Metric.CacheHits, "Every candidate's subtree should come from the cache")
		require.EqualValues(t, 16, second.Metric.Nodes)
	})
}

func TestGreedyEvaluationFn(t *testing.T) {
	// Prefer positions where the opponent has the fewest moves
	mobility := func(b *game.Board, player game.Cell) int {
		return -b.NumLegalMoves()
	}
	g, err := NewGreedy(1, WithEvaluationFn(mobility))
	require.NoError(t, err)
	b := game.NewBoard()

	result, err := g.Search(b)
	require.NoError(t, err)

	for _, m := range b.LegalMoves() {
		child := b.Copy()
		require.NoError(t, child.Play(m))
		require.GreaterOrEqual(t, result.Score, -child.NumLegalMoves())
	}
}
