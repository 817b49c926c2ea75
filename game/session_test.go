package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSessionUndo(t *testing.T) {
	t.Run("undo on a fresh session", func(t *testing.T) {
		s := NewSession()

		err := s.Undo()

		require.ErrorIs(t, err, ErrEmptyHistory)
		require.Equal(t, NewBoard(), s.Board(), "Board should be untouched")
	})

	t.Run("undo restores the previous position", func(t *testing.T) {
		s := NewSession()
		start := s.Board().Copy()
		require.NoError(t, s.Play(mv(0, 0, 1, 1)))
		afterFirst := s.Board().Copy()
		require.NoError(t, s.Play(mv(0, 6, 2, 4)))
		require.Equal(t, 2, s.Depth())

		require.NoError(t, s.Undo())
		require.Equal(t, afterFirst, s.Board(), "First undo should restore the position after the first move")
		require.Equal(t, Player2, s.Board().Turn())

		require.NoError(t, s.Undo())
		require.Equal(t, start, s.Board(), "Second undo should restore the starting position")
		require.Equal(t, 0, s.Depth())

		require.ErrorIs(t, s.Undo(), ErrEmptyHistory)
	})
}

func TestSessionPlay(t *testing.T) {
	t.Run("illegal move keeps the history", func(t *testing.T) {
		s := NewSession()
		require.NoError(t, s.Play(mv(0, 0, 1, 1)))
		before := s.Board().Copy()

		err := s.Play(mv(0, 0, 4, 4))

		require.ErrorIs(t, err, ErrIllegalMove)
		require.Equal(t, 1, s.Depth(), "No snapshot should be pushed for an illegal move")
		require.Equal(t, before, s.Board())

		require.NoError(t, s.Undo())
		require.Equal(t, NewBoard(), s.Board(), "Undo should go back past the legal move only")
	})

	t.Run("move after game over is rejected", func(t *testing.T) {
		b, err := NewBoardFromRows(Player2,
			"2222222",
			"2222222",
			"1111111",
			"1111111",
			".......",
			".......",
			".......",
		)
		require.NoError(t, err)
		s := &Session{board: b}

		err = s.Play(mv(1, 0, 3, 0))

		require.ErrorIs(t, err, ErrIllegalMove)
		require.Equal(t, 0, s.Depth())
	})
}

func TestSessionClone(t *testing.T) {
	s := NewSession()
	require.NoError(t, s.Play(mv(0, 0, 1, 1)))

	clone := s.Clone()
	require.NotEqual(t, s.ID, clone.ID, "Clone should get its own ID")
	require.Equal(t, s.Board(), clone.Board())
	require.Equal(t, s.Depth(), clone.Depth())

	require.NoError(t, clone.Play(mv(0, 6, 1, 5)))
	require.NoError(t, clone.Undo())
	require.NoError(t, clone.Undo())

	require.Equal(t, 1, s.Depth(), "Original history should be untouched")
	c, _ := s.Board().At(pos(1, 1))
	require.Equal(t, Player1, c, "Original board should be untouched")
}
