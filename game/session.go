package game

import (
	guuid "github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Session is a game in progress: the live board plus a snapshot of the board
// before every move played, for undo.
type Session struct {
	ID      guuid.UUID
	board   *Board
	history []*Board
}

// NewSession starts a game from the standard starting position.
func NewSession() *Session {
	return &Session{
		ID:    guuid.New(),
		board: NewBoard(),
	}
}

// Clone returns an independent session with copies of the live board and of every
// snapshot. The clone gets its own ID.
func (s *Session) Clone() *Session {
	historyCopy := make([]*Board, len(s.history))
	for i, b := range s.history {
		historyCopy[i] = b.Copy()
	}
	return &Session{
		ID:      guuid.New(),
		board:   s.board.Copy(),
		history: historyCopy,
	}
}

// Board returns the live board. Mutate it only through the session.
func (s *Session) Board() *Board {
	return s.board
}

// Depth returns the number of moves that can be undone.
func (s *Session) Depth() int {
	return len(s.history)
}

// Play makes a move on the live board. A snapshot is kept only when the move
// succeeds, so an illegal move leaves both the board and the history unchanged.
func (s *Session) Play(m Move) error {
	snapshot := s.board.Copy()
	if err := s.board.Play(m); err != nil {
		return err
	}
	s.history = append(s.history, snapshot)

	s1, s2 := s.board.Score()
	log.Debug().Str("session", s.ID.String()).Str("move", m.String()).
		Int("score1", s1).Int("score2", s2).Msg("played")
	return nil
}

// Undo restores the board as it was before the last move.
func (s *Session) Undo() error {
	if len(s.history) == 0 {
		return ErrEmptyHistory
	}
	last := len(s.history) - 1
	s.board = s.history[last]
	s.history[last] = nil
	s.history = s.history[:last]

	log.Debug().Str("session", s.ID.String()).Int("depth", len(s.history)).Msg("undone")
	return nil
}
