package game

import "errors"

// Size is the length of a side of the board.
const Size = 7

var (
	ErrIllegalMove  = errors.New("illegal move")
	ErrEmptyHistory = errors.New("cannot undo any further")
	ErrBadLayout    = errors.New("bad board layout")
)

// Cell is the content of a square. Player1 and Player2 double as the side to move.
type Cell int8

const (
	Empty Cell = iota
	Player1
	Player2
)

// Opponent returns the other player. Empty has no opponent.
func (c Cell) Opponent() Cell {
	switch c {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return Empty
}

func (c Cell) String() string {
	switch c {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	}
	return "Empty"
}

// Evaluates the board to a score from the given player's perspective.
type Evaluate func(b *Board, player Cell) int
