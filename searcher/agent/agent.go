package agent

import (
	"ataxx/game"
	"errors"
)

var (
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	ErrTooManyArgs      = errors.New("too many arguments")
	ErrBadSpec          = errors.New("bad agent spec")
)

type Agent interface {
	// FindMove returns a move for the side to move
	FindMove(b *game.Board) (game.Move, error)
}
