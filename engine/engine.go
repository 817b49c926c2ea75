package engine

import (
	"ataxx/game"
	"time"
)

const MaxTurns = 500

type GameMetric struct {
	Winner     game.Cell // Empty on a draw or an unfinished game
	Finished   bool      // False when the turn limit was reached
	Score1     int
	Score2     int
	TotalMoves int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
}

type MoveMetric struct {
	Step     int
	Player   game.Cell
	Move     game.Move
	Duration time.Duration
}

type Engine interface {
	// Run plays a game till the side to move is blocked or a max number of turns is reached
	Run() (GameMetric, []MoveMetric, error)
}
