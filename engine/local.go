package engine

import (
	"ataxx/game"
	"ataxx/searcher/agent"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(e *Local)

type Local struct {
	session  *game.Session
	agents   [2]agent.Agent // Indexed by player, Player1 first
	maxTurns int
}

func WithMaxTurns(turns int) Option {
	return func(e *Local) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

func LocalEngine(agents [2]agent.Agent, options ...Option) *Local {
	for i, a := range agents {
		if a == nil {
			panic(fmt.Sprintf("no agent for player %d", i+1))
		}
	}
	e := &Local{
		session:  game.NewSession(),
		agents:   agents,
		maxTurns: MaxTurns,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Session returns the game being played, for inspection after Run.
func (e *Local) Session() *game.Session {
	return e.session
}

// Run executes the entire game loop until the side to move has no legal move.
func (e *Local) Run() (GameMetric, []MoveMetric, error) {
	log.Info().Str("session", e.session.ID.String()).Msg("game starting")

	start := time.Now()
	var moveMetrics []MoveMetric
	turn := 1
	for ; turn <= e.maxTurns; turn++ {
		b := e.session.Board()
		if b.GameOver() {
			break
		}
		player := b.Turn()

		moveStart := time.Now()
		m, err := e.agents[player-game.Player1].FindMove(b)
		if err != nil {
			return GameMetric{}, moveMetrics, fmt.Errorf("%s at turn %d: %w", player, turn, err)
		}
		if err := e.session.Play(m); err != nil {
			return GameMetric{}, moveMetrics, fmt.Errorf("%s at turn %d: %w", player, turn, err)
		}
		moveMetrics = append(moveMetrics, MoveMetric{
			Step:     turn,
			Player:   player,
			Move:     m,
			Duration: time.Since(moveStart),
		})
	}

	b := e.session.Board()
	s1, s2 := b.Score()
	end := time.Now()
	gameMetric := GameMetric{
		Winner:     b.Winner(),
		Finished:   b.GameOver(),
		Score1:     s1,
		Score2:     s2,
		TotalMoves: len(moveMetrics),
		StartTime:  start,
		EndTime:    end,
		Duration:   end.Sub(start),
	}

	event := log.Info().
		Str("session", e.session.ID.String()).
		Int("score1", s1).
		Int("score2", s2).
		Int("moves", gameMetric.TotalMoves)
	switch {
	case !gameMetric.Finished:
		event.Msgf("stopped after %d turns", e.maxTurns)
	case gameMetric.Winner == game.Empty:
		event.Msg("game drawn")
	default:
		event.Msgf("%s wins", gameMetric.Winner)
	}
	return gameMetric, moveMetrics, nil
}
