package experiments

import (
	"ataxx/engine"
	"ataxx/game"
	"ataxx/searcher/agent"
	"fmt"

	"github.com/rs/zerolog/log"
)

// Matchup pairs two agent specs, e.g. "greedy:2" against "random".
type Matchup struct {
	Player1 string
	Player2 string
}

type GameRecord struct {
	ID      int
	Player1 string // Agent spec
	Player2 string // Agent spec
	engine.GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	engine.MoveMetric
}

type Summary struct {
	Games      int
	Wins1      int
	Wins2      int
	Draws      int
	Unfinished int
}

func (s Summary) add(m engine.GameMetric) Summary {
	s.Games++
	switch {
	case !m.Finished:
		s.Unfinished++
	case m.Winner == game.Player1:
		s.Wins1++
	case m.Winner == game.Player2:
		s.Wins2++
	default:
		s.Draws++
	}
	return s
}

// Run plays the matchup the given number of times, one game after another.
func Run(advisor *agent.Advisor, matchup Matchup, games int) (Summary, []GameRecord, []MoveRecord, error) {
	var agents [2]agent.Agent
	for i, spec := range []string{matchup.Player1, matchup.Player2} {
		alg, args, err := agent.ParseSpec(spec)
		if err != nil {
			return Summary{}, nil, nil, err
		}
		agents[i], err = advisor.Agent(alg, args...)
		if err != nil {
			return Summary{}, nil, nil, fmt.Errorf("player %d: %w", i+1, err)
		}
	}

	log.Info().Msgf("starting %d games between %s and %s...", games, matchup.Player1, matchup.Player2)

	var summary Summary
	gameRecords := []GameRecord{}
	moveRecords := []MoveRecord{}
	for i := 1; i <= games; i++ {
		gameMetric, moveMetrics, err := engine.LocalEngine(agents).Run()
		if err != nil {
			return summary, gameRecords, moveRecords, fmt.Errorf("game %d: %w", i, err)
		}
		summary = summary.add(gameMetric)
		gameRecords = append(gameRecords, GameRecord{
			ID:         i,
			Player1:    matchup.Player1,
			Player2:    matchup.Player2,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, MoveRecord{Game: i, MoveMetric: mm})
		}
		log.Debug().Msgf("completed game %d of %d", i, games)
	}

	log.Info().
		Int("games", summary.Games).
		Int("wins1", summary.Wins1).
		Int("wins2", summary.Wins2).
		Int("draws", summary.Draws).
		Int("unfinished", summary.Unfinished).
		Msg("self-play complete")
	return summary, gameRecords, moveRecords, nil
}
