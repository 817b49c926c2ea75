package agent

import (
	"ataxx/game"
	"ataxx/searcher"

	"github.com/rs/zerolog/log"
)

type greedyAgent struct {
	greedy *searcher.Greedy
}

// FindMove searches and logs the search metrics, which are empty unless collected.
func (a greedyAgent) FindMove(b *game.Board) (game.Move, error) {
	result, err := a.greedy.Search(b)
	if err != nil {
		return game.Move{}, err
	}
	if m := result.Metric; m.Nodes > 0 {
		log.Info().
			Int("depth", m.Depth).
			Int("goroutines", m.Goroutines).
			Dur("duration", m.Duration).
			Int64("nodes", m.Nodes).
			Int64("leaves", m.Leaves).
			Int64("terminals", m.Terminals).
			Int64("cacheHits", m.CacheHits).
			Msg("search metrics")
	}
	return result.Move, nil
}
