package searcher

import (
	"ataxx/game"

	"golang.org/x/exp/rand"
	"lukechampine.com/frand"
)

// Rand is the source of randomness for the random policy.
type Rand interface {
	Intn(n int) int
}

// processRand draws from frand's process-wide generator, which is safe for concurrent use.
type processRand struct{}

func (processRand) Intn(n int) int {
	return frand.Intn(n)
}

// Random picks uniformly among the legal moves.
type Random struct {
	rng Rand
}

// NewRandom returns a random policy drawing from rng, or from a process-wide
// generator when rng is nil.
func NewRandom(rng Rand) *Random {
	if rng == nil {
		rng = processRand{}
	}
	return &Random{rng: rng}
}

// NewSeededRandom returns a reproducible random policy. It is not safe for concurrent use.
func NewSeededRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) FindMove(b *game.Board) (game.Move, error) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, ErrNoLegalMoves
	}
	return moves[r.rng.Intn(len(moves))], nil
}
