package searcher

import (
	"ataxx/game"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Option func(g *Greedy)

// Greedy looks a fixed number of plies ahead and picks the move with the best
// minimax value. Ties go to the earliest move in enumeration order.
// A Greedy must not run two searches at once.
type Greedy struct {
	depth      int
	goroutines int
	evaluate   game.Evaluate
	cache      *cache
	metrics    Collector
}

type Result struct {
	Move   game.Move
	Score  int
	Metric SearchMetric
}

// WithGoroutines scores the root's candidate moves on up to n goroutines.
func WithGoroutines(n int) Option {
	return func(g *Greedy) {
		if n > 0 {
			g.goroutines = n
		}
	}
}

// WithCache memoises subtree values by position and remaining depth.
func WithCache() Option {
	return func(g *Greedy) {
		g.cache = newCache()
	}
}

func WithMetrics() Option {
	return func(g *Greedy) {
		g.metrics = NewCollector()
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(g *Greedy) {
		if evaluate != nil {
			g.evaluate = evaluate
		}
	}
}

func NewGreedy(depth int, options ...Option) (*Greedy, error) {
	if depth < 1 || depth > MaxDepth {
		return nil, fmt.Errorf("%w: %d (must be between 1 and %d)", ErrUnsupportedDepth, depth, MaxDepth)
	}
	g := &Greedy{ // Default values
		depth:      depth,
		goroutines: 1,
		evaluate:   game.EvaluateMaterial,
		metrics:    NewNoCollector(),
	}
	for _, option := range options {
		option(g)
	}
	return g, nil
}

func (g *Greedy) Depth() int {
	return g.depth
}

func (g *Greedy) FindMove(b *game.Board) (game.Move, error) {
	result, err := g.Search(b)
	return result.Move, err
}

// Search returns the best move for the side to move and its value.
func (g *Greedy) Search(b *game.Board) (Result, error) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return Result{}, ErrNoLegalMoves
	}

	g.metrics.Start(g.depth, g.goroutines)
	perspective := b.Turn()
	scores := make([]int, len(moves))
	if g.goroutines > 1 {
		var eg errgroup.Group
		eg.SetLimit(g.goroutines)
		for i, m := range moves {
			i, m := i, m
			eg.Go(func() error {
				scores[i] = g.score(b, m, g.depth, perspective)
				return nil
			})
		}
		_ = eg.Wait() // Workers never fail
	} else {
		for i, m := range moves {
			scores[i] = g.score(b, m, g.depth, perspective)
		}
	}

	// Strictly greater, so the first of equal scores wins
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	metric := g.metrics.Complete()

	log.Debug().
		Str("move", moves[best].String()).
		Int("score", scores[best]).
		Int("depth", g.depth).
		Int("candidates", len(moves)).
		Int64("nodes", metric.Nodes).
		Msg("greedy search")

	return Result{Move: moves[best], Score: scores[best], Metric: metric}, nil
}

// score plays m on a copy of b and values the result for perspective, the player who moved.
func (g *Greedy) score(b *game.Board, m game.Move, depth int, perspective game.Cell) int {
	child := b.Copy()
	if err := child.Play(m); err != nil {
		panic(fmt.Sprintf("enumerated move rejected: %v", err))
	}
	g.metrics.AddNode()

	if depth <= 1 {
		g.metrics.AddLeaf()
		return g.evaluate(child, perspective)
	}
	return -g.value(child, depth-1, perspective.Opponent())
}

// value is the best score perspective can reach from b within depth plies.
// perspective is always the side to move at b.
func (g *Greedy) value(b *game.Board, depth int, perspective game.Cell) int {
	if b.GameOver() {
		g.metrics.AddTerminal()
		return terminalValue(b, perspective)
	}

	hash := b.Hash()
	if v, ok := g.cache.get(hash, depth); ok {
		g.metrics.AddCacheHit()
		return v
	}

	best := math.MinInt
	for _, m := range b.LegalMoves() {
		if s := g.score(b, m, depth, perspective); s > best {
			best = s
		}
	}
	g.cache.put(hash, depth, best)
	return best
}

func terminalValue(b *game.Board, perspective game.Cell) int {
	rel := b.RelativeScore(perspective)
	switch {
	case rel > 0:
		return Win
	case rel < 0:
		return -Win
	}
	return 0
}
