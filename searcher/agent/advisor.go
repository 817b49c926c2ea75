package agent

import (
	"ataxx/game"
	"ataxx/searcher"
	"fmt"
)

type Option func(a *Advisor)

type factory func(a *Advisor, args []int) (Agent, error)

// Advisor hands out move-finding agents by algorithm. Agents are reused between
// calls, so a seeded advisor gives a reproducible sequence of suggestions.
// An Advisor is not safe for concurrent use.
type Advisor struct {
	seed       uint64
	goroutines int
	cache      bool
	metrics    bool
	factories  map[Algorithm]factory
	random     *searcher.Random
	greedy     map[int]*searcher.Greedy
}

// WithSeed makes random play reproducible. A zero seed leaves it unseeded.
func WithSeed(seed uint64) Option {
	return func(a *Advisor) {
		a.seed = seed
	}
}

func WithGoroutines(goroutines int) Option {
	return func(a *Advisor) {
		if goroutines > 0 {
			a.goroutines = goroutines
		}
	}
}

func WithCache(enabled bool) Option {
	return func(a *Advisor) {
		a.cache = enabled
	}
}

func WithMetrics(enabled bool) Option {
	return func(a *Advisor) {
		a.metrics = enabled
	}
}

func NewAdvisor(options ...Option) *Advisor {
	a := &Advisor{ // Default values
		goroutines: 1,
		greedy:     make(map[int]*searcher.Greedy),
	}
	for _, option := range options {
		option(a)
	}
	a.factories = map[Algorithm]factory{
		Random: (*Advisor).randomAgent,
		Greedy: (*Advisor).greedyAgent,
	}
	if a.seed != 0 {
		a.random = searcher.NewSeededRandom(a.seed)
	} else {
		a.random = searcher.NewRandom(nil)
	}
	return a
}

// Agent returns the agent for alg. Random takes no arguments and ignores any given;
// greedy takes an optional search depth.
func (a *Advisor) Agent(alg Algorithm, args ...int) (Agent, error) {
	build, ok := a.factories[alg]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownAlgorithm, alg)
	}
	return build(a, args)
}

// Suggest finds a move with the named algorithm. It reports false with no error
// when the side to move has no legal move, without running the algorithm.
func (a *Advisor) Suggest(b *game.Board, name string, args ...int) (game.Move, bool, error) {
	alg, err := ParseAlgorithm(name)
	if err != nil {
		return game.Move{}, false, err
	}
	if b.GameOver() {
		return game.Move{}, false, nil
	}
	agent, err := a.Agent(alg, args...)
	if err != nil {
		return game.Move{}, false, err
	}
	m, err := agent.FindMove(b)
	if err != nil {
		return game.Move{}, false, err
	}
	return m, true, nil
}

func (a *Advisor) randomAgent(_ []int) (Agent, error) {
	return a.random, nil
}

func (a *Advisor) greedyAgent(args []int) (Agent, error) {
	depth := searcher.DefaultDepth
	switch len(args) {
	case 0:
	case 1:
		depth = args[0]
	default:
		return nil, fmt.Errorf("%w: greedy takes at most one depth, got %v", ErrTooManyArgs, args)
	}

	if g, ok := a.greedy[depth]; ok {
		return greedyAgent{g}, nil
	}
	options := []searcher.Option{searcher.WithGoroutines(a.goroutines)}
	if a.cache {
		options = append(options, searcher.WithCache())
	}
	if a.metrics {
		options = append(options, searcher.WithMetrics())
	}
	g, err := searcher.NewGreedy(depth, options...)
	if err != nil {
		return nil, err
	}
	a.greedy[depth] = g
	return greedyAgent{g}, nil
}
