package searcher

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Depth      int
	Goroutines int
	StartTime  time.Time
	Duration   time.Duration
	Nodes      int64 // Positions generated by playing a candidate move
	Leaves     int64 // Positions scored by the evaluation function
	Terminals  int64 // Game-over positions reached below the root
	CacheHits  int64
}

type Collector interface {
	Start(depth, goroutines int)
	AddNode()
	AddLeaf()
	AddTerminal()
	AddCacheHit()
	Complete() SearchMetric
}

type collector struct {
	depth      int
	goroutines int
	startTime  time.Time
	nodes      atomic.Int64
	leaves     atomic.Int64
	terminals  atomic.Int64
	cacheHits  atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(depth, goroutines int) {
	c.depth = depth
	c.goroutines = goroutines
	c.startTime = time.Now()
	c.nodes.Store(0)
	c.leaves.Store(0)
	c.terminals.Store(0)
	c.cacheHits.Store(0)
}

func (c *collector) AddNode() {
	c.nodes.Add(1)
}

func (c *collector) AddLeaf() {
	c.leaves.Add(1)
}

func (c *collector) AddTerminal() {
	c.terminals.Add(1)
}

func (c *collector) AddCacheHit() {
	c.cacheHits.Add(1)
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:      c.depth,
		Goroutines: c.goroutines,
		StartTime:  c.startTime,
		Duration:   time.Since(c.startTime),
		Nodes:      c.nodes.Load(),
		Leaves:     c.leaves.Load(),
		Terminals:  c.terminals.Load(),
		CacheHits:  c.cacheHits.Load(),
	}
}

type noCollector struct{}

func NewNoCollector() Collector {
	return &noCollector{}
}

func (c *noCollector) Start(int, int)         {}
func (c *noCollector) AddNode()               {}
func (c *noCollector) AddLeaf()               {}
func (c *noCollector) AddTerminal()           {}
func (c *noCollector) AddCacheHit()           {}
func (c *noCollector) Complete() SearchMetric { return SearchMetric{} }
