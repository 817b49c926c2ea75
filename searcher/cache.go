package searcher

import "sync"

// Cleared when full rather than evicted piecemeal
const cacheLimit = 1 << 20

type cacheKey struct {
	hash  uint64
	depth int
}

// cache memoises subtree values. A nil cache stores nothing.
type cache struct {
	sync.Mutex
	values map[cacheKey]int
}

func newCache() *cache {
	return &cache{values: make(map[cacheKey]int)}
}

func (c *cache) get(hash uint64, depth int) (int, bool) {
	if c == nil {
		return 0, false
	}
	c.Lock()
	defer c.Unlock()
	v, ok := c.values[cacheKey{hash, depth}]
	return v, ok
}

func (c *cache) put(hash uint64, depth int, value int) {
	if c == nil {
		return
	}
	c.Lock()
	defer c.Unlock()
	if len(c.values) >= cacheLimit {
		clear(c.values)
	}
	c.values[cacheKey{hash, depth}] = value
}
