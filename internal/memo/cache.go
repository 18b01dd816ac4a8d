package memo

// Resolver computes the value for a key on a cache miss.
type Resolver[K comparable, V any] func(K) V

// Stats holds hit/miss counters for one cache instance.
type Stats struct {
	Hits    int
	Misses  int
	Entries int
	Sweeps  int
}

// HitRate returns the fraction of lookups served from the cache,
// or 0 when nothing has been looked up yet.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}

// Cache is a lookup memo with clear-all eviction. Entries accumulate
// without bound between sweeps; once Len exceeds the threshold the next
// Sweep drops the entire map at once. Individual entries are never
// evicted on insert.
type Cache[K comparable, V any] struct {
	threshold int
	resolve   Resolver[K, V]
	entries   map[K]V
	hits      int
	misses    int
	sweeps    int
}

// New returns an empty cache that resolves misses through resolve and
// clears itself on a Sweep once it holds more than threshold entries.
func New[K comparable, V any](threshold int, resolve Resolver[K, V]) *Cache[K, V] {
	return &Cache[K, V]{
		threshold: threshold,
		resolve:   resolve,
		entries:   make(map[K]V),
	}
}

// Get returns the cached value for key, resolving and storing it on a
// miss. The resolver runs at most once per distinct key between clears.
func (c *Cache[K, V]) Get(key K) V {
	if v, ok := c.entries[key]; ok {
		c.hits++
		return v
	}
	c.misses++
	v := c.resolve(key)
	c.entries[key] = v
	return v
}

// Peek reports the cached value for key without resolving on a miss.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	v, ok := c.entries[key]
	return v, ok
}

// Invalidate drops the entry for key, if present. The next Get for that
// key re-resolves.
func (c *Cache[K, V]) Invalidate(key K) {
	delete(c.entries, key)
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	return len(c.entries)
}

// Threshold returns the sweep threshold this cache was built with.
func (c *Cache[K, V]) Threshold() int {
	return c.threshold
}

// Clear drops every entry. Counters are kept.
func (c *Cache[K, V]) Clear() {
	clear(c.entries)
}

// Sweep clears the cache when it holds more than its threshold of
// entries, reporting whether a clear happened. A cache at exactly the
// threshold is left alone.
func (c *Cache[K, V]) Sweep() bool {
	if len(c.entries) <= c.threshold {
		return false
	}
	c.Clear()
	c.sweeps++
	return true
}

// Stats returns a snapshot of the cache's counters.
func (c *Cache[K, V]) Stats() Stats {
	return Stats{
		Hits:    c.hits,
		Misses:  c.misses,
		Entries: len(c.entries),
		Sweeps:  c.sweeps,
	}
}
