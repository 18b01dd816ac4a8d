package memo

import "container/list"

// lruEntry pairs a key with its value inside the recency list.
type lruEntry[K comparable, V any] struct {
	key   K
	value V
}

// LRU is a bounded cache with per-key recency eviction. When an insert
// would exceed the capacity, the least recently used entry is dropped.
// It backs the expensive resolvers underneath the coarse [Cache] layer.
type LRU[K comparable, V any] struct {
	capacity int
	resolve  Resolver[K, V]
	elems    map[K]*list.Element
	order    *list.List // front = most recently used
	hits     int
	misses   int
}

// NewLRU returns an empty recency cache holding at most capacity entries,
// resolving misses through resolve.
func NewLRU[K comparable, V any](capacity int, resolve Resolver[K, V]) *LRU[K, V] {
	return &LRU[K, V]{
		capacity: capacity,
		resolve:  resolve,
		elems:    make(map[K]*list.Element),
		order:    list.New(),
	}
}

// Get returns the value for key, resolving and storing it on a miss.
// Both hits and fresh inserts move the key to most-recently-used.
func (l *LRU[K, V]) Get(key K) V {
	if elem, ok := l.elems[key]; ok {
		l.hits++
		l.order.MoveToFront(elem)
		return elem.Value.(*lruEntry[K, V]).value
	}
	l.misses++
	v := l.resolve(key)
	l.insert(key, v)
	return v
}

// Contains reports whether key is cached, without touching recency.
func (l *LRU[K, V]) Contains(key K) bool {
	_, ok := l.elems[key]
	return ok
}

// Invalidate drops the entry for key, if present.
func (l *LRU[K, V]) Invalidate(key K) {
	if elem, ok := l.elems[key]; ok {
		l.order.Remove(elem)
		delete(l.elems, key)
	}
}

// Len returns the number of cached entries.
func (l *LRU[K, V]) Len() int {
	return len(l.elems)
}

// Capacity returns the capacity this cache was built with.
func (l *LRU[K, V]) Capacity() int {
	return l.capacity
}

// Clear drops every entry. Counters are kept.
func (l *LRU[K, V]) Clear() {
	clear(l.elems)
	l.order.Init()
}

// Stats returns a snapshot of the cache's counters.
func (l *LRU[K, V]) Stats() Stats {
	return Stats{
		Hits:    l.hits,
		Misses:  l.misses,
		Entries: len(l.elems),
	}
}

func (l *LRU[K, V]) insert(key K, v V) {
	if elem, ok := l.elems[key]; ok {
		elem.Value.(*lruEntry[K, V]).value = v
		l.order.MoveToFront(elem)
		return
	}
	if l.order.Len() >= l.capacity {
		oldest := l.order.Back()
		if oldest != nil {
			l.order.Remove(oldest)
			delete(l.elems, oldest.Value.(*lruEntry[K, V]).key)
		}
	}
	l.elems[key] = l.order.PushFront(&lruEntry[K, V]{key: key, value: v})
}
