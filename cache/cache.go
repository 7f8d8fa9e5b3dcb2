// Package cache provides small generic LRU caches.
//
// The snapshot renderer memoizes decoded and rescaled asset pixels here,
// and the text shaper memoizes measured line widths. Cache is a plain
// locked map for single-owner callers; ShardedCache spreads keys over
// shards for concurrent callers and keeps hit statistics.
package cache

import "sync"

// Cache is a map-backed cache with a soft entry limit. Inserting past
// the limit evicts the least recently touched quarter of the entries.
//
// Cache is safe for concurrent use and must not be copied after creation.
type Cache[K comparable, V any] struct {
	mu        sync.Mutex
	entries   map[K]*cacheEntry[V]
	softLimit int
	tick      int64 // monotonic access counter
}

// cacheEntry pairs a value with the tick of its last access.
type cacheEntry[V any] struct {
	value V
	atime int64
}

// New creates a cache holding at most softLimit entries.
// A softLimit of 0 means unlimited.
func New[K comparable, V any](softLimit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries:   make(map[K]*cacheEntry[V]),
		softLimit: softLimit,
	}
}

// Get retrieves a value and refreshes its access time.
// The second return is false when the key is absent.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}

	c.tick++
	entry.atime = c.tick
	return entry.value, true
}

// Set stores a value, evicting old entries if the soft limit is exceeded.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	c.entries[key] = &cacheEntry[V]{value: value, atime: c.tick}

	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
}

// GetOrCreate returns the cached value, calling create to fill a miss.
// create runs under the cache lock so a key is only ever built once.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[key]; ok {
		c.tick++
		entry.atime = c.tick
		return entry.value
	}

	value := create()

	c.tick++
	c.entries[key] = &cacheEntry[V]{value: value, atime: c.tick}

	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
	return value
}

// Delete removes an entry, reporting whether it was present.
func (c *Cache[K, V]) Delete(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		delete(c.entries, key)
		return true
	}
	return false
}

// Clear removes all entries.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*cacheEntry[V])
	c.tick = 0
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Capacity returns the soft limit.
func (c *Cache[K, V]) Capacity() int {
	return c.softLimit
}

// Stats returns the current entry count and limit.
func (c *Cache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Len:      len(c.entries),
		Capacity: c.softLimit,
	}
}

// evictOldest trims the cache to 3/4 of the soft limit by dropping the
// entries with the smallest access ticks. Caller holds c.mu.
func (c *Cache[K, V]) evictOldest() {
	target := c.softLimit * 3 / 4
	if target < 1 {
		target = 1
	}
	toEvict := len(c.entries) - target
	if toEvict <= 0 {
		return
	}

	type aged struct {
		key   K
		atime int64
	}
	all := make([]aged, 0, len(c.entries))
	for key, e := range c.entries {
		all = append(all, aged{key: key, atime: e.atime})
	}

	// Partial selection sort; eviction batches stay small.
	for i := 0; i < toEvict && i < len(all); i++ {
		minIdx := i
		for j := i + 1; j < len(all); j++ {
			if all[j].atime < all[minIdx].atime {
				minIdx = j
			}
		}
		all[i], all[minIdx] = all[minIdx], all[i]
		delete(c.entries, all[i].key)
	}
}

// Stats describes cache occupancy and, for ShardedCache, hit counters.
type Stats struct {
	// Len is the current number of entries.
	Len int
	// Capacity is the entry limit (per shard for ShardedCache).
	Capacity int
	// TotalCapacity is the limit summed over shards (ShardedCache only).
	TotalCapacity int
	// Hits counts lookups that found an entry (ShardedCache only).
	Hits uint64
	// Misses counts lookups that found nothing (ShardedCache only).
	Misses uint64
	// HitRate is Hits over total lookups, 0 to 1 (ShardedCache only).
	HitRate float64
	// Evictions counts entries dropped to stay under capacity (ShardedCache only).
	Evictions uint64
}
