package memo

// Cache maps a subproblem key to its solved value.
type Cache[K comparable, V any] struct {
	m      map[K]V
	hits   int
	misses int
}

// Stats reports cache effectiveness.
type Stats struct {
	Hits    int
	Misses  int
	Entries int
}

// New returns an empty cache.
func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{m: make(map[K]V)}
}

// Do returns the cached value for key, computing and storing it with fn on
// the first request.
func (c *Cache[K, V]) Do(key K, fn func() V) V {
	if v, ok := c.m[key]; ok {
		c.hits++
		return v
	}
	c.misses++
	v := fn()
	c.m[key] = v
	return v
}

// Get returns the cached value for key without computing it.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	v, ok := c.m[key]
	return v, ok
}

// Put stores v under key, replacing any previous value.
func (c *Cache[K, V]) Put(key K, v V) {
	c.m[key] = v
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int { return len(c.m) }

// Stats returns hit/miss counters accumulated by Do.
func (c *Cache[K, V]) Stats() Stats {
	return Stats{Hits: c.hits, Misses: c.misses, Entries: len(c.m)}
}

// Reset drops every entry and zeroes the counters.
func (c *Cache[K, V]) Reset() {
	clear(c.m)
	c.hits, c.misses = 0, 0
}
