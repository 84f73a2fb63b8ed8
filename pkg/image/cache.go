// Package image renders the page's pictures into terminal cells: files
// are decoded once, cover-cropped to their block and drawn with an inline
// graphics protocol or with half-block characters. Missing files become a
// gradient placeholder carrying the alt text.
package image

import (
	"container/list"
	"fmt"
	"sync"
	"sync/atomic"
)

// CacheKey identifies one rendering of one source at one size.
type CacheKey struct {
	Protocol string
	Source   string // resolved file path, or "placeholder:<alt>"
	Width    int
	Height   int
}

// String returns a human-readable key for debugging.
func (k CacheKey) String() string {
	return fmt.Sprintf("%s:%s:%dx%d", k.Protocol, k.Source, k.Width, k.Height)
}

// CacheStats reports hit/miss counts for observability.
type CacheStats struct {
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Entries   int
	SizeBytes int64
}

type cacheEntry struct {
	key  CacheKey
	rows []string
	size int64
}

// Cache is a size-bounded LRU of rendered image rows.
type Cache struct {
	mu        sync.Mutex
	items     map[CacheKey]*list.Element
	order     *list.List // front = most recent
	maxBytes  int64
	usedBytes int64

	hits      atomic.Uint64
	misses    atomic.Uint64
	evictions atomic.Uint64
}

// NewCache creates a cache holding up to maxMB megabytes of escape
// sequences. maxMB <= 0 uses 32.
func NewCache(maxMB int) *Cache {
	if maxMB <= 0 {
		maxMB = 32
	}
	return &Cache{
		items:    make(map[CacheKey]*list.Element),
		order:    list.New(),
		maxBytes: int64(maxMB) << 20,
	}
}

// Get returns the cached rows for key.
func (c *Cache) Get(key CacheKey) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	c.order.MoveToFront(elem)
	c.hits.Add(1)
	return elem.Value.(*cacheEntry).rows, true
}

// Put stores rows under key, evicting least recently used entries until
// the cache fits. An entry larger than the whole cache is not stored.
func (c *Cache) Put(key CacheKey, rows []string) {
	var size int64
	for _, r := range rows {
		size += int64(len(r))
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.removeLocked(elem)
	}
	if size > c.maxBytes {
		return
	}
	for c.usedBytes+size > c.maxBytes && c.order.Len() > 0 {
		c.removeLocked(c.order.Back())
		c.evictions.Add(1)
	}
	c.items[key] = c.order.PushFront(&cacheEntry{key: key, rows: rows, size: size})
	c.usedBytes += size
}

// Invalidate clears all cache entries.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[CacheKey]*list.Element)
	c.order.Init()
	c.usedBytes = 0
}

// Stats returns current cache statistics.
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return CacheStats{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Entries:   c.order.Len(),
		SizeBytes: c.usedBytes,
	}
}

func (c *Cache) removeLocked(elem *list.Element) {
	e := c.order.Remove(elem).(*cacheEntry)
	delete(c.items, e.key)
	c.usedBytes -= e.size
}
