// Package service contains the business logic for the bakery service.
package service

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/guttosm/bakery-service/internal/metrics"
	"github.com/guttosm/bakery-service/internal/service/cache"
)

// ttlCache provides thread-safe LRU caching with TTL expiration.
// It implements the cache.CacheWithMetrics interface.
type ttlCache[K comparable, V any] struct {
	mu        sync.Mutex
	name      string
	capacity  int
	ttl       time.Duration
	sliding   bool
	items     map[K]*cacheEntry[K, V]
	head      *cacheEntry[K, V]
	tail      *cacheEntry[K, V]
	onEvict   func(K, V)
	stopCh    chan struct{}
	stopOnce  sync.Once
	hits      int64
	misses    int64
	evictions int64
}

type cacheEntry[K comparable, V any] struct {
	key       K
	value     V
	expiresAt time.Time
	prev      *cacheEntry[K, V]
	next      *cacheEntry[K, V]
}

// cacheConfig tunes a ttlCache.
type cacheConfig[K comparable, V any] struct {
	// Name labels the cache in metrics.
	Name     string
	Capacity int
	TTL      time.Duration
	// Sliding extends an entry's expiry on every hit.
	Sliding bool
	// CleanupInterval is how often expired entries are swept. Zero means one minute.
	CleanupInterval time.Duration
	// OnEvict is called outside the lock for every entry dropped by capacity or expiry.
	OnEvict func(K, V)
}

func newTTLCache[K comparable, V any](cfg cacheConfig[K, V]) *ttlCache[K, V] {
	if cfg.Capacity <= 0 {
		cfg.Capacity = 1
	}
	interval := cfg.CleanupInterval
	if interval <= 0 {
		interval = time.Minute
	}
	c := &ttlCache[K, V]{
		name:     cfg.Name,
		capacity: cfg.Capacity,
		ttl:      cfg.TTL,
		sliding:  cfg.Sliding,
		items:    make(map[K]*cacheEntry[K, V], cfg.Capacity),
		onEvict:  cfg.OnEvict,
		stopCh:   make(chan struct{}),
	}
	go c.startCleanup(interval)
	return c
}

// Stop shuts down the background sweeper. Safe to call more than once.
func (c *ttlCache[K, V]) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

// Metrics returns current cache performance metrics.
func (c *ttlCache[K, V]) Metrics() cache.Metrics {
	c.mu.Lock()
	size := len(c.items)
	c.mu.Unlock()

	return cache.Metrics{
		Hits:      atomic.LoadInt64(&c.hits),
		Misses:    atomic.LoadInt64(&c.misses),
		Evictions: atomic.LoadInt64(&c.evictions),
		Size:      size,
		Capacity:  c.capacity,
	}
}

// Len returns the number of entries, expired or not.
func (c *ttlCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Get retrieves a value if it exists and hasn't expired.
func (c *ttlCache[K, V]) Get(key K) (V, bool) {
	var zero V

	c.mu.Lock()
	entry, ok := c.items[key]
	if !ok {
		c.mu.Unlock()
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation(c.name, "get", "miss")
		return zero, false
	}

	now := time.Now()
	if now.After(entry.expiresAt) {
		c.removeEntry(entry)
		c.mu.Unlock()
		atomic.AddInt64(&c.misses, 1)
		metrics.RecordCacheOperation(c.name, "get", "expired")
		c.evicted(entry)
		return zero, false
	}

	if c.sliding {
		entry.expiresAt = now.Add(c.ttl)
	}
	c.moveToFront(entry)
	value := entry.value
	c.mu.Unlock()

	atomic.AddInt64(&c.hits, 1)
	metrics.RecordCacheOperation(c.name, "get", "hit")
	return value, true
}

// Set adds or updates a value. The least recently used entry is evicted when over capacity.
func (c *ttlCache[K, V]) Set(key K, value V) {
	c.mu.Lock()

	if entry, ok := c.items[key]; ok {
		entry.value = value
		entry.expiresAt = time.Now().Add(c.ttl)
		c.moveToFront(entry)
		c.mu.Unlock()
		return
	}

	entry := &cacheEntry[K, V]{
		key:       key,
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.items[key] = entry
	c.addToFront(entry)

	var dropped *cacheEntry[K, V]
	if len(c.items) > c.capacity {
		dropped = c.tail
		c.removeEntry(dropped)
		atomic.AddInt64(&c.evictions, 1)
	}
	c.mu.Unlock()

	metrics.RecordCacheOperation(c.name, "set", "success")
	if dropped != nil {
		metrics.RecordCacheOperation(c.name, "evict", "capacity")
		c.evicted(dropped)
	}
}

// GetOrSet returns the live value stored under key, or stores value when there is none.
// loaded reports whether an existing value was returned.
func (c *ttlCache[K, V]) GetOrSet(key K, value V) (actual V, loaded bool) {
	c.mu.Lock()

	now := time.Now()
	var expired *cacheEntry[K, V]
	if entry, ok := c.items[key]; ok {
		if !now.After(entry.expiresAt) {
			if c.sliding {
				entry.expiresAt = now.Add(c.ttl)
			}
			c.moveToFront(entry)
			actual = entry.value
			c.mu.Unlock()

			atomic.AddInt64(&c.hits, 1)
			metrics.RecordCacheOperation(c.name, "get", "hit")
			return actual, true
		}
		c.removeEntry(entry)
		expired = entry
	}

	entry := &cacheEntry[K, V]{
		key:       key,
		value:     value,
		expiresAt: now.Add(c.ttl),
	}
	c.items[key] = entry
	c.addToFront(entry)

	var dropped *cacheEntry[K, V]
	if len(c.items) > c.capacity {
		dropped = c.tail
		c.removeEntry(dropped)
		atomic.AddInt64(&c.evictions, 1)
	}
	c.mu.Unlock()

	if expired != nil {
		c.evicted(expired)
	}
	metrics.RecordCacheOperation(c.name, "set", "success")
	if dropped != nil {
		metrics.RecordCacheOperation(c.name, "evict", "capacity")
		c.evicted(dropped)
	}
	return value, false
}

// Invalidate removes a specific key without calling OnEvict.
func (c *ttlCache[K, V]) Invalidate(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		c.removeEntry(entry)
		metrics.RecordCacheOperation(c.name, "invalidate", "success")
	}
}

// Clear removes all entries and resets counters.
func (c *ttlCache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[K]*cacheEntry[K, V], c.capacity)
	c.head = nil
	c.tail = nil

	atomic.StoreInt64(&c.hits, 0)
	atomic.StoreInt64(&c.misses, 0)
	atomic.StoreInt64(&c.evictions, 0)

	metrics.RecordCacheOperation(c.name, "clear", "success")
}

func (c *ttlCache[K, V]) startCleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stopCh:
			return
		}
	}
}

// cleanup removes all expired entries.
func (c *ttlCache[K, V]) cleanup() {
	c.mu.Lock()
	now := time.Now()
	var expired []*cacheEntry[K, V]
	for _, entry := range c.items {
		if now.After(entry.expiresAt) {
			c.removeEntry(entry)
			expired = append(expired, entry)
		}
	}
	c.mu.Unlock()

	for _, entry := range expired {
		atomic.AddInt64(&c.evictions, 1)
		metrics.RecordCacheOperation(c.name, "evict", "expired")
		c.evicted(entry)
	}
}

func (c *ttlCache[K, V]) evicted(entry *cacheEntry[K, V]) {
	if c.onEvict != nil {
		c.onEvict(entry.key, entry.value)
	}
}

func (c *ttlCache[K, V]) removeEntry(entry *cacheEntry[K, V]) {
	delete(c.items, entry.key)
	c.unlink(entry)
}

func (c *ttlCache[K, V]) moveToFront(entry *cacheEntry[K, V]) {
	if entry == c.head {
		return
	}
	c.unlink(entry)
	c.addToFront(entry)
}

func (c *ttlCache[K, V]) addToFront(entry *cacheEntry[K, V]) {
	entry.prev = nil
	entry.next = c.head
	if c.head != nil {
		c.head.prev = entry
	}
	c.head = entry
	if c.tail == nil {
		c.tail = entry
	}
}

func (c *ttlCache[K, V]) unlink(entry *cacheEntry[K, V]) {
	if entry.prev != nil {
		entry.prev.next = entry.next
	} else {
		c.head = entry.next
	}
	if entry.next != nil {
		entry.next.prev = entry.prev
	} else {
		c.tail = entry.prev
	}
	entry.prev = nil
	entry.next = nil
}
