package middleware

import (
	"sync"
	"time"
)

// idempotencyCache stores cached HTTP responses for idempotency.
// When full, the oldest entry is dropped. Keys whose first request is still
// running are tracked in inflight so duplicates wait instead of re-executing.
type idempotencyCache struct {
	mu         sync.RWMutex
	items      map[string]*cachedResponse
	inflight   map[string]chan struct{}
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
	stopCh     chan struct{}
	stopOnce   sync.Once
}

// newIdempotencyCache creates a new idempotency cache. maxEntries <= 0 means unbounded.
func newIdempotencyCache(ttl time.Duration, maxEntries int) *idempotencyCache {
	c := &idempotencyCache{
		items:      make(map[string]*cachedResponse),
		inflight:   make(map[string]chan struct{}),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
		stopCh:     make(chan struct{}),
	}
	go c.startCleanup()
	return c
}

// Get retrieves a cached response.
func (c *idempotencyCache) Get(key string) (*cachedResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	resp, ok := c.items[key]
	if !ok {
		return nil, false
	}

	if c.now().Sub(resp.Timestamp) > c.ttl {
		return nil, false
	}

	return resp, true
}

// Acquire claims key for the calling request.
// It returns the stored response when there is one. Otherwise, when another request
// holds the key, it returns a channel closed once that request releases it.
// When neither applies the caller owns the key and must call Release.
func (c *idempotencyCache) Acquire(key string) (resp *cachedResponse, wait <-chan struct{}, owner bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if resp, ok := c.items[key]; ok && c.now().Sub(resp.Timestamp) <= c.ttl {
		return resp, nil, false
	}
	if ch, ok := c.inflight[key]; ok {
		return nil, ch, false
	}
	c.inflight[key] = make(chan struct{})
	return nil, nil, true
}

// Release ends ownership of key, storing resp first when it is not nil.
func (c *idempotencyCache) Release(key string, resp *cachedResponse) {
	if resp != nil {
		c.Set(key, resp)
	}

	c.mu.Lock()
	ch, ok := c.inflight[key]
	delete(c.inflight, key)
	c.mu.Unlock()

	if ok {
		close(ch)
	}
}

// Set stores a cached response.
func (c *idempotencyCache) Set(key string, resp *cachedResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()

	resp.Timestamp = c.now()
	if _, exists := c.items[key]; !exists && c.maxEntries > 0 && len(c.items) >= c.maxEntries {
		c.evictOldest()
	}
	c.items[key] = resp
}

// Len returns the number of stored responses, expired ones included.
func (c *idempotencyCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Stop ends the cleanup loop.
func (c *idempotencyCache) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

func (c *idempotencyCache) evictOldest() {
	var oldestKey string
	var oldest time.Time
	for k, v := range c.items {
		if oldestKey == "" || v.Timestamp.Before(oldest) {
			oldestKey, oldest = k, v.Timestamp
		}
	}
	delete(c.items, oldestKey)
}

// startCleanup periodically removes expired entries.
func (c *idempotencyCache) startCleanup() {
	ticker := time.NewTicker(time.Minute)
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

// cleanup removes expired entries.
func (c *idempotencyCache) cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for key, resp := range c.items {
		if now.Sub(resp.Timestamp) > c.ttl {
			delete(c.items, key)
		}
	}
}
