package cache

import (
	"log/slog"
	"sync"

	"cag/internal/port"
)

// ResponseCache memoizes formatted responses by exact query text.
// Entries are never evicted.
type ResponseCache struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewResponseCache() *ResponseCache {
	return &ResponseCache{
		entries: make(map[string]string),
	}
}

func (c *ResponseCache) Get(query string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	response, ok := c.entries[query]
	return response, ok
}

// Put stores response under query. The last write wins.
func (c *ResponseCache) Put(query, response string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[query] = response
}

func (c *ResponseCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]string)
}

func (c *ResponseCache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// CachedResponder wraps a responder with a ResponseCache. Cached responses
// are returned as first computed, even if the wrapped engine has since changed.
type CachedResponder struct {
	responder port.Responder
	cache     *ResponseCache
	logger    *slog.Logger
}

func NewCachedResponder(responder port.Responder, cache *ResponseCache, logger *slog.Logger) *CachedResponder {
	if cache == nil {
		cache = NewResponseCache()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedResponder{
		responder: responder,
		cache:     cache,
		logger:    logger,
	}
}

func (r *CachedResponder) Respond(query string) string {
	if response, hit := r.cache.Get(query); hit {
		r.logger.Debug("processing query from result cache", "query", query)
		return response
	}

	// Concurrent first-time queries may both compute; either result is valid.
	response := r.responder.Respond(query)
	r.cache.Put(query, response)
	return response
}

func (r *CachedResponder) Cache() *ResponseCache {
	return r.cache
}
