package engine

import (
	"context"
	"sync"
	"time"
)

// fetchFunc acquires a fresh token, returning the token and its expiry.
type fetchFunc func(ctx context.Context) (string, time.Time, error)

// TokenCache holds one OAuth token with its expiry, refreshed lazily when
// expired. The cached pair is replaced atomically under the lock, never
// mutated in place. Concurrent refreshes are left unguarded: the worst case
// is one redundant fetch, and the last writer wins cleanly.
type TokenCache struct {
	mu      sync.Mutex
	value   string
	expiry  time.Time
	fetch   fetchFunc
	nowFunc func() time.Time
}

// NewTokenCache creates a cache around a token fetch function.
func NewTokenCache(fetch fetchFunc) *TokenCache {
	return &TokenCache{fetch: fetch, nowFunc: time.Now}
}

// Get returns a valid token, fetching a new one when the cached token is
// missing or expired.
func (c *TokenCache) Get(ctx context.Context) (string, error) {
	c.mu.Lock()
	value, expiry := c.value, c.expiry
	c.mu.Unlock()

	if value != "" && c.nowFunc().Before(expiry) {
		return value, nil
	}

	value, expiry, err := c.fetch(ctx)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.value, c.expiry = value, expiry
	c.mu.Unlock()
	return value, nil
}
