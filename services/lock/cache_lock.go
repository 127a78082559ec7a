package lock

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// CacheLock is the single-process lock provider, backed by an expiring
// in-memory cache. Add is an atomic insert-if-absent, which is the whole
// locking trick: whoever inserts first holds the lease until Unlock or TTL.
type CacheLock struct {
	c   *cache.Cache
	ttl time.Duration
}

func NewCacheLock(ttl time.Duration) *CacheLock {
	return &CacheLock{
		// purge expired leases at twice the lease length
		c:   cache.New(ttl, 2*ttl),
		ttl: ttl,
	}
}

func (l *CacheLock) TryLock(_ context.Context, key string) bool {
	return l.c.Add(key, true, l.ttl) == nil
}

func (l *CacheLock) Unlock(_ context.Context, key string) {
	l.c.Delete(key)
}
