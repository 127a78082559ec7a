package lock

import "context"

// Provider is a best-effort, TTL-bounded advisory lock keyed by an arbitrary
// string. TryLock never blocks; a false return means somebody else holds the
// lease and the caller decides what to do about it. Unlock is idempotent and
// must tolerate keys that were never locked, since the engine releases
// unconditionally in its finally step. A crashed holder's lease self-expires.
type Provider interface {
	TryLock(ctx context.Context, key string) bool
	Unlock(ctx context.Context, key string)
}
