package lock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCacheLockMutualExclusion(t *testing.T) {
	l := NewCacheLock(time.Minute)
	ctx := context.Background()

	require.True(t, l.TryLock(ctx, "1NGN"))
	require.False(t, l.TryLock(ctx, "1NGN"), "held lease must not be re-acquired")
	require.True(t, l.TryLock(ctx, "1USD"), "other keys are independent")

	l.Unlock(ctx, "1NGN")
	require.True(t, l.TryLock(ctx, "1NGN"), "released lease is available again")
}

func TestCacheLockUnlockIsIdempotent(t *testing.T) {
	l := NewCacheLock(time.Minute)
	ctx := context.Background()

	// The engine releases in its finally step whether or not the lock was
	// actually held, so unlocking a never-locked key must be harmless.
	l.Unlock(ctx, "never-locked")
	l.Unlock(ctx, "never-locked")

	require.True(t, l.TryLock(ctx, "never-locked"))
	l.Unlock(ctx, "never-locked")
	l.Unlock(ctx, "never-locked")
}

func TestCacheLockLeaseExpires(t *testing.T) {
	l := NewCacheLock(50 * time.Millisecond)
	ctx := context.Background()

	require.True(t, l.TryLock(ctx, "crashed-holder"))
	require.False(t, l.TryLock(ctx, "crashed-holder"))

	time.Sleep(120 * time.Millisecond)

	require.True(t, l.TryLock(ctx, "crashed-holder"),
		"lease must self-expire after the TTL")
}
