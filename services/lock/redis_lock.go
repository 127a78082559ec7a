package lock

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/CrestPay/CrestPay-Backend/services/monitoring/logging"
)

const redisLockKeyPrefix = "ledger:lock:"

// RedisLock is the shared-cache lock provider for multi-node deployments.
// SET NX with an expiry gives the same insert-if-absent lease semantics as
// the in-process cache, just visible to every instance.
type RedisLock struct {
	client *redis.Client
	ttl    time.Duration
	logger *logging.Logger
}

func NewRedisLock(client *redis.Client, ttl time.Duration, logger *logging.Logger) *RedisLock {
	return &RedisLock{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (l *RedisLock) TryLock(ctx context.Context, key string) bool {
	ok, err := l.client.SetNX(ctx, redisLockKeyPrefix+key, "1", l.ttl).Result()
	if err != nil {
		// A broken cache must not stall the ledger; the lock is advisory.
		l.logger.Error("redis lock acquire failed: ", err)
		return false
	}
	return ok
}

func (l *RedisLock) Unlock(ctx context.Context, key string) {
	if err := l.client.Del(ctx, redisLockKeyPrefix+key).Err(); err != nil {
		l.logger.Error("redis lock release failed: ", err)
	}
}
