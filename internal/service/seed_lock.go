package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/riyaziyyat/exam-backend/internal/config"
)

// SeedLock serializes seeding across processes sharing one store.
type SeedLock interface {
	// TryAcquire returns acquired=false without error when someone else holds
	// the lock. release must be called once seeding ends.
	TryAcquire(ctx context.Context) (release func(), acquired bool, err error)
}

// releaseScript deletes the key only if it still holds our token, so an
// expired lock taken over by another process is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisSeedLock is a SET NX lock with a TTL.
type RedisSeedLock struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisSeedLock returns nil when rdb is nil so callers can seed unlocked.
func NewRedisSeedLock(rdb *redis.Client, ttl time.Duration) SeedLock {
	if rdb == nil {
		return nil
	}
	return &RedisSeedLock{rdb: rdb, ttl: ttl}
}

func (l *RedisSeedLock) TryAcquire(ctx context.Context) (func(), bool, error) {
	key := config.CacheKey.SeedLockKey()
	token := uuid.NewString()

	ok, err := l.rdb.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, false, fmt.Errorf("acquire seed lock: %w", err)
	}
	if !ok {
		return nil, false, nil
	}

	release := func() {
		// The request context may already be cancelled here.
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		// On failure the TTL clears the key.
		_ = releaseScript.Run(ctx, l.rdb, []string{key}, token).Err()
	}
	return release, true, nil
}
