package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/riyaziyyat/exam-backend/internal/config"
	"github.com/rs/zerolog"
)

// Redis only coordinates seeding, so a handful of connections is plenty.
const (
	redisPoolSize    = 4
	redisDialTimeout = 5 * time.Second
)

// NewRedisClient connects the optional Redis instance used for the seed lock.
// A nil client and nil error mean REDIS_URL is unset and seeding runs unlocked.
func NewRedisClient(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*redis.Client, error) {
	if cfg.RedisURL == "" {
		log.Info().Msg("Redis not configured, seed lock disabled")
		return nil, nil
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	if opt.PoolSize == 0 {
		opt.PoolSize = redisPoolSize
	}
	if opt.DialTimeout == 0 {
		opt.DialTimeout = redisDialTimeout
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	log.Info().
		Str("addr", opt.Addr).
		Int("db", opt.DB).
		Msg("Redis connected, seed lock enabled")

	return rdb, nil
}
