package services

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wellforge/masterclass-backend/internal/logger"
)

// RateLimiter guards the message endpoint. Allow errors are treated as open
// by callers: a broken redis must not take chat down.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type redisRateLimiter struct {
	log    *logger.Logger
	rdb    *redis.Client
	limit  int64
	window time.Duration
}

func NewRedisRateLimiter(log *logger.Logger, rdb *redis.Client, limit int, window time.Duration) RateLimiter {
	return &redisRateLimiter{
		log:    log.With("service", "RateLimiter"),
		rdb:    rdb,
		limit:  int64(limit),
		window: window,
	}
}

func (r *redisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	bucket := fmt.Sprintf("ratelimit:%s:%d", key, time.Now().Unix()/int64(r.window.Seconds()))
	count, err := r.rdb.Incr(ctx, bucket).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := r.rdb.Expire(ctx, bucket, r.window).Err(); err != nil {
			r.log.Warn("Failed to set rate limit expiry", "key", bucket, "error", err)
		}
	}
	return count <= r.limit, nil
}
