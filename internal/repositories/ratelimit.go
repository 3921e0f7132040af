package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-social-content/internal/logger"
)

// RateLimitRepository counts requests per key in fixed Redis windows.
type RateLimitRepository struct {
	client *redis.Client
	now    func() time.Time
}

func NewRateLimitRepository(client *redis.Client) *RateLimitRepository {
	return &RateLimitRepository{client: client, now: time.Now}
}

// Allow records one hit for key in the current window and reports whether
// the number of hits is still within limit.
func (r *RateLimitRepository) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	windowStart := r.now().Truncate(window).Unix()
	redisKey := fmt.Sprintf("ratelimit:%s:%d", key, windowStart)

	// INCR and the TTL go out in one MULTI so a key never outlives its window.
	var incr *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		pipe.ExpireNX(ctx, redisKey, window)
		return nil
	})
	if err != nil {
		logger.Log.Errorw("rate limit pipeline failed", "key", redisKey, "error", err)
		return false, err
	}
	count := incr.Val()

	logger.Log.Debugw("rate limit hit",
		"key", redisKey,
		"count", count,
		"limit", limit,
	)

	return count <= int64(limit), nil
}
