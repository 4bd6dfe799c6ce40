package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Limiter decides whether one more request from key fits in the budget.
type Limiter interface {
	Allow(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)
}

// RedisLimiter is a fixed window counter shared by every replica.
type RedisLimiter struct {
	redisClient *redis.Client
	limit       int
	window      time.Duration
}

func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{redisClient: client, limit: limit, window: window}
}

func (rl *RedisLimiter) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	key = "rate_limit:" + key

	var incr *redis.IntCmd
	var ttl *redis.DurationCmd
	_, err := rl.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		ttl = pipe.TTL(ctx, key)
		return nil
	})
	if err != nil {
		return true, 0, err
	}

	count, remaining := incr.Val(), ttl.Val()
	if remaining < 0 {
		if count > 1 {
			// The counter outlived its window without an expiry; start a new one.
			if err := rl.redisClient.Set(ctx, key, 1, rl.window).Err(); err != nil {
				return true, 0, fmt.Errorf("error resetting %s: %w", key, err)
			}
			return true, 0, nil
		}
		// First hit opens the window.
		if err := rl.redisClient.Expire(ctx, key, rl.window).Err(); err != nil {
			return true, 0, fmt.Errorf("error expiring %s: %w", key, err)
		}
		remaining = rl.window
	}

	if count > int64(rl.limit) {
		return false, remaining, nil
	}
	return true, 0, nil
}

type localBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// LocalLimiter keeps a token bucket per key in process memory. Buckets idle
// for a whole window are full again and get dropped.
type LocalLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*localBucket
	every     rate.Limit
	burst     int
	idle      time.Duration
	lastSweep time.Time
	now       func() time.Time
}

// NewLocalLimiter allows limit requests per window with bursts up to limit.
func NewLocalLimiter(limit int, window time.Duration) *LocalLimiter {
	if limit < 1 {
		limit = 1
	}
	return &LocalLimiter{
		buckets:   make(map[string]*localBucket),
		every:     rate.Every(window / time.Duration(limit)),
		burst:     limit,
		idle:      window,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

func (l *LocalLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) >= l.idle {
		l.sweep(now)
	}

	b, ok := l.buckets[key]
	if !ok {
		b = &localBucket{limiter: rate.NewLimiter(l.every, l.burst)}
		l.buckets[key] = b
	}
	b.lastSeen = now

	r := b.limiter.ReserveN(now, 1)
	delay := r.DelayFrom(now)
	if delay == 0 {
		return true, 0, nil
	}
	r.CancelAt(now)
	return false, delay, nil
}

func (l *LocalLimiter) sweep(now time.Time) {
	for key, b := range l.buckets {
		if now.Sub(b.lastSeen) >= l.idle {
			delete(l.buckets, key)
		}
	}
	l.lastSweep = now
}

// RateLimit rejects requests over budget with 429. Limiter errors fail open.
func RateLimit(limiter Limiter, scope string, logger *zap.Logger) gin.HandlerFunc {
	logger = logger.Named("ratelimit")
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", scope, c.ClientIP())
		allowed, retryAfter, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			logger.Warn("limiter unavailable", zap.Error(err))
			c.Next()
			return
		}

		if !allowed {
			rateLimitedTotal.WithLabelValues(scope).Inc()
			seconds := int(retryAfter.Round(time.Second).Seconds())
			if seconds < 1 {
				seconds = 1
			}
			c.Header("Retry-After", fmt.Sprintf("%d", seconds))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too many requests",
				"retry_after": fmt.Sprintf("%ds", seconds),
			})
			return
		}
		c.Next()
	}
}
