package middleware

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/Triaksa-Space/anchorpoint-web/pkg/apperrors"
	"github.com/Triaksa-Space/anchorpoint-web/pkg/logger"
	"github.com/labstack/echo/v4"
	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// Limits bounds how often one client may hit a limited route.
type Limits struct {
	MaxRequests   int           // Maximum number of requests allowed per window
	Window        time.Duration // Time window for rate limiting
	BlockDuration time.Duration // Duration to block the IP after exceeding limits
}

// Decision is the outcome of one recorded hit.
type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
}

// LimitStore records hits per client key.
type LimitStore interface {
	Hit(ctx context.Context, key string, now time.Time) (Decision, error)
}

// RateLimiterConfig holds the configuration for rate limiting
type RateLimiterConfig struct {
	Store LimitStore
	Log   logger.Logger
	// Code is the error code reported when the limit is hit.
	Code string
}

// RateLimiterMiddleware returns a middleware that limits the number of requests per IP.
// Store errors let the request through.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	log := config.Log
	if log == nil {
		log = logger.Nop()
	}
	log = log.WithComponent("rate_limiter")
	code := config.Code
	if code == "" {
		code = apperrors.ErrCodeRateLimitExceeded
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			decision, err := config.Store.Hit(c.Request().Context(), ip, time.Now())
			if err != nil {
				log.WithContext(c.Request().Context()).Warn("Rate limit check failed",
					logger.RemoteIP(ip),
					logger.Err(err),
				)
				return next(c)
			}

			if !decision.Allowed {
				log.WithContext(c.Request().Context()).Warn("Rate limit exceeded", logger.RemoteIP(ip))
				if decision.RetryAfter > 0 {
					seconds := int(math.Ceil(decision.RetryAfter.Seconds()))
					c.Response().Header().Set("Retry-After", strconv.Itoa(seconds))
				}
				return apperrors.NewTooManyRequests(code, "Too many requests from this IP, please try again later.")
			}

			return next(c)
		}
	}
}

type clientWindow struct {
	count        int
	first        time.Time
	blockedUntil time.Time
}

// MemoryLimitStore keeps per-IP windows in process.
type MemoryLimitStore struct {
	limits  Limits
	mu      sync.Mutex
	windows *gocache.Cache
}

func NewMemoryLimitStore(limits Limits) *MemoryLimitStore {
	return &MemoryLimitStore{
		limits:  limits,
		windows: gocache.New(gocache.NoExpiration, time.Minute),
	}
}

func (s *MemoryLimitStore) Hit(_ context.Context, key string, now time.Time) (Decision, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var w clientWindow
	if v, ok := s.windows.Get(key); ok {
		w = v.(clientWindow)
	}

	// Check if IP is currently blocked
	if w.blockedUntil.After(now) {
		return Decision{RetryAfter: w.blockedUntil.Sub(now)}, nil
	}

	switch {
	case w.count == 0 || now.Sub(w.first) > s.limits.Window:
		w = clientWindow{count: 1, first: now}
	case w.count >= s.limits.MaxRequests:
		w.blockedUntil = now.Add(s.limits.BlockDuration)
		s.windows.Set(key, w, s.limits.BlockDuration)
		return Decision{RetryAfter: s.limits.BlockDuration}, nil
	default:
		w.count++
	}

	ttl := s.limits.Window - now.Sub(w.first)
	if ttl <= 0 {
		ttl = s.limits.Window
	}
	s.windows.Set(key, w, ttl)
	return Decision{Allowed: true}, nil
}

const rateLimitKeyPrefix = "ratelimit:"

// RedisLimitStore shares per-IP windows between instances. The window count
// lives in one key that expires with the window; a block is a second key that
// expires with the block.
type RedisLimitStore struct {
	client *redis.Client
	limits Limits
	scope  string
}

// NewRedisLimitStore keys its entries under scope so several limited routes can
// share one redis.
func NewRedisLimitStore(client *redis.Client, scope string, limits Limits) *RedisLimitStore {
	return &RedisLimitStore{client: client, limits: limits, scope: scope}
}

func (s *RedisLimitStore) Hit(ctx context.Context, key string, _ time.Time) (Decision, error) {
	countKey := fmt.Sprintf("%s%s:%s:count", rateLimitKeyPrefix, s.scope, key)
	blockKey := fmt.Sprintf("%s%s:%s:block", rateLimitKeyPrefix, s.scope, key)

	remaining, err := s.client.PTTL(ctx, blockKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return Decision{}, fmt.Errorf("rate limit block lookup: %w", err)
	}
	if remaining > 0 {
		return Decision{RetryAfter: remaining}, nil
	}

	count, err := s.client.Incr(ctx, countKey).Result()
	if err != nil {
		return Decision{}, fmt.Errorf("rate limit count: %w", err)
	}
	if count == 1 {
		if err := s.client.PExpire(ctx, countKey, s.limits.Window).Err(); err != nil {
			return Decision{}, fmt.Errorf("rate limit window: %w", err)
		}
	}

	if count > int64(s.limits.MaxRequests) {
		pipe := s.client.TxPipeline()
		pipe.Set(ctx, blockKey, 1, s.limits.BlockDuration)
		pipe.Del(ctx, countKey)
		if _, err := pipe.Exec(ctx); err != nil {
			return Decision{}, fmt.Errorf("rate limit block: %w", err)
		}
		return Decision{RetryAfter: s.limits.BlockDuration}, nil
	}

	return Decision{Allowed: true}, nil
}
