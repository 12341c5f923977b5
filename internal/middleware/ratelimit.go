package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"

	"codeberg.org/cde/python-api/internal/errors"
	"codeberg.org/cde/python-api/internal/logger"
)

const rateLimitPrefix = "python-api:ratelimit"

// limiter counters, kept in process memory or shared through Redis
type RateLimitStore struct {
	limiter.Store
	client *redis.Client
}

// creates an in-memory store when redisURL is empty, otherwise a Redis store
// shared by every replica
func NewRateLimitStore(ctx context.Context, redisURL string) (*RateLimitStore, error) {
	if redisURL == "" {
		return &RateLimitStore{Store: memory.NewStoreWithOptions(limiter.StoreOptions{
			Prefix:          rateLimitPrefix,
			CleanUpInterval: time.Minute,
		})}, nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	store, err := sredis.NewStoreWithOptions(client, limiter.StoreOptions{Prefix: rateLimitPrefix})
	if err != nil {
		client.Close() //nolint:errcheck,gosec // best-effort cleanup on init failure
		return nil, fmt.Errorf("failed to create redis rate limit store: %w", err)
	}

	logger.Info("rate limiting backed by redis", "addr", opts.Addr)

	return &RateLimitStore{Store: store, client: client}, nil
}

// reports whether counters are shared through Redis
func (s *RateLimitStore) Shared() bool {
	return s.client != nil
}

// closes the Redis connection, if any
func (s *RateLimitStore) Close() error {
	if s.client == nil {
		return nil
	}

	return s.client.Close()
}

// limits requests per client IP; exemptPaths (probes, metrics) are never limited
func RateLimit(formatted string, store limiter.Store, exemptPaths ...string) (gin.HandlerFunc, error) {
	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("invalid rate %q: %w", formatted, err)
	}

	exempt := make(map[string]struct{}, len(exemptPaths))
	for _, p := range exemptPaths {
		exempt[p] = struct{}{}
	}

	limit := mgin.NewMiddleware(limiter.New(store, rate),
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			logger.FromContext(c.Request.Context()).Warn("rate limit exceeded", "client_ip", c.ClientIP(), "path", c.Request.URL.Path)
			errors.TooManyRequests(c, "rate limit exceeded")
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			errors.InternalError(c, "rate limiter unavailable", err)
		}),
	)

	return func(c *gin.Context) {
		if _, ok := exempt[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		limit(c)
	}, nil
}
