// Package redisx opens the optional Redis connection used for rate limiting.
package redisx

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"portfolio-api/internal/config"
)

// Client is an alias for a Redis client
type Client = redis.Client

// Open dials Redis when REDIS_ADDR is configured. An empty address is not an
// error: the client comes back nil and rate limiting falls back to in-memory
// counters.
func Open(cfg *config.Config) (*Client, func(), error) {
	noop := func() {}
	if cfg.Redis.Addr == "" {
		return nil, noop, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, noop, err
	}
	return rdb, func() { _ = rdb.Close() }, nil
}
