// Package cache holds the Redis client bootstrap. The catalog never caches
// query results; Redis only carries store snapshot notifications.
package cache

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/noah-isme/studio-catalog/pkg/config"
)

const (
	clientName     = "studio-catalog"
	connectTimeout = 5 * time.Second
	publishTimeout = time.Second
	publisherPool  = 4
)

// Addr returns the host:port of the configured Redis server.
func Addr(cfg config.RedisConfig) string {
	return net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
}

// Options builds client options for a publish-only workload: a small pool and
// short write deadlines so a slow broker cannot hold up store transitions.
func Options(cfg config.RedisConfig) *redis.Options {
	return &redis.Options{
		Addr:         Addr(cfg),
		Password:     cfg.Password,
		DB:           cfg.DB,
		ClientName:   clientName,
		DialTimeout:  connectTimeout,
		WriteTimeout: publishTimeout,
		ReadTimeout:  publishTimeout,
		PoolSize:     publisherPool,
	}
}

// NewRedis connects to Redis and verifies the connection within ctx.
func NewRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	opts := Options(cfg)
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", opts.Addr, err)
	}
	return client, nil
}
