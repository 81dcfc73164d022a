package config

// This file defines a Redis client constructor for the benchmark.
// Redis keeps run summaries around so campaigns executed at different
// times (or from different machines) can be compared.  If connection
// fails during startup, the function returns nil and callers should
// degrade gracefully by skipping summary persistence.

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient instantiates a Redis client from the loaded Config.
// The returned client may be nil if a connection cannot be established;
// summary persistence is optional and the benchmark runs fine without it.
func NewRedisClient(cfg Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	// Ping the server with a short timeout.  Return nil on failure.
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil
	}
	return client
}
