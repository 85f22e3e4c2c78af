package redis

import (
	"context"
	"fmt"
	"time"

	"tastoria/config"

	"github.com/redis/go-redis/v9"
)

// Connect creates a go-redis client and pings it.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return rdb, nil
}

// Disconnect closes the client.
func Disconnect(rdb *redis.Client) error {
	if rdb == nil {
		return nil
	}
	return rdb.Close()
}
