package testkit

import (
	"context"
	"fmt"
	"net/url"

	"github.com/redis/go-redis/v9"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// startRedis starts a Redis container, or returns nil with the external address.
func startRedis(ctx context.Context, cfg *Config) (testcontainers.Container, string, error) {
	if cfg.RedisAddr != "" {
		return nil, cfg.RedisAddr, nil
	}

	ctr, err := tcredis.Run(ctx, cfg.RedisImage)
	if err != nil {
		return nil, "", fmt.Errorf("start redis container: %w", err)
	}

	connStr, err := ctr.ConnectionString(ctx)
	if err != nil {
		_ = ctr.Terminate(ctx)
		return nil, "", fmt.Errorf("get redis connection string: %w", err)
	}

	// redis.Options wants host:port, the module hands out a redis:// URL.
	u, err := url.Parse(connStr)
	if err != nil {
		_ = ctr.Terminate(ctx)
		return nil, "", fmt.Errorf("parse redis connection string %q: %w", connStr, err)
	}
	return ctr, u.Host, nil
}

func openRedis(ctx context.Context, addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis %s: %w", addr, err)
	}
	return rdb, nil
}
