package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"eventdesk/internal/domain/entities"
	"eventdesk/internal/ports/output"
)

// NewRedisClient parses url, sizes the pool and pings the server.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	opts.PoolSize = 50
	opts.MinIdleConns = 5
	opts.MaxRetries = 3

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	slog.Info("redis connected", "addr", opts.Addr, "db", opts.DB)
	return client, nil
}

// HealthCheck pings the server with a short deadline.
func HealthCheck(ctx context.Context, client redis.UniversalClient) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis health check failed: %w", err)
	}
	return nil
}

var _ output.DetailsCache = (*DetailsCache)(nil)

// DetailsCache stores participant details snapshots as JSON strings.
type DetailsCache struct {
	rdb    redis.UniversalClient
	prefix string
}

func NewDetailsCache(rdb redis.UniversalClient) *DetailsCache {
	return &DetailsCache{rdb: rdb, prefix: "eventdesk:details:"}
}

func (c *DetailsCache) Get(ctx context.Context, key string) (*entities.ParticipantDetails, bool, error) {
	raw, err := c.rdb.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get details %s: %w", key, err)
	}
	var d entities.ParticipantDetails
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, false, fmt.Errorf("decode details %s: %w", key, err)
	}
	return &d, true, nil
}

func (c *DetailsCache) Set(ctx context.Context, key string, d *entities.ParticipantDetails, ttl time.Duration) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode details %s: %w", key, err)
	}
	if err := c.rdb.Set(ctx, c.prefix+key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("set details %s: %w", key, err)
	}
	return nil
}

func (c *DetailsCache) Delete(ctx context.Context, key string) error {
	if err := c.rdb.Del(ctx, c.prefix+key).Err(); err != nil {
		return fmt.Errorf("delete details %s: %w", key, err)
	}
	return nil
}
