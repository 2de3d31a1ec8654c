// Package rdx wraps the Redis connection used as a read-through JSON cache.
// A nil *Cache is valid and behaves as a permanently empty cache.
package rdx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Cache struct {
	conn *redis.Client
	log  *zap.Logger
}

// Connect returns nil when url is empty, which disables caching.
func Connect(ctx context.Context, url, password string, log *zap.Logger) (*Cache, error) {
	if url == "" {
		return nil, nil
	}
	var opts *redis.Options
	if strings.HasPrefix(url, "redis://") || strings.HasPrefix(url, "rediss://") {
		parsed, err := redis.ParseURL(url)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: url}
	}
	if password != "" {
		opts.Password = password
	}
	conn := redis.NewClient(opts)
	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return New(conn, log), nil
}

func New(conn *redis.Client, log *zap.Logger) *Cache {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cache{conn: conn, log: log}
}

func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.conn.Close()
}

// GetJSON decodes the value at key into dst. Misses and Redis failures both report false;
// failures are logged, never returned, so callers fall through to the store.
func (c *Cache) GetJSON(ctx context.Context, key string, dst any) bool {
	if c == nil {
		return false
	}
	raw, err := c.conn.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.Warn("redis get failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		c.log.Warn("redis value undecodable", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

func (c *Cache) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) {
	if c == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := c.conn.Set(ctx, key, raw, ttl).Err(); err != nil {
		c.log.Warn("redis set failed", zap.String("key", key), zap.Error(err))
	}
}

// Generation returns the current generation counter of a namespace (0 when unset).
// Keys built with it go stale as soon as Bump runs.
func (c *Cache) Generation(ctx context.Context, namespace string) int64 {
	if c == nil {
		return 0
	}
	n, err := c.conn.Get(ctx, genKey(namespace)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		c.log.Warn("redis generation read failed", zap.String("namespace", namespace), zap.Error(err))
	}
	return n
}

// Bump invalidates every key derived from the namespace's previous generation.
func (c *Cache) Bump(ctx context.Context, namespace string) {
	if c == nil {
		return
	}
	if err := c.conn.Incr(ctx, genKey(namespace)).Err(); err != nil {
		c.log.Warn("redis generation bump failed", zap.String("namespace", namespace), zap.Error(err))
	}
}

func genKey(namespace string) string { return namespace + ":gen" }
