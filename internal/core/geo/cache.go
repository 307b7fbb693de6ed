package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const cachePrefix = "geocode:"

// Cache stores geocoding hits. Get returns nil without error on a miss.
type Cache interface {
	Get(ctx context.Context, key string) (*Location, error)
	Set(ctx context.Context, key string, loc *Location) error
}

type RedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisCache connects to rawURL and checks the connection.
func NewRedisCache(ctx context.Context, rawURL string, ttl time.Duration) (*RedisCache, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	return &RedisCache{rdb: rdb, ttl: ttl}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) (*Location, error) {
	data, err := c.rdb.Get(ctx, cachePrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", key, err)
	}
	var loc Location
	if err := json.Unmarshal(data, &loc); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", key, err)
	}
	return &loc, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, loc *Location) error {
	data, err := json.Marshal(loc)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := c.rdb.Set(ctx, cachePrefix+key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

func (c *RedisCache) Close() error { return c.rdb.Close() }

// Cached puts a Cache in front of a Geocoder. Misses are not remembered and
// cache errors only cost a log line.
type Cached struct {
	next  Geocoder
	cache Cache
}

func NewCached(next Geocoder, cache Cache) *Cached {
	return &Cached{next: next, cache: cache}
}

func (c *Cached) Geocode(ctx context.Context, query string) *Location {
	key := strings.ToLower(strings.TrimSpace(query))
	if key == "" {
		return nil
	}
	if loc, err := c.cache.Get(ctx, key); err != nil {
		slog.Warn("geocode cache read failed", "query", key, "error", err)
	} else if loc != nil {
		return loc
	}

	loc := c.next.Geocode(ctx, query)
	if loc == nil {
		return nil
	}
	if err := c.cache.Set(ctx, key, loc); err != nil {
		slog.Warn("geocode cache write failed", "query", key, "error", err)
	}
	return loc
}
