package cache

import (
	"context"
	"errors"
	"fmt"
	"time"
)

const (
	RedisBackend  = "redis"
	MemoryBackend = "memory"
)

var ErrCacheMiss = errors.New("cache: key not found")

// Cache is our generic cache interface.
type Cache[V any] interface {
	// Get returns the value or ErrCacheMiss.
	Get(ctx context.Context, key string) (V, error)
	// Set stores value under key, with TTL. Zero ttl = no expiration.
	Set(ctx context.Context, key string, value V, ttl time.Duration) error
	// Delete removes the key.
	Delete(ctx context.Context, key string) error
}

// Config selects and tunes the cache backend
type Config struct {
	Backend         string        `env:"CACHE_BACKEND" env-default:"memory" validate:"oneof=memory redis"`
	KeyPrefix       string        `env:"CACHE_KEY_PREFIX" env-default:"wagerlog:"`
	RedisAddr       string        `env:"REDIS_ADDR" env-default:"localhost:6379"`
	RedisPassword   string        `env:"REDIS_PASSWORD"`
	RedisDB         int           `env:"REDIS_DB" env-default:"0"`
	RedisPoolSize   int           `env:"REDIS_POOL_SIZE" env-default:"20"`
	RedisMaxRetries int           `env:"REDIS_MAX_RETRIES" env-default:"2"`
	OpTimeout       time.Duration `env:"REDIS_OP_TIMEOUT" env-default:"50ms"`
}

// RedisOptions converts the redis part of the config
func (c Config) RedisOptions() *RedisOptions {
	return &RedisOptions{
		Addr:            c.RedisAddr,
		Password:        c.RedisPassword,
		DB:              c.RedisDB,
		PoolSize:        c.RedisPoolSize,
		MaxRetries:      c.RedisMaxRetries,
		MinRetryBackoff: 8 * time.Millisecond,
		MaxRetryBackoff: 512 * time.Millisecond,
		OpTimeout:       c.OpTimeout,
		KeyPrefix:       c.KeyPrefix,
	}
}

// New builds a cache for values of type V on the configured backend
func New[V any](cfg Config) (Cache[V], error) {
	switch cfg.Backend {
	case RedisBackend:
		return NewRedisCache[V](cfg.RedisOptions()), nil
	case MemoryBackend, "":
		return NewMemoryCache[V](), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Backend)
	}
}
