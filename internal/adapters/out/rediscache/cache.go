// Package rediscache implements ports.RecipientCache on top of Redis.
//
// Cache failures never reach the caller: a failed read is reported as a miss
// and failed writes are only logged, so the store stays the source of truth.
package rediscache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// versionTTL bounds how long an untouched generation counter lives.
// It only has to outlast the slowest store read of a reader.
const versionTTL = 24 * time.Hour

var errStaleVersion = errors.New("cache key was invalidated")

func versionKey(key string) string {
	return key + ":v"
}

// Options configures the Redis connection.
type Options struct {
	Addr     string
	Username string
	Password string
	DB       int
	TTL      time.Duration
}

// Cache stores raw payloads in Redis with a fixed TTL.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// New creates a cache. The connection is established lazily; use Ping to check it.
func New(opts Options, logger *slog.Logger) *Cache {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Username: opts.Username,
		Password: opts.Password,
		DB:       opts.DB,
	})
	return &Cache{
		client: client,
		ttl:    opts.TTL,
		logger: logger.With("component", "recipient_cache"),
	}
}

// Get returns the payload stored under key.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false
	}
	if err != nil {
		c.logger.WarnContext(ctx, "cache read failed", "key", key, "error", err)
		return nil, false
	}
	return payload, true
}

// Version returns the generation stored under the version key of key.
// A key that was never invalidated is at generation 0.
func (c *Cache) Version(ctx context.Context, key string) (int64, bool) {
	version, err := c.client.Get(ctx, versionKey(key)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, true
	}
	if err != nil {
		c.logger.WarnContext(ctx, "cache version read failed", "key", key, "error", err)
		return 0, false
	}
	return version, true
}

// SetIfVersion stores payload under key with the configured TTL.
// The version key is watched, so an Invalidate landing between the check and
// the write aborts the transaction.
func (c *Cache) SetIfVersion(ctx context.Context, key string, version int64, payload []byte) {
	vkey := versionKey(key)

	err := c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, vkey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return errStaleVersion
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, c.ttl)
			return nil
		})
		return err
	}, vkey)

	switch {
	case err == nil:
	case errors.Is(err, errStaleVersion), errors.Is(err, redis.TxFailedErr):
		c.logger.DebugContext(ctx, "cache fill skipped, key was invalidated", "key", key, "version", version)
	default:
		c.logger.WarnContext(ctx, "cache write failed", "key", key, "error", err)
	}
}

// Invalidate bumps the generation of key and evicts it in one transaction.
func (c *Cache) Invalidate(ctx context.Context, key string) {
	vkey := versionKey(key)

	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, vkey)
		pipe.Expire(ctx, vkey, versionTTL)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		c.logger.WarnContext(ctx, "cache invalidation failed", "key", key, "error", err)
	}
}

// Ping checks connectivity.
func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close releases the connection pool.
func (c *Cache) Close() error {
	return c.client.Close()
}
