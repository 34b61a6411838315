// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"crypto/tls"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisOptions configures a [RedisStore] connection, mirroring the
// connection-shaping knobs an operator needs for a shared Redis archive
// rather than per-file artifacts.
type RedisOptions struct {
	// URL is the Redis connection string (e.g. "redis://localhost:6379").
	URL string

	// TLS configures a TLS connection to Redis, if any.
	TLS *tls.Config

	// ConnectTimeout bounds the initial dial and liveness ping.
	ConnectTimeout time.Duration

	// ReadTimeout and WriteTimeout bound individual command round-trips.
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// RedisStore is an alternate [Store] backend for operators who want a
// centrally queryable frame archive instead of (or alongside) the
// per-file layout in [FSStore]. Every key is stored as a standalone
// string value (SET), keeping the read path a plain GET by the same key
// the dispatcher wrote.
type RedisStore struct {
	client *redis.Client
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore dials Redis per opts, applying defaults when unset (URL
// "redis://localhost:6379", a 5s connect timeout, 30s read timeout, 5s
// write timeout) and a liveness PING before returning.
func NewRedisStore(opts RedisOptions) (*RedisStore, error) {
	if opts.URL == "" {
		opts.URL = "redis://localhost:6379"
	}
	if opts.ConnectTimeout == 0 {
		opts.ConnectTimeout = 5 * time.Second
	}
	if opts.ReadTimeout == 0 {
		opts.ReadTimeout = 30 * time.Second
	}
	if opts.WriteTimeout == 0 {
		opts.WriteTimeout = 5 * time.Second
	}

	redisOpts, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("store: parsing redis URL: %w", err)
	}
	redisOpts.TLSConfig = opts.TLS
	redisOpts.DialTimeout = opts.ConnectTimeout
	redisOpts.ReadTimeout = opts.ReadTimeout
	redisOpts.WriteTimeout = opts.WriteTimeout

	client := redis.NewClient(redisOpts)

	ctx, cancel := context.WithTimeout(context.Background(), opts.ConnectTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("store: connecting to redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// Put implements [Store] as a plain SET with no expiry: artifacts are
// kept indefinitely, matching the append-only contract of §4.6.
func (r *RedisStore) Put(ctx context.Context, key string, data []byte) error {
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("store: writing %q to redis: %w", key, err)
	}
	return nil
}

// Close releases the underlying Redis connection pool.
func (r *RedisStore) Close() error {
	return r.client.Close()
}
