package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pfrederiksen/pavilion-events/internal/event"
)

// RedisOpts configures the Redis-backed snapshot store.
type RedisOpts struct {
	Addr     string
	Password string
	DB       int
	Key      string
	TTL      time.Duration
	Timeout  time.Duration
}

// Redis stores the catalog snapshot under a single key with the server's
// native expiry (SET ... EX), so a stale snapshot simply stops existing.
type Redis struct {
	rdb *redis.Client
	key string
	ttl time.Duration
}

// NewRedis creates a Redis-backed store. Defaults: DefaultKey, DefaultTTL,
// 5s dial/read/write timeouts.
func NewRedis(o RedisOpts) *Redis {
	if o.Key == "" {
		o.Key = DefaultKey
	}
	if o.TTL <= 0 {
		o.TTL = DefaultTTL
	}
	if o.Timeout <= 0 {
		o.Timeout = 5 * time.Second
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:         o.Addr,
		Password:     o.Password,
		DB:           o.DB,
		DialTimeout:  o.Timeout,
		ReadTimeout:  o.Timeout,
		WriteTimeout: o.Timeout,
	})
	return &Redis{rdb: rdb, key: o.Key, ttl: o.TTL}
}

// Get loads and decodes the snapshot. A missing or expired key maps to
// ErrNoSnapshot; transport failures surface as errors for the caller to
// degrade on.
func (r *Redis) Get(ctx context.Context) (*event.Snapshot, error) {
	val, err := r.rdb.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("reading snapshot from redis: %w", err)
	}

	var snap event.Snapshot
	if err := json.Unmarshal(val, &snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	return &snap, nil
}

// Put encodes and writes the snapshot with the TTL applied at write time.
func (r *Redis) Put(ctx context.Context, snap *event.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	if err := r.rdb.Set(ctx, r.key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("writing snapshot to redis: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (r *Redis) Close() error {
	return r.rdb.Close()
}
