// Package redisstore persists the device state in Redis, one string key per
// persisted value.
package redisstore

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// Store is a kv.Store backed by a Redis client.
type Store struct {
	client redis.UniversalClient
	prefix string
}

// New wraps client. Keys are namespaced with prefix.
func New(client redis.UniversalClient, prefix string) *Store {
	return &Store{client: client, prefix: prefix}
}

// Dial connects to the server at addr and verifies the connection.
func Dial(ctx context.Context, addr, password string, db int, prefix string) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "failed to connect to redis at %s", addr)
	}

	return New(client, prefix), nil
}

// Get reads the value stored under key.
func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := s.client.Get(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "failed to get %s", key)
	}

	return raw, true, nil
}

// Set stores value under key without expiry.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return errors.Wrapf(err, "failed to set %s", key)
	}

	return nil
}

// Delete removes the keys in a single command.
func (s *Store) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	full := make([]string, 0, len(keys))
	for _, key := range keys {
		full = append(full, s.key(key))
	}
	if err := s.client.Del(ctx, full...).Err(); err != nil {
		return errors.Wrap(err, "failed to delete keys")
	}

	return nil
}

// Close closes the underlying client.
func (s *Store) Close() error {
	return errors.WithStack(s.client.Close())
}

func (s *Store) key(key string) string {
	return s.prefix + key
}
