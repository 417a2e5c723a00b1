package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis is a [Store] backed by a Redis client. Keys are namespaced under a
// prefix so several clients can share one instance. Values are stored
// without TTL; lifetime is the caller's concern.
//
// Redis instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Redis struct {
	client redis.UniversalClient
	prefix string
}

// NewRedis creates a Redis-backed store. prefix sets the key namespace and
// defaults to "ebank" when empty.
func NewRedis(client redis.UniversalClient, prefix string) *Redis {
	if prefix == "" {
		prefix = "ebank"
	}
	return &Redis{client: client, prefix: prefix}
}

func (r *Redis) key(key string) string {
	return r.prefix + ":" + key
}

// Get describes the get operation and its observable behavior.
//
// Get may return an error when input validation, dependency calls, or security checks fail.
// Get does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (r *Redis) Get(ctx context.Context, key string) (string, error) {
	v, err := r.client.Get(ctx, r.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return v, nil
}

// Set describes the set operation and its observable behavior.
//
// Set may return an error when input validation, dependency calls, or security checks fail.
// Set does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (r *Redis) Set(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Delete describes the delete operation and its observable behavior.
//
// Delete may return an error when input validation, dependency calls, or security checks fail.
// Delete does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (r *Redis) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
