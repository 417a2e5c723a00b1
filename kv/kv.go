package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by [Store.Get] when the key holds no value.
var ErrNotFound = errors.New("kv: key not found")

// ErrUnavailable is returned when the backing store cannot be reached.
var ErrUnavailable = errors.New("kv: store unavailable")

// Store is the persisted key-value port. Writes are last-writer-wins; no
// implementation applies locking across processes.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
