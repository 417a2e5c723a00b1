package kv

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestRedis(t *testing.T) (*Redis, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedis(rdb, "ebank-test")

	return store, func() {
		_ = rdb.Close()
		mr.Close()
	}
}

func TestRedisRoundTrip(t *testing.T) {
	store, done := newTestRedis(t)
	defer done()

	ctx := context.Background()

	if err := store.Set(ctx, "credential", `{"token":"abc"}`); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	v, err := store.Get(ctx, "credential")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if v != `{"token":"abc"}` {
		t.Fatalf("unexpected value: %q", v)
	}
}

func TestRedisGetMissing(t *testing.T) {
	store, done := newTestRedis(t)
	defer done()

	_, err := store.Get(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRedisDeleteIdempotent(t *testing.T) {
	store, done := newTestRedis(t)
	defer done()

	ctx := context.Background()

	if err := store.Set(ctx, "credential", "x"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Delete(ctx, "credential"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if err := store.Delete(ctx, "credential"); err != nil {
		t.Fatalf("second Delete failed: %v", err)
	}
	if _, err := store.Get(ctx, "credential"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestRedisPrefixIsolation(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis run failed: %v", err)
	}
	defer mr.Close()

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	a := NewRedis(rdb, "a")
	b := NewRedis(rdb, "b")

	ctx := context.Background()
	if err := a.Set(ctx, "credential", "alice"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if _, err := b.Get(ctx, "credential"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected prefix isolation, got %v", err)
	}
}
