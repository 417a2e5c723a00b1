package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ebank-go/ebank/kv"
)

// DefaultStorageKey is the fixed key under which the credential mirror is
// persisted.
const DefaultStorageKey = "credential"

// ErrStoreUnavailable wraps persisted-mirror write failures.
var ErrStoreUnavailable = errors.New("session store unavailable")

// Store is the single source of truth for "who is logged in". It holds the
// current [Credential] in memory and mirrors it into a [kv.Store] so a fresh
// process can restore the session.
//
//	Performance: reads are memory-only after the first hit; the mirror is
//	consulted once per cold start.
type Store struct {
	mu     sync.Mutex
	cached *Credential
	mirror kv.Store
	key    string
}

// NewStore creates a credential store over the given persisted mirror.
// key selects the mirror entry and defaults to [DefaultStorageKey].
func NewStore(mirror kv.Store, key string) *Store {
	if key == "" {
		key = DefaultStorageKey
	}
	return &Store{mirror: mirror, key: key}
}

// SetCredential replaces the current credential wholesale: memory first,
// then the persisted mirror. The in-memory copy is updated even when the
// mirror write fails, so the session stays usable for the current process.
func (s *Store) SetCredential(ctx context.Context, c Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := c
	s.cached = &cp

	encoded, err := Encode(&cp)
	if err != nil {
		return err
	}
	if err := s.mirror.Set(ctx, s.key, encoded); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// Credential returns a copy of the current credential, falling back to the
// persisted mirror when memory is empty. A mirror hit repopulates the cache
// before returning. The second return value reports presence.
func (s *Store) Credential(ctx context.Context) (Credential, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.lookup(ctx)
	if c == nil {
		return Credential{}, false
	}
	return *c, true
}

// Token returns the current token with the same read-through semantics as
// [Store.Credential].
func (s *Store) Token(ctx context.Context) (string, bool) {
	c, ok := s.Credential(ctx)
	if !ok {
		return "", false
	}
	return c.Token, true
}

// CurrentUser returns the owner profile with the same read-through semantics
// as [Store.Credential].
func (s *Store) CurrentUser(ctx context.Context) (Account, bool) {
	c, ok := s.Credential(ctx)
	if !ok {
		return Account{}, false
	}
	return c.Owner, true
}

// IsLoggedIn reports whether a token is currently available.
func (s *Store) IsLoggedIn(ctx context.Context) bool {
	_, ok := s.Token(ctx)
	return ok
}

// Logout clears the in-memory credential and removes the persisted mirror
// entry. Calling it while already logged out is a no-op.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cached = nil
	if err := s.mirror.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return nil
}

// lookup implements the read-through. Caller holds s.mu.
func (s *Store) lookup(ctx context.Context) *Credential {
	if s.cached != nil {
		return s.cached
	}

	data, err := s.mirror.Get(ctx, s.key)
	if err != nil {
		return nil
	}

	c, err := Decode(data)
	if err != nil {
		return nil
	}

	s.cached = c
	return c
}
