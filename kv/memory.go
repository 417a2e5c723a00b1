package kv

import (
	"context"
	"sync"
)

// Memory is an in-process [Store]. It is the single-writer browser-context
// analog and the default backend in tests.
//
// Memory instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemory creates an empty in-process store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

// Get describes the get operation and its observable behavior.
//
// Get may return an error when input validation, dependency calls, or security checks fail.
// Get does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Set describes the set operation and its observable behavior.
//
// Set may return an error when input validation, dependency calls, or security checks fail.
// Set does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Delete describes the delete operation and its observable behavior.
//
// Delete may return an error when input validation, dependency calls, or security checks fail.
// Delete does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
