package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// File is a [Store] persisted as a single JSON file. Writes go through a
// temp file followed by rename, so a crash mid-write never corrupts the
// previous snapshot.
//
// File instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type File struct {
	mu   sync.Mutex
	path string
}

// NewFile creates a file-backed store at path. The file is created lazily on
// the first Set.
func NewFile(path string) *File {
	return &File{path: path}
}

// Get describes the get operation and its observable behavior.
//
// Get may return an error when input validation, dependency calls, or security checks fail.
// Get does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (f *File) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.load()
	if err != nil {
		return "", err
	}
	v, ok := values[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Set describes the set operation and its observable behavior.
//
// Set may return an error when input validation, dependency calls, or security checks fail.
// Set does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (f *File) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.load()
	if err != nil {
		return err
	}
	values[key] = value
	return f.save(values)
}

// Delete describes the delete operation and its observable behavior.
//
// Delete may return an error when input validation, dependency calls, or security checks fail.
// Delete does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (f *File) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.load()
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return f.save(values)
}

func (f *File) load() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		// Unparsable snapshot reads as empty rather than failing every call.
		return map[string]string{}, nil
	}
	return values, nil
}

func (f *File) save(values map[string]string) error {
	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
