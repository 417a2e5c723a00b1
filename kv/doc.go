// Package kv provides the persisted key-value port behind the session store,
// with in-memory, file-backed, and Redis-backed implementations.
//
// # Architecture boundaries
//
// This package owns raw string persistence only. It does NOT know what a
// credential is, how it is encoded, or when it expires — those
// responsibilities belong to the session package.
//
// # What this package must NOT do
//
//   - Import ebank or session (no upward imports).
//   - Interpret stored values.
//   - Apply TTLs or eviction on its own.
package kv
