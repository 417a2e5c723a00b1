// Package session provides the credential cache that makes a login survive
// process restarts: an in-memory copy backed by a persisted key-value mirror
// with read-through fallback.
//
// # Lookup precedence
//
// Reads hit memory first. On a miss the persisted mirror is consulted; a
// decodable hit repopulates the memory cache before the value is returned
// (self-healing write-back). An unparsable mirror entry reads as absence,
// never as an error surfaced to the user.
//
// # Architecture boundaries
//
// This package owns the [Store] and the [Credential] model. It never
// initiates network calls, never validates token contents, and applies no
// client-side expiry — token lifetime is the server's responsibility.
//
// # What this package must NOT do
//
//   - Import ebank or api (no upward imports).
//   - Talk to the banking API.
//   - Interpret or refresh the token.
package session
