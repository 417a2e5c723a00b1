// Package audit implements the event model, sinks, and the asynchronous
// dispatcher behind the root package's audit surface.
//
// # Architecture boundaries
//
// This package owns delivery only. Event types and emission policy live in
// the root package.
//
// # What this package must NOT do
//
//   - Import ebank (no upward imports).
//   - Block engine operations: dispatch is asynchronous, with a bounded
//     buffer and an explicit drop counter.
package audit
