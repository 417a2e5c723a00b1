// Package metrics implements the in-process counters and the transfer
// latency histogram behind the root package's metric IDs.
//
// # Architecture boundaries
//
// This package owns counter storage only. Exposition formats (Prometheus
// text, OTel instruments) live under metrics/export and read snapshots
// through the root package.
//
// # What this package must NOT do
//
//   - Import ebank (no upward imports).
//   - Block: every operation is a single atomic access.
package metrics
