// Package ebank provides the client-side session and transfer workflow
// engine for the demo banking service: credential caching across restarts,
// a paginated transaction ledger, and money-transfer submission with
// validation and error-recovery rules.
//
// The package is designed for UI frontends: a [Workflow] is driven by user
// interaction events, and its accessors always return consistent snapshots
// of the last completed operation.
//
// # Architecture boundaries
//
// ebank is the public surface. It exposes [Engine], [Workflow], [Builder],
// [Config], and value types. Credential persistence lives in the session
// sub-package behind the kv storage port; HTTP plumbing lives in api;
// metrics exporters live under metrics/export.
//
// # What this package must NOT do
//
//   - Perform network transport itself (all remote calls go through the
//     injected [AuthAPI], [AccountAPI], and [TransactionAPI] ports).
//   - Retry failed calls or cancel in-flight ones.
//   - Surface server-provided failure detail to users; authentication and
//     transfer failures stay generic by design.
//
// # Failure policy
//
// Every remote failure is absorbed at its call site: balance and ledger
// loads keep prior state, transfer and login failures become generic
// user-facing messages. Nothing propagates past the workflow.
package ebank
