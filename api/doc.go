// Package api implements the HTTP JSON client for the demo banking REST
// surface. It satisfies the collaborator ports declared in the root package
// and contains no business rules of its own.
//
// # Architecture boundaries
//
// The package may depend on the root package for port and wire types. It
// must not import the session package or touch credential storage; tokens
// arrive as plain arguments on every call.
//
// # What this package must NOT do
//
// No retries, no caching, no token refresh, and no interpretation of error
// response bodies. A failed call is reported by status classification only.
package api
