// Package goSession provides stateless, server-verifiable session management
// for HTTP services: the whole session record (identity, role) is encrypted,
// authenticated, and carried inside a client-held cookie. There is no
// server-side session store to consult, replicate, or revoke against.
//
// The package is designed for concurrent server workloads: Codec methods are
// safe to call from multiple goroutines after initialization through
// [Builder.Build].
//
// # Architecture boundaries
//
// goSession is the public surface. It exposes [Codec], [Builder], [Config],
// and the audit/metrics value types. Key derivation lives in kdf, the AEAD
// boundary in seal, record modeling and policy in session, header formatting
// in cookie, and request guards in middleware. Routing decisions, identity
// business logic, and secret provisioning belong to the host.
//
// # Security contract
//
// Every way a token can be invalid (missing, malformed, truncated, sealed
// under a different secret, tampered with) collapses to the same observable
// outcome: the anonymous record. Diagnostic reject classification is emitted
// only through the audit sink, never through return values.
//
// # What this package must NOT do
//
//   - Store session state server-side, or retain secrets beyond a call.
//   - Surface distinguishable decryption errors to request handlers.
//   - Import any sub-package that re-imports goSession (no import cycles).
package goSession
