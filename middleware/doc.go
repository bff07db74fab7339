// Package middleware provides net/http guards built on the goSession Codec.
//
// Attach decodes the session cookie once and stores the record in the request
// context; RequireAuthenticated and RequireElevated enforce policy over that
// record and fail closed with 401/403. Handlers read the record back with
// RecordFromContext.
//
// # What this package must NOT do
//
//   - Re-decrypt the cookie per guard (Attach decodes once).
//   - Leak why a session was rejected in any response body or header.
package middleware
