// Package cookie formats and parses the HTTP headers that carry session
// tokens, per RFC 6265 semantics.
//
// The cookie name, max age, and attribute set are fixed constants across the
// system. Set-Cookie output uses one exact attribute order so responses are
// byte-stable; Cookie parsing is deliberately forgiving (malformed pairs are
// skipped, values may contain '=').
//
// # What this package must NOT do
//
//   - Inspect or validate token contents; tokens are opaque strings here.
//   - Import seal or session (no sideways imports; the Codec composes them).
package cookie
