// Package session defines the session record carried inside the sealed cookie
// and the pure policy predicates evaluated over it.
//
// # Plaintext encoding
//
// Records serialize to a compact key-value text form (query-escaped, fixed
// field order, empty fields omitted). There is no schema version byte: the
// decoder is total over arbitrary byte sequences, so schema drift degrades to
// "no session" after a future decode instead of crashing request handling.
//
// # Architecture boundaries
//
// This package owns the [Record] model, its wire encoding, and the policy
// predicates. It does NOT perform cryptography, touch HTTP, or decide what a
// handler does with a predicate result; those belong to seal, cookie, and the
// host routing layer.
package session
