// Package kdf turns the process-wide shared secret into the fixed-length
// symmetric key used by the seal package.
//
// # Derivation scheme
//
// PBKDF2-HMAC-SHA256 with 100,000 iterations, a fixed application salt, and a
// 32-byte output. The salt is deliberately constant: the derivation is a
// key-stretching step against weak secrets, not a per-record salting scheme.
// Per-record randomness lives entirely in the seal nonce. The constant salt
// keeps the derived key reproducible and cacheable; the tradeoff is weaker
// defense against precomputed tables, accepted for token compatibility.
//
// # Caching
//
// Derivation is deterministic, so derived keys are memoized per process keyed
// on the secret value. Recomputing is always safe, merely slower.
//
// # What this package must NOT do
//
//   - Persist the secret or the derived key anywhere.
//   - Hand the derived key to anything other than the AEAD seal path.
package kdf
