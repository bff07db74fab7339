// Package seal implements the authenticated encryption boundary of goSession:
// it turns serialized session records into opaque tokens and back.
//
// # Token wire format
//
// base64 (standard alphabet) of nonce (12 bytes) followed by the AES-256-GCM
// ciphertext with its 16-byte tag. There is no version byte and no algorithm
// negotiation; the scheme is fixed.
//
// # Fail-closed contract
//
// Open collapses every failure mode (bad base64, truncation, wrong key,
// tampered ciphertext) into a single rejected outcome. Callers must not be
// able to distinguish why a token was refused; that would hand an attacker a
// decryption oracle. The finer-grained RejectReason exists solely so the
// Codec can emit diagnostic audit events; it never reaches a client.
//
// # What this package must NOT do
//
//   - Return distinguishable errors from Open.
//   - Accept a caller-supplied nonce.
//   - Import the root goSession package (no upward imports).
package seal
