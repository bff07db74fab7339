package kdf

import (
	"crypto/sha256"
	"errors"
	"sync"
	"unicode/utf8"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeySize is the derived key length in bytes (AES-256).
	KeySize = 32

	iterations = 100000
	fixedSalt  = "goSession/cookie-key/v1"
)

// ErrMalformedSecret is returned when the shared secret is empty or not valid
// UTF-8. This is a configuration error and should abort host startup rather
// than be handled per request.
var ErrMalformedSecret = errors.New("malformed shared secret")

var cache = struct {
	sync.RWMutex
	keys map[string][]byte
}{keys: make(map[string][]byte)}

// ValidateSecret reports whether secret is usable for key derivation. Hosts
// should call it once at startup and treat a non-nil error as fatal.
func ValidateSecret(secret string) error {
	if secret == "" || !utf8.ValidString(secret) {
		return ErrMalformedSecret
	}
	return nil
}

// Derive stretches secret into a KeySize-byte key. Same secret in, same key
// out, always. Results are memoized per process; callers receive a private
// copy and may not recover the secret from it.
func Derive(secret string) ([]byte, error) {
	if err := ValidateSecret(secret); err != nil {
		return nil, err
	}

	cache.RLock()
	key, ok := cache.keys[secret]
	cache.RUnlock()
	if ok {
		return cloneKey(key), nil
	}

	key = pbkdf2.Key([]byte(secret), []byte(fixedSalt), iterations, KeySize, sha256.New)

	cache.Lock()
	cache.keys[secret] = key
	cache.Unlock()

	return cloneKey(key), nil
}

func cloneKey(key []byte) []byte {
	out := make([]byte, len(key))
	copy(out, key)
	return out
}
