package seal

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/base64"
	"errors"

	"github.com/MrEthical07/goSession/internal"
)

const (
	// NonceSize is the per-token nonce length in bytes.
	NonceSize = internal.NonceSize

	// TagSize is the GCM authentication tag length in bytes.
	TagSize = 16

	// MaxPlaintextSize caps the serialized record so the resulting token
	// stays well inside common cookie size limits.
	MaxPlaintextSize = 3 * 1024
)

var (
	// ErrKeySize is returned when the seal key is not 32 bytes.
	ErrKeySize = errors.New("seal key must be 32 bytes")
	// ErrPlaintextTooLarge is returned when the plaintext exceeds the cookie budget.
	ErrPlaintextTooLarge = errors.New("plaintext exceeds cookie budget")
)

// RejectReason classifies why Open refused a token. Reasons feed diagnostic
// audit events only; the caller-visible outcome is a single rejection.
type RejectReason uint8

const (
	// RejectNone means the token was opened successfully.
	RejectNone RejectReason = iota
	// RejectKey means the supplied key had the wrong length.
	RejectKey
	// RejectBase64 means the token was not valid standard base64.
	RejectBase64
	// RejectTruncated means the decoded token was too short to hold a nonce and tag.
	RejectTruncated
	// RejectAuthentication means GCM verification failed: tampered ciphertext,
	// a different secret, or damage in transit. Indistinguishable on purpose.
	RejectAuthentication
)

func (r RejectReason) String() string {
	switch r {
	case RejectNone:
		return "none"
	case RejectKey:
		return "key"
	case RejectBase64:
		return "base64"
	case RejectTruncated:
		return "truncated"
	case RejectAuthentication:
		return "authentication"
	default:
		return "unknown"
	}
}

// Seal encrypts plaintext under key with a fresh random nonce and returns the
// opaque token. Two calls with identical inputs produce different tokens.
func Seal(plaintext, key []byte) (string, error) {
	if len(key) != 32 {
		return "", ErrKeySize
	}
	if len(plaintext) > MaxPlaintextSize {
		return "", ErrPlaintextTooLarge
	}

	aead, err := newAEAD(key)
	if err != nil {
		return "", err
	}

	nonce, err := internal.NewNonce()
	if err != nil {
		return "", err
	}

	out := make([]byte, 0, NonceSize+len(plaintext)+TagSize)
	out = append(out, nonce[:]...)
	out = aead.Seal(out, nonce[:], plaintext, nil)

	return base64.StdEncoding.EncodeToString(out), nil
}

// Open decrypts and verifies token under key. It reports only success or
// failure; see OpenClassified for the diagnostic variant.
func Open(token string, key []byte) ([]byte, bool) {
	plaintext, reason := OpenClassified(token, key)
	return plaintext, reason == RejectNone
}

// OpenClassified is Open with the internal reject classification attached.
// Callers routing the result to a client must discard the reason.
func OpenClassified(token string, key []byte) ([]byte, RejectReason) {
	if len(key) != 32 {
		return nil, RejectKey
	}

	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, RejectBase64
	}
	if len(raw) < NonceSize+TagSize {
		return nil, RejectTruncated
	}

	aead, err := newAEAD(key)
	if err != nil {
		return nil, RejectKey
	}

	plaintext, err := aead.Open(nil, raw[:NonceSize], raw[NonceSize:], nil)
	if err != nil {
		return nil, RejectAuthentication
	}

	return plaintext, RejectNone
}

func newAEAD(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
