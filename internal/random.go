package internal

import (
	"crypto/rand"
	"io"
)

// NonceSize is the AEAD nonce length in bytes. The token wire format fixes
// this value; changing it invalidates every outstanding cookie.
const NonceSize = 12

// NewNonce draws a fresh nonce from the platform CSPRNG. A fresh draw is
// required on every seal call; nonce reuse under GCM destroys confidentiality.
func NewNonce() ([NonceSize]byte, error) {
	var nonce [NonceSize]byte
	_, err := io.ReadFull(rand.Reader, nonce[:])
	return nonce, err
}
