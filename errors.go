package goSession

import "errors"

var (
	// ErrCodecNotReady is an exported constant or variable used by the session codec.
	ErrCodecNotReady = errors.New("codec not initialized")
	// ErrSecretMalformed is an exported constant or variable used by the session codec.
	ErrSecretMalformed = errors.New("shared secret missing or malformed")
	// ErrRecordTooLarge is an exported constant or variable used by the session codec.
	ErrRecordTooLarge = errors.New("session record exceeds cookie budget")
)
