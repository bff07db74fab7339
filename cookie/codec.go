package cookie

import (
	"fmt"
	"strings"
)

const (
	// Name is the fixed session cookie name.
	Name = "session"

	// MaxAge is the session cookie lifetime in seconds (24 hours).
	MaxAge = 86400

	// attributes shared by the set and clear forms, in their fixed order.
	trailingAttributes = "Path=/; HttpOnly; Secure; SameSite=Lax"
)

// EncodeSetCookie builds the Set-Cookie header value that establishes a
// session carrying token.
func EncodeSetCookie(token string) string {
	return fmt.Sprintf("%s=%s; Max-Age=%d; %s", Name, token, MaxAge, trailingAttributes)
}

// EncodeClearCookie builds the Set-Cookie header value that instructs the
// client to delete the session cookie immediately.
func EncodeClearCookie() string {
	return fmt.Sprintf("%s=; Max-Age=0; %s", Name, trailingAttributes)
}

// ParseHeader splits a raw Cookie header value into name/value pairs. Pairs
// are separated by ';', names and values by the first '='; values may contain
// further '=' characters. Malformed pairs are skipped, never fatal. A missing
// or empty header yields an empty map.
func ParseHeader(raw string) map[string]string {
	pairs := make(map[string]string)

	for _, part := range strings.Split(raw, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, value, ok := strings.Cut(part, "=")
		if !ok || name == "" {
			continue
		}
		pairs[name] = value
	}

	return pairs
}

// SessionToken looks up the session cookie in a parsed header. The boolean is
// false when the cookie is not present.
func SessionToken(pairs map[string]string) (string, bool) {
	token, ok := pairs[Name]
	return token, ok
}
