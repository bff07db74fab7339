package session

import (
	"errors"
	"net/url"
	"strings"
)

const (
	fieldIdentityID    = "id"
	fieldIdentityEmail = "email"
	fieldRole          = "role"

	maxFieldSize = 1024
)

func Encode(r Record) ([]byte, error) {
	for _, field := range []string{r.IdentityID, r.IdentityEmail, r.Role} {
		if len(field) > maxFieldSize {
			return nil, errors.New("record field too long")
		}
	}

	// Fixed field order keeps the encoding canonical: equal records always
	// serialize to equal bytes.
	var b strings.Builder
	appendField(&b, fieldIdentityID, r.IdentityID)
	appendField(&b, fieldIdentityEmail, r.IdentityEmail)
	appendField(&b, fieldRole, r.Role)

	return []byte(b.String()), nil
}

func Decode(data []byte) (Record, error) {
	var r Record

	for _, pair := range strings.Split(string(data), "&") {
		if pair == "" {
			continue
		}
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}

		decoded, err := url.QueryUnescape(value)
		if err != nil {
			return Record{}, errors.New("malformed record field")
		}

		switch key {
		case fieldIdentityID:
			r.IdentityID = decoded
		case fieldIdentityEmail:
			r.IdentityEmail = decoded
		case fieldRole:
			r.Role = decoded
		default:
			// Unknown keys are skipped so that records written by a
			// newer schema still decode as far as possible.
		}
	}

	return r, nil
}

func appendField(b *strings.Builder, key, value string) {
	if value == "" {
		return
	}
	if b.Len() > 0 {
		b.WriteByte('&')
	}
	b.WriteString(key)
	b.WriteByte('=')
	b.WriteString(url.QueryEscape(value))
}
