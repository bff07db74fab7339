package goSession

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MrEthical07/goSession/cookie"
	"github.com/MrEthical07/goSession/session"
)

// Every invalid-token path must be indistinguishable from "no session" in
// caller-visible behavior. These tests pin that invariant.

func requestWithRawCookie(value string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if value != "" {
		r.Header.Set("Cookie", value)
	}
	return r
}

func TestInvariantAllFailuresYieldAnonymous(t *testing.T) {
	codec := newTestCodec(t)

	header, err := codec.BuildSessionHeader(session.Record{IdentityID: "a1", Role: "superadmin"}, testSecret)
	if err != nil {
		t.Fatalf("seal failed: %v", err)
	}
	token, _ := cookie.SessionToken(cookie.ParseHeader(header))

	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		t.Fatalf("token is not base64: %v", err)
	}
	flipped := make([]byte, len(raw))
	copy(flipped, raw)
	flipped[len(flipped)-1] ^= 0x01

	cases := []struct {
		name   string
		cookie string
		secret string
	}{
		{"no header", "", testSecret},
		{"unrelated cookies", "theme=dark", testSecret},
		{"empty token", cookie.Name + "=", testSecret},
		{"not base64", cookie.Name + "=@@@@", testSecret},
		{"truncated", cookie.Name + "=" + base64.StdEncoding.EncodeToString(raw[:8]), testSecret},
		{"tampered", cookie.Name + "=" + base64.StdEncoding.EncodeToString(flipped), testSecret},
		{"wrong secret", cookie.Name + "=" + token, "another-secret"},
		{"empty secret", cookie.Name + "=" + token, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := codec.GetSession(requestWithRawCookie(tc.cookie), tc.secret)
			if got != (session.Record{}) {
				t.Fatalf("failure mode leaked a record: %+v", got)
			}
		})
	}
}

func TestInvariantTamperSensitivity(t *testing.T) {
	codec := newTestCodec(t)

	header, err := codec.BuildSessionHeader(session.Record{IdentityID: "a1"}, testSecret)
	if err != nil {
		t.Fatalf("seal failed: %v", err)
	}
	token, _ := cookie.SessionToken(cookie.ParseHeader(header))
	raw, _ := base64.StdEncoding.DecodeString(token)

	// Single-bit flips anywhere in the raw token must reject.
	for i := 0; i < len(raw); i++ {
		mutated := make([]byte, len(raw))
		copy(mutated, raw)
		mutated[i] ^= 0x80

		r := requestWithRawCookie(cookie.Name + "=" + base64.StdEncoding.EncodeToString(mutated))
		if got := codec.GetSession(r, testSecret); !got.IsAnonymous() {
			t.Fatalf("bit flip at byte %d accepted: %+v", i, got)
		}
	}
}

func TestInvariantNoPanicOnHostileInput(t *testing.T) {
	codec := newTestCodec(t)

	hostile := []string{
		strings.Repeat(cookie.Name+"=x; ", 500),
		cookie.Name + "=" + strings.Repeat("A", 1<<16),
		cookie.Name + "=\x00\x01\x02",
		";;;=;;;",
		cookie.Name,
	}

	for _, value := range hostile {
		got := codec.GetSession(requestWithRawCookie(value), testSecret)
		if !got.IsAnonymous() {
			t.Fatalf("hostile input %q produced %+v", value, got)
		}
	}
}

func TestInvariantGetSessionNeverErrorsOnNil(t *testing.T) {
	var codec *Codec
	if got := codec.GetSession(httptest.NewRequest(http.MethodGet, "/", nil), testSecret); !got.IsAnonymous() {
		t.Fatalf("nil codec produced %+v", got)
	}

	live := newTestCodec(t)
	if got := live.GetSession(nil, testSecret); !got.IsAnonymous() {
		t.Fatalf("nil request produced %+v", got)
	}
}
