package kdf

import (
	"bytes"
	"errors"
	"sync"
	"testing"
)

func TestDeriveDeterministic(t *testing.T) {
	a, err := Derive("shared-secret-1")
	if err != nil {
		t.Fatalf("derive failed: %v", err)
	}
	b, err := Derive("shared-secret-1")
	if err != nil {
		t.Fatalf("derive failed: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("same secret produced different keys")
	}
	if len(a) != KeySize {
		t.Fatalf("expected %d-byte key, got %d", KeySize, len(a))
	}
}

func TestDeriveDistinctSecrets(t *testing.T) {
	a, err := Derive("shared-secret-1")
	if err != nil {
		t.Fatalf("derive failed: %v", err)
	}
	b, err := Derive("shared-secret-2")
	if err != nil {
		t.Fatalf("derive failed: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Fatalf("distinct secrets produced identical keys")
	}
}

func TestDeriveReturnsPrivateCopy(t *testing.T) {
	a, err := Derive("copy-secret")
	if err != nil {
		t.Fatalf("derive failed: %v", err)
	}
	for i := range a {
		a[i] = 0
	}
	b, err := Derive("copy-secret")
	if err != nil {
		t.Fatalf("derive failed: %v", err)
	}
	if bytes.Equal(a, b) {
		t.Fatalf("caller mutation leaked into the cache")
	}
}

func TestValidateSecret(t *testing.T) {
	cases := []struct {
		name    string
		secret  string
		wantErr bool
	}{
		{"valid", "correct-horse-battery-staple", false},
		{"empty", "", true},
		{"invalid utf8", string([]byte{0xff, 0xfe, 0xfd}), true},
		{"unicode", "pässwörd-sëcret", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateSecret(tc.secret)
			if tc.wantErr && err == nil {
				t.Fatalf("expected error for %q", tc.secret)
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error for %q: %v", tc.secret, err)
			}
		})
	}
}

func TestDeriveRejectsMalformedSecret(t *testing.T) {
	if _, err := Derive(""); err != ErrMalformedSecret {
		t.Fatalf("expected ErrMalformedSecret, got %v", err)
	}
}

func TestDeriveConcurrent(t *testing.T) {
	want, err := Derive("concurrent-secret")
	if err != nil {
		t.Fatalf("derive failed: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := Derive("concurrent-secret")
			if err != nil {
				errs <- err
				return
			}
			if !bytes.Equal(got, want) {
				errs <- errors.New("derived key mismatch")
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent derive diverged: %v", err)
	}
}
