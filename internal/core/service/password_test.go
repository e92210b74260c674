package service

import (
	"strings"
	"testing"
)

func TestHashPassword_ProducesVerifiableHash(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}

	if !IsHashed(hash) {
		t.Fatalf("hash does not look like bcrypt: %q", hash)
	}
	if !CheckPassword("hunter22", hash) {
		t.Fatalf("correct password did not verify")
	}
	if CheckPassword("hunter23", hash) {
		t.Fatalf("wrong password verified")
	}
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	h1, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}
	h2, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}

	if h1 == h2 {
		t.Fatalf("two hashes of the same input are identical")
	}
	if !CheckPassword("hunter22", h1) || !CheckPassword("hunter22", h2) {
		t.Fatalf("both hashes must verify")
	}
}

func TestCheckPassword_RejectsLegacyPlaintext(t *testing.T) {
	// A pre-migration row stores the password verbatim; it must never verify,
	// not even against itself.
	if CheckPassword("plaintext-password", "plaintext-password") {
		t.Fatalf("plaintext stored value verified")
	}
}

func TestCheckPassword_MalformedHashIsMismatch(t *testing.T) {
	malformed := "$2" + strings.Repeat("x", 58)
	if CheckPassword("anything", malformed) {
		t.Fatalf("malformed hash verified")
	}
}

func TestIsHashed(t *testing.T) {
	hash, err := HashPassword("pw")
	if err != nil {
		t.Fatalf("hash error: %v", err)
	}

	cases := []struct {
		stored string
		want   bool
	}{
		{hash, true},
		{dummyHash, true},
		{"", false},
		{"plaintext", false},
		{strings.Repeat("a", 60), false},
		{"$2a$10$short", false},
	}
	for _, tc := range cases {
		if got := IsHashed(tc.stored); got != tc.want {
			t.Errorf("IsHashed(%q) = %v, want %v", tc.stored, got, tc.want)
		}
	}
}
