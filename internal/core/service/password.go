package service

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the single work-factor knob for password hashing. Raising it
// slows logins; lowering it weakens brute-force resistance.
const bcryptCost = 10

// bcryptHashLength is the exact length of an encoded bcrypt hash.
const bcryptHashLength = 60

// dummyHash is a valid bcrypt hash of a throwaway string. The login path
// compares against it when no account matches the email so that "unknown
// email" and "wrong password" take the same time.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// HashPassword returns a salted bcrypt hash of plain. Two calls on the same
// input produce different strings; both verify.
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether plain matches the stored credential. Stored
// values that are not bcrypt-shaped (legacy plaintext rows from before the
// hashing migration) never verify; they must be rehashed via cmd/migratepw.
// Malformed hashes count as a mismatch, never an error.
func CheckPassword(plain, stored string) bool {
	if !IsHashed(stored) {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(plain)) == nil
}

// IsHashed reports whether stored looks like an encoded bcrypt hash.
func IsHashed(stored string) bool {
	return len(stored) == bcryptHashLength && strings.HasPrefix(stored, "$2")
}

// burnHashCheck runs a bcrypt comparison whose result is discarded, to keep
// the miss path of a login indistinguishable in timing from a mismatch.
func burnHashCheck(plain string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(plain))
}
