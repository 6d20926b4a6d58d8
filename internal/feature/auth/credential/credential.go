// Package credential derives and verifies password digests and mints the
// random values (salt, bearer token) attached to an account.
package credential

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/argon2"
)

const (
	// SaltBytes is the entropy of a generated salt.
	SaltBytes = 16
	// TokenBytes is the entropy of a generated bearer token.
	TokenBytes = 32

	argonTime    = 1
	argonMemory  = 19 * 1024
	argonThreads = 1
	argonKeyLen  = 32
)

// GenerateSalt returns a fresh random salt.
func GenerateSalt() (string, error) {
	return randomString(SaltBytes)
}

// NewToken returns a fresh opaque bearer token.
func NewToken() (string, error) {
	return randomString(TokenBytes)
}

// Hash derives the digest of password+salt. The result is deterministic for a
// given pair and base64 encoded.
func Hash(password, salt string) string {
	key := argon2.IDKey([]byte(password+salt), []byte(salt), argonTime, argonMemory, argonThreads, argonKeyLen)
	return base64.StdEncoding.EncodeToString(key)
}

// Verify recomputes the digest and compares it to expected in constant time.
func Verify(password, salt, expected string) bool {
	actual := Hash(password, salt)
	return subtle.ConstantTimeCompare([]byte(actual), []byte(expected)) == 1
}

func randomString(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
