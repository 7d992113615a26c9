// Package common holds small helpers and constants shared between the
// DeskHub client packages.
package common

import (
	"crypto/rand"
	"encoding/hex"
)

// AuthHeaderName is the HTTP header carrying the bearer credential on
// outbound API requests.
const AuthHeaderName = "Authorization"

// RandHexString returns a random hexadecimal string built from size random
// bytes, so the resulting string is twice as long as size.
func RandHexString(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// RandBytes returns size cryptographically random bytes.
func RandBytes(size int) []byte {
	b := make([]byte, size)
	// crypto/rand.Read never returns an error on supported platforms
	_, _ = rand.Read(b)
	return b
}

// Wipe overwrites b with zeros. Used to scrub passwords and derived keys
// from memory once they are no longer needed. A nil slice is a no-op.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
