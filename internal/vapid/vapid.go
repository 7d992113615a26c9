// Package vapid generates the server push identity: a P-256 key pair
// encoded the way push services and subscribing clients expect it.
package vapid

import (
	"crypto/ecdh"
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// KeyPair is a freshly generated push identity. PublicKey is the
// uncompressed 65-byte point, PrivateKey the 32-byte scalar, both
// base64url without padding.
type KeyPair struct {
	PublicKey  string
	PrivateKey string
}

// GenerateKeys creates a new P-256 key pair for push messaging.
func GenerateKeys() (KeyPair, error) {
	priv, err := ecdh.P256().GenerateKey(rand.Reader)
	if err != nil {
		return KeyPair{}, fmt.Errorf("generate key: %w", err)
	}
	return KeyPair{
		PublicKey:  base64.RawURLEncoding.EncodeToString(priv.PublicKey().Bytes()),
		PrivateKey: base64.RawURLEncoding.EncodeToString(priv.Bytes()),
	}, nil
}
