package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ysemenovs/deskhub/internal/common"
	"github.com/ysemenovs/deskhub/internal/cryptox"
)

// StoreKey is where the sealed session lives in the local store.
const StoreKey = "session"

var (
	// ErrNoSavedSession means no remembered session exists locally.
	ErrNoSavedSession = errors.New("no saved session")

	// ErrBadPassphrase means the sealed session could not be opened with
	// the given passphrase.
	ErrBadPassphrase = errors.New("wrong passphrase")
)

// Storage is the slice of the local store the keeper uses.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// sealedSession is what actually lands on disk: the AES-GCM sealed token
// blob plus the salt the key was derived with.
type sealedSession struct {
	Salt       []byte `json:"salt"`
	Nonce      []byte `json:"nonce"`
	Ciphertext []byte `json:"ciphertext"`
}

type tokenBlob struct {
	Token string `json:"token"`
}

// Save remembers the session at rest, sealed under a key derived from the
// passphrase with a fresh random salt.
func Save(ctx context.Context, st Storage, s Session, passphrase []byte) error {
	salt := common.RandBytes(16)
	key := cryptox.DeriveKey(passphrase, salt)
	defer common.Wipe(key)

	ciphertext, nonce, err := cryptox.Seal(tokenBlob{Token: s.Token}, key)
	if err != nil {
		return fmt.Errorf("seal session: %w", err)
	}

	data, err := json.Marshal(sealedSession{Salt: salt, Nonce: nonce, Ciphertext: ciphertext})
	if err != nil {
		return fmt.Errorf("marshal sealed session: %w", err)
	}
	return st.Set(ctx, StoreKey, data)
}

// Load opens a remembered session. Returns ErrNoSavedSession when nothing
// was saved and ErrBadPassphrase when the passphrase does not open it.
func Load(ctx context.Context, st Storage, passphrase []byte) (Session, error) {
	data, err := st.Get(ctx, StoreKey)
	if err != nil {
		return Session{}, err
	}
	if len(data) == 0 {
		return Session{}, ErrNoSavedSession
	}

	var sealed sealedSession
	if err := json.Unmarshal(data, &sealed); err != nil {
		return Session{}, fmt.Errorf("unmarshal sealed session: %w", err)
	}

	key := cryptox.DeriveKey(passphrase, sealed.Salt)
	defer common.Wipe(key)

	var blob tokenBlob
	if err := cryptox.Open(sealed.Ciphertext, sealed.Nonce, key, &blob); err != nil {
		return Session{}, ErrBadPassphrase
	}
	return FromToken(blob.Token)
}

// Clear forgets any remembered session.
func Clear(ctx context.Context, st Storage) error {
	return st.Delete(ctx, StoreKey)
}
