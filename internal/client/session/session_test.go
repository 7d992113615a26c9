package session

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ysemenovs/deskhub/internal/client/models"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestFromToken(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok := signedToken(t, jwt.MapClaims{
		"sub":   "42",
		"email": "a@b.c",
		"exp":   exp.Unix(),
	})

	s, err := FromToken(tok)
	require.NoError(t, err)
	assert.Equal(t, models.ID("42"), s.UserID)
	assert.Equal(t, "a@b.c", s.Email)
	assert.Equal(t, exp.Unix(), s.ExpiresAt.Unix())
	assert.False(t, s.Expired(time.Now()))
	assert.True(t, s.Expired(exp.Add(time.Minute)))
}

func TestFromToken_Empty(t *testing.T) {
	_, err := FromToken("")
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestFromToken_Garbage(t *testing.T) {
	_, err := FromToken("not-a-jwt")
	assert.Error(t, err)
}

func TestExpired_NoExpClaim(t *testing.T) {
	s, err := FromToken(signedToken(t, jwt.MapClaims{"sub": "1"}))
	require.NoError(t, err)
	assert.False(t, s.Expired(time.Now().Add(100*365*24*time.Hour)))
}

// ---- keeper ----

type mapStorage struct {
	m map[string][]byte
}

func newMapStorage() *mapStorage { return &mapStorage{m: map[string][]byte{}} }

func (s *mapStorage) Get(ctx context.Context, key string) ([]byte, error) {
	return s.m[key], nil
}

func (s *mapStorage) Set(ctx context.Context, key string, value []byte) error {
	s.m[key] = value
	return nil
}

func (s *mapStorage) Delete(ctx context.Context, key string) error {
	delete(s.m, key)
	return nil
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newMapStorage()
	tok := signedToken(t, jwt.MapClaims{"sub": "7", "email": "x@y.z"})

	orig, err := FromToken(tok)
	require.NoError(t, err)

	require.NoError(t, Save(ctx, st, orig, []byte("passphrase")))

	loaded, err := Load(ctx, st, []byte("passphrase"))
	require.NoError(t, err)
	assert.Equal(t, orig, loaded)
}

func TestLoad_WrongPassphrase(t *testing.T) {
	ctx := context.Background()
	st := newMapStorage()
	s, err := FromToken(signedToken(t, jwt.MapClaims{"sub": "7"}))
	require.NoError(t, err)
	require.NoError(t, Save(ctx, st, s, []byte("right")))

	_, err = Load(ctx, st, []byte("wrong"))
	assert.ErrorIs(t, err, ErrBadPassphrase)
}

func TestLoad_NothingSaved(t *testing.T) {
	_, err := Load(context.Background(), newMapStorage(), []byte("any"))
	assert.ErrorIs(t, err, ErrNoSavedSession)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	st := newMapStorage()
	s, err := FromToken(signedToken(t, jwt.MapClaims{"sub": "7"}))
	require.NoError(t, err)
	require.NoError(t, Save(ctx, st, s, []byte("p")))

	require.NoError(t, Clear(ctx, st))

	_, err = Load(ctx, st, []byte("p"))
	assert.ErrorIs(t, err, ErrNoSavedSession)
}
