package auth

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sokastore/soka/internal/models"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "session.json"))
	require.NoError(t, err)
	return store
}

func signedToken(t *testing.T, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub": "1",
		"exp": time.Now().Add(expiresIn).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := tempStore(t)
	user := models.User{ID: 1, Name: "Ada", Email: "ada@example.com", Role: models.RoleAdmin}

	require.NoError(t, store.Save("tok-abc", user))

	session, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", session.Token)
	assert.Equal(t, user, session.User)
}

func TestLoadMissingIsNotLoggedIn(t *testing.T) {
	store := tempStore(t)
	_, err := store.Load()
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestLoadCorruptFileFails(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(store.path), 0o700))
	require.NoError(t, os.WriteFile(store.path, []byte(`{"token": 12`), 0o600))

	_, err := store.Load()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotLoggedIn)
}

func TestSaveEmptyTokenRejected(t *testing.T) {
	store := tempStore(t)
	assert.Error(t, store.Save("", models.User{}))
}

func TestClearIsIdempotent(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, store.Save("tok", models.User{ID: 2}))
	require.NoError(t, store.Clear())
	require.NoError(t, store.Clear())

	_, ok := store.Token()
	assert.False(t, ok)
}

func TestTokenExpiredJWT(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, store.Save(signedToken(t, -time.Hour), models.User{}))

	_, ok := store.Token()
	assert.False(t, ok)
}

func TestTokenLiveJWT(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, store.Save(signedToken(t, time.Hour), models.User{}))

	token, ok := store.Token()
	assert.True(t, ok)
	assert.NotEmpty(t, token)
}

func TestTokenOpaqueAssumedLive(t *testing.T) {
	store := tempStore(t)
	require.NoError(t, store.Save("not-a-jwt", models.User{}))

	token, ok := store.Token()
	assert.True(t, ok)
	assert.Equal(t, "not-a-jwt", token)
}
