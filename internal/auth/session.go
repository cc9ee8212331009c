// Package auth persists the signed-in user's credentials between CLI
// invocations. Reads are validated: a malformed session file is an
// error rather than a half-trusted blob.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sokastore/soka/internal/models"
	"github.com/sokastore/soka/internal/types"
)

// ErrNotLoggedIn is returned when no session file exists.
var ErrNotLoggedIn = errors.New("not logged in")

type Session struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Store reads and writes the session file.
type Store struct {
	path string
}

// NewStore creates a store at path. An empty path falls back to
// $HOME/.soka/session.json.
func NewStore(path string) (*Store, error) {
	if path == "" || path == "$HOME/.soka/session.json" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve home directory: %w", err)
		}
		path = filepath.Join(home, ".soka", "session.json")
	}
	return &Store{path: path}, nil
}

// Save writes the session, creating the parent directory if needed.
// The file is user-only readable since it holds a bearer token.
func (s *Store) Save(token string, user models.User) error {
	if token == "" {
		return errors.New("refusing to save empty token")
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}
	data, err := json.Marshal(Session{Token: token, User: user})
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// Load reads and validates the session file. A missing file is
// ErrNotLoggedIn; a corrupt one is a hard error, never a silent guest.
func (s *Store) Load() (*Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotLoggedIn
		}
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("session file is corrupt: %w", err)
	}
	if session.Token == "" {
		return nil, fmt.Errorf("session file is corrupt: empty token")
	}
	return &session, nil
}

// Clear removes the session file. Clearing an absent session is fine.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// Token implements types.TokenSource. An expired JWT reads as no token,
// so callers short-circuit locally instead of collecting a 401.
func (s *Store) Token() (string, bool) {
	session, err := s.Load()
	if err != nil {
		return "", false
	}
	if tokenExpired(session.Token) {
		return "", false
	}
	return session.Token, true
}

// tokenExpired checks the token's exp claim without verifying the
// signature; verification is the API server's job. Opaque non-JWT
// tokens are assumed live.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

var _ types.TokenSource = (*Store)(nil)
