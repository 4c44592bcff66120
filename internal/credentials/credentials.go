// Package credentials persists the terminal client's sign-in between runs.
package credentials

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"lightweight-feedback-system/internal/entities"

	"gopkg.in/yaml.v3"
)

// ErrSignedOut is returned by Load when no credentials are stored.
var ErrSignedOut = fmt.Errorf("%w: not signed in", entities.ErrUnauthorized)

// Credentials is the on-disk shape of a saved sign-in.
type Credentials struct {
	Token     string        `yaml:"token"`
	TokenType string        `yaml:"token_type,omitempty"`
	UserID    int           `yaml:"user_id"`
	Username  string        `yaml:"username"`
	Email     string        `yaml:"email"`
	Role      entities.Role `yaml:"role"`
	ManagerID *int          `yaml:"manager_id,omitempty"`
}

// User rebuilds the signed-in account.
func (c Credentials) User() entities.User {
	return entities.User{
		ID:        c.UserID,
		Username:  c.Username,
		Email:     c.Email,
		Role:      c.Role,
		ManagerID: c.ManagerID,
	}
}

// Store reads and writes one credentials file.
type Store struct {
	path string
}

// NewStore returns a store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the credentials file location.
func (s *Store) Path() string { return s.path }

// Load reads the saved sign-in. A missing or tokenless file yields ErrSignedOut.
func (s *Store) Load() (*Credentials, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrSignedOut
	}
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}

	var creds Credentials
	if err := yaml.Unmarshal(raw, &creds); err != nil {
		return nil, fmt.Errorf("decode credentials %s: %w", s.path, err)
	}
	if creds.Token == "" {
		return nil, ErrSignedOut
	}
	return &creds, nil
}

// Save writes sess to disk, readable only by the current user.
func (s *Store) Save(sess *entities.Session) error {
	creds := Credentials{
		Token:     sess.AccessToken,
		TokenType: sess.TokenType,
		UserID:    sess.User.ID,
		Username:  sess.User.Username,
		Email:     sess.User.Email,
		Role:      sess.User.Role,
		ManagerID: sess.User.ManagerID,
	}
	raw, err := yaml.Marshal(creds)
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

// Clear removes the saved sign-in. Clearing twice is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove credentials: %w", err)
	}
	return nil
}
