package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Role values issued by the backend.
const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// User is the account record returned by the login endpoint.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session holds the bearer token and user record for the signed-in account.
type Session struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

// Store reads and writes the session file under Dir.
type Store struct {
	Dir string
}

// DefaultStore returns a Store rooted at ~/.aidetect.
func DefaultStore() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting home directory: %w", err)
	}
	return &Store{Dir: filepath.Join(home, ".aidetect")}, nil
}

// Path returns the session file path.
func (s *Store) Path() string {
	return filepath.Join(s.Dir, "session.json")
}

// Load reads the stored session. A missing file yields (nil, nil). A file
// that cannot be parsed, or that lacks a token or user record, is removed
// and treated the same as a missing file: corrupted credentials must never
// surface as an error the caller has to handle.
func (s *Store) Load() (*Session, error) {
	data, err := os.ReadFile(s.Path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		_ = os.Remove(s.Path())
		return nil, nil
	}
	if sess.AccessToken == "" || sess.User.ID == "" {
		_ = os.Remove(s.Path())
		return nil, nil
	}
	return &sess, nil
}

// Save writes the session with restricted permissions.
func (s *Store) Save(sess *Session) error {
	if err := os.MkdirAll(s.Dir, 0700); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling session: %w", err)
	}

	if err := os.WriteFile(s.Path(), data, 0600); err != nil {
		return fmt.Errorf("writing session: %w", err)
	}
	return nil
}

// Clear removes the stored session. Clearing an absent session is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.Path()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing session: %w", err)
	}
	return nil
}
