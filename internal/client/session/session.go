// Package session persists the admin's bearer token between runs and
// gates access to protected views.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps a single bearer token in a JSON file. Possession of a
// non-empty stored value is treated as "authenticated"; there is no
// client-side expiry check. The file is re-read on every access, so
// concurrent writers are last-write-wins.
type FileStore struct {
	path string
	mu   sync.Mutex
}

type sessionFile struct {
	Token string `json:"token"`
}

// NewFileStore returns a FileStore backed by the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns the per-user location of the session file.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "oshaad", "session.json"), nil
}

// Token returns the stored bearer token, or an empty string when no
// session exists or the file is unreadable.
func (s *FileStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	var f sessionFile
	if err := json.Unmarshal(data, &f); err != nil {
		return ""
	}
	return f.Token
}

// SetToken persists the bearer token, replacing any previous one.
func (s *FileStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(sessionFile{Token: token})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Clear removes the stored session. Clearing an absent session is not an error.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// TokenReader is the read-only view of a session store.
type TokenReader interface {
	Token() string
}

// Guard decides whether the admin may proceed to protected views.
// It is a pure predicate over the stored token: no network call and no
// token validation. A garbage or expired token still counts as authorized
// here; rejection happens server-side on the next API call.
type Guard struct {
	Tokens TokenReader
}

// IsAuthorized reports whether a non-empty token is stored.
func (g Guard) IsAuthorized() bool {
	return g.Tokens.Token() != ""
}
