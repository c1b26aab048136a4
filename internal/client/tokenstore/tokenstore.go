// Package tokenstore persists the CLI's access token between invocations.
package tokenstore

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
)

// ErrNoToken is returned by Get when no token has been saved.
var ErrNoToken = errors.New("no saved token")

type tokenFile struct {
	AccessToken string `json:"access_token"`
}

// Store reads and writes a token file under a config directory.
// All operations are idempotent; clearing an empty store is not an error.
type Store struct {
	dir string
}

// New returns a Store rooted at dir. If dir is empty the default config
// directory is used: $XDG_CONFIG_HOME/imsctl, falling back to
// ~/.config/imsctl.
func New(dir string) *Store {
	if dir == "" {
		dir = defaultDir()
	}
	return &Store{dir: dir}
}

func defaultDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "imsctl")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "imsctl")
}

func (s *Store) path() string {
	return filepath.Join(s.dir, "token.json")
}

// Get returns the saved token, or ErrNoToken when none exists.
func (s *Store) Get() (string, error) {
	b, err := os.ReadFile(s.path())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNoToken
		}
		return "", err
	}
	var tf tokenFile
	if err := json.Unmarshal(b, &tf); err != nil {
		return "", err
	}
	if tf.AccessToken == "" {
		return "", ErrNoToken
	}
	return tf.AccessToken, nil
}

// Set saves the token, replacing any previous one.
func (s *Store) Set(token string) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(tokenFile{AccessToken: token}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(), b, 0o600)
}

// Clear removes the saved token. Clearing when no token exists is a no-op.
func (s *Store) Clear() error {
	err := os.Remove(s.path())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
