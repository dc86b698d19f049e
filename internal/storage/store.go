package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	settingsFileName = "settings.yaml"
	sessionFileName  = "session.yaml"
)

// ErrNoSession indicates no countdown snapshot has been saved.
var ErrNoSession = errors.New("no saved session")

// Store reads and writes application files in a single config directory.
type Store struct {
	dir          string
	settingsPath string
}

// NewStore returns a store rooted at the user config directory for appName.
func NewStore(appName string) (*Store, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve user config dir: %w", err)
	}
	return NewStoreAt(filepath.Join(configDir, appName)), nil
}

// NewStoreAt returns a store rooted at dir.
func NewStoreAt(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory the store writes to.
func (store *Store) Dir() string {
	return store.dir
}

// UseSettingsFile redirects settings reads and writes to path. The session
// snapshot stays in the store directory.
func (store *Store) UseSettingsFile(path string) {
	store.settingsPath = path
}

// SettingsPath returns the location of the settings file.
func (store *Store) SettingsPath() string {
	if store.settingsPath != "" {
		return store.settingsPath
	}
	return filepath.Join(store.dir, settingsFileName)
}

func (store *Store) sessionPath() string {
	return filepath.Join(store.dir, sessionFileName)
}

func (store *Store) write(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
