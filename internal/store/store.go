// Package store persists pomo's documents as plain JSON files under a
// single data directory: a newline-delimited session log, a config
// document, named presets and the task list. Read failures are
// non-fatal; every load degrades to built-in defaults.
package store

import (
	"os"
	"path/filepath"
)

// Store reads and writes all pomo documents under one directory.
type Store struct {
	dir string
}

// New returns a store rooted at dir. The directory is created lazily on
// first write.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Open returns a store at the default data directory.
func Open() (*Store, error) {
	dir, err := DefaultDir()
	if err != nil {
		return nil, err
	}
	return New(dir), nil
}

// DefaultDir returns $POMO_HOME, or <user config dir>/pomo.
func DefaultDir() (string, error) {
	if dir := os.Getenv("POMO_HOME"); dir != "" {
		return dir, nil
	}
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "pomo"), nil
}

func (s *Store) Dir() string { return s.dir }

func (s *Store) configPath() string  { return filepath.Join(s.dir, "config.json") }
func (s *Store) presetsPath() string { return filepath.Join(s.dir, "presets.json") }
func (s *Store) tasksPath() string   { return filepath.Join(s.dir, "tasks.json") }
func (s *Store) logPath() string     { return filepath.Join(s.dir, "sessions.log") }

// writeDoc overwrites a whole JSON document, creating the directory if
// needed. Config, presets and tasks are last-writer-wins documents.
func (s *Store) writeDoc(path string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
