// Package store persists the learner's progress record as a single JSON
// file. Writes are atomic (temp file + rename) so a crash mid-save never
// leaves a truncated record behind.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/qaport/qaport/internal/progress"
)

// ErrNotFound indicates no progress file exists yet at the store's path.
var ErrNotFound = errors.New("progress record not found")

// Store reads and writes one learner's progress record at a fixed path.
type Store struct {
	path string
}

// New creates a Store for the given file path. The file need not exist yet.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the file path this store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Load reads and validates the record. Returns ErrNotFound when the file
// does not exist; a record violating its invariants is rejected with
// progress.ErrInvalidRecord, never silently repaired.
func (s *Store) Load() (*progress.Record, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read progress file: %w", err)
	}

	var rec progress.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, &progress.ErrInvalidRecord{Err: fmt.Errorf("parse %s: %w", s.path, err)}
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return &rec, nil
}

// LoadOrInit loads the record, substituting a fresh default record when
// none exists yet. Corrupt or invalid records still fail.
func (s *Store) LoadOrInit() (*progress.Record, error) {
	rec, err := s.Load()
	if errors.Is(err, ErrNotFound) {
		return progress.NewRecord(), nil
	}
	return rec, err
}

// Save writes the record atomically: marshal, write to a temp file in the
// same directory, then rename over the target.
func (s *Store) Save(rec *progress.Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	raw, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("encode progress record: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".progress-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace progress file: %w", err)
	}
	return nil
}

// Reset removes the progress file. Removing a file that does not exist is
// not an error.
func (s *Store) Reset() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove progress file: %w", err)
	}
	return nil
}

// DefaultPath resolves the progress file path in priority order:
// 1. QAPORT_DATA environment variable
// 2. $XDG_DATA_HOME/qaport/progress.json
// 3. ~/.local/share/qaport/progress.json
func DefaultPath() (string, error) {
	if p := os.Getenv("QAPORT_DATA"); p != "" {
		return p, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "qaport", "progress.json"), nil
}
