// Package highscore persists the all-time best score in a small JSON file:
//
//	{"high_score": 120}
//
// A missing or unreadable file counts as a high score of zero.
package highscore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Record is the on-disk layout.
type Record struct {
	HighScore int `json:"high_score"`
}

// Store reads and writes the high score file.
type Store struct {
	path string
}

// New returns a store backed by the file at path. The file is not touched
// until Load or Save is called.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the stored high score. Absent, empty or corrupt files load
// as 0; only unexpected read errors (permissions, I/O) are returned.
func (s *Store) Load() (int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("highscore: cannot read %s: %w", s.path, err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return 0, nil
	}
	return max(rec.HighScore, 0), nil
}

// Save records score if it beats the stored value. Saving a lower score
// leaves the file unchanged, so the stored value never decreases.
func (s *Store) Save(score int) error {
	current, err := s.Load()
	if err != nil {
		return err
	}
	if score <= current && s.exists() {
		return nil
	}
	return s.write(Record{HighScore: max(score, current)})
}

// write replaces the file atomically via a temp file in the same directory.
func (s *Store) write(rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("highscore: cannot encode: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("highscore: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".highscore-*.json")
	if err != nil {
		return fmt.Errorf("highscore: cannot create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) //nolint:errcheck // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("highscore: cannot write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("highscore: cannot write: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("highscore: cannot replace %s: %w", s.path, err)
	}
	return nil
}

func (s *Store) exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}
