// Package store persists the high score between runs.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// HighScores loads and saves the best score. Implementations are safe for
// concurrent use; several sessions may share one store.
type HighScores interface {
	Load() (int, error)
	Save(score int) error
}

// record is the on-disk format.
type record struct {
	HighScore int       `json:"high_score"`
	UpdatedAt time.Time `json:"updated_at"`
}

// File stores the high score as JSON at a path. Save never lowers the
// stored value.
type File struct {
	path string
	mu   sync.Mutex
}

// NewFile returns a file store at path. The file is created on first save.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the backing file path.
func (f *File) Path() string {
	return f.path
}

// Load returns the stored high score, or 0 if nothing has been saved yet.
func (f *File) Load() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loadLocked()
}

func (f *File) loadLocked() (int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read high score: %w", err)
	}
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return 0, fmt.Errorf("decode high score %s: %w", f.path, err)
	}
	return max(rec.HighScore, 0), nil
}

// Save stores score if it beats the stored value. The write goes through a
// temporary file and rename so a crash never leaves a truncated file.
func (f *File) Save(score int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	current, err := f.loadLocked()
	if err != nil {
		// A corrupt file is replaced rather than blocking new records.
		current = 0
	}
	if score <= current {
		return nil
	}

	data, err := json.MarshalIndent(record{HighScore: score, UpdatedAt: time.Now().UTC()}, "", "  ")
	if err != nil {
		return fmt.Errorf("encode high score: %w", err)
	}
	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create high score dir: %w", err)
		}
	}
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write high score: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace high score: %w", err)
	}
	return nil
}

// Memory keeps the high score in process memory only.
type Memory struct {
	mu    sync.Mutex
	score int
}

// Load implements HighScores.
func (m *Memory) Load() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score, nil
}

// Save implements HighScores.
func (m *Memory) Save(score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.score = max(m.score, score)
	return nil
}

var (
	_ HighScores = (*File)(nil)
	_ HighScores = (*Memory)(nil)
)
