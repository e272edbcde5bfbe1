// Package persistence stores the high score
package persistence

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
)

// ErrCorruptStore marks a high score file that could not be decoded or holds a negative value
var ErrCorruptStore = errors.New("corrupt high score store")

// scoreDTO is the on-disk document
type scoreDTO struct {
	HighScore int `toml:"high_score"`
}

// FileStore persists the high score as a small TOML document
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store at path; the file is created on first write
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file
func (s *FileStore) Path() string {
	return s.path
}

// HighScore reads the stored value
// A missing file or key yields ok=false with no error; undecodable content wraps ErrCorruptStore
// and any other read failure is returned as is
func (s *FileStore) HighScore() (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("reading high score: %w", err)
	}

	var dto scoreDTO
	md, err := toml.Decode(string(data), &dto)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %v", ErrCorruptStore, err)
	}
	if !md.IsDefined("high_score") {
		return 0, false, nil
	}
	if dto.HighScore < 0 {
		return 0, false, fmt.Errorf("%w: negative value %d", ErrCorruptStore, dto.HighScore)
	}
	return dto.HighScore, true, nil
}

// SetHighScore writes score through a temp file and rename
func (s *FileStore) SetHighScore(score int) error {
	if score < 0 {
		return fmt.Errorf("negative high score %d", score)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".highscore-*.toml")
	if err != nil {
		return err
	}
	if err := toml.NewEncoder(tmp).Encode(scoreDTO{HighScore: score}); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	log.Printf("High score %d saved to %s", score, s.path)
	return nil
}

// MemoryStore keeps the high score for the process lifetime
type MemoryStore struct {
	mu    sync.Mutex
	score int
	set   bool
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// HighScore implements engine.HighScoreStore
func (s *MemoryStore) HighScore() (int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score, s.set, nil
}

// SetHighScore implements engine.HighScoreStore
func (s *MemoryStore) SetHighScore(score int) error {
	if score < 0 {
		return fmt.Errorf("negative high score %d", score)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.score = score
	s.set = true
	return nil
}
