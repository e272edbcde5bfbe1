package persistence

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreMissing(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "highscore.toml"))
	v, ok, err := s.HighScore()
	if err != nil || ok || v != 0 {
		t.Fatalf("HighScore = %d, %v, %v; want absent", v, ok, err)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "highscore.toml")
	s := NewFileStore(path)

	if err := s.SetHighScore(17); err != nil {
		t.Fatalf("SetHighScore: %v", err)
	}
	if err := s.SetHighScore(23); err != nil {
		t.Fatalf("SetHighScore: %v", err)
	}

	// A fresh store reads what the previous process wrote
	v, ok, err := NewFileStore(path).HighScore()
	if err != nil || !ok || v != 23 {
		t.Fatalf("HighScore = %d, %v, %v; want 23", v, ok, err)
	}

	entries, _ := os.ReadDir(filepath.Dir(path))
	if len(entries) != 1 {
		t.Fatalf("temp files left behind: %d entries", len(entries))
	}
}

func TestFileStoreCorrupt(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]string{
		"garbage":  "high_score = [",
		"wrong":    `high_score = "lots"`,
		"negative": "high_score = -4",
	}

	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".toml")
			if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
				t.Fatal(err)
			}
			_, ok, err := NewFileStore(path).HighScore()
			if ok || !errors.Is(err, ErrCorruptStore) {
				t.Fatalf("ok = %v err = %v, want ErrCorruptStore", ok, err)
			}
		})
	}
}

func TestFileStoreReadFailureNotCorrupt(t *testing.T) {
	// A directory at the store path fails the read itself, even for root
	path := filepath.Join(t.TempDir(), "highscore.toml")
	if err := os.Mkdir(path, 0755); err != nil {
		t.Fatal(err)
	}

	_, ok, err := NewFileStore(path).HighScore()
	if ok || err == nil {
		t.Fatalf("ok = %v err = %v, want read error", ok, err)
	}
	if errors.Is(err, ErrCorruptStore) {
		t.Fatalf("read failure reported as corrupt: %v", err)
	}
}

func TestFileStoreMissingKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "highscore.toml")
	os.WriteFile(path, []byte("other = 1\n"), 0644)

	_, ok, err := NewFileStore(path).HighScore()
	if ok || err != nil {
		t.Fatalf("ok = %v err = %v, want absent", ok, err)
	}
}

func TestStoresRejectNegative(t *testing.T) {
	if err := NewMemoryStore().SetHighScore(-1); err == nil {
		t.Error("memory store accepted negative")
	}
	if err := NewFileStore(filepath.Join(t.TempDir(), "h.toml")).SetHighScore(-1); err == nil {
		t.Error("file store accepted negative")
	}
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	if _, ok, _ := s.HighScore(); ok {
		t.Fatal("fresh store not empty")
	}
	s.SetHighScore(0)
	v, ok, err := s.HighScore()
	if !ok || v != 0 || err != nil {
		t.Fatalf("HighScore = %d, %v, %v", v, ok, err)
	}
}
