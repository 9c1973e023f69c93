package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Storage is the durable key-value surface the session store writes through.
// It mirrors the two-key browser storage of the original client: flat string
// keys, string values, last writer wins.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
}

// FileStorage persists keys as a single flat JSON object on disk. Writes go
// through a temp file and rename so a crash never leaves a half-written file.
type FileStorage struct {
	path string

	mu     sync.Mutex
	loaded bool
	values map[string]string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// DefaultStoragePath resolves the per-user storage file location.
func DefaultStoragePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "talentia", "storage.json"), nil
}

func (s *FileStorage) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	value, ok := s.values[key]
	return value, ok
}

func (s *FileStorage) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	s.values[key] = value
	return s.flush()
}

func (s *FileStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load()
	if _, ok := s.values[key]; !ok {
		return nil
	}
	delete(s.values, key)
	return s.flush()
}

// load reads the backing file once per process. A missing or unreadable file
// behaves as empty storage rather than an error.
func (s *FileStorage) load() {
	if s.loaded {
		return
	}
	s.loaded = true
	s.values = make(map[string]string)
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var parsed map[string]string
	if err := json.Unmarshal(data, &parsed); err != nil {
		return
	}
	s.values = parsed
}

func (s *FileStorage) flush() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}
	data, err := json.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("encode storage: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace storage: %w", err)
	}
	return nil
}

// MemoryStorage is an in-process Storage used by tests.
type MemoryStorage struct {
	mu     sync.Mutex
	values map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string]string)}
}

func (s *MemoryStorage) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.values[key]
	return value, ok
}

func (s *MemoryStorage) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *MemoryStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
