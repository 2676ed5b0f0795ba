package cache

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Substrate is the durable key-value layer under the Store. Implementations
// must treat a missing key as (value "", found false, nil error); errors are
// reserved for the substrate itself misbehaving (disk full, connection lost).
type Substrate interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}

// MemorySubstrate is the in-process default, also used throughout the tests.
type MemorySubstrate struct {
	mu sync.Mutex
	m  map[string]string
}

func NewMemorySubstrate() *MemorySubstrate {
	return &MemorySubstrate{m: make(map[string]string)}
}

func (s *MemorySubstrate) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.m[key]
	return v, ok, nil
}

func (s *MemorySubstrate) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
	return nil
}

func (s *MemorySubstrate) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}

// FileSubstrate persists one file per key under a data directory, surviving
// process restarts the way browser local storage survives reloads.
type FileSubstrate struct {
	dir string
}

func NewFileSubstrate(dir string) (*FileSubstrate, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileSubstrate{dir: dir}, nil
}

func (s *FileSubstrate) path(key string) string {
	// Keys are fixed dashboard identifiers, but sanitize anyway.
	safe := strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || r == ':' {
			return '_'
		}
		return r
	}, key)
	return filepath.Join(s.dir, safe+".json")
}

func (s *FileSubstrate) Get(key string) (string, bool, error) {
	b, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(b), true, nil
}

func (s *FileSubstrate) Set(key, value string) error {
	return os.WriteFile(s.path(key), []byte(value), 0o644)
}

func (s *FileSubstrate) Delete(key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
