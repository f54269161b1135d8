package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// CredentialStore owns the single persisted credential string. The session
// manager is the only writer; the rest client reads through Token.
type CredentialStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
	Token() (string, bool)
}

// FileStore persists the credential in one file, the client-side analog of
// the browser's fixed local-storage key.
type FileStore struct {
	mu     sync.Mutex
	path   string
	loaded bool
	token  string
}

// NewFileStore keeps the credential at path, defaulting to
// $XDG_CONFIG_HOME/csic/token (or the platform equivalent).
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("os.UserConfigDir -> %w", err)
		}
		path = filepath.Join(dir, "csic", "token")
	}

	return &FileStore{path: path}, nil
}

func (s *FileStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load()
}

func (s *FileStore) load() (string, error) {
	if s.loaded {
		return s.token, nil
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		s.loaded = true
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("os.ReadFile -> %w", err)
	}

	s.token = strings.TrimSpace(string(data))
	s.loaded = true

	return s.token, nil
}

func (s *FileStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("os.MkdirAll -> %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("os.WriteFile -> %w", err)
	}

	s.token = token
	s.loaded = true

	return nil
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.loaded = true

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("os.Remove -> %w", err)
	}

	return nil
}

func (s *FileStore) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	token, err := s.load()
	if err != nil || token == "" {
		return "", false
	}

	return token, true
}

// MemoryStore is a CredentialStore that never touches disk.
type MemoryStore struct {
	mu    sync.Mutex
	token string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.token, nil
}

func (s *MemoryStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token

	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""

	return nil
}

func (s *MemoryStore) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.token, s.token != ""
}
