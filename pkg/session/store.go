package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Store persists exactly one session record.
type Store interface {
	// Load reads the stored session. A missing record yields (nil, nil).
	Load() (*Session, error)

	// Save overwrites the stored session.
	Save(s *Session) error

	// Clear removes the stored session. Idempotent.
	Clear() error
}

// FileStore keeps the session as a single JSON file, the durable-storage
// equivalent of one browser storage key.
type FileStore struct {
	path string
}

// DefaultSessionPath resolves the session file location: the
// SHADOWGRAPH_SESSION_FILE override when set, otherwise
// <user config dir>/shadowgraph/session.json.
func DefaultSessionPath() (string, error) {
	if p := os.Getenv("SHADOWGRAPH_SESSION_FILE"); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("session: resolve config dir: %w", err)
	}
	return filepath.Join(dir, "shadowgraph", "session.json"), nil
}

// NewFileStore creates a file-backed store at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (*Session, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("session: read record: %w", err)
	}
	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptRecord, err)
	}
	return &sess, nil
}

func (s *FileStore) Save(sess *Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("session: encode record: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("session: create config dir: %w", err)
	}
	// 0600: the record holds a live bearer token.
	if err := os.WriteFile(s.path, raw, 0o600); err != nil {
		return fmt.Errorf("session: write record: %w", err)
	}
	return nil
}

func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("session: remove record: %w", err)
	}
	return nil
}

// MemoryStore is an in-memory Store for tests and embedding.
type MemoryStore struct {
	mu   sync.Mutex
	sess *Session
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Load() (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sess == nil {
		return nil, nil
	}
	clone := *s.sess
	return &clone, nil
}

func (s *MemoryStore) Save(sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *sess
	s.sess = &clone
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess = nil
	return nil
}
