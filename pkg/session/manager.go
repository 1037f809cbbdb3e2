package session

import (
	"errors"
	"sync"
)

// Manager holds the active session for the running instance. At most one
// session is active at a time; every mutation writes through to the Store so
// memory and durable state never diverge.
type Manager struct {
	mu      sync.RWMutex
	store   Store
	current *Session
}

// NewManager creates a manager over the given store.
func NewManager(store Store) (*Manager, error) {
	if store == nil {
		return nil, ErrNoStore
	}
	return &Manager{store: store}, nil
}

// Restore rehydrates the session from durable storage. A missing or corrupt
// record leaves the manager anonymous; corruption is not fatal because the
// worst outcome is a fresh login.
func (m *Manager) Restore() error {
	sess, err := m.store.Load()
	if err != nil {
		if errors.Is(err, ErrCorruptRecord) {
			_ = m.store.Clear()
			return nil
		}
		return err
	}
	if !sess.IsAuthenticated() {
		return nil
	}
	m.mu.Lock()
	m.current = sess
	m.mu.Unlock()
	return nil
}

// SignIn activates the given session and persists it.
func (m *Manager) SignIn(sess *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.store.Save(sess); err != nil {
		return err
	}
	m.current = sess
	return nil
}

// SignOut clears the active session and removes the durable record.
// Idempotent.
func (m *Manager) SignOut() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.current = nil
	return m.store.Clear()
}

// Current returns the active session, or nil when anonymous.
func (m *Manager) Current() *Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// IsAuthenticated reports whether an active session with a token exists.
func (m *Manager) IsAuthenticated() bool {
	return m.Current().IsAuthenticated()
}

// Token returns the active bearer token, or "" when anonymous. Satisfies the
// transport's TokenSource.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.current == nil {
		return ""
	}
	return m.current.Token
}
