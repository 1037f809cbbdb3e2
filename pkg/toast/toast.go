package toast

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Severity classifies a notification for display.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// DefaultDuration is how long a notification stays visible when no duration
// is given.
const DefaultDuration = 2200 * time.Millisecond

// Notification is one ephemeral feedback message.
type Notification struct {
	ID       string
	Message  string
	Severity Severity
}

// Store is the single-slot notification holder. Safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	current  *Notification
	timer    *time.Timer
	onChange func(*Notification)
}

// Option configures a Store.
type Option func(*Store)

// WithOnChange registers an observer invoked with the new notification on
// Show and with nil on dismiss. Called outside the store lock.
func WithOnChange(fn func(*Notification)) Option {
	return func(s *Store) { s.onChange = fn }
}

// NewStore creates an empty notification store.
func NewStore(opts ...Option) *Store {
	s := &Store{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Show replaces any current notification and its pending dismiss timer.
// A non-positive duration falls back to DefaultDuration.
func (s *Store) Show(message string, severity Severity, duration time.Duration) {
	if duration <= 0 {
		duration = DefaultDuration
	}
	n := &Notification{
		ID:       uuid.NewString(),
		Message:  message,
		Severity: severity,
	}

	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.current = n
	id := n.ID
	s.timer = time.AfterFunc(duration, func() { s.dismiss(id) })
	notify := s.onChange
	s.mu.Unlock()

	if notify != nil {
		notify(n)
	}
}

// Success shows a success notification with the default duration.
func (s *Store) Success(message string) { s.Show(message, SeveritySuccess, 0) }

// Error shows an error notification with the default duration.
func (s *Store) Error(message string) { s.Show(message, SeverityError, 0) }

// Info shows an info notification with the default duration.
func (s *Store) Info(message string) { s.Show(message, SeverityInfo, 0) }

// Current returns the visible notification, or nil.
func (s *Store) Current() *Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Clear dismisses the current notification immediately.
func (s *Store) Clear() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.current = nil
	notify := s.onChange
	s.mu.Unlock()

	if notify != nil {
		notify(nil)
	}
}

// dismiss clears the notification only if it is still the current one; a
// timer from a pre-empted notification must not clear its replacement.
func (s *Store) dismiss(id string) {
	s.mu.Lock()
	if s.current == nil || s.current.ID != id {
		s.mu.Unlock()
		return
	}
	s.current = nil
	s.timer = nil
	notify := s.onChange
	s.mu.Unlock()

	if notify != nil {
		notify(nil)
	}
}
