package broadcast

import (
	"context"
	"sync"
)

// Subscriber receives events from a Bus. Safe for concurrent use.
type Subscriber[T any] interface {
	// Receive returns the channel events arrive on. The channel is closed
	// when the subscriber or the bus is closed.
	Receive() <-chan T

	// Close detaches the subscriber and closes its channel. Idempotent.
	Close()
}

// Bus fans events out to all active subscribers without blocking the sender.
// All methods are safe for concurrent use.
type Bus[T any] struct {
	mu        sync.RWMutex
	subs      map[*subscription[T]]struct{}
	buffer    int
	closed    bool
	done      chan struct{}
	cleanupWg sync.WaitGroup
}

// New creates a bus whose subscribers buffer up to buffer events. A minimum
// buffer of 1 is enforced so sends stay non-blocking.
func New[T any](buffer int) *Bus[T] {
	return &Bus[T]{
		subs:   make(map[*subscription[T]]struct{}),
		buffer: max(buffer, 1),
		done:   make(chan struct{}),
	}
}

// Subscribe registers a new subscriber. The subscription is torn down when
// ctx is cancelled or the subscriber is closed. Subscribing to a closed bus
// yields an already-closed subscriber.
func (b *Bus[T]) Subscribe(ctx context.Context) Subscriber[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := &subscription[T]{ch: make(chan T, b.buffer)}
	if b.closed {
		sub.close()
		return sub
	}
	b.subs[sub] = struct{}{}

	if ctx.Done() != nil {
		b.cleanupWg.Add(1)
		go func() {
			defer b.cleanupWg.Done()
			select {
			case <-ctx.Done():
				b.remove(sub)
			case <-b.done:
			}
		}()
	}
	return sub
}

// Send delivers the event to every active subscriber. Events are dropped for
// subscribers whose buffer is full; those subscribers are detached so they do
// not accumulate further loss silently.
func (b *Bus[T]) Send(event T) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return
	}
	for sub := range b.subs {
		if !sub.send(event) {
			// Detach asynchronously; taking the write lock here would
			// deadlock against the read lock above.
			go b.remove(sub)
		}
	}
}

// Close shuts the bus down and closes every subscriber. Idempotent.
func (b *Bus[T]) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	close(b.done)
	for sub := range b.subs {
		sub.close()
	}
	clear(b.subs)
	b.mu.Unlock()

	b.cleanupWg.Wait()
}

func (b *Bus[T]) remove(sub *subscription[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[sub]; ok {
		delete(b.subs, sub)
	}
	sub.close()
}

type subscription[T any] struct {
	ch     chan T
	mu     sync.Mutex
	closed bool
}

func (s *subscription[T]) Receive() <-chan T { return s.ch }

func (s *subscription[T]) Close() { s.close() }

func (s *subscription[T]) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}

func (s *subscription[T]) send(event T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	select {
	case s.ch <- event:
		return true
	default:
		return false
	}
}
