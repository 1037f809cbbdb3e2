package broadcast_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowgraph/shadowgraph-go/pkg/broadcast"
)

func recvWithin(t *testing.T, ch <-chan string, d time.Duration) (string, bool) {
	t.Helper()
	select {
	case v, ok := <-ch:
		return v, ok
	case <-time.After(d):
		t.Fatal("timed out waiting for event")
		return "", false
	}
}

func TestBusFanOut(t *testing.T) {
	t.Parallel()

	bus := broadcast.New[string](4)
	defer bus.Close()

	ctx := context.Background()
	first := bus.Subscribe(ctx)
	second := bus.Subscribe(ctx)

	bus.Send("unauthorized")

	for _, sub := range []broadcast.Subscriber[string]{first, second} {
		got, ok := recvWithin(t, sub.Receive(), time.Second)
		require.True(t, ok)
		assert.Equal(t, "unauthorized", got)
	}
}

func TestBusSubscriberClose(t *testing.T) {
	t.Parallel()

	bus := broadcast.New[string](1)
	defer bus.Close()

	sub := bus.Subscribe(context.Background())
	sub.Close()
	sub.Close() // idempotent

	_, ok := <-sub.Receive()
	assert.False(t, ok)

	// Sending after the subscriber is gone must not panic.
	bus.Send("after-close")
}

func TestBusContextCancelDetaches(t *testing.T) {
	t.Parallel()

	bus := broadcast.New[string](1)
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	sub := bus.Subscribe(ctx)
	cancel()

	_, ok := recvWithin(t, sub.Receive(), time.Second)
	assert.False(t, ok)
}

func TestBusSlowSubscriberDropped(t *testing.T) {
	t.Parallel()

	bus := broadcast.New[string](1)
	defer bus.Close()

	sub := bus.Subscribe(context.Background())

	// Fill the buffer, then overflow it. The overflowing event is dropped
	// and the subscriber detached.
	bus.Send("first")
	bus.Send("second")

	got, ok := recvWithin(t, sub.Receive(), time.Second)
	require.True(t, ok)
	assert.Equal(t, "first", got)

	_, ok = recvWithin(t, sub.Receive(), time.Second)
	assert.False(t, ok, "overflowed subscriber should be closed, not stalled")
}

func TestBusClose(t *testing.T) {
	t.Parallel()

	bus := broadcast.New[string](1)
	sub := bus.Subscribe(context.Background())

	bus.Close()
	bus.Close() // idempotent

	_, ok := <-sub.Receive()
	assert.False(t, ok)

	// Operations on a closed bus are inert.
	bus.Send("ignored")
	late := bus.Subscribe(context.Background())
	_, ok = <-late.Receive()
	assert.False(t, ok)
}

func TestBusCloseDoesNotBlockOnLiveContexts(t *testing.T) {
	t.Parallel()

	bus := broadcast.New[string](1)
	_ = bus.Subscribe(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	_ = bus.Subscribe(ctx)

	done := make(chan struct{})
	go func() {
		bus.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Close blocked on a subscriber whose context is still live")
	}
}
