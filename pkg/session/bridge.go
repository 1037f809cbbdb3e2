package session

import (
	"context"
	"log/slog"

	"github.com/shadowgraph/shadowgraph-go/pkg/broadcast"
	"github.com/shadowgraph/shadowgraph-go/pkg/logger"
)

// DefaultAuthPath is the authentication entry point navigated to after a
// session teardown.
const DefaultAuthPath = "/auth"

// Navigator moves the presentation layer to a new view. CurrentPath lets the
// bridge skip navigation when the user is already at the auth entry point.
type Navigator interface {
	CurrentPath() string
	// Navigate moves to target, carrying the path the teardown originated
	// from so the post-login flow can return there.
	Navigate(target, from string)
}

// Bridge reacts to unauthorized events: it clears the session manager and
// redirects to the auth entry point, independent of whichever call site
// triggered the 401.
type Bridge struct {
	sessions *Manager
	nav      Navigator
	authPath string
	logger   *slog.Logger
}

// BridgeOption configures a Bridge.
type BridgeOption func(*Bridge)

// WithAuthPath overrides the auth entry point path.
func WithAuthPath(path string) BridgeOption {
	return func(b *Bridge) {
		if path != "" {
			b.authPath = path
		}
	}
}

// WithBridgeLogger sets the bridge logger. Nil loggers are ignored.
func WithBridgeLogger(l *slog.Logger) BridgeOption {
	return func(b *Bridge) {
		if l != nil {
			b.logger = l
		}
	}
}

// NewBridge creates a bridge over the session manager. A nil navigator is
// allowed: the session is still torn down, only the redirect is skipped.
func NewBridge(sessions *Manager, nav Navigator, opts ...BridgeOption) *Bridge {
	b := &Bridge{
		sessions: sessions,
		nav:      nav,
		authPath: DefaultAuthPath,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run subscribes to the unauthorized bus and handles events until ctx is
// cancelled or the bus closes. Each signal is handled fire-and-forget;
// duplicate signals while already anonymous are no-ops.
func (b *Bridge) Run(ctx context.Context, bus *broadcast.Bus[UnauthorizedEvent]) {
	sub := bus.Subscribe(ctx)
	defer sub.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-sub.Receive():
			if !ok {
				return
			}
			b.handle(ctx, ev)
		}
	}
}

func (b *Bridge) handle(ctx context.Context, ev UnauthorizedEvent) {
	if err := b.sessions.SignOut(); err != nil {
		b.logger.LogAttrs(ctx, slog.LevelWarn, "failed to clear session after 401",
			logger.Error(err),
		)
	}
	if b.nav == nil || b.nav.CurrentPath() == b.authPath {
		return
	}
	b.logger.LogAttrs(ctx, slog.LevelInfo, "session expired, redirecting to auth",
		slog.String("from", ev.From),
	)
	b.nav.Navigate(b.authPath, ev.From)
}
