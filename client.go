package shadowgraph

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/shadowgraph/shadowgraph-go/pkg/apiclient"
	"github.com/shadowgraph/shadowgraph-go/pkg/broadcast"
	"github.com/shadowgraph/shadowgraph-go/pkg/config"
	"github.com/shadowgraph/shadowgraph-go/pkg/session"
)

// DataUpdatedEvent is broadcast after an operation mutates backend state, so
// passive consumers (dashboard panels, watchers) can re-fetch.
type DataUpdatedEvent struct {
	// Operation names the endpoint operation that changed state.
	Operation string
}

// Client composes the transport, the session manager, and the process-wide
// event buses. Use New; the zero value is not usable.
type Client struct {
	api          *apiclient.Client
	sessions     *session.Manager
	unauthorized *broadcast.Bus[session.UnauthorizedEvent]
	dataUpdated  *broadcast.Bus[DataUpdatedEvent]
	logger       *slog.Logger
}

type clientOptions struct {
	cfg        *apiclient.Config
	store      session.Store
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*clientOptions)

// WithConfig overrides the environment-derived transport configuration.
func WithConfig(cfg apiclient.Config) Option {
	return func(o *clientOptions) { o.cfg = &cfg }
}

// WithSessionStore overrides the default file-backed session store.
func WithSessionStore(store session.Store) Option {
	return func(o *clientOptions) { o.store = store }
}

// WithHTTPClient overrides the transport's HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = hc }
}

// WithLogger sets the SDK logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *clientOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// New builds a Client. Configuration comes from the environment unless
// overridden; the stored session, if any, is restored immediately so the
// first request already carries the bearer token. Token validity is not
// checked here: an expired token surfaces as a 401 on first use.
func New(opts ...Option) (*Client, error) {
	o := &clientOptions{logger: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}

	if o.cfg == nil {
		var cfg apiclient.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		o.cfg = &cfg
	}

	if o.store == nil {
		path, err := session.DefaultSessionPath()
		if err != nil {
			return nil, err
		}
		o.store = session.NewFileStore(path)
	}

	sessions, err := session.NewManager(o.store)
	if err != nil {
		return nil, err
	}
	if err := sessions.Restore(); err != nil {
		return nil, err
	}

	c := &Client{
		sessions:     sessions,
		unauthorized: broadcast.New[session.UnauthorizedEvent](4),
		dataUpdated:  broadcast.New[DataUpdatedEvent](4),
		logger:       o.logger,
	}

	apiOpts := []apiclient.Option{
		apiclient.WithTokenSource(sessions),
		apiclient.WithLogger(o.logger),
		apiclient.WithOnUnauthorized(func(path string) {
			// Tear the session down in the same synchronous reaction as the
			// 401; the bridge subscriber handles navigation afterwards.
			_ = sessions.SignOut()
			c.unauthorized.Send(session.UnauthorizedEvent{From: path})
		}),
	}
	if o.httpClient != nil {
		apiOpts = append(apiOpts, apiclient.WithHTTPClient(o.httpClient))
	}

	api, err := apiclient.New(*o.cfg, apiOpts...)
	if err != nil {
		return nil, err
	}
	c.api = api
	return c, nil
}

// Close shuts down the event buses. In-flight requests are unaffected.
func (c *Client) Close() {
	c.unauthorized.Close()
	c.dataUpdated.Close()
}

// Sessions exposes the session manager for presentation code.
func (c *Client) Sessions() *session.Manager { return c.sessions }

// IsAuthenticated reports whether an active session exists.
func (c *Client) IsAuthenticated() bool { return c.sessions.IsAuthenticated() }

// StartBridge runs the session event bridge until ctx is cancelled. The
// bridge clears the session on any observed 401 and hands the originating
// path to nav. A nil nav still tears the session down.
func (c *Client) StartBridge(ctx context.Context, nav session.Navigator, opts ...session.BridgeOption) {
	opts = append([]session.BridgeOption{session.WithBridgeLogger(c.logger)}, opts...)
	bridge := session.NewBridge(c.sessions, nav, opts...)
	go bridge.Run(ctx, c.unauthorized)
}

// SubscribeUnauthorized returns a subscription to the unauthorized signal.
func (c *Client) SubscribeUnauthorized(ctx context.Context) broadcast.Subscriber[session.UnauthorizedEvent] {
	return c.unauthorized.Subscribe(ctx)
}

// SubscribeDataUpdated returns a subscription to the data-updated signal.
func (c *Client) SubscribeDataUpdated(ctx context.Context) broadcast.Subscriber[DataUpdatedEvent] {
	return c.dataUpdated.Subscribe(ctx)
}

func (c *Client) notifyDataUpdated(operation string) {
	c.dataUpdated.Send(DataUpdatedEvent{Operation: operation})
}
