package apiclient

import (
	"log/slog"
	"net/http"
)

// TokenSource supplies the current bearer token. An empty string means no
// session is active and no Authorization header is attached.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a plain function to a TokenSource.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

// UnauthorizedFunc is invoked with the request path whenever a response
// carries HTTP status 401.
type UnauthorizedFunc func(path string)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. Nil clients are ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTokenSource sets the bearer token source for outgoing requests.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithOnUnauthorized sets the callback invoked on 401 responses.
func WithOnUnauthorized(fn UnauthorizedFunc) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithFallbackHost adds a host substituted into the base address during
// network-failure fallback when the configured base is not a loopback
// address. Mirrors pointing a non-loopback deployment at the current host.
func WithFallbackHost(host string) Option {
	return func(c *Client) { c.fallbackHost = host }
}
