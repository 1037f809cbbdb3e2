package shadowgraph

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/shadowgraph/shadowgraph-go/pkg/apierrors"
	"github.com/shadowgraph/shadowgraph-go/pkg/session"
)

type authResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        session.User `json:"user"`
}

// Login authenticates with email and password, activates the resulting
// session and persists it.
func (c *Client) Login(ctx context.Context, email, password string) (*session.Session, error) {
	return c.authenticate(ctx, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
}

// SignUp registers a new account. The display name defaults to the mailbox
// part of the email, matching the backend's signup convention.
func (c *Client) SignUp(ctx context.Context, email, password string) (*session.Session, error) {
	name, _, _ := strings.Cut(email, "@")
	return c.authenticate(ctx, "/auth/signup", map[string]string{
		"email":    email,
		"password": password,
		"name":     name,
	})
}

func (c *Client) authenticate(ctx context.Context, path string, payload map[string]string) (*session.Session, error) {
	var out authResponse
	if err := c.api.Post(ctx, path, payload, &out); err != nil {
		return nil, apierrors.Normalize(err, "Authentication failed.")
	}
	sess := &session.Session{Token: out.AccessToken, User: out.User}
	if err := c.sessions.SignIn(sess); err != nil {
		return nil, apierrors.Normalize(err, "Failed to persist session.")
	}
	return sess, nil
}

// OAuthStart is the provider redirect bootstrap returned by the backend.
type OAuthStart struct {
	URL   string `json:"url"`
	State string `json:"state"`
}

// OAuthStartURL asks the backend for the provider's authorization URL.
func (c *Client) OAuthStartURL(ctx context.Context, provider, redirectURI string) (*OAuthStart, error) {
	path := fmt.Sprintf("/auth/oauth/%s/start-url?redirect_uri=%s", url.PathEscape(provider), url.QueryEscape(redirectURI))
	var out OAuthStart
	if err := c.api.Get(ctx, path, &out); err != nil {
		return nil, apierrors.Normalize(err, fmt.Sprintf("Failed to start %s OAuth.", provider))
	}
	return &out, nil
}

// ExchangeOAuth completes the OAuth callback: the backend exchanges the code
// with the provider and returns a session, which is activated and persisted.
func (c *Client) ExchangeOAuth(ctx context.Context, provider, code, state, redirectURI string) (*session.Session, error) {
	path := fmt.Sprintf("/auth/oauth/%s/exchange", url.PathEscape(provider))
	var out authResponse
	err := c.api.Post(ctx, path, map[string]string{
		"code":         code,
		"state":        state,
		"redirect_uri": redirectURI,
	}, &out)
	if err != nil {
		return nil, apierrors.Normalize(err, fmt.Sprintf("Failed to complete %s OAuth.", provider))
	}
	sess := &session.Session{Token: out.AccessToken, User: out.User}
	if err := c.sessions.SignIn(sess); err != nil {
		return nil, apierrors.Normalize(err, "Failed to persist session.")
	}
	return sess, nil
}

// Me fetches the authenticated user's record.
func (c *Client) Me(ctx context.Context) (*session.User, error) {
	var out struct {
		User session.User `json:"user"`
	}
	if err := c.api.Get(ctx, "/auth/me", &out); err != nil {
		return nil, apierrors.Normalize(err, "Failed to load account.")
	}
	return &out.User, nil
}

// SignOut clears the active session. Idempotent; no backend call is made.
func (c *Client) SignOut() error {
	return c.sessions.SignOut()
}
