package shadowgraph

import (
	"context"

	"github.com/shadowgraph/shadowgraph-go/pkg/apierrors"
)

type settingsEnvelope struct {
	Settings Settings `json:"settings"`
}

// GetSettings fetches the user's privacy and display toggles.
func (c *Client) GetSettings(ctx context.Context) (*Settings, error) {
	var out settingsEnvelope
	if err := c.api.Get(ctx, "/settings", &out); err != nil {
		return nil, apierrors.Normalize(err, "Failed to load settings.")
	}
	return &out.Settings, nil
}

// SaveSettings persists the toggle map and returns the stored state.
func (c *Client) SaveSettings(ctx context.Context, settings Settings) (*Settings, error) {
	var out settingsEnvelope
	if err := c.api.Put(ctx, "/settings", settings, &out); err != nil {
		return nil, apierrors.Normalize(err, "Failed to save settings.")
	}
	c.notifyDataUpdated("settings_updated")
	return &out.Settings, nil
}

// DeleteAccount permanently removes the account and all associated data, then
// clears the local session. Callers must confirm with the user before
// invoking this; the SDK issues the request unconditionally.
func (c *Client) DeleteAccount(ctx context.Context) error {
	if err := c.api.Delete(ctx, "/account", nil); err != nil {
		return apierrors.Normalize(err, "Failed to delete account.")
	}
	return c.sessions.SignOut()
}
