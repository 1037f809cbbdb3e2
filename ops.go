package shadowgraph

import (
	"context"

	"github.com/shadowgraph/shadowgraph-go/pkg/apierrors"
)

// Health probes the backend's liveness endpoint.
func (c *Client) Health(ctx context.Context) (bool, error) {
	var out struct {
		OK      bool   `json:"ok"`
		Service string `json:"service"`
	}
	if err := c.api.Get(ctx, "/health", &out); err != nil {
		return false, apierrors.Normalize(err, "Failed to reach backend.")
	}
	return out.OK, nil
}

// OpsReadiness reports which backend integrations are configured, for the
// operational dashboard.
func (c *Client) OpsReadiness(ctx context.Context) (*Readiness, error) {
	var out Readiness
	if err := c.api.Get(ctx, "/ops/readiness", &out); err != nil {
		return nil, apierrors.Normalize(err, "Failed to load readiness checks.")
	}
	if out.Checks == nil {
		out.Checks = map[string]bool{}
	}
	if out.Missing == nil {
		out.Missing = []string{}
	}
	return &out, nil
}
