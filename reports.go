package shadowgraph

import (
	"context"
	"encoding/json"

	"github.com/shadowgraph/shadowgraph-go/pkg/apierrors"
)

// ExportPDF downloads the full report as a PDF document.
func (c *Client) ExportPDF(ctx context.Context) ([]byte, error) {
	blob, err := c.api.GetBlob(ctx, "/report/export/pdf")
	if err != nil {
		return nil, apierrors.Normalize(err, "Failed to export report.")
	}
	return blob, nil
}

// ExportJSON downloads the full report as raw JSON.
func (c *Client) ExportJSON(ctx context.Context) (json.RawMessage, error) {
	blob, err := c.api.GetBlob(ctx, "/report/export/json")
	if err != nil {
		return nil, apierrors.Normalize(err, "Failed to export JSON report.")
	}
	return json.RawMessage(blob), nil
}

// ReportHistory fetches the user's scan history feed.
func (c *Client) ReportHistory(ctx context.Context) ([]ReportEvent, error) {
	var out struct {
		Events []ReportEvent `json:"events"`
	}
	if err := c.api.Get(ctx, "/report/history", &out); err != nil {
		return nil, apierrors.Normalize(err, "Failed to load report history.")
	}
	if out.Events == nil {
		out.Events = []ReportEvent{}
	}
	return out.Events, nil
}

// AuditEvents fetches the audit feed, including system-wide events.
func (c *Client) AuditEvents(ctx context.Context) ([]AuditEvent, error) {
	var out struct {
		Events []AuditEvent `json:"events"`
	}
	if err := c.api.Get(ctx, "/audit/events", &out); err != nil {
		return nil, apierrors.Normalize(err, "Failed to load audit events.")
	}
	if out.Events == nil {
		out.Events = []AuditEvent{}
	}
	return out.Events, nil
}
