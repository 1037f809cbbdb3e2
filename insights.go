package shadowgraph

import (
	"context"

	"github.com/shadowgraph/shadowgraph-go/pkg/apierrors"
)

// FootprintSummary fetches the aggregated digital footprint overview.
func (c *Client) FootprintSummary(ctx context.Context) (*FootprintSummary, error) {
	var out struct {
		Summary *FootprintSummary `json:"summary"`
	}
	if err := c.api.Get(ctx, "/digital-footprint-summary", &out); err != nil {
		return nil, apierrors.Normalize(err, "Failed to load digital footprint summary.")
	}

	summary := out.Summary
	if summary == nil {
		summary = &FootprintSummary{}
	}
	if summary.ActivePlatforms == nil {
		summary.ActivePlatforms = []string{}
	}
	if summary.Categories == nil {
		summary.Categories = map[string]int{"Social": 0, "Coding": 0, "Academic": 0}
	}
	if summary.Profiles == nil {
		summary.Profiles = []map[string]any{}
	}
	return summary, nil
}

// ReputationInsight fetches the reputation analysis panel payload.
func (c *Client) ReputationInsight(ctx context.Context) (map[string]any, error) {
	return c.getObject(ctx, "/reputation-insight", "Failed to load reputation insight.")
}

// ProfileDashboard fetches the profile dashboard payload.
func (c *Client) ProfileDashboard(ctx context.Context) (map[string]any, error) {
	return c.getObject(ctx, "/profile-dashboard", "Failed to load profile dashboard.")
}

// Narrative fetches the generated insight stories.
func (c *Client) Narrative(ctx context.Context) ([]map[string]any, error) {
	return c.getList(ctx, "/ai-narrative", "stories", "Failed to load narrative.")
}

// PrivacyAlerts fetches active privacy alerts.
func (c *Client) PrivacyAlerts(ctx context.Context) ([]map[string]any, error) {
	return c.getList(ctx, "/privacy-alerts", "alerts", "Failed to load privacy alerts.")
}

// SkillRadar fetches the skill radar chart payload.
func (c *Client) SkillRadar(ctx context.Context) (map[string]any, error) {
	return c.getObject(ctx, "/skill-radar", "Failed to load skill radar.")
}

// NetworkingOpportunities fetches suggested networking opportunities.
func (c *Client) NetworkingOpportunities(ctx context.Context) ([]map[string]any, error) {
	return c.getList(ctx, "/networking-opportunities", "opportunities", "Failed to load networking opportunities.")
}

// ActivityTimeline fetches the account activity timeline.
func (c *Client) ActivityTimeline(ctx context.Context) ([]map[string]any, error) {
	return c.getList(ctx, "/activity-timeline", "timeline", "Failed to load activity timeline.")
}

// PersonaScore fetches the public persona score payload.
func (c *Client) PersonaScore(ctx context.Context) (map[string]any, error) {
	return c.getObject(ctx, "/public-persona-score", "Failed to load public persona score.")
}

// Achievements fetches earned badges.
func (c *Client) Achievements(ctx context.Context) ([]map[string]any, error) {
	return c.getList(ctx, "/achievements", "badges", "Failed to load achievements.")
}

// PredictiveAnalytics fetches the predictive analytics payload.
func (c *Client) PredictiveAnalytics(ctx context.Context) (map[string]any, error) {
	return c.getObject(ctx, "/predictive-analytics", "Failed to load predictive analytics.")
}

// EthicalVerification fetches the consent and ethics checklist.
func (c *Client) EthicalVerification(ctx context.Context) ([]map[string]any, error) {
	return c.getList(ctx, "/ethical-verification", "checklist", "Failed to load ethical verification.")
}

func (c *Client) getObject(ctx context.Context, path, fallback string) (map[string]any, error) {
	var out map[string]any
	if err := c.api.Get(ctx, path, &out); err != nil {
		return nil, apierrors.Normalize(err, fallback)
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}

// getList unwraps single-key list envelopes like {"stories": [...]}.
func (c *Client) getList(ctx context.Context, path, key, fallback string) ([]map[string]any, error) {
	var out map[string][]map[string]any
	if err := c.api.Get(ctx, path, &out); err != nil {
		return nil, apierrors.Normalize(err, fallback)
	}
	rows := out[key]
	if rows == nil {
		rows = []map[string]any{}
	}
	return rows, nil
}
