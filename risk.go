package shadowgraph

import (
	"context"

	"github.com/shadowgraph/shadowgraph-go/pkg/apierrors"
)

var defaultRiskTips = []string{
	"Enable MFA across all recovered accounts.",
	"Remove stale public profiles without activity.",
	"Rotate credentials exposed in historical breaches.",
}

// CalculateRisk computes the exposure score. Nil inputs let the backend use
// its defaults. Missing response fields come back zeroed, with canned tips so
// the caller always has guidance to render.
func (c *Client) CalculateRisk(ctx context.Context, inputs *RiskInputs) (*RiskScore, error) {
	var body any
	if inputs != nil {
		body = inputs
	}

	var out RiskScore
	if err := c.api.Post(ctx, "/calculate-risk", body, &out); err != nil {
		return nil, apierrors.Normalize(err, "Failed to calculate exposure score.")
	}

	if out.Vector == nil {
		out.Vector = []int{0, 0, 0, 0}
	}
	if len(out.Tips) == 0 {
		out.Tips = append([]string(nil), defaultRiskTips...)
	}
	if out.Labels == nil {
		out.Labels = []string{}
	}

	c.notifyDataUpdated("risk_calculation")
	return &out, nil
}
