package shadowgraph

import (
	"context"

	"github.com/shadowgraph/shadowgraph-go/pkg/apierrors"
)

// CheckBreach queries breach exposure for an email address.
//
// The backend signals upstream operational conditions inside a success
// envelope: the response body's status field can declare a missing API key,
// a rejected key, or provider rate limiting even though the HTTP call itself
// returned 200. Those states are surfaced as typed errors so callers treat
// them as failures with a retry affordance.
func (c *Client) CheckBreach(ctx context.Context, email string) ([]Breach, error) {
	var out struct {
		Status   string   `json:"status"`
		Message  string   `json:"message"`
		Breaches []Breach `json:"breaches"`
	}
	if err := c.api.Post(ctx, "/check-breach", map[string]string{"email": email}, &out); err != nil {
		return nil, apierrors.Normalize(err, "Failed to check breach exposure.")
	}

	switch out.Status {
	case "api-key-missing":
		return nil, apierrors.New("Breach API key is not configured on backend (HIBP_API_KEY).", 503, apierrors.CodeConfigMissing, out.Message)
	case "auth-error":
		return nil, apierrors.New("HIBP API key is invalid or expired.", 401, apierrors.CodeUpstreamAuth, out.Message)
	case "rate-limited":
		return nil, apierrors.New("HIBP rate limit reached. Try again later.", 429, apierrors.CodeRateLimited, out.Message)
	}

	breaches := out.Breaches
	if breaches == nil {
		breaches = []Breach{}
	}
	for i := range breaches {
		breaches[i].Email = email
	}

	c.notifyDataUpdated("breach_check")
	return breaches, nil
}
