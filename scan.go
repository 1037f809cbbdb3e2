package shadowgraph

import (
	"context"
	"io"
	"strings"

	"github.com/shadowgraph/shadowgraph-go/pkg/apierrors"
)

// ScanFace uploads an image for face matching and fake-detection analysis.
// A nil image short-circuits with a MISSING_FILE error before any request is
// issued. searchText optionally narrows the presence lookup.
func (c *Client) ScanFace(ctx context.Context, image io.Reader, filename, searchText string) (*FaceScanResult, error) {
	if image == nil {
		return nil, apierrors.New("Upload an image before scanning.", 400, apierrors.CodeMissingFile, nil)
	}
	if filename == "" {
		filename = "upload.jpg"
	}

	fields := map[string]string{}
	if trimmed := strings.TrimSpace(searchText); trimmed != "" {
		fields["search_text"] = trimmed
	}

	var out FaceScanResult
	if err := c.api.PostMultipart(ctx, "/upload-face", "file", filename, image, fields, &out); err != nil {
		return nil, apierrors.Normalize(err, "Failed to run face scan.")
	}

	if out.MatchedProfiles == nil {
		out.MatchedProfiles = []MatchedProfile{}
	}
	if out.OnlinePresence == nil {
		out.OnlinePresence = []PlatformHit{}
	}
	if out.Signals == nil {
		out.Signals = map[string]any{}
	}
	if out.FakeDetectionLabel == "" {
		out.FakeDetectionLabel = "Unknown"
	}
	if out.AntiSpoofModel == "" {
		out.AntiSpoofModel = "unknown"
	}

	c.notifyDataUpdated("face_scan")
	return &out, nil
}

// ScanUsername probes the platform catalog for the given username and keeps
// only confirmed rows with a resolvable profile link. A blank username
// short-circuits without issuing a request.
func (c *Client) ScanUsername(ctx context.Context, username string) ([]UsernameMatch, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apierrors.New("Enter a username to scan.", 400, apierrors.CodeValidationError, nil)
	}

	var out struct {
		Results []struct {
			Platform   string `json:"platform"`
			Username   string `json:"username"`
			Status     string `json:"status"`
			ProfileURL string `json:"profile_url"`
		} `json:"results"`
	}
	if err := c.api.Post(ctx, "/scan-username", map[string]string{"username": username}, &out); err != nil {
		return nil, apierrors.Normalize(err, "Failed to scan username across platforms.")
	}

	matches := make([]UsernameMatch, 0, len(out.Results))
	for _, row := range out.Results {
		if row.Status != "Found" || !strings.HasPrefix(row.ProfileURL, "http") {
			continue
		}
		name := row.Username
		if name == "" {
			name = username
		}
		matches = append(matches, UsernameMatch{
			Platform: row.Platform,
			Username: name,
			Status:   "Found",
			Link:     row.ProfileURL,
		})
	}

	c.notifyDataUpdated("username_scan")
	return matches, nil
}
