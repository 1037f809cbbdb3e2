package shadowgraph

import (
	"context"

	"github.com/shadowgraph/shadowgraph-go/pkg/apierrors"
)

// SearchResearch looks up published papers for a researcher. The institution
// is carried through onto every row; missing author lists default to the
// queried name.
func (c *Client) SearchResearch(ctx context.Context, fullName, institution string) ([]ResearchPaper, error) {
	var out struct {
		Papers []ResearchPaper `json:"papers"`
	}
	err := c.api.Post(ctx, "/search-research", map[string]string{
		"full_name":   fullName,
		"institution": institution,
	}, &out)
	if err != nil {
		return nil, apierrors.Normalize(err, "Failed to fetch research records.")
	}

	papers := out.Papers
	if papers == nil {
		papers = []ResearchPaper{}
	}
	for i := range papers {
		if papers[i].Authors == "" {
			papers[i].Authors = fullName + ", Co-authors"
		}
		papers[i].Institution = institution
	}

	c.notifyDataUpdated("research_search")
	return papers, nil
}
