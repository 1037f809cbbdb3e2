package shadowgraph

import (
	"context"

	"github.com/shadowgraph/shadowgraph-go/pkg/apierrors"
)

// GraphData fetches the identity graph built from the user's scan history.
func (c *Client) GraphData(ctx context.Context) (*Graph, error) {
	var out Graph
	if err := c.api.Get(ctx, "/graph-data", &out); err != nil {
		return nil, apierrors.Normalize(err, "Failed to load graph data.")
	}
	if out.Nodes == nil {
		out.Nodes = []GraphNode{}
	}
	if out.Edges == nil {
		out.Edges = []GraphEdge{}
	}
	return &out, nil
}
