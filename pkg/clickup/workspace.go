package clickup

import (
	"context"

	"github.com/hashicorp/go-hclog"
)

// WorkspaceClient accesses workspaces (teams).
type WorkspaceClient struct {
	t      *transport
	logger hclog.Logger
}

// List returns the workspaces the token has access to.
func (c *WorkspaceClient) List(ctx context.Context) ([]Workspace, error) {
	c.logger.Info("getting workspaces")

	var resp WorkspacesResponse
	if err := c.t.get(ctx, "team", &resp); err != nil {
		return nil, err
	}

	c.logger.Info("retrieved workspaces", "count", len(resp.Teams))
	return resp.Teams, nil
}
