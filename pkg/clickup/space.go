package clickup

import (
	"context"
	"net/url"

	"github.com/hashicorp/go-hclog"
)

// SpaceClient accesses spaces.
type SpaceClient struct {
	t      *transport
	logger hclog.Logger
}

// List returns the spaces of a workspace.
func (c *SpaceClient) List(ctx context.Context, workspaceID string, opts ...ListSpacesOption) ([]Space, error) {
	if err := requireID("workspaceID", workspaceID); err != nil {
		return nil, err
	}

	o := &listSpacesOptions{}
	for _, opt := range opts {
		opt(o)
	}

	path := "team/" + url.PathEscape(workspaceID) + "/space"
	if o.archived {
		path += "?archived=true"
	}

	c.logger.Info("getting spaces", "workspace_id", workspaceID)

	var resp SpacesResponse
	if err := c.t.get(ctx, path, &resp); err != nil {
		return nil, err
	}

	c.logger.Info("retrieved spaces", "workspace_id", workspaceID, "count", len(resp.Spaces))
	return resp.Spaces, nil
}

// Get retrieves a space by ID.
func (c *SpaceClient) Get(ctx context.Context, spaceID string) (*Space, error) {
	if err := requireID("spaceID", spaceID); err != nil {
		return nil, err
	}

	c.logger.Info("getting space", "space_id", spaceID)

	var space Space
	if err := c.t.get(ctx, "space/"+url.PathEscape(spaceID), &space); err != nil {
		return nil, err
	}

	c.logger.Info("retrieved space", "space_id", space.ID, "name", space.Name)
	return &space, nil
}

// Create creates a space in a workspace.
func (c *SpaceClient) Create(ctx context.Context, workspaceID string, req *CreateSpaceRequest) (*Space, error) {
	if err := requireID("workspaceID", workspaceID); err != nil {
		return nil, err
	}
	if err := requireBody("request", req); err != nil {
		return nil, err
	}
	if err := requireValid("request", req); err != nil {
		return nil, err
	}

	c.logger.Info("creating space", "workspace_id", workspaceID, "name", req.Name)

	var space Space
	if err := c.t.post(ctx, "team/"+url.PathEscape(workspaceID)+"/space", req, &space); err != nil {
		return nil, err
	}

	c.logger.Info("created space", "space_id", space.ID)
	return &space, nil
}

// Update modifies a space.
func (c *SpaceClient) Update(ctx context.Context, spaceID string, req *UpdateSpaceRequest) (*Space, error) {
	if err := requireID("spaceID", spaceID); err != nil {
		return nil, err
	}
	if err := requireBody("request", req); err != nil {
		return nil, err
	}

	c.logger.Info("updating space", "space_id", spaceID)

	var space Space
	if err := c.t.put(ctx, "space/"+url.PathEscape(spaceID), req, &space); err != nil {
		return nil, err
	}

	c.logger.Info("updated space", "space_id", space.ID)
	return &space, nil
}

// Delete removes a space.
func (c *SpaceClient) Delete(ctx context.Context, spaceID string) error {
	if err := requireID("spaceID", spaceID); err != nil {
		return err
	}

	c.logger.Info("deleting space", "space_id", spaceID)

	if err := c.t.delete(ctx, "space/"+url.PathEscape(spaceID)); err != nil {
		return err
	}

	c.logger.Info("deleted space", "space_id", spaceID)
	return nil
}
