package clickup

import (
	"context"
	"net/url"

	"github.com/hashicorp/go-hclog"
)

// ListClient accesses lists.
type ListClient struct {
	t      *transport
	logger hclog.Logger
}

// List returns the lists of a folder.
func (c *ListClient) List(ctx context.Context, folderID string) ([]List, error) {
	if err := requireID("folderID", folderID); err != nil {
		return nil, err
	}

	c.logger.Info("getting lists", "folder_id", folderID)

	var resp ListsResponse
	if err := c.t.get(ctx, "folder/"+url.PathEscape(folderID)+"/list", &resp); err != nil {
		return nil, err
	}

	c.logger.Info("retrieved lists", "folder_id", folderID, "count", len(resp.Lists))
	return resp.Lists, nil
}

// ListFolderless returns the lists that live directly in a space.
func (c *ListClient) ListFolderless(ctx context.Context, spaceID string) ([]List, error) {
	if err := requireID("spaceID", spaceID); err != nil {
		return nil, err
	}

	c.logger.Info("getting folderless lists", "space_id", spaceID)

	var resp ListsResponse
	if err := c.t.get(ctx, "space/"+url.PathEscape(spaceID)+"/list", &resp); err != nil {
		return nil, err
	}

	c.logger.Info("retrieved folderless lists", "space_id", spaceID, "count", len(resp.Lists))
	return resp.Lists, nil
}

// Get retrieves a list by ID.
func (c *ListClient) Get(ctx context.Context, listID string) (*List, error) {
	if err := requireID("listID", listID); err != nil {
		return nil, err
	}

	c.logger.Info("getting list", "list_id", listID)

	var list List
	if err := c.t.get(ctx, "list/"+url.PathEscape(listID), &list); err != nil {
		return nil, err
	}

	c.logger.Info("retrieved list", "list_id", list.ID, "name", list.Name)
	return &list, nil
}

// CreateInFolder creates a list in a folder.
func (c *ListClient) CreateInFolder(ctx context.Context, folderID string, req *CreateListRequest) (*List, error) {
	if err := requireID("folderID", folderID); err != nil {
		return nil, err
	}
	return c.create(ctx, "folder/"+url.PathEscape(folderID)+"/list", req)
}

// CreateInSpace creates a folderless list in a space.
func (c *ListClient) CreateInSpace(ctx context.Context, spaceID string, req *CreateListRequest) (*List, error) {
	if err := requireID("spaceID", spaceID); err != nil {
		return nil, err
	}
	return c.create(ctx, "space/"+url.PathEscape(spaceID)+"/list", req)
}

func (c *ListClient) create(ctx context.Context, path string, req *CreateListRequest) (*List, error) {
	if err := requireBody("request", req); err != nil {
		return nil, err
	}
	if err := requireValid("request", req); err != nil {
		return nil, err
	}

	c.logger.Info("creating list", "path", path, "name", req.Name)

	var list List
	if err := c.t.post(ctx, path, req, &list); err != nil {
		return nil, err
	}

	c.logger.Info("created list", "list_id", list.ID)
	return &list, nil
}

// Update modifies a list.
func (c *ListClient) Update(ctx context.Context, listID string, req *UpdateListRequest) (*List, error) {
	if err := requireID("listID", listID); err != nil {
		return nil, err
	}
	if err := requireBody("request", req); err != nil {
		return nil, err
	}

	c.logger.Info("updating list", "list_id", listID)

	var list List
	if err := c.t.put(ctx, "list/"+url.PathEscape(listID), req, &list); err != nil {
		return nil, err
	}

	c.logger.Info("updated list", "list_id", list.ID)
	return &list, nil
}

// Delete removes a list.
func (c *ListClient) Delete(ctx context.Context, listID string) error {
	if err := requireID("listID", listID); err != nil {
		return err
	}

	c.logger.Info("deleting list", "list_id", listID)

	if err := c.t.delete(ctx, "list/"+url.PathEscape(listID)); err != nil {
		return err
	}

	c.logger.Info("deleted list", "list_id", listID)
	return nil
}
