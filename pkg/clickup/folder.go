package clickup

import (
	"context"
	"net/url"

	"github.com/hashicorp/go-hclog"
)

// FolderClient accesses folders.
type FolderClient struct {
	t      *transport
	logger hclog.Logger
}

// List returns the folders of a space.
func (c *FolderClient) List(ctx context.Context, spaceID string) ([]Folder, error) {
	if err := requireID("spaceID", spaceID); err != nil {
		return nil, err
	}

	c.logger.Info("getting folders", "space_id", spaceID)

	var resp FoldersResponse
	if err := c.t.get(ctx, "space/"+url.PathEscape(spaceID)+"/folder", &resp); err != nil {
		return nil, err
	}

	c.logger.Info("retrieved folders", "space_id", spaceID, "count", len(resp.Folders))
	return resp.Folders, nil
}

// Get retrieves a folder by ID.
func (c *FolderClient) Get(ctx context.Context, folderID string) (*Folder, error) {
	if err := requireID("folderID", folderID); err != nil {
		return nil, err
	}

	c.logger.Info("getting folder", "folder_id", folderID)

	var folder Folder
	if err := c.t.get(ctx, "folder/"+url.PathEscape(folderID), &folder); err != nil {
		return nil, err
	}

	c.logger.Info("retrieved folder", "folder_id", folder.ID, "name", folder.Name)
	return &folder, nil
}

// Create creates a folder in a space.
func (c *FolderClient) Create(ctx context.Context, spaceID string, req *CreateFolderRequest) (*Folder, error) {
	if err := requireID("spaceID", spaceID); err != nil {
		return nil, err
	}
	if err := requireBody("request", req); err != nil {
		return nil, err
	}
	if err := requireValid("request", req); err != nil {
		return nil, err
	}

	c.logger.Info("creating folder", "space_id", spaceID, "name", req.Name)

	var folder Folder
	if err := c.t.post(ctx, "space/"+url.PathEscape(spaceID)+"/folder", req, &folder); err != nil {
		return nil, err
	}

	c.logger.Info("created folder", "folder_id", folder.ID)
	return &folder, nil
}

// Update renames a folder.
func (c *FolderClient) Update(ctx context.Context, folderID string, req *UpdateFolderRequest) (*Folder, error) {
	if err := requireID("folderID", folderID); err != nil {
		return nil, err
	}
	if err := requireBody("request", req); err != nil {
		return nil, err
	}

	c.logger.Info("updating folder", "folder_id", folderID)

	var folder Folder
	if err := c.t.put(ctx, "folder/"+url.PathEscape(folderID), req, &folder); err != nil {
		return nil, err
	}

	c.logger.Info("updated folder", "folder_id", folder.ID)
	return &folder, nil
}

// Delete removes a folder.
func (c *FolderClient) Delete(ctx context.Context, folderID string) error {
	if err := requireID("folderID", folderID); err != nil {
		return err
	}

	c.logger.Info("deleting folder", "folder_id", folderID)

	if err := c.t.delete(ctx, "folder/"+url.PathEscape(folderID)); err != nil {
		return err
	}

	c.logger.Info("deleted folder", "folder_id", folderID)
	return nil
}
