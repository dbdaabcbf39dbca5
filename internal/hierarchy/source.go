package hierarchy

import (
	"context"

	"github.com/modelingevolution/clickup/pkg/clickup"
)

// Source is the subset of the ClickUp API a walk needs.
type Source interface {
	Spaces(ctx context.Context, workspaceID string) ([]clickup.Space, error)
	Folders(ctx context.Context, spaceID string) ([]clickup.Folder, error)
	Lists(ctx context.Context, folderID string) ([]clickup.List, error)
	FolderlessLists(ctx context.Context, spaceID string) ([]clickup.List, error)
	Tasks(ctx context.Context, listID string, page int) (*clickup.TasksResponse, error)
}

// clientSource adapts a *clickup.Client to Source.
type clientSource struct {
	client *clickup.Client
	opts   []clickup.ListTasksOption
}

// FromClient returns a Source backed by the SDK client. taskOpts are applied
// to every task page request. The walker's page number is applied last, so a
// WithPage in taskOpts has no effect.
func FromClient(client *clickup.Client, taskOpts ...clickup.ListTasksOption) Source {
	return &clientSource{client: client, opts: taskOpts}
}

func (s *clientSource) Spaces(ctx context.Context, workspaceID string) ([]clickup.Space, error) {
	return s.client.Spaces.List(ctx, workspaceID)
}

func (s *clientSource) Folders(ctx context.Context, spaceID string) ([]clickup.Folder, error) {
	return s.client.Folders.List(ctx, spaceID)
}

func (s *clientSource) Lists(ctx context.Context, folderID string) ([]clickup.List, error) {
	return s.client.Lists.List(ctx, folderID)
}

func (s *clientSource) FolderlessLists(ctx context.Context, spaceID string) ([]clickup.List, error) {
	return s.client.Lists.ListFolderless(ctx, spaceID)
}

func (s *clientSource) Tasks(ctx context.Context, listID string, page int) (*clickup.TasksResponse, error) {
	opts := make([]clickup.ListTasksOption, 0, len(s.opts)+1)
	opts = append(opts, s.opts...)
	opts = append(opts, clickup.WithPage(page))
	return s.client.Tasks.List(ctx, listID, opts...)
}
