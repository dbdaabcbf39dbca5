// Package hierarchy walks a ClickUp workspace into an in-memory tree of
// spaces, folders, lists and optionally tasks.
package hierarchy

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"

	"github.com/modelingevolution/clickup/pkg/clickup"
)

// DefaultMaxPages bounds task paging for a single list.
const DefaultMaxPages = 100

// Option configures a walk.
type Option func(*walkOptions)

type walkOptions struct {
	tasks    bool
	maxPages int
	logger   hclog.Logger
}

// WithTasks also fetches every page of tasks for each list.
func WithTasks() Option {
	return func(o *walkOptions) {
		o.tasks = true
	}
}

// WithMaxPages limits how many task pages are fetched per list.
func WithMaxPages(n int) Option {
	return func(o *walkOptions) {
		if n > 0 {
			o.maxPages = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger hclog.Logger) Option {
	return func(o *walkOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Walk builds the tree below workspaceID. A failure in one branch does not
// stop its siblings: the partial tree is returned together with every error
// encountered. Only a failure to list the spaces returns a nil tree.
func Walk(ctx context.Context, src Source, workspaceID string, opts ...Option) (*Tree, error) {
	o := &walkOptions{
		maxPages: DefaultMaxPages,
		logger:   hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(o)
	}
	w := &walker{src: src, opts: o, logger: o.logger.Named("hierarchy")}

	spaces, err := src.Spaces(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("spaces of workspace %s: %w", workspaceID, err)
	}

	tree := &Tree{WorkspaceID: workspaceID, WithTasks: o.tasks}
	for _, space := range spaces {
		if err := ctx.Err(); err != nil {
			w.errs = multierror.Append(w.errs, err)
			break
		}
		tree.Spaces = append(tree.Spaces, w.space(ctx, space))
	}

	counts := tree.Counts()
	w.logger.Info("walk complete",
		"workspace_id", workspaceID,
		"spaces", counts.Spaces,
		"folders", counts.Folders,
		"lists", counts.Lists,
		"tasks", counts.Tasks,
	)

	return tree, w.errs.ErrorOrNil()
}

type walker struct {
	src    Source
	opts   *walkOptions
	logger hclog.Logger
	errs   *multierror.Error
}

func (w *walker) fail(err error) {
	w.logger.Warn("branch failed", "error", err)
	w.errs = multierror.Append(w.errs, err)
}

func (w *walker) space(ctx context.Context, space clickup.Space) *SpaceNode {
	node := &SpaceNode{Space: space}

	folders, err := w.src.Folders(ctx, space.ID)
	if err != nil {
		w.fail(fmt.Errorf("folders of space %s: %w", space.ID, err))
	}
	for _, folder := range folders {
		fn := &FolderNode{Folder: folder}
		lists, err := w.src.Lists(ctx, folder.ID)
		if err != nil {
			w.fail(fmt.Errorf("lists of folder %s: %w", folder.ID, err))
		}
		for _, list := range lists {
			fn.Lists = append(fn.Lists, w.list(ctx, list))
		}
		node.Folders = append(node.Folders, fn)
	}

	lists, err := w.src.FolderlessLists(ctx, space.ID)
	if err != nil {
		w.fail(fmt.Errorf("folderless lists of space %s: %w", space.ID, err))
	}
	for _, list := range lists {
		node.Lists = append(node.Lists, w.list(ctx, list))
	}

	return node
}

func (w *walker) list(ctx context.Context, list clickup.List) *ListNode {
	node := &ListNode{List: list}
	if !w.opts.tasks {
		return node
	}

	for page := 0; page < w.opts.maxPages; page++ {
		resp, err := w.src.Tasks(ctx, list.ID, page)
		if err != nil {
			w.fail(fmt.Errorf("tasks of list %s page %d: %w", list.ID, page, err))
			return node
		}
		node.Tasks = append(node.Tasks, resp.Tasks...)
		if resp.LastPage || len(resp.Tasks) == 0 {
			return node
		}
	}

	w.logger.Warn("task paging stopped at page limit", "list_id", list.ID, "max_pages", w.opts.maxPages)
	return node
}
