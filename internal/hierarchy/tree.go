package hierarchy

import (
	"fmt"
	"io"
	"strings"

	"github.com/modelingevolution/clickup/pkg/clickup"
)

// Tree is one walked workspace.
type Tree struct {
	WorkspaceID string `json:"workspace_id"`
	// WorkspaceName is not known to the walk; callers may fill it in.
	WorkspaceName string `json:"workspace_name,omitempty"`
	// WithTasks reports whether tasks were walked.
	WithTasks bool         `json:"with_tasks"`
	Spaces    []*SpaceNode `json:"spaces"`
}

// SpaceNode holds a space with its folders and folderless lists.
type SpaceNode struct {
	Space   clickup.Space `json:"space"`
	Folders []*FolderNode `json:"folders"`
	Lists   []*ListNode   `json:"lists"`
}

// FolderNode holds a folder with its lists.
type FolderNode struct {
	Folder clickup.Folder `json:"folder"`
	Lists  []*ListNode    `json:"lists"`
}

// ListNode holds a list and, when tasks were walked, its tasks.
type ListNode struct {
	List  clickup.List   `json:"list"`
	Tasks []clickup.Task `json:"tasks,omitempty"`
}

// Counts is the number of entities of each kind in a tree.
type Counts struct {
	Spaces  int `json:"spaces"`
	Folders int `json:"folders"`
	Lists   int `json:"lists"`
	Tasks   int `json:"tasks"`
}

// Counts returns per-kind entity counts.
func (t *Tree) Counts() Counts {
	var c Counts
	t.EachList(func(_ *SpaceNode, _ *FolderNode, l *ListNode) {
		c.Lists++
		c.Tasks += len(l.Tasks)
	})
	for _, s := range t.Spaces {
		c.Spaces++
		c.Folders += len(s.Folders)
	}
	return c
}

// EachList calls fn for every list in the tree. folder is nil for
// folderless lists.
func (t *Tree) EachList(fn func(space *SpaceNode, folder *FolderNode, list *ListNode)) {
	for _, s := range t.Spaces {
		for _, f := range s.Folders {
			for _, l := range f.Lists {
				fn(s, f, l)
			}
		}
		for _, l := range s.Lists {
			fn(s, nil, l)
		}
	}
}

// Print writes an indented outline of the tree.
func (t *Tree) Print(w io.Writer) error {
	p := &printer{w: w}

	p.line(0, "workspace %s", t.WorkspaceID)
	for _, s := range t.Spaces {
		p.line(1, "%s [space %s]%s", s.Space.Name, s.Space.ID, archivedMark(s.Space.Archived))
		for _, f := range s.Folders {
			p.line(2, "%s/ [folder %s]%s", f.Folder.Name, f.Folder.ID, archivedMark(f.Folder.Archived))
			for _, l := range f.Lists {
				p.list(3, l)
			}
		}
		for _, l := range s.Lists {
			p.list(2, l)
		}
	}

	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(depth int, format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, strings.Repeat("  ", depth)+format+"\n", args...)
}

func (p *printer) list(depth int, l *ListNode) {
	suffix := archivedMark(l.List.Archived)
	if len(l.Tasks) > 0 {
		suffix += fmt.Sprintf(" (%d tasks)", len(l.Tasks))
	}
	p.line(depth, "%s [list %s]%s", l.List.Name, l.List.ID, suffix)

	for _, task := range l.Tasks {
		status := ""
		if task.Status != nil {
			status = " (" + task.Status.Status + ")"
		}
		p.line(depth+1, "- %s [%s]%s", task.Name, task.ID, status)
	}
}

func archivedMark(archived bool) string {
	if archived {
		return " archived"
	}
	return ""
}
