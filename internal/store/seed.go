package store

import (
	"github.com/modelingevolution/clickup/pkg/clickup"
)

// Demo holds the IDs of the hierarchy created by SeedDemo.
type Demo struct {
	TeamID       string
	UserID       int64
	SpaceID      string
	OpsSpaceID   string
	FolderID     string
	ListID       string
	InboxID      string
	PointsField  string
	StageField   string
	TaskIDs      []string
	SubtaskID    string
	ClosedTaskID string
}

// SeedDemo fills the store with a small workspace:
//
//	Demo Workspace
//	  Engineering
//	    Roadmap/
//	      Sprint 1 (five tasks: one subtask, one closed)
//	    Inbox
//	  Operations
func (s *Store) SeedDemo() (*Demo, error) {
	d := &Demo{}
	d.TeamID = s.AddTeam("Demo Workspace").ID
	d.UserID = s.AddUser("Ada Lovelace", "ada@example.com").ID
	s.AddUser("Grace Hopper", "grace@example.com")

	space, err := s.CreateSpace(d.TeamID, clickup.CreateSpaceRequest{Name: "Engineering"})
	if err != nil {
		return nil, err
	}
	d.SpaceID = space.ID

	ops, err := s.CreateSpace(d.TeamID, clickup.CreateSpaceRequest{Name: "Operations"})
	if err != nil {
		return nil, err
	}
	d.OpsSpaceID = ops.ID

	folder, err := s.CreateFolder(d.SpaceID, clickup.CreateFolderRequest{Name: "Roadmap"})
	if err != nil {
		return nil, err
	}
	d.FolderID = folder.ID

	list, err := s.CreateListInFolder(d.FolderID, clickup.CreateListRequest{
		Name:    "Sprint 1",
		Content: clickup.String("First sprint"),
	})
	if err != nil {
		return nil, err
	}
	d.ListID = list.ID

	inbox, err := s.CreateListInSpace(d.SpaceID, clickup.CreateListRequest{Name: "Inbox"})
	if err != nil {
		return nil, err
	}
	d.InboxID = inbox.ID

	points, err := s.AddField(d.ListID, clickup.CustomFieldDefinition{Name: "Story Points", Type: "number"})
	if err != nil {
		return nil, err
	}
	d.PointsField = points.ID

	stage, err := s.AddField(d.ListID, clickup.CustomFieldDefinition{
		Name: "Release Stage",
		Type: "drop_down",
		TypeConfig: &clickup.CustomFieldTypeConfig{
			Options: []clickup.CustomFieldOption{
				{Name: "alpha", Color: clickup.String("#800000")},
				{Name: "beta", Color: clickup.String("#008000")},
				{Name: "ga", Color: clickup.String("#000080")},
			},
		},
	})
	if err != nil {
		return nil, err
	}
	d.StageField = stage.ID

	tasks := []clickup.CreateTaskRequest{
		{Name: "Design login page", Priority: clickup.Int(2), Assignees: []int64{d.UserID}, Tags: []string{"frontend"}},
		{Name: "Implement OAuth flow", Priority: clickup.Int(1), Status: clickup.String("in progress")},
		{Name: "Write release notes", Priority: clickup.Int(4)},
	}
	for _, req := range tasks {
		task, err := s.CreateTask(d.ListID, req)
		if err != nil {
			return nil, err
		}
		d.TaskIDs = append(d.TaskIDs, task.ID)
	}
	if err := s.SetFieldValue(d.TaskIDs[0], d.PointsField, float64(3)); err != nil {
		return nil, err
	}

	sub, err := s.CreateTask(d.ListID, clickup.CreateTaskRequest{Name: "Pick a color palette", Parent: clickup.String(d.TaskIDs[0])})
	if err != nil {
		return nil, err
	}
	d.SubtaskID = sub.ID

	closed, err := s.CreateTask(d.ListID, clickup.CreateTaskRequest{Name: "Set up CI", Status: clickup.String("complete")})
	if err != nil {
		return nil, err
	}
	d.ClosedTaskID = closed.ID

	if _, err := s.CreateTask(d.InboxID, clickup.CreateTaskRequest{Name: "Triage bug reports"}); err != nil {
		return nil, err
	}
	return d, nil
}
