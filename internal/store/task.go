package store

import (
	"fmt"
	"sort"
	"strings"

	"github.com/modelingevolution/clickup/internal/domain"
	"github.com/modelingevolution/clickup/pkg/clickup"
	"github.com/modelingevolution/clickup/pkg/idgen"
)

// TaskFilter selects and orders the tasks of a list.
type TaskFilter struct {
	Page          int
	Archived      bool
	IncludeClosed bool
	Subtasks      bool
	Statuses      []string
	Assignees     []int64
	// OrderBy is one of "created" (default), "updated", "id" or "due_date".
	OrderBy string
	Reverse bool
}

// Tasks returns one page of the tasks of a list.
func (s *Store) Tasks(listID string, filter TaskFilter) (clickup.TasksResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.lists[listID]; !ok {
		return clickup.TasksResponse{}, domain.NewListNotFoundError(listID)
	}
	if filter.Page < 0 {
		return clickup.TasksResponse{}, domain.NewValidationError("Page must be greater than or equal to 0")
	}

	var matched []*taskRecord
	for _, r := range s.tasks {
		if r.listID == listID && filter.matches(r) {
			matched = append(matched, r)
		}
	}
	sortTasks(matched, filter.OrderBy, filter.Reverse)

	// Pages past the end are empty; checking first keeps the multiplication
	// below from overflowing.
	if filter.Page > len(matched)/TasksPerPage {
		return clickup.TasksResponse{Tasks: []clickup.Task{}, LastPage: true}, nil
	}

	start := filter.Page * TasksPerPage
	end := start + TasksPerPage
	if start > len(matched) {
		start = len(matched)
	}
	if end > len(matched) {
		end = len(matched)
	}

	resp := clickup.TasksResponse{
		Tasks:    make([]clickup.Task, 0, end-start),
		LastPage: end >= len(matched),
	}
	for _, r := range matched[start:end] {
		resp.Tasks = append(resp.Tasks, s.taskView(r))
	}
	return resp, nil
}

func (f TaskFilter) matches(r *taskRecord) bool {
	if r.task.Archived && !f.Archived {
		return false
	}
	if r.task.Parent != nil && !f.Subtasks {
		return false
	}
	if isClosed(r.task.Status) && !f.IncludeClosed {
		return false
	}
	if len(f.Statuses) > 0 {
		found := false
		for _, st := range f.Statuses {
			if strings.EqualFold(st, r.task.Status.Status) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if len(f.Assignees) > 0 {
		found := false
		for _, want := range f.Assignees {
			for _, have := range r.assignees {
				if want == have {
					found = true
				}
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func isClosed(st *clickup.Status) bool {
	return st != nil && st.Type != nil && *st.Type == "closed"
}

func sortTasks(tasks []*taskRecord, orderBy string, reverse bool) {
	key := func(r *taskRecord) string {
		switch orderBy {
		case "updated":
			return fmt.Sprintf("%020s", deref(r.task.DateUpdated))
		case "id":
			return r.task.ID
		case "due_date":
			return fmt.Sprintf("%020s", deref(r.task.DueDate))
		}
		return ""
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if reverse {
			a, b = b, a
		}
		if ka, kb := key(a), key(b); ka != kb {
			return ka < kb
		}
		return a.seq < b.seq
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Task returns a task by ID.
func (s *Store) Task(id string) (clickup.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.tasks[id]
	if !ok {
		return clickup.Task{}, domain.NewTaskNotFoundError(id)
	}
	return s.taskView(r), nil
}

// CreateTask adds a task to a list.
func (s *Store) CreateTask(listID string, req clickup.CreateTaskRequest) (clickup.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lists[listID]; !ok {
		return clickup.Task{}, domain.NewListNotFoundError(listID)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return clickup.Task{}, domain.NewValidationError("Task name invalid")
	}

	st := DefaultStatuses[0]
	if req.Status != nil {
		found, err := findStatus(*req.Status)
		if err != nil {
			return clickup.Task{}, err
		}
		st = found
	}
	pr, err := priority(req.Priority)
	if err != nil {
		return clickup.Task{}, err
	}
	if err := s.checkUsers(req.Assignees); err != nil {
		return clickup.Task{}, err
	}
	if req.Parent != nil {
		parent, ok := s.tasks[*req.Parent]
		if !ok {
			return clickup.Task{}, domain.NewTaskNotFoundError(*req.Parent)
		}
		if parent.listID != listID {
			return clickup.Task{}, domain.NewValidationError("Parent task must be in the same list")
		}
	}

	values := make(map[string]interface{})
	for _, cf := range req.CustomFields {
		if err := s.checkField(listID, cf.ID, cf.Value); err != nil {
			return clickup.Task{}, err
		}
		values[cf.ID] = cf.Value
	}

	id, err := s.newTaskID()
	if err != nil {
		return clickup.Task{}, domain.NewInternalError(err)
	}
	now := s.timestamp()
	task := clickup.Task{
		ID:           id,
		Name:         name,
		Description:  req.Description,
		TextContent:  req.Description,
		Status:       &st,
		OrderIndex:   clickup.String(fmt.Sprintf("%d.00000000000000000000000000000000", s.seq+1)),
		DateCreated:  clickup.String(now),
		DateUpdated:  clickup.String(now),
		Parent:       req.Parent,
		Priority:     pr,
		DueDate:      millisString(req.DueDate),
		StartDate:    millisString(req.StartDate),
		TimeEstimate: req.TimeEstimate,
		URL:          clickup.String(TaskURLPrefix + id),
	}
	if isClosed(task.Status) {
		task.DateClosed = clickup.String(now)
	}

	r := &taskRecord{
		record:    s.nextRecord(),
		listID:    listID,
		task:      task,
		assignees: append([]int64(nil), req.Assignees...),
		tags:      append([]string(nil), req.Tags...),
		values:    values,
	}
	s.tasks[id] = r
	return s.taskView(r), nil
}

func (s *Store) newTaskID() (string, error) {
	for {
		id, err := idgen.TaskID()
		if err != nil {
			return "", err
		}
		if _, taken := s.tasks[id]; !taken {
			return id, nil
		}
	}
}

func findStatus(name string) (clickup.Status, error) {
	for _, st := range DefaultStatuses {
		if strings.EqualFold(st.Status, name) {
			return st, nil
		}
	}
	return clickup.Status{}, domain.NewValidationError(fmt.Sprintf("Status %q does not exist", name))
}

func (s *Store) checkUsers(ids []int64) error {
	for _, id := range ids {
		if _, ok := s.users[id]; !ok {
			return domain.NewValidationError(fmt.Sprintf("Assignee %d not found", id))
		}
	}
	return nil
}

// UpdateTask applies the non-nil fields of req.
func (s *Store) UpdateTask(id string, req clickup.UpdateTaskRequest) (clickup.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.tasks[id]
	if !ok {
		return clickup.Task{}, domain.NewTaskNotFoundError(id)
	}

	task := r.task
	assignees := r.assignees
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return clickup.Task{}, domain.NewValidationError("Task name invalid")
		}
		task.Name = name
	}
	if req.Description != nil {
		task.Description = clickup.String(*req.Description)
		task.TextContent = clickup.String(*req.Description)
	}
	if req.Status != nil {
		st, err := findStatus(*req.Status)
		if err != nil {
			return clickup.Task{}, err
		}
		task.Status = &st
		task.DateClosed = nil
		if isClosed(&st) {
			task.DateClosed = clickup.String(s.timestamp())
		}
	}
	if req.Priority != nil {
		pr, err := priority(req.Priority)
		if err != nil {
			return clickup.Task{}, err
		}
		task.Priority = pr
	}
	if req.DueDate != nil {
		task.DueDate = millisString(req.DueDate)
	}
	if req.StartDate != nil {
		task.StartDate = millisString(req.StartDate)
	}
	if req.TimeEstimate != nil {
		task.TimeEstimate = clickup.Int64(*req.TimeEstimate)
	}
	if req.Archived != nil {
		task.Archived = *req.Archived
	}
	if req.Assignees != nil {
		if err := s.checkUsers(req.Assignees.Add); err != nil {
			return clickup.Task{}, err
		}
		assignees = applyAssignees(assignees, req.Assignees)
	}

	task.DateUpdated = clickup.String(s.timestamp())
	r.task = task
	r.assignees = assignees
	return s.taskView(r), nil
}

func applyAssignees(current []int64, changes *clickup.AssigneeChanges) []int64 {
	removed := make(map[int64]bool, len(changes.Rem))
	for _, id := range changes.Rem {
		removed[id] = true
	}
	out := make([]int64, 0, len(current)+len(changes.Add))
	seen := make(map[int64]bool)
	for _, id := range append(append([]int64(nil), current...), changes.Add...) {
		if removed[id] || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// DeleteTask removes a task and its subtasks.
func (s *Store) DeleteTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return domain.NewTaskNotFoundError(id)
	}
	s.deleteTask(id)
	return nil
}

func (s *Store) deleteTask(id string) {
	delete(s.tasks, id)
	for childID, child := range s.tasks {
		if child.task.Parent != nil && *child.task.Parent == id {
			s.deleteTask(childID)
		}
	}
}

// taskView renders a task with its references, people and custom fields.
func (s *Store) taskView(r *taskRecord) clickup.Task {
	task := r.task

	list := s.lists[r.listID]
	space := s.spaces[list.spaceID]
	task.List = &clickup.ListReference{ID: list.list.ID, Name: list.list.Name, Access: true}
	task.Space = &clickup.SpaceReference{ID: space.space.ID}
	task.TeamID = clickup.String(space.teamID)
	if folder, ok := s.folders[list.folderID]; ok {
		task.Folder = &clickup.FolderReference{ID: folder.folder.ID, Name: folder.folder.Name, Access: true}
		task.Project = &clickup.ProjectReference{ID: folder.folder.ID, Name: folder.folder.Name, Access: true}
	}

	if owner, ok := s.users[s.owner]; ok {
		task.Creator = &owner
	}
	task.Assignees = make([]clickup.User, 0, len(r.assignees))
	for _, id := range r.assignees {
		task.Assignees = append(task.Assignees, s.users[id])
	}
	task.Watchers = []clickup.User{}
	task.Tags = make([]clickup.Tag, 0, len(r.tags))
	for _, name := range r.tags {
		task.Tags = append(task.Tags, clickup.Tag{Name: name})
	}
	task.Checklists = []interface{}{}
	task.Dependencies = []interface{}{}
	task.LinkedTasks = []interface{}{}
	task.CustomFields = s.taskFields(r)
	task.PermissionLevel = clickup.String("create")
	return task
}
