package store

import (
	"strconv"
	"strings"

	"github.com/modelingevolution/clickup/internal/domain"
	"github.com/modelingevolution/clickup/pkg/clickup"
)

// Spaces returns the spaces of a workspace. Archived spaces are only
// included when archived is true.
func (s *Store) Spaces(teamID string, archived bool) ([]clickup.Space, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.teams[teamID]; !ok {
		return nil, domain.NewTeamNotFoundError(teamID)
	}

	var records []*spaceRecord
	for _, r := range s.spaces {
		if r.teamID == teamID && (archived || !r.space.Archived) {
			records = append(records, r)
		}
	}
	out := make([]clickup.Space, 0, len(records))
	for _, r := range sortedBySeq(records, func(r *spaceRecord) int { return r.seq }) {
		out = append(out, r.space)
	}
	return out, nil
}

// Space returns a space by ID.
func (s *Store) Space(id string) (clickup.Space, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.spaces[id]
	if !ok {
		return clickup.Space{}, domain.NewSpaceNotFoundError(id)
	}
	return r.space, nil
}

// CreateSpace adds a space to a workspace.
func (s *Store) CreateSpace(teamID string, req clickup.CreateSpaceRequest) (clickup.Space, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.teams[teamID]; !ok {
		return clickup.Space{}, domain.NewTeamNotFoundError(teamID)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return clickup.Space{}, domain.NewValidationError("Space name invalid")
	}
	for _, r := range s.spaces {
		if r.teamID == teamID && strings.EqualFold(r.space.Name, name) {
			return clickup.Space{}, domain.NewValidationError("Space with this name already exists")
		}
	}

	space := clickup.Space{ID: s.ids.Next(), Name: name, AdminCanManage: clickup.Bool(true)}
	s.spaces[space.ID] = &spaceRecord{record: s.nextRecord(), teamID: teamID, space: space}
	return space, nil
}

// UpdateSpace applies the non-nil fields of req.
func (s *Store) UpdateSpace(id string, req clickup.UpdateSpaceRequest) (clickup.Space, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.spaces[id]
	if !ok {
		return clickup.Space{}, domain.NewSpaceNotFoundError(id)
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return clickup.Space{}, domain.NewValidationError("Space name invalid")
		}
		r.space.Name = name
	}
	if req.Color != nil {
		r.space.Color = clickup.String(*req.Color)
	}
	if req.Private != nil {
		r.space.Private = *req.Private
	}
	if req.AdminCanManage != nil {
		r.space.AdminCanManage = clickup.Bool(*req.AdminCanManage)
	}
	return r.space, nil
}

// ArchiveSpace marks a space as archived.
func (s *Store) ArchiveSpace(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.spaces[id]
	if !ok {
		return domain.NewSpaceNotFoundError(id)
	}
	r.space.Archived = true
	return nil
}

// DeleteSpace removes a space with its folders, lists and tasks.
func (s *Store) DeleteSpace(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.spaces[id]; !ok {
		return domain.NewSpaceNotFoundError(id)
	}
	for folderID, f := range s.folders {
		if f.spaceID == id {
			s.deleteFolder(folderID)
		}
	}
	for listID, l := range s.lists {
		if l.spaceID == id {
			s.deleteList(listID)
		}
	}
	delete(s.spaces, id)
	return nil
}

// Folders returns the folders of a space with their lists.
func (s *Store) Folders(spaceID string) ([]clickup.Folder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.spaces[spaceID]; !ok {
		return nil, domain.NewSpaceNotFoundError(spaceID)
	}

	var records []*folderRecord
	for _, r := range s.folders {
		if r.spaceID == spaceID {
			records = append(records, r)
		}
	}
	out := make([]clickup.Folder, 0, len(records))
	for _, r := range sortedBySeq(records, func(r *folderRecord) int { return r.seq }) {
		out = append(out, s.folderView(r))
	}
	return out, nil
}

// Folder returns a folder by ID.
func (s *Store) Folder(id string) (clickup.Folder, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.folders[id]
	if !ok {
		return clickup.Folder{}, domain.NewFolderNotFoundError(id)
	}
	return s.folderView(r), nil
}

// CreateFolder adds a folder to a space.
func (s *Store) CreateFolder(spaceID string, req clickup.CreateFolderRequest) (clickup.Folder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	space, ok := s.spaces[spaceID]
	if !ok {
		return clickup.Folder{}, domain.NewSpaceNotFoundError(spaceID)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return clickup.Folder{}, domain.NewValidationError("Folder name invalid")
	}

	index := 0
	for _, f := range s.folders {
		if f.spaceID == spaceID {
			index++
		}
	}
	folder := clickup.Folder{
		ID:         s.ids.Next(),
		Name:       name,
		OrderIndex: index,
		Space:      clickup.SpaceReference{ID: spaceID, Name: space.space.Name, Access: true},
	}
	r := &folderRecord{record: s.nextRecord(), spaceID: spaceID, folder: folder}
	s.folders[folder.ID] = r
	return s.folderView(r), nil
}

// UpdateFolder renames a folder.
func (s *Store) UpdateFolder(id string, req clickup.UpdateFolderRequest) (clickup.Folder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.folders[id]
	if !ok {
		return clickup.Folder{}, domain.NewFolderNotFoundError(id)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return clickup.Folder{}, domain.NewValidationError("Folder name invalid")
	}
	r.folder.Name = name
	return s.folderView(r), nil
}

// DeleteFolder removes a folder with its lists and tasks.
func (s *Store) DeleteFolder(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.folders[id]; !ok {
		return domain.NewFolderNotFoundError(id)
	}
	s.deleteFolder(id)
	return nil
}

func (s *Store) deleteFolder(id string) {
	for listID, l := range s.lists {
		if l.folderID == id {
			s.deleteList(listID)
		}
	}
	delete(s.folders, id)
}

// folderView renders a folder with its lists and its task count.
func (s *Store) folderView(r *folderRecord) clickup.Folder {
	folder := r.folder
	folder.Space.Name = s.spaces[r.spaceID].space.Name
	folder.Lists = s.listsWhere(func(l *listRecord) bool { return l.folderID == r.folder.ID })

	total := 0
	for _, l := range folder.Lists {
		total += *l.TaskCount
	}
	folder.TaskCount = strconv.Itoa(total)
	return folder
}

// Lists returns the lists of a folder.
func (s *Store) Lists(folderID string) ([]clickup.List, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.folders[folderID]; !ok {
		return nil, domain.NewFolderNotFoundError(folderID)
	}
	return s.listsWhere(func(l *listRecord) bool { return l.folderID == folderID }), nil
}

// FolderlessLists returns the lists that live directly in a space.
func (s *Store) FolderlessLists(spaceID string) ([]clickup.List, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.spaces[spaceID]; !ok {
		return nil, domain.NewSpaceNotFoundError(spaceID)
	}
	return s.listsWhere(func(l *listRecord) bool {
		return l.spaceID == spaceID && l.folderID == ""
	}), nil
}

func (s *Store) listsWhere(match func(*listRecord) bool) []clickup.List {
	var records []*listRecord
	for _, r := range s.lists {
		if match(r) {
			records = append(records, r)
		}
	}
	out := make([]clickup.List, 0, len(records))
	for _, r := range sortedBySeq(records, func(r *listRecord) int { return r.seq }) {
		out = append(out, s.listView(r))
	}
	return out
}

// List returns a list by ID.
func (s *Store) List(id string) (clickup.List, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.lists[id]
	if !ok {
		return clickup.List{}, domain.NewListNotFoundError(id)
	}
	return s.listView(r), nil
}

// CreateListInFolder adds a list to a folder.
func (s *Store) CreateListInFolder(folderID string, req clickup.CreateListRequest) (clickup.List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	folder, ok := s.folders[folderID]
	if !ok {
		return clickup.List{}, domain.NewFolderNotFoundError(folderID)
	}
	return s.createList(folder.spaceID, folderID, req)
}

// CreateListInSpace adds a folderless list to a space.
func (s *Store) CreateListInSpace(spaceID string, req clickup.CreateListRequest) (clickup.List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.spaces[spaceID]; !ok {
		return clickup.List{}, domain.NewSpaceNotFoundError(spaceID)
	}
	return s.createList(spaceID, "", req)
}

func (s *Store) createList(spaceID, folderID string, req clickup.CreateListRequest) (clickup.List, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return clickup.List{}, domain.NewValidationError("List name invalid")
	}
	pr, err := priority(req.Priority)
	if err != nil {
		return clickup.List{}, err
	}

	index := 0
	for _, l := range s.lists {
		if l.spaceID == spaceID && l.folderID == folderID {
			index++
		}
	}
	list := clickup.List{
		ID:         s.ids.Next(),
		Name:       name,
		OrderIndex: index,
		Content:    req.Content,
		Priority:   pr,
		DueDate:    millisString(req.DueDate),
	}
	if req.Status != nil {
		list.Status = &clickup.Status{Status: *req.Status}
	}
	if req.Assignee != nil {
		user, ok := s.users[*req.Assignee]
		if !ok {
			return clickup.List{}, domain.NewValidationError("Assignee " + strconv.FormatInt(*req.Assignee, 10) + " not found")
		}
		list.Assignee = user
	}

	r := &listRecord{record: s.nextRecord(), spaceID: spaceID, folderID: folderID, list: list}
	s.lists[list.ID] = r
	return s.listView(r), nil
}

// UpdateList applies the non-nil fields of req.
func (s *Store) UpdateList(id string, req clickup.UpdateListRequest) (clickup.List, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.lists[id]
	if !ok {
		return clickup.List{}, domain.NewListNotFoundError(id)
	}

	updated := r.list
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return clickup.List{}, domain.NewValidationError("List name invalid")
		}
		updated.Name = name
	}
	if req.Content != nil {
		updated.Content = clickup.String(*req.Content)
	}
	if req.DueDate != nil {
		updated.DueDate = millisString(req.DueDate)
	}
	if req.Priority != nil {
		pr, err := priority(req.Priority)
		if err != nil {
			return clickup.List{}, err
		}
		updated.Priority = pr
	}
	if req.Assignee != nil {
		if len(req.Assignee.Rem) > 0 {
			updated.Assignee = nil
		}
		for _, userID := range req.Assignee.Add {
			user, ok := s.users[userID]
			if !ok {
				return clickup.List{}, domain.NewValidationError("Assignee " + strconv.FormatInt(userID, 10) + " not found")
			}
			updated.Assignee = user
		}
	}
	if req.UnsetStatus != nil && *req.UnsetStatus {
		updated.Status = nil
	}

	r.list = updated
	return s.listView(r), nil
}

// DeleteList removes a list with its tasks and custom fields.
func (s *Store) DeleteList(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.lists[id]; !ok {
		return domain.NewListNotFoundError(id)
	}
	s.deleteList(id)
	return nil
}

func (s *Store) deleteList(id string) {
	for taskID, t := range s.tasks {
		if t.listID == id {
			delete(s.tasks, taskID)
		}
	}
	for fieldID, f := range s.fields {
		if f.listID == id {
			delete(s.fields, fieldID)
		}
	}
	delete(s.lists, id)
}

// listView renders a list with its parent references and live task count.
func (s *Store) listView(r *listRecord) clickup.List {
	list := r.list

	count := 0
	for _, t := range s.tasks {
		if t.listID == r.list.ID && !t.task.Archived {
			count++
		}
	}
	list.TaskCount = clickup.Int(count)

	space := s.spaces[r.spaceID]
	list.Space = clickup.SpaceReference{ID: r.spaceID, Name: space.space.Name, Access: true}
	if folder, ok := s.folders[r.folderID]; ok {
		list.Folder = &clickup.FolderReference{ID: r.folderID, Name: folder.folder.Name, Access: true}
	}
	list.PermissionLevel = clickup.String("create")
	return list
}
