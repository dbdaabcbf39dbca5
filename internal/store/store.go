// Package store is the in-memory data model behind the sandbox API. It keeps
// workspaces, spaces, folders, lists, tasks and custom fields in maps and
// renders them as the ClickUp API types.
package store

import (
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/modelingevolution/clickup/internal/domain"
	"github.com/modelingevolution/clickup/pkg/clickup"
	"github.com/modelingevolution/clickup/pkg/idgen"
)

// TasksPerPage is the page size of task listings.
const TasksPerPage = 100

// TaskURLPrefix is prepended to task IDs to build task URLs.
const TaskURLPrefix = "https://app.clickup.com/t/"

// DefaultStatuses are the statuses every list starts with. The first one is
// given to new tasks.
var DefaultStatuses = []clickup.Status{
	status("to do", "open", "#d3d3d3", 0),
	status("in progress", "custom", "#4194f6", 1),
	status("complete", "closed", "#6bc950", 2),
}

func status(name, kind, color string, index int) clickup.Status {
	return clickup.Status{
		ID:         clickup.String("sc_" + strconv.Itoa(index)),
		Status:     name,
		Color:      clickup.String(color),
		OrderIndex: clickup.Int(index),
		Type:       clickup.String(kind),
	}
}

var priorities = map[int]clickup.Priority{
	1: {ID: clickup.String("1"), Priority: "urgent", Color: clickup.String("#f50000"), OrderIndex: clickup.String("1")},
	2: {ID: clickup.String("2"), Priority: "high", Color: clickup.String("#ffcc00"), OrderIndex: clickup.String("2")},
	3: {ID: clickup.String("3"), Priority: "normal", Color: clickup.String("#6fddff"), OrderIndex: clickup.String("3")},
	4: {ID: clickup.String("4"), Priority: "low", Color: clickup.String("#d8d8d8"), OrderIndex: clickup.String("4")},
}

func priority(p *int) (*clickup.Priority, error) {
	if p == nil {
		return nil, nil
	}
	pr, ok := priorities[*p]
	if !ok {
		return nil, domain.NewValidationError("Priority must be between 1 and 4")
	}
	return &pr, nil
}

type record struct {
	seq int
}

type teamRecord struct {
	record
	team clickup.Workspace
}

type spaceRecord struct {
	record
	teamID string
	space  clickup.Space
}

type folderRecord struct {
	record
	spaceID string
	folder  clickup.Folder
}

type listRecord struct {
	record
	spaceID  string
	folderID string
	list     clickup.List
}

type taskRecord struct {
	record
	listID    string
	task      clickup.Task
	assignees []int64
	tags      []string
	values    map[string]interface{}
}

type fieldRecord struct {
	record
	listID string
	field  clickup.CustomFieldDefinition
}

// Store is safe for concurrent use.
type Store struct {
	mu  sync.RWMutex
	ids *idgen.Sequence
	now func() time.Time
	seq int

	nextUser int64
	users    map[int64]clickup.User
	owner    int64

	teams   map[string]*teamRecord
	spaces  map[string]*spaceRecord
	folders map[string]*folderRecord
	lists   map[string]*listRecord
	tasks   map[string]*taskRecord
	fields  map[string]*fieldRecord
}

// New creates an empty store.
func New() *Store {
	return &Store{
		ids:      idgen.NewSequence(90000001),
		now:      time.Now,
		nextUser: 1001,
		users:    make(map[int64]clickup.User),
		teams:    make(map[string]*teamRecord),
		spaces:   make(map[string]*spaceRecord),
		folders:  make(map[string]*folderRecord),
		lists:    make(map[string]*listRecord),
		tasks:    make(map[string]*taskRecord),
		fields:   make(map[string]*fieldRecord),
	}
}

func (s *Store) nextRecord() record {
	s.seq++
	return record{seq: s.seq}
}

func (s *Store) timestamp() string {
	return strconv.FormatInt(clickup.Millis(s.now()), 10)
}

func millisString(ms *int64) *string {
	if ms == nil {
		return nil
	}
	return clickup.String(strconv.FormatInt(*ms, 10))
}

// sortedBySeq returns the values of m in insertion order.
func sortedBySeq[T any](items []T, seq func(T) int) []T {
	sort.Slice(items, func(i, j int) bool { return seq(items[i]) < seq(items[j]) })
	return items
}

// AddTeam creates a workspace.
func (s *Store) AddTeam(name string) clickup.Workspace {
	s.mu.Lock()
	defer s.mu.Unlock()

	team := clickup.Workspace{ID: s.ids.Next(), Name: name}
	s.teams[team.ID] = &teamRecord{record: s.nextRecord(), team: team}
	return team
}

// AddUser creates a workspace member. The first user becomes the creator of
// every task.
func (s *Store) AddUser(username, email string) clickup.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := clickup.User{
		ID:       s.nextUser,
		Username: username,
		Initials: clickup.String(initials(username)),
	}
	if email != "" {
		user.Email = clickup.String(email)
	}
	s.nextUser++
	s.users[user.ID] = user
	if s.owner == 0 {
		s.owner = user.ID
	}
	return user
}

func initials(name string) string {
	out := ""
	start := true
	for _, r := range name {
		if r == ' ' {
			start = true
			continue
		}
		if start && len(out) < 2 {
			out += string(r)
		}
		start = false
	}
	return out
}

// Teams returns every workspace.
func (s *Store) Teams() []clickup.Workspace {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]*teamRecord, 0, len(s.teams))
	for _, r := range s.teams {
		records = append(records, r)
	}
	out := make([]clickup.Workspace, 0, len(records))
	for _, r := range sortedBySeq(records, func(r *teamRecord) int { return r.seq }) {
		out = append(out, r.team)
	}
	return out
}
