package clickup

// Workspace is a ClickUp workspace. The API calls workspaces teams.
type Workspace struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Color  *string `json:"color,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}

// WorkspacesResponse is the body of GET /team.
type WorkspacesResponse struct {
	Teams []Workspace `json:"teams"`
}

// Space is a top-level container inside a workspace.
type Space struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Private        bool    `json:"private"`
	Color          *string `json:"color,omitempty"`
	Avatar         *string `json:"avatar,omitempty"`
	AdminCanManage *bool   `json:"admin_can_manage,omitempty"`
	Archived       bool    `json:"archived"`
}

// SpacesResponse is the body of GET /team/{id}/space.
type SpacesResponse struct {
	Spaces []Space `json:"spaces"`
}

// Folder groups lists inside a space.
type Folder struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	OrderIndex       int            `json:"orderindex"`
	OverrideStatuses bool           `json:"override_statuses"`
	Hidden           bool           `json:"hidden"`
	Space            SpaceReference `json:"space"`
	TaskCount        string         `json:"task_count"`
	Archived         bool           `json:"archived"`
	Lists            []List         `json:"lists,omitempty"`
}

// FoldersResponse is the body of GET /space/{id}/folder.
type FoldersResponse struct {
	Folders []Folder `json:"folders"`
}

// List holds tasks. It lives in a folder or directly in a space.
type List struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	OrderIndex       int              `json:"orderindex"`
	Content          *string          `json:"content,omitempty"`
	Status           *Status          `json:"status,omitempty"`
	Priority         *Priority        `json:"priority,omitempty"`
	Assignee         interface{}      `json:"assignee,omitempty"`
	TaskCount        *int             `json:"task_count,omitempty"`
	DueDate          *string          `json:"due_date,omitempty"`
	StartDate        *string          `json:"start_date,omitempty"`
	Folder           *FolderReference `json:"folder,omitempty"`
	Space            SpaceReference   `json:"space"`
	Archived         bool             `json:"archived"`
	OverrideStatuses *bool            `json:"override_statuses,omitempty"`
	PermissionLevel  *string          `json:"permission_level,omitempty"`
}

// ListsResponse is the body of GET /folder/{id}/list and GET /space/{id}/list.
type ListsResponse struct {
	Lists []List `json:"lists"`
}

// Task is a unit of work inside a list.
type Task struct {
	ID              string            `json:"id"`
	CustomID        *string           `json:"custom_id,omitempty"`
	Name            string            `json:"name"`
	TextContent     *string           `json:"text_content,omitempty"`
	Description     *string           `json:"description,omitempty"`
	Status          *Status           `json:"status,omitempty"`
	OrderIndex      *string           `json:"orderindex,omitempty"`
	DateCreated     *string           `json:"date_created,omitempty"`
	DateUpdated     *string           `json:"date_updated,omitempty"`
	DateClosed      *string           `json:"date_closed,omitempty"`
	Archived        bool              `json:"archived"`
	Creator         *User             `json:"creator,omitempty"`
	Assignees       []User            `json:"assignees"`
	Watchers        []User            `json:"watchers"`
	Checklists      []interface{}     `json:"checklists"`
	Tags            []Tag             `json:"tags"`
	Parent          *string           `json:"parent,omitempty"`
	Priority        *Priority         `json:"priority,omitempty"`
	DueDate         *string           `json:"due_date,omitempty"`
	StartDate       *string           `json:"start_date,omitempty"`
	Points          *float64          `json:"points,omitempty"`
	TimeEstimate    *int64            `json:"time_estimate,omitempty"`
	TimeSpent       *int64            `json:"time_spent,omitempty"`
	CustomFields    []TaskCustomField `json:"custom_fields"`
	Dependencies    []interface{}     `json:"dependencies"`
	LinkedTasks     []interface{}     `json:"linked_tasks"`
	TeamID          *string           `json:"team_id,omitempty"`
	URL             *string           `json:"url,omitempty"`
	PermissionLevel *string           `json:"permission_level,omitempty"`
	List            *ListReference    `json:"list,omitempty"`
	Project         *ProjectReference `json:"project,omitempty"`
	Folder          *FolderReference  `json:"folder,omitempty"`
	Space           *SpaceReference   `json:"space,omitempty"`
}

// TasksResponse is the body of GET /list/{id}/task.
type TasksResponse struct {
	Tasks    []Task `json:"tasks"`
	LastPage bool   `json:"last_page"`
}

// User is a workspace member.
type User struct {
	ID             int64   `json:"id"`
	Username       string  `json:"username"`
	Email          *string `json:"email,omitempty"`
	Color          *string `json:"color,omitempty"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
	Initials       *string `json:"initials,omitempty"`
}

// Tag is a label attached to a task.
type Tag struct {
	Name    string  `json:"name"`
	TagFg   *string `json:"tag_fg,omitempty"`
	TagBg   *string `json:"tag_bg,omitempty"`
	Creator *int64  `json:"creator,omitempty"`
}

// Status is a workflow state of a task or list.
type Status struct {
	ID         *string `json:"id,omitempty"`
	Status     string  `json:"status"`
	Color      *string `json:"color,omitempty"`
	OrderIndex *int    `json:"orderindex,omitempty"`
	Type       *string `json:"type,omitempty"`
}

// Priority is a task or list priority. ClickUp uses 1 (urgent) to 4 (low).
type Priority struct {
	ID         *string `json:"id,omitempty"`
	Priority   string  `json:"priority"`
	Color      *string `json:"color,omitempty"`
	OrderIndex *string `json:"orderindex,omitempty"`
}

// SpaceReference identifies the space an entity belongs to.
type SpaceReference struct {
	ID     string `json:"id"`
	Name   string `json:"name,omitempty"`
	Access bool   `json:"access"`
}

// FolderReference identifies the folder an entity belongs to.
type FolderReference struct {
	ID     string `json:"id"`
	Name   string `json:"name,omitempty"`
	Hidden bool   `json:"hidden"`
	Access bool   `json:"access"`
}

// ListReference identifies the list a task belongs to.
type ListReference struct {
	ID     string `json:"id"`
	Name   string `json:"name,omitempty"`
	Access bool   `json:"access"`
}

// ProjectReference is the legacy name ClickUp uses for a folder on tasks.
type ProjectReference struct {
	ID     string `json:"id"`
	Name   string `json:"name,omitempty"`
	Hidden bool   `json:"hidden"`
	Access bool   `json:"access"`
}

// CustomFieldDefinition describes a custom field available on a list.
type CustomFieldDefinition struct {
	ID             string                 `json:"id"`
	Name           string                 `json:"name"`
	Type           string                 `json:"type"`
	TypeConfig     *CustomFieldTypeConfig `json:"type_config,omitempty"`
	DateCreated    *string                `json:"date_created,omitempty"`
	HideFromGuests bool                   `json:"hide_from_guests"`
	Required       bool                   `json:"required"`
}

// CustomFieldTypeConfig holds type-specific settings of a custom field.
type CustomFieldTypeConfig struct {
	Default     *int                `json:"default,omitempty"`
	Placeholder *string             `json:"placeholder,omitempty"`
	Options     []CustomFieldOption `json:"options,omitempty"`
}

// CustomFieldOption is one choice of a dropdown or label field.
type CustomFieldOption struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Value      *string `json:"value,omitempty"`
	Color      *string `json:"color,omitempty"`
	OrderIndex int     `json:"orderindex"`
}

// CustomFieldsResponse is the body of GET /list/{id}/field.
type CustomFieldsResponse struct {
	Fields []CustomFieldDefinition `json:"fields"`
}

// TaskCustomField is a custom field as it appears on a task, with its value.
// TypeConfig and Value are left undecoded since their shape depends on Type.
type TaskCustomField struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Type           string      `json:"type"`
	TypeConfig     interface{} `json:"type_config,omitempty"`
	DateCreated    *string     `json:"date_created,omitempty"`
	HideFromGuests bool        `json:"hide_from_guests"`
	Value          interface{} `json:"value,omitempty"`
	Required       bool        `json:"required"`
}
