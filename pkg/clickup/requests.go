package clickup

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateSpaceRequest is the body of POST /team/{id}/space.
type CreateSpaceRequest struct {
	Name              string         `json:"name"`
	MultipleAssignees *bool          `json:"multiple_assignees,omitempty"`
	Features          *SpaceFeatures `json:"features,omitempty"`
}

// Validate checks the request fields.
func (r CreateSpaceRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
	)
}

// UpdateSpaceRequest is the body of PUT /space/{id}. Nil fields are left unchanged.
type UpdateSpaceRequest struct {
	Name              *string        `json:"name,omitempty"`
	Color             *string        `json:"color,omitempty"`
	Private           *bool          `json:"private,omitempty"`
	AdminCanManage    *bool          `json:"admin_can_manage,omitempty"`
	MultipleAssignees *bool          `json:"multiple_assignees,omitempty"`
	Features          *SpaceFeatures `json:"features,omitempty"`
}

// SpaceFeatures toggles ClickApps on a space.
type SpaceFeatures struct {
	DueDates          *FeatureSetting `json:"due_dates,omitempty"`
	TimeTracking      *FeatureSetting `json:"time_tracking,omitempty"`
	Tags              *FeatureSetting `json:"tags,omitempty"`
	TimeEstimates     *FeatureSetting `json:"time_estimates,omitempty"`
	Checklists        *FeatureSetting `json:"checklists,omitempty"`
	CustomFields      *FeatureSetting `json:"custom_fields,omitempty"`
	RemapDependencies *FeatureSetting `json:"remap_dependencies,omitempty"`
	DependencyWarning *FeatureSetting `json:"dependency_warning,omitempty"`
	Portfolios        *FeatureSetting `json:"portfolios,omitempty"`
}

// FeatureSetting enables or disables a single feature.
type FeatureSetting struct {
	Enabled bool `json:"enabled"`
}

// CreateFolderRequest is the body of POST /space/{id}/folder.
type CreateFolderRequest struct {
	Name string `json:"name"`
}

// Validate checks the request fields.
func (r CreateFolderRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
	)
}

// UpdateFolderRequest is the body of PUT /folder/{id}.
type UpdateFolderRequest struct {
	Name string `json:"name"`
}

// CreateListRequest is the body of POST /folder/{id}/list and POST /space/{id}/list.
type CreateListRequest struct {
	Name        string  `json:"name"`
	Content     *string `json:"content,omitempty"`
	DueDate     *int64  `json:"due_date,omitempty"`
	DueDateTime *bool   `json:"due_date_time,omitempty"`
	Priority    *int    `json:"priority,omitempty"`
	Assignee    *int64  `json:"assignee,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// Validate checks the request fields.
func (r CreateListRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Priority, validation.NilOrNotEmpty, validation.Min(1), validation.Max(4)),
	)
}

// UpdateListRequest is the body of PUT /list/{id}.
type UpdateListRequest struct {
	Name        *string          `json:"name,omitempty"`
	Content     *string          `json:"content,omitempty"`
	DueDate     *int64           `json:"due_date,omitempty"`
	DueDateTime *bool            `json:"due_date_time,omitempty"`
	Priority    *int             `json:"priority,omitempty"`
	Assignee    *AssigneeChanges `json:"assignee,omitempty"`
	UnsetStatus *bool            `json:"unset_status,omitempty"`
}

// CreateTaskRequest is the body of POST /list/{id}/task.
type CreateTaskRequest struct {
	Name                      string             `json:"name"`
	Description               *string            `json:"description,omitempty"`
	Assignees                 []int64            `json:"assignees,omitempty"`
	Tags                      []string           `json:"tags,omitempty"`
	Status                    *string            `json:"status,omitempty"`
	Priority                  *int               `json:"priority,omitempty"`
	DueDate                   *int64             `json:"due_date,omitempty"`
	DueDateTime               *bool              `json:"due_date_time,omitempty"`
	TimeEstimate              *int64             `json:"time_estimate,omitempty"`
	StartDate                 *int64             `json:"start_date,omitempty"`
	StartDateTime             *bool              `json:"start_date_time,omitempty"`
	NotifyAll                 *bool              `json:"notify_all,omitempty"`
	Parent                    *string            `json:"parent,omitempty"`
	LinksTo                   *string            `json:"links_to,omitempty"`
	CheckRequiredCustomFields *bool              `json:"check_required_custom_fields,omitempty"`
	CustomFields              []CustomFieldValue `json:"custom_fields,omitempty"`
}

// Validate checks the request fields.
func (r CreateTaskRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Priority, validation.NilOrNotEmpty, validation.Min(1), validation.Max(4)),
	)
}

// CustomFieldValue sets a custom field while creating a task.
type CustomFieldValue struct {
	ID    string      `json:"id"`
	Value interface{} `json:"value"`
}

// UpdateTaskRequest is the body of PUT /task/{id}. Nil fields are left unchanged.
type UpdateTaskRequest struct {
	Name          *string          `json:"name,omitempty"`
	Description   *string          `json:"description,omitempty"`
	Status        *string          `json:"status,omitempty"`
	Priority      *int             `json:"priority,omitempty"`
	DueDate       *int64           `json:"due_date,omitempty"`
	DueDateTime   *bool            `json:"due_date_time,omitempty"`
	TimeEstimate  *int64           `json:"time_estimate,omitempty"`
	StartDate     *int64           `json:"start_date,omitempty"`
	StartDateTime *bool            `json:"start_date_time,omitempty"`
	Assignees     *AssigneeChanges `json:"assignees,omitempty"`
	Archived      *bool            `json:"archived,omitempty"`
}

// AssigneeChanges adds and removes assignees by user ID.
type AssigneeChanges struct {
	Add []int64 `json:"add,omitempty"`
	Rem []int64 `json:"rem,omitempty"`
}

// SetCustomFieldRequest is the body of POST /task/{id}/field/{field_id}.
type SetCustomFieldRequest struct {
	Value interface{} `json:"value"`
}

// String returns a pointer to s.
func String(s string) *string { return &s }

// Int returns a pointer to i.
func Int(i int) *int { return &i }

// Int64 returns a pointer to i.
func Int64(i int64) *int64 { return &i }

// Bool returns a pointer to b.
func Bool(b bool) *bool { return &b }
