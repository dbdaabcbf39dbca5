// Package domain holds the errors the sandbox API reports, in the shape
// ClickUp uses: {"err": "...", "ECODE": "..."}.
package domain

import "fmt"

// ErrorCode is a ClickUp ECODE.
type ErrorCode string

const (
	ErrCodeTokenInvalid     ErrorCode = "OAUTH_025"
	ErrCodeTeamNotFound     ErrorCode = "TEAM_NOT_FOUND"
	ErrCodeSpaceNotFound    ErrorCode = "SPACE_NOT_FOUND"
	ErrCodeFolderNotFound   ErrorCode = "FOLDER_NOT_FOUND"
	ErrCodeListNotFound     ErrorCode = "LIST_NOT_FOUND"
	ErrCodeTaskNotFound     ErrorCode = "TASK_NOT_FOUND"
	ErrCodeFieldNotFound    ErrorCode = "FIELD_NOT_FOUND"
	ErrCodeInputInvalid     ErrorCode = "INPUT_INVALID"
	ErrCodeRouteNotFound    ErrorCode = "APP_001"
	ErrCodeInternalError    ErrorCode = "INTERNAL_ERROR"
	ErrCodeMethodNotAllowed ErrorCode = "APP_002"
)

// DomainError is an error reported to API clients.
type DomainError struct {
	Code    ErrorCode
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func notFound(code ErrorCode, kind, id string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: fmt.Sprintf("%s %s not found", kind, id),
	}
}

// NewTeamNotFoundError creates a workspace not found error.
func NewTeamNotFoundError(id string) *DomainError {
	return notFound(ErrCodeTeamNotFound, "Team", id)
}

// NewSpaceNotFoundError creates a space not found error.
func NewSpaceNotFoundError(id string) *DomainError {
	return notFound(ErrCodeSpaceNotFound, "Space", id)
}

// NewFolderNotFoundError creates a folder not found error.
func NewFolderNotFoundError(id string) *DomainError {
	return notFound(ErrCodeFolderNotFound, "Folder", id)
}

// NewListNotFoundError creates a list not found error.
func NewListNotFoundError(id string) *DomainError {
	return notFound(ErrCodeListNotFound, "List", id)
}

// NewTaskNotFoundError creates a task not found error.
func NewTaskNotFoundError(id string) *DomainError {
	return notFound(ErrCodeTaskNotFound, "Task", id)
}

// NewFieldNotFoundError creates a custom field not found error.
func NewFieldNotFoundError(id string) *DomainError {
	return notFound(ErrCodeFieldNotFound, "Custom field", id)
}

// NewValidationError creates an invalid input error.
func NewValidationError(message string) *DomainError {
	return &DomainError{
		Code:    ErrCodeInputInvalid,
		Message: message,
	}
}

// NewTokenInvalidError creates an authentication error.
func NewTokenInvalidError() *DomainError {
	return &DomainError{
		Code:    ErrCodeTokenInvalid,
		Message: "Token invalid",
	}
}

// NewRouteNotFoundError is returned for paths the sandbox does not serve.
func NewRouteNotFoundError(method, path string) *DomainError {
	return &DomainError{
		Code:    ErrCodeRouteNotFound,
		Message: fmt.Sprintf("Route not found: %s %s", method, path),
	}
}

// NewMethodNotAllowedError is returned for a known path with the wrong method.
func NewMethodNotAllowedError(method, path string) *DomainError {
	return &DomainError{
		Code:    ErrCodeMethodNotAllowed,
		Message: fmt.Sprintf("Method %s not allowed on %s", method, path),
	}
}

// NewInternalError creates an internal error. The cause is not exposed.
func NewInternalError(err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeInternalError,
		Message: "An internal error occurred",
	}
}
