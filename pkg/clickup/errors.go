package clickup

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// errEmptyBody is wrapped by a DecodeError when a typed result was expected
// but the response carried no body.
var errEmptyBody = errors.New("empty response body")

// ArgumentError is returned before any request is sent when an identifier
// argument is blank or a required request body is missing.
type ArgumentError struct {
	Param   string
	Message string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("invalid argument %s: %s", e.Param, e.Message)
}

// Error represents a non-success response from the ClickUp API.
type Error struct {
	StatusCode int
	Status     string
	Method     string
	Path       string

	// Code and Message are taken from the ClickUp error body
	// ({"err": "...", "ECODE": "..."}) when it is present.
	Code    string
	Message string

	// Body is the raw response body.
	Body string
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	if e.Code != "" {
		return fmt.Sprintf("clickup: %s %s: %d %s (%s)", e.Method, e.Path, e.StatusCode, msg, e.Code)
	}
	return fmt.Sprintf("clickup: %s %s: %d %s", e.Method, e.Path, e.StatusCode, msg)
}

// DecodeError is returned when a successful response body cannot be
// decoded into the expected result type.
type DecodeError struct {
	Path   string
	Target string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s response into %s: %v", e.Path, e.Target, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// apiErrorResponse is the JSON structure ClickUp uses for error bodies.
type apiErrorResponse struct {
	Err   string `json:"err"`
	ECode string `json:"ECODE"`
}

// parseErrorResponse builds an *Error from a non-success response.
func parseErrorResponse(method, path string, resp *http.Response, body []byte) error {
	apiErr := &Error{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Method:     method,
		Path:       path,
		Body:       string(body),
	}

	var parsed apiErrorResponse
	if err := json.Unmarshal(body, &parsed); err == nil {
		apiErr.Code = parsed.ECode
		apiErr.Message = parsed.Err
	}

	return apiErr
}

// IsArgumentError returns true if the error was raised by argument validation.
func IsArgumentError(err error) bool {
	var argErr *ArgumentError
	return errors.As(err, &argErr)
}

// IsDecodeError returns true if the error indicates a response body could not be decoded.
func IsDecodeError(err error) bool {
	var decErr *DecodeError
	return errors.As(err, &decErr)
}

// IsNotFound returns true if the API answered 404.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsUnauthorized returns true if the API rejected the credentials (401 or 403).
func IsUnauthorized(err error) bool {
	code := StatusCode(err)
	return code == http.StatusUnauthorized || code == http.StatusForbidden
}

// StatusCode returns the HTTP status carried by an API error, or 0 if the
// error did not come from an API response.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// ErrorCode returns the ClickUp ECODE carried by an API error, if any.
func ErrorCode(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}
	return ""
}
