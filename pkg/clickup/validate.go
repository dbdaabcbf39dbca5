package clickup

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// requireID checks that an identifier argument is not blank.
func requireID(param, value string) error {
	if err := validation.Validate(strings.TrimSpace(value), validation.Required); err != nil {
		return &ArgumentError{Param: param, Message: err.Error()}
	}
	return nil
}

// requireBody checks that a request body was supplied.
func requireBody[T any](param string, body *T) error {
	if body == nil {
		return &ArgumentError{Param: param, Message: "cannot be nil"}
	}
	return nil
}

// validator is implemented by request types with field-level rules.
type validator interface {
	Validate() error
}

// requireValid runs the request's own rules and reports failures as argument errors.
func requireValid(param string, v validator) error {
	if err := v.Validate(); err != nil {
		return &ArgumentError{Param: param, Message: err.Error()}
	}
	return nil
}
