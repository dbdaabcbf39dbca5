// Package request decodes and validates sandbox API request bodies and
// query parameters.
package request

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/modelingevolution/clickup/internal/domain"
	"github.com/modelingevolution/clickup/internal/store"
)

// DecodeJSON decodes JSON from the request body into v and validates it
// when v implements validation.Validatable. Failures are returned as
// domain validation errors.
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.NewValidationError("Invalid JSON body: " + err.Error())
	}
	if val, ok := v.(validation.Validatable); ok {
		if err := val.Validate(); err != nil {
			return domain.NewValidationError(err.Error())
		}
	}
	return nil
}

// TaskFilter parses the query parameters of GET /list/{id}/task.
func TaskFilter(query url.Values) (store.TaskFilter, error) {
	var f store.TaskFilter
	var err error

	if f.Page, err = intParam(query, "page"); err != nil {
		return f, err
	}
	if f.Archived, err = boolParam(query, "archived"); err != nil {
		return f, err
	}
	if f.IncludeClosed, err = boolParam(query, "include_closed"); err != nil {
		return f, err
	}
	if f.Subtasks, err = boolParam(query, "subtasks"); err != nil {
		return f, err
	}
	if f.Reverse, err = boolParam(query, "reverse"); err != nil {
		return f, err
	}

	f.Statuses = query["statuses[]"]
	for _, raw := range query["assignees[]"] {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return f, domain.NewValidationError(fmt.Sprintf("Invalid assignee %q", raw))
		}
		f.Assignees = append(f.Assignees, id)
	}

	f.OrderBy = query.Get("order_by")
	err = validation.Validate(f.OrderBy, validation.In("created", "updated", "id", "due_date"))
	if err != nil {
		return f, domain.NewValidationError("order_by: " + err.Error())
	}
	return f, nil
}

// Archived parses the archived flag of GET /team/{id}/space.
func Archived(query url.Values) (bool, error) {
	return boolParam(query, "archived")
}

func intParam(query url.Values, name string) (int, error) {
	raw := query.Get(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, domain.NewValidationError(fmt.Sprintf("Invalid %s %q", name, raw))
	}
	return n, nil
}

func boolParam(query url.Values, name string) (bool, error) {
	raw := strings.TrimSpace(query.Get(name))
	if raw == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, domain.NewValidationError(fmt.Sprintf("Invalid %s %q", name, raw))
	}
	return b, nil
}
