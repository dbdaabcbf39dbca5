package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hashicorp/go-hclog"

	"github.com/modelingevolution/clickup/internal/api/request"
	"github.com/modelingevolution/clickup/internal/api/response"
	"github.com/modelingevolution/clickup/internal/store"
	"github.com/modelingevolution/clickup/pkg/clickup"
)

// TaskHandler serves tasks and their custom field values.
type TaskHandler struct {
	store  *store.Store
	logger hclog.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(st *store.Store, logger hclog.Logger) *TaskHandler {
	return &TaskHandler{store: st, logger: logger}
}

// ListTasks handles GET /list/{list_id}/task.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	filter, err := request.TaskFilter(r.URL.Query())
	if err != nil {
		response.Error(w, err)
		return
	}

	resp, err := h.store.Tasks(chi.URLParam(r, "list_id"), filter)
	if err != nil {
		response.Error(w, err)
		return
	}
	h.logger.Debug("listed tasks", "list_id", chi.URLParam(r, "list_id"), "page", filter.Page, "count", len(resp.Tasks))
	response.OK(w, resp)
}

// CreateTask handles POST /list/{list_id}/task.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req clickup.CreateTaskRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}

	task, err := h.store.CreateTask(chi.URLParam(r, "list_id"), req)
	if err != nil {
		response.Error(w, err)
		return
	}
	h.logger.Debug("created task", "task_id", task.ID)
	response.OK(w, task)
}

// GetTask handles GET /task/{task_id}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	respond(w)(h.store.Task(chi.URLParam(r, "task_id")))
}

// UpdateTask handles PUT /task/{task_id}.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	var req clickup.UpdateTaskRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	respond(w)(h.store.UpdateTask(chi.URLParam(r, "task_id"), req))
}

// DeleteTask handles DELETE /task/{task_id}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	respondEmpty(w, h.store.DeleteTask(chi.URLParam(r, "task_id")))
}

// ListFields handles GET /list/{list_id}/field.
func (h *TaskHandler) ListFields(w http.ResponseWriter, r *http.Request) {
	fields, err := h.store.Fields(chi.URLParam(r, "list_id"))
	if err != nil {
		response.Error(w, err)
		return
	}
	response.OK(w, clickup.CustomFieldsResponse{Fields: fields})
}

// SetField handles POST /task/{task_id}/field/{field_id}.
func (h *TaskHandler) SetField(w http.ResponseWriter, r *http.Request) {
	var req clickup.SetCustomFieldRequest
	if err := request.DecodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	respondEmpty(w, h.store.SetFieldValue(chi.URLParam(r, "task_id"), chi.URLParam(r, "field_id"), req.Value))
}

// RemoveField handles DELETE /task/{task_id}/field/{field_id}.
func (h *TaskHandler) RemoveField(w http.ResponseWriter, r *http.Request) {
	respondEmpty(w, h.store.RemoveFieldValue(chi.URLParam(r, "task_id"), chi.URLParam(r, "field_id")))
}
