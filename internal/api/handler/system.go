package handler

import (
	"net/http"

	"github.com/modelingevolution/clickup/internal/api/response"
	"github.com/modelingevolution/clickup/internal/domain"
)

// SystemHandler handles system-level operations.
type SystemHandler struct{}

// NewSystemHandler creates a new SystemHandler.
func NewSystemHandler() *SystemHandler {
	return &SystemHandler{}
}

// Health handles GET /health.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]string{"status": "ok"})
}

// NotFound answers requests for unknown routes.
func (h *SystemHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	response.Error(w, domain.NewRouteNotFoundError(r.Method, r.URL.Path))
}

// MethodNotAllowed answers requests with an unsupported method.
func (h *SystemHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	response.Error(w, domain.NewMethodNotAllowedError(r.Method, r.URL.Path))
}
