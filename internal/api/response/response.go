package response

import (
	"encoding/json"
	"net/http"

	"github.com/modelingevolution/clickup/internal/domain"
)

// ErrorResponse is the error body ClickUp sends.
type ErrorResponse struct {
	Err   string `json:"err"`
	ECode string `json:"ECODE"`
}

// JSON sends a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// Error sends an error response based on the domain error.
func Error(w http.ResponseWriter, err error) {
	domainErr, ok := err.(*domain.DomainError)
	if !ok {
		domainErr = domain.NewInternalError(err)
	}

	JSON(w, StatusFor(domainErr.Code), ErrorResponse{
		Err:   domainErr.Message,
		ECode: string(domainErr.Code),
	})
}

// OK sends a 200 OK response with JSON body.
func OK(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, data)
}

// Empty sends a 200 OK response with an empty JSON object, which is what
// ClickUp returns for deletes and custom field updates.
func Empty(w http.ResponseWriter) {
	JSON(w, http.StatusOK, struct{}{})
}

// StatusFor maps an error code to its HTTP status.
func StatusFor(code domain.ErrorCode) int {
	switch code {
	case domain.ErrCodeTeamNotFound, domain.ErrCodeSpaceNotFound, domain.ErrCodeFolderNotFound,
		domain.ErrCodeListNotFound, domain.ErrCodeTaskNotFound, domain.ErrCodeFieldNotFound,
		domain.ErrCodeRouteNotFound:
		return http.StatusNotFound
	case domain.ErrCodeTokenInvalid:
		return http.StatusUnauthorized
	case domain.ErrCodeInputInvalid:
		return http.StatusBadRequest
	case domain.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}
