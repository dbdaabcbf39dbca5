package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/hashicorp/go-hclog"

	"github.com/modelingevolution/clickup/internal/api/response"
	"github.com/modelingevolution/clickup/internal/domain"
)

// Recovery catches panics and returns a 500 error.
func Recovery(logger hclog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic recovered", "error", err, "stack", string(debug.Stack()))
					response.Error(w, domain.NewInternalError(nil))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
