package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/modelingevolution/clickup/internal/api/response"
	"github.com/modelingevolution/clickup/internal/domain"
)

// Auth rejects requests whose Authorization header does not carry token,
// either raw as personal tokens are sent or with a Bearer prefix.
// An empty token disables the check.
func Auth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if token == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				response.Error(w, domain.NewTokenInvalidError())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
