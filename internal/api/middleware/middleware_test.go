package middleware_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"

	"github.com/modelingevolution/clickup/internal/api/middleware"
	"github.com/modelingevolution/clickup/internal/api/response"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestRecovery_PanicReturns500(t *testing.T) {
	// Handler that panics
	panicHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("something went wrong!")
	})

	var logs bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{Output: &logs})
	handler := middleware.Recovery(logger)(panicHandler)

	req := httptest.NewRequest("GET", "/test", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", rr.Code)
	}

	var resp response.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.ECode != "INTERNAL_ERROR" {
		t.Errorf("expected code 'INTERNAL_ERROR', got %q", resp.ECode)
	}
	if !strings.Contains(logs.String(), "something went wrong!") {
		t.Errorf("expected panic to be logged, got %q", logs.String())
	}
}

func TestLogging_CapturesStatus(t *testing.T) {
	// Handler that returns 201
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})

	var logs bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{Output: &logs})
	wrapped := middleware.Logging(logger)(handler)

	req := httptest.NewRequest("GET", "/test", nil)
	rr := httptest.NewRecorder()

	wrapped.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Errorf("expected status 201, got %d", rr.Code)
	}
	for _, want := range []string{"method=GET", "path=/test", "status=201"} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("expected log to contain %q, got %q", want, logs.String())
		}
	}
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name       string
		token      string
		header     string
		wantStatus int
	}{
		{"raw token", "pk_1", "pk_1", http.StatusOK},
		{"bearer token", "pk_1", "Bearer pk_1", http.StatusOK},
		{"wrong token", "pk_1", "pk_2", http.StatusUnauthorized},
		{"missing header", "pk_1", "", http.StatusUnauthorized},
		{"check disabled", "", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middleware.Auth(tt.token)(okHandler)

			req := httptest.NewRequest("GET", "/api/v2/team", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rr.Code)
			}
			if tt.wantStatus != http.StatusUnauthorized {
				return
			}

			var resp response.ErrorResponse
			if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if resp.ECode != "OAUTH_025" {
				t.Errorf("expected code 'OAUTH_025', got %q", resp.ECode)
			}
		})
	}
}
