package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, h http.Handler, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestBuildHandler_Seeded(t *testing.T) {
	var logs bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{Output: &logs, Level: hclog.Info})

	h, err := buildHandler(&options{token: "pk_1", seed: true}, logger)
	require.NoError(t, err)

	rec := get(t, h, "/api/v2/team", "pk_1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Demo Workspace")
	assert.Contains(t, logs.String(), "seeded demo workspace")

	rec = get(t, h, "/api/v2/team", "pk_other")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestBuildHandler_EmptyWithoutToken(t *testing.T) {
	var logs bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{Output: &logs})

	h, err := buildHandler(&options{}, logger)
	require.NoError(t, err)

	rec := get(t, h, "/api/v2/team", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sandbox")
	assert.Contains(t, logs.String(), "authentication is disabled")
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd(&bytes.Buffer{})
	for _, name := range []string{"addr", "token", "seed", "log-level"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
	assert.Equal(t, "localhost:4390", cmd.Flags().Lookup("addr").DefValue)
}
