package server_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/modelingevolution/clickup/internal/api"
	"github.com/modelingevolution/clickup/internal/server"
	"github.com/modelingevolution/clickup/internal/store"
)

// waitForAddr polls until the server has a listener.
func waitForAddr(t *testing.T, srv *server.Server) string {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if addr := srv.Addr(); addr != "" {
			return addr
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("server address not available")
	return ""
}

func TestServer_StartAndShutdown(t *testing.T) {
	srv := server.New("localhost:0", api.NewRouter(store.New(), nil, ""), nil)

	// Start server in background
	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()
	waitForAddr(t, srv)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		t.Errorf("shutdown error: %v", err)
	}

	// Check if Start returned (it should after Shutdown)
	select {
	case err := <-errChan:
		// http.ErrServerClosed is expected
		if err != nil && err != http.ErrServerClosed {
			t.Errorf("unexpected error from Start: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Error("server did not stop after shutdown")
	}
}

func TestServer_ServesSandbox(t *testing.T) {
	st := store.New()
	if _, err := st.SeedDemo(); err != nil {
		t.Fatalf("failed to seed: %v", err)
	}
	srv := server.New("localhost:0", api.NewRouter(st, nil, "pk_1"), nil)

	go func() {
		srv.Start()
	}()
	addr := waitForAddr(t, srv)
	defer srv.Shutdown(context.Background())

	resp, err := http.Get("http://" + addr + "/health")
	if err != nil {
		t.Fatalf("failed to make request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", resp.StatusCode)
	}

	var health map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if health["status"] != "ok" {
		t.Errorf("expected status 'ok', got %q", health["status"])
	}

	req, _ := http.NewRequest("GET", "http://"+addr+"/api/v2/team", nil)
	req.Header.Set("Authorization", "pk_1")
	teams, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("failed to make request: %v", err)
	}
	teams.Body.Close()
	if teams.StatusCode != http.StatusOK {
		t.Errorf("expected status 200, got %d", teams.StatusCode)
	}
}

func TestServer_ShutdownBeforeStart(t *testing.T) {
	srv := server.New("", http.NotFoundHandler(), nil)
	if err := srv.Shutdown(context.Background()); err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if srv.Addr() != "" {
		t.Errorf("expected empty address, got %q", srv.Addr())
	}
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	srv := server.New("localhost:0", api.NewRouter(store.New(), nil, ""), nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()
	addr := waitForAddr(t, srv)

	if got, want := srv.BaseURL(), "http://"+addr+server.APIBasePath; got != want {
		t.Errorf("BaseURL() = %q, expected %q", got, want)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected clean stop, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestServer_RunWithCanceledContext(t *testing.T) {
	srv := server.New("localhost:0", http.NotFoundHandler(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected clean stop, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return for a canceled context")
	}
}

func TestServer_RunBindError(t *testing.T) {
	srv := server.New("localhost:-1", http.NotFoundHandler(), nil)

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(context.Background())
	}()

	select {
	case err := <-done:
		if err == nil {
			t.Error("expected a listen error")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return on a bad address")
	}
}

func TestServer_BaseURLBeforeStart(t *testing.T) {
	srv := server.New("", http.NotFoundHandler(), nil)
	if srv.BaseURL() != "" {
		t.Errorf("expected empty base URL, got %q", srv.BaseURL())
	}
}
