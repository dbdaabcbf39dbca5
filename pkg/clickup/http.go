package clickup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

// transport performs a single request/response round trip against the API.
// It holds no request-scoped state and is safe for concurrent use.
type transport struct {
	baseURL   string
	token     string
	userAgent string
	http      *http.Client
	logger    hclog.Logger
}

// newRequest creates a new HTTP request with common headers.
func (t *transport) newRequest(ctx context.Context, method, path string, body interface{}) (*http.Request, error) {
	reqURL := t.baseURL + "/" + strings.TrimPrefix(path, "/")

	var reader io.Reader
	if body != nil {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = &buf
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// With a token source the oauth2 transport sets the header instead.
	if t.token != "" {
		req.Header.Set("Authorization", t.token)
	}
	req.Header.Set("Accept", "application/json")
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// do sends the request and decodes a successful response into result.
// A nil result discards the body.
func (t *transport) do(ctx context.Context, method, path string, body, result interface{}) error {
	req, err := t.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	t.logger.Debug("sending request", "method", method, "path", path)
	start := time.Now()

	resp, err := t.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read %s response: %w", path, err)
	}

	t.logger.Debug("received response",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)
	t.logger.Trace("response body", "path", path, "body", string(data))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseErrorResponse(method, path, resp, data)
	}

	if result == nil {
		return nil
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return &DecodeError{Path: path, Target: fmt.Sprintf("%T", result), Err: errEmptyBody}
	}
	if err := json.Unmarshal(data, result); err != nil {
		return &DecodeError{Path: path, Target: fmt.Sprintf("%T", result), Err: err}
	}

	return nil
}

func (t *transport) get(ctx context.Context, path string, result interface{}) error {
	return t.do(ctx, http.MethodGet, path, nil, result)
}

func (t *transport) post(ctx context.Context, path string, body, result interface{}) error {
	return t.do(ctx, http.MethodPost, path, body, result)
}

func (t *transport) put(ctx context.Context, path string, body, result interface{}) error {
	return t.do(ctx, http.MethodPut, path, body, result)
}

func (t *transport) delete(ctx context.Context, path string) error {
	return t.do(ctx, http.MethodDelete, path, nil, nil)
}
