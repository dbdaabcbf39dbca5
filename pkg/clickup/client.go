package clickup

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"
)

// Client aggregates the ClickUp resource clients. It is safe for concurrent use.
type Client struct {
	Workspaces   *WorkspaceClient
	Spaces       *SpaceClient
	Folders      *FolderClient
	Lists        *ListClient
	Tasks        *TaskClient
	CustomFields *CustomFieldClient

	baseURL string
}

// NewClient creates a new ClickUp API client.
//
// Required options:
//   - WithAPIToken: sets the personal API token (or WithTokenSource for OAuth2)
//
// Optional options:
//   - WithBaseURL: sets the API root (default: https://api.clickup.com/api/v2)
//   - WithTimeout: sets the HTTP client timeout (default: 30s)
//   - WithLogger: sets the hclog logger (default: null logger)
//   - WithHTTPClient: supplies the underlying *http.Client
//   - WithUserAgent: sets the User-Agent header
//
// Example:
//
//	client, err := clickup.NewClient(
//	    clickup.WithAPIToken(os.Getenv("CLICKUP_API_TOKEN")),
//	)
func NewClient(opts ...ClientOption) (*Client, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: cfg.timeout}
	if cfg.httpClient != nil {
		c := *cfg.httpClient
		if c.Timeout == 0 {
			c.Timeout = cfg.timeout
		}
		httpClient = &c
	}

	token := strings.TrimSpace(cfg.token)
	if cfg.tokenSource != nil {
		httpClient.Transport = &oauth2.Transport{
			Source: cfg.tokenSource,
			Base:   httpClient.Transport,
		}
		token = ""
	}

	baseURL := strings.TrimRight(cfg.baseURL, "/")
	t := &transport{
		baseURL:   baseURL,
		token:     token,
		userAgent: cfg.userAgent,
		http:      httpClient,
		logger:    cfg.logger.Named("http"),
	}

	return &Client{
		Workspaces:   &WorkspaceClient{t: t, logger: cfg.logger.Named("workspaces")},
		Spaces:       &SpaceClient{t: t, logger: cfg.logger.Named("spaces")},
		Folders:      &FolderClient{t: t, logger: cfg.logger.Named("folders")},
		Lists:        &ListClient{t: t, logger: cfg.logger.Named("lists")},
		Tasks:        &TaskClient{t: t, logger: cfg.logger.Named("tasks")},
		CustomFields: &CustomFieldClient{t: t, logger: cfg.logger.Named("custom_fields")},
		baseURL:      baseURL,
	}, nil
}

// BaseURL returns the API root the client sends requests to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *clientConfig) validate() error {
	if c.tokenSource == nil && strings.TrimSpace(c.token) == "" {
		return errors.New("API token is required: use WithAPIToken option")
	}

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL %q: %w", c.baseURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid base URL %q: must be an absolute http(s) URL", c.baseURL)
	}

	if c.timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.timeout)
	}

	return nil
}
