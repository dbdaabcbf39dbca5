package clickup

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/oauth2"
)

// DefaultBaseURL is the ClickUp v2 API root.
const DefaultBaseURL = "https://api.clickup.com/api/v2"

// ClientOption configures a Client.
type ClientOption func(*clientConfig)

// clientConfig holds the configuration for a Client.
type clientConfig struct {
	token       string
	baseURL     string
	timeout     time.Duration
	logger      hclog.Logger
	httpClient  *http.Client
	tokenSource oauth2.TokenSource
	userAgent   string
}

// defaultConfig returns the default client configuration.
func defaultConfig() *clientConfig {
	return &clientConfig{
		baseURL:   DefaultBaseURL,
		timeout:   30 * time.Second,
		logger:    hclog.NewNullLogger(),
		userAgent: "clickup-go",
	}
}

// WithAPIToken sets the personal API token sent in the Authorization header.
func WithAPIToken(token string) ClientOption {
	return func(c *clientConfig) {
		c.token = token
	}
}

// WithBaseURL sets the API root, e.g. a local sandbox.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *clientConfig) {
		c.baseURL = baseURL
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithLogger sets the logger. Each resource client logs under a named sub-logger.
func WithLogger(logger hclog.Logger) ClientOption {
	return func(c *clientConfig) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHTTPClient sets the underlying HTTP client. The configured timeout is
// only applied when the client has none of its own.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTokenSource authenticates with OAuth2 access tokens instead of a
// static API token.
func WithTokenSource(src oauth2.TokenSource) ClientOption {
	return func(c *clientConfig) {
		c.tokenSource = src
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) ClientOption {
	return func(c *clientConfig) {
		c.userAgent = userAgent
	}
}

// ListSpacesOption configures a Spaces.List call.
type ListSpacesOption func(*listSpacesOptions)

type listSpacesOptions struct {
	archived bool
}

// WithArchivedSpaces includes archived spaces in the result.
func WithArchivedSpaces(archived bool) ListSpacesOption {
	return func(o *listSpacesOptions) {
		o.archived = archived
	}
}

// ListTasksOption configures a Tasks.List call.
type ListTasksOption func(*listTasksOptions)

// listTasksOptions holds options for listing tasks.
type listTasksOptions struct {
	page          int
	archived      *bool
	includeClosed *bool
	subtasks      *bool
	reverse       *bool
	orderBy       string
	statuses      []string
	assignees     []int64
}

// WithPage sets the page number (0-indexed).
func WithPage(page int) ListTasksOption {
	return func(o *listTasksOptions) {
		o.page = page
	}
}

// WithArchived includes or excludes archived tasks.
func WithArchived(archived bool) ListTasksOption {
	return func(o *listTasksOptions) {
		o.archived = &archived
	}
}

// WithIncludeClosed includes tasks in closed statuses.
func WithIncludeClosed(include bool) ListTasksOption {
	return func(o *listTasksOptions) {
		o.includeClosed = &include
	}
}

// WithSubtasks includes subtasks in the result.
func WithSubtasks(subtasks bool) ListTasksOption {
	return func(o *listTasksOptions) {
		o.subtasks = &subtasks
	}
}

// WithStatuses filters tasks by status name.
func WithStatuses(statuses ...string) ListTasksOption {
	return func(o *listTasksOptions) {
		o.statuses = append(o.statuses, statuses...)
	}
}

// WithAssignees filters tasks by assignee user ID.
func WithAssignees(assignees ...int64) ListTasksOption {
	return func(o *listTasksOptions) {
		o.assignees = append(o.assignees, assignees...)
	}
}

// WithOrderBy orders tasks by a field: id, created, updated or due_date.
func WithOrderBy(field string) ListTasksOption {
	return func(o *listTasksOptions) {
		o.orderBy = field
	}
}

// WithReverse reverses the sort order.
func WithReverse(reverse bool) ListTasksOption {
	return func(o *listTasksOptions) {
		o.reverse = &reverse
	}
}

// filters encodes everything except the page number.
func (o *listTasksOptions) filters() url.Values {
	q := url.Values{}
	setBool := func(key string, v *bool) {
		if v != nil {
			q.Set(key, strconv.FormatBool(*v))
		}
	}
	setBool("archived", o.archived)
	setBool("include_closed", o.includeClosed)
	setBool("subtasks", o.subtasks)
	setBool("reverse", o.reverse)
	if o.orderBy != "" {
		q.Set("order_by", o.orderBy)
	}
	for _, s := range o.statuses {
		q.Add("statuses[]", s)
	}
	for _, a := range o.assignees {
		q.Add("assignees[]", strconv.FormatInt(a, 10))
	}
	return q
}
