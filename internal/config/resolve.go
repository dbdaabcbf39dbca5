package config

import (
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/spf13/afero"

	"github.com/modelingevolution/clickup/pkg/clickup"
)

const (
	// DefaultTimeout is the HTTP timeout when nothing else is configured.
	DefaultTimeout = 30 * time.Second

	// DefaultLogLevel keeps the CLI quiet unless asked otherwise.
	DefaultLogLevel = "warn"
)

// ErrNoToken is returned by Validate when no API token is configured.
var ErrNoToken = errors.New("no API token configured: set " + EnvToken +
	" or [api] token in ~/" + GlobalConfigDir + "/" + GlobalConfigFileName)

// Overrides holds values given on the command line.
type Overrides struct {
	Token    string
	BaseURL  string
	LogLevel string
}

// Options controls where Resolve looks for configuration.
type Options struct {
	Fs        afero.Fs
	HomeDir   string
	WorkDir   string
	LookupEnv LookupFunc
	Flags     Overrides
}

// ResolvedConfig represents the final merged configuration with all
// precedence rules applied. Precedence order (highest to lowest):
// 1. Command-line flags
// 2. Environment (process, then .env)
// 3. Project config (clickup.toml)
// 4. Global config (~/.clickup/config.toml)
// 5. Built-in defaults
type ResolvedConfig struct {
	Token    string
	BaseURL  string
	Timeout  time.Duration
	LogLevel string

	Workspace string
	Space     string
	List      string

	// ProjectFile is the clickup.toml in effect, if any.
	ProjectFile string
}

// Resolve merges every configuration source according to precedence rules.
// A missing project or global file is not an error.
func Resolve(opts Options) (*ResolvedConfig, error) {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.LookupEnv == nil {
		opts.LookupEnv = func(string) (string, bool) { return "", false }
	}

	globalCfg, err := LoadGlobalConfig(opts.Fs, opts.HomeDir)
	if err != nil {
		return nil, err
	}

	projectCfg, err := DiscoverProjectConfig(opts.Fs, opts.WorkDir)
	if err != nil && !errors.Is(err, ErrNoProjectConfig) {
		return nil, err
	}
	if projectCfg == nil {
		projectCfg = &ProjectConfig{}
	}

	envCfg, err := LoadEnv(opts.Fs, opts.WorkDir, opts.LookupEnv)
	if err != nil {
		return nil, err
	}

	resolved := &ResolvedConfig{
		Token:       firstNonEmpty(opts.Flags.Token, envCfg.Token, globalCfg.Token),
		BaseURL:     firstNonEmpty(opts.Flags.BaseURL, envCfg.BaseURL, projectCfg.BaseURL, globalCfg.BaseURL, clickup.DefaultBaseURL),
		LogLevel:    strings.ToLower(firstNonEmpty(opts.Flags.LogLevel, envCfg.LogLevel, globalCfg.LogLevel, DefaultLogLevel)),
		Timeout:     DefaultTimeout,
		Workspace:   firstNonEmpty(projectCfg.Workspace, globalCfg.Workspace),
		Space:       projectCfg.Space,
		List:        projectCfg.List,
		ProjectFile: projectCfg.Path,
	}

	if globalCfg.Timeout != 0 {
		resolved.Timeout = globalCfg.Timeout
	}
	if envCfg.Timeout != 0 {
		resolved.Timeout = envCfg.Timeout
	}

	return resolved, nil
}

// Validate checks that the configuration is usable for API calls.
func (c *ResolvedConfig) Validate() error {
	if strings.TrimSpace(c.Token) == "" {
		return ErrNoToken
	}

	return validation.ValidateStruct(c,
		validation.Field(&c.BaseURL, validation.Required, is.RequestURL),
		validation.Field(&c.Timeout, validation.Required),
		validation.Field(&c.LogLevel, validation.In("trace", "debug", "info", "warn", "error", "off")),
	)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
