package config

import (
	"bytes"
	"fmt"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
)

// Environment variables read by the CLI.
const (
	EnvToken    = "CLICKUP_API_TOKEN"
	EnvBaseURL  = "CLICKUP_BASE_URL"
	EnvTimeout  = "CLICKUP_TIMEOUT"
	EnvLogLevel = "CLICKUP_LOG_LEVEL"

	// DotEnvFileName is loaded from the working directory when present.
	DotEnvFileName = ".env"
)

// EnvConfig holds the values taken from the environment.
type EnvConfig struct {
	Token    string
	BaseURL  string
	Timeout  time.Duration
	LogLevel string
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// LoadEnv reads the CLICKUP_* variables. Values from a .env file in dir are
// used only for variables the process environment does not set.
func LoadEnv(fs afero.Fs, dir string, lookup LookupFunc) (*EnvConfig, error) {
	dotenv, err := readDotEnv(fs, filepath.Join(dir, DotEnvFileName))
	if err != nil {
		return nil, err
	}

	get := func(key string) string {
		if v, ok := lookup(key); ok {
			return v
		}
		return dotenv[key]
	}

	cfg := &EnvConfig{
		Token:    get(EnvToken),
		BaseURL:  get(EnvBaseURL),
		LogLevel: get(EnvLogLevel),
	}

	if raw := get(EnvTimeout); raw != "" {
		timeout, err := parseTimeout(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		cfg.Timeout = timeout
	}

	return cfg, nil
}

func readDotEnv(fs afero.Fs, path string) (map[string]string, error) {
	exists, err := afero.Exists(fs, path)
	if err != nil || !exists {
		return map[string]string{}, nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	values, err := godotenv.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return values, nil
}
