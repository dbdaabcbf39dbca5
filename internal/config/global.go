package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
)

const (
	// GlobalConfigDir is the name of the global config directory in home
	GlobalConfigDir = ".clickup"

	// GlobalConfigFileName is the name of the global config file
	GlobalConfigFileName = "config.toml"
)

// GlobalConfig represents the user-level configuration from ~/.clickup/config.toml
type GlobalConfig struct {
	Token     string
	BaseURL   string
	Timeout   time.Duration
	LogLevel  string
	Workspace string
}

// globalConfigFile represents the raw TOML structure for global config
type globalConfigFile struct {
	API      apiConfig      `toml:"api"`
	Log      logConfig      `toml:"log"`
	Defaults defaultsConfig `toml:"defaults"`
}

// apiConfig represents the [api] section in TOML
type apiConfig struct {
	Token   string `toml:"token"`
	BaseURL string `toml:"base_url"`
	Timeout string `toml:"timeout"`
}

// logConfig represents the [log] section in TOML
type logConfig struct {
	Level string `toml:"level"`
}

// defaultsConfig represents the [defaults] section in TOML
type defaultsConfig struct {
	Workspace string `toml:"workspace"`
}

// GlobalConfigPath returns the location of the global config under homeDir.
func GlobalConfigPath(homeDir string) string {
	return filepath.Join(homeDir, GlobalConfigDir, GlobalConfigFileName)
}

// LoadGlobalConfig loads the global configuration from homeDir/.clickup/config.toml.
// Returns an empty config (not an error) if the file doesn't exist.
func LoadGlobalConfig(fs afero.Fs, homeDir string) (*GlobalConfig, error) {
	configPath := GlobalConfigPath(homeDir)

	exists, err := afero.Exists(fs, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat global config: %w", err)
	}
	if !exists {
		return &GlobalConfig{}, nil
	}

	data, err := afero.ReadFile(fs, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read global config: %w", err)
	}

	var rawConfig globalConfigFile
	if _, err := toml.Decode(string(data), &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to parse global config TOML: %w", err)
	}

	cfg := &GlobalConfig{
		Token:     rawConfig.API.Token,
		BaseURL:   rawConfig.API.BaseURL,
		LogLevel:  rawConfig.Log.Level,
		Workspace: rawConfig.Defaults.Workspace,
	}

	if rawConfig.API.Timeout != "" {
		timeout, err := parseTimeout(rawConfig.API.Timeout)
		if err != nil {
			return nil, fmt.Errorf("global config [api] timeout: %w", err)
		}
		cfg.Timeout = timeout
	}

	return cfg, nil
}

// parseTimeout parses a duration such as "30s" and rejects non-positive values.
func parseTimeout(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("invalid duration %q: must be positive", s)
	}
	return d, nil
}
