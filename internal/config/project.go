package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
)

// ConfigFileName is the name of the project configuration file
const ConfigFileName = "clickup.toml"

// ErrNoProjectConfig is returned when no clickup.toml exists in the working
// directory or any of its parents.
var ErrNoProjectConfig = errors.New("no clickup.toml found")

// ProjectConfig represents the project-level configuration from clickup.toml.
// It pins the workspace, space and list that commands default to.
type ProjectConfig struct {
	Workspace string
	Space     string
	List      string
	BaseURL   string

	// Path is the file the config was read from.
	Path string
}

// projectConfigFile represents the raw TOML structure
type projectConfigFile struct {
	Workspace string         `toml:"workspace,omitempty"`
	Space     string         `toml:"space,omitempty"`
	List      string         `toml:"list,omitempty"`
	API       *projectAPIRaw `toml:"api,omitempty"`
}

type projectAPIRaw struct {
	BaseURL string `toml:"base_url,omitempty"`
}

// DiscoverProjectConfig finds and parses clickup.toml by traversing up the
// directory tree from startDir.
func DiscoverProjectConfig(fs afero.Fs, startDir string) (*ProjectConfig, error) {
	dir := startDir

	for {
		configPath := filepath.Join(dir, ConfigFileName)
		if ok, _ := afero.Exists(fs, configPath); ok {
			return ParseProjectConfig(fs, configPath)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return nil, ErrNoProjectConfig
		}
		dir = parent
	}
}

// ParseProjectConfig parses the clickup.toml file at the given path
func ParseProjectConfig(fs afero.Fs, path string) (*ProjectConfig, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var rawConfig projectConfigFile
	if _, err := toml.Decode(string(data), &rawConfig); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	cfg := &ProjectConfig{
		Workspace: rawConfig.Workspace,
		Space:     rawConfig.Space,
		List:      rawConfig.List,
		Path:      path,
	}
	if rawConfig.API != nil {
		cfg.BaseURL = rawConfig.API.BaseURL
	}

	return cfg, nil
}

// WriteProjectConfig writes a clickup.toml into dir.
func WriteProjectConfig(fs afero.Fs, dir string, cfg *ProjectConfig) (string, error) {
	raw := projectConfigFile{
		Workspace: cfg.Workspace,
		Space:     cfg.Space,
		List:      cfg.List,
	}
	if cfg.BaseURL != "" {
		raw.API = &projectAPIRaw{BaseURL: cfg.BaseURL}
	}

	path := filepath.Join(dir, ConfigFileName)
	f, err := fs.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(raw); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, nil
}
