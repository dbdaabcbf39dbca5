package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/hashicorp/go-hclog"
	"github.com/iancoleman/strcase"
	"github.com/spf13/cobra"

	"github.com/modelingevolution/clickup/internal/config"
	"github.com/modelingevolution/clickup/internal/identity"
	"github.com/modelingevolution/clickup/pkg/clickup"
)

// resolveConfig merges flags, environment and config files once per run.
func (a *app) resolveConfig() (*config.ResolvedConfig, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}

	flags := config.Overrides{Token: a.token, BaseURL: a.baseURL}
	if a.debug {
		flags.LogLevel = "debug"
	}
	cfg, err := config.Resolve(config.Options{
		Fs:        a.fs,
		HomeDir:   a.homeDir,
		WorkDir:   a.workDir,
		LookupEnv: a.lookupEnv,
		Flags:     flags,
	})
	if err != nil {
		return nil, err
	}
	a.cfg = cfg
	return cfg, nil
}

// getClient builds the API client from the resolved configuration.
func (a *app) getClient() (*clickup.Client, error) {
	if a.client != nil {
		return a.client, nil
	}

	cfg, err := a.resolveConfig()
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	a.logger = hclog.New(&hclog.LoggerOptions{
		Name:   "clickup",
		Level:  hclog.LevelFromString(cfg.LogLevel),
		Output: a.stderr,
	})

	client, err := clickup.NewClient(
		clickup.WithAPIToken(cfg.Token),
		clickup.WithBaseURL(cfg.BaseURL),
		clickup.WithTimeout(cfg.Timeout),
		clickup.WithLogger(a.logger),
		clickup.WithUserAgent(identity.UserAgent()),
	)
	if err != nil {
		return nil, err
	}
	a.client = client
	return client, nil
}

// workspaceID returns the --workspace flag, the configured default, or the
// only workspace the token can see.
func (a *app) workspaceID(ctx context.Context, flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	cfg, err := a.resolveConfig()
	if err != nil {
		return "", err
	}
	if cfg.Workspace != "" {
		return cfg.Workspace, nil
	}

	client, err := a.getClient()
	if err != nil {
		return "", err
	}
	workspaces, err := client.Workspaces.List(ctx)
	if err != nil {
		return "", err
	}
	if len(workspaces) == 1 {
		return workspaces[0].ID, nil
	}
	return "", fmt.Errorf("workspace %w: use --workspace or set workspace in %s (%d workspaces available)",
		errMissingDefault, config.ConfigFileName, len(workspaces))
}

// spaceID returns the --space flag or the configured default.
func (a *app) spaceID(flag string) (string, error) {
	return a.fromConfig(flag, "space", func(c *config.ResolvedConfig) string { return c.Space })
}

// listID returns the --list flag or the configured default.
func (a *app) listID(flag string) (string, error) {
	return a.fromConfig(flag, "list", func(c *config.ResolvedConfig) string { return c.List })
}

func (a *app) fromConfig(flag, name string, get func(*config.ResolvedConfig) string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	cfg, err := a.resolveConfig()
	if err != nil {
		return "", err
	}
	if v := get(cfg); v != "" {
		return v, nil
	}
	return "", fmt.Errorf("%s %w: use --%s or set %s in %s", name, errMissingDefault, name, name, config.ConfigFileName)
}

// exactArgs is cobra.ExactArgs reporting a usage error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return &usageError{msg: err.Error()}
		}
		return nil
	}
}

// parsePriority parses a priority string (name or number) into ClickUp's 1-4 scale
func parsePriority(s string) (int, error) {
	// Try parsing as number first
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 4 {
			return 0, usageErrorf("priority must be between 1-4, got %d", n)
		}
		return n, nil
	}

	// Try parsing as name
	switch strings.ToLower(s) {
	case "urgent":
		return 1, nil
	case "high":
		return 2, nil
	case "normal":
		return 3, nil
	case "low":
		return 4, nil
	default:
		return 0, usageErrorf("invalid priority: %s (use 1-4 or urgent/high/normal/low)", s)
	}
}

// parseDue turns a free-form date into a ClickUp millisecond timestamp.
// "today" and "tomorrow" are relative to now in loc.
func parseDue(s string, now time.Time, loc *time.Location) (int64, error) {
	day := func(offset int) time.Time {
		n := now.In(loc)
		return time.Date(n.Year(), n.Month(), n.Day()+offset, 0, 0, 0, 0, loc)
	}

	switch strings.ToLower(strings.TrimSpace(s)) {
	case "today":
		return clickup.Millis(day(0)), nil
	case "tomorrow":
		return clickup.Millis(day(1)), nil
	}

	t, err := dateparse.ParseIn(s, loc)
	if err != nil {
		return 0, usageErrorf("invalid date %q: %v", s, err)
	}
	return clickup.Millis(t), nil
}

// findField matches a custom field by ID or by name. Names match ignoring
// case and separators, so "story points", "Story-Points" and "storyPoints"
// all find "Story Points".
func findField(fields []clickup.CustomFieldDefinition, ref string) (clickup.CustomFieldDefinition, error) {
	key := strcase.ToSnake(strings.TrimSpace(ref))
	var matches []clickup.CustomFieldDefinition
	for _, f := range fields {
		if f.ID == ref {
			return f, nil
		}
		if strcase.ToSnake(f.Name) == key {
			matches = append(matches, f)
		}
	}

	switch len(matches) {
	case 0:
		return clickup.CustomFieldDefinition{}, usageErrorf("no custom field %q on this list", ref)
	case 1:
		return matches[0], nil
	default:
		return clickup.CustomFieldDefinition{}, usageErrorf("custom field name %q is ambiguous: use the field ID", ref)
	}
}

// parseFieldValue converts a command line value to the JSON value the
// field type expects. Drop-down values may be given by option name.
func parseFieldValue(field clickup.CustomFieldDefinition, raw string) (interface{}, error) {
	switch field.Type {
	case "number", "currency", "rating":
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, usageErrorf("field %q expects a number, got %q", field.Name, raw)
		}
		return v, nil
	case "checkbox":
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, usageErrorf("field %q expects true or false, got %q", field.Name, raw)
		}
		return v, nil
	case "drop_down":
		if field.TypeConfig != nil {
			for _, opt := range field.TypeConfig.Options {
				if opt.ID == raw || strings.EqualFold(opt.Name, raw) {
					return opt.ID, nil
				}
			}
		}
		return nil, usageErrorf("field %q has no option %q", field.Name, raw)
	default:
		return raw, nil
	}
}
