package main

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelingevolution/clickup/internal/config"
	"github.com/modelingevolution/clickup/pkg/clickup"
)

func TestMapErrorToExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "nil error", err: nil, expected: ExitSuccess},
		{name: "no token", err: fmt.Errorf("invalid configuration: %w", config.ErrNoToken), expected: ExitNotConfigured},
		{name: "no default list", err: fmt.Errorf("list %w", errMissingDefault), expected: ExitNotConfigured},
		{name: "usage", err: usageErrorf("bad flag"), expected: ExitInvalidArgument},
		{name: "argument", err: &clickup.ArgumentError{Param: "taskID", Message: "must not be empty"}, expected: ExitInvalidArgument},
		{name: "decode", err: &clickup.DecodeError{Err: errors.New("unexpected EOF")}, expected: ExitDecodeError},
		{name: "not found", err: &clickup.Error{StatusCode: 404}, expected: ExitNotFound},
		{name: "unauthorized", err: &clickup.Error{StatusCode: 401}, expected: ExitUnauthorized},
		{name: "forbidden", err: &clickup.Error{StatusCode: 403}, expected: ExitUnauthorized},
		{name: "server error", err: &clickup.Error{StatusCode: 500}, expected: ExitAPIError},
		{name: "wrapped api error", err: fmt.Errorf("walk: %w", &clickup.Error{StatusCode: 404}), expected: ExitNotFound},
		{name: "generic error", err: errors.New("something went wrong"), expected: ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, mapErrorToExitCode(tt.err))
		})
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input    string
		expected int
		wantErr  bool
	}{
		{"1", 1, false},
		{"4", 4, false},
		{"urgent", 1, false},
		{"High", 2, false},
		{"normal", 3, false},
		{"LOW", 4, false},
		{"0", 0, true},
		{"5", 0, true},
		{"asap", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parsePriority(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, ExitInvalidArgument, mapErrorToExitCode(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseDue(t *testing.T) {
	berlin := time.FixedZone("CET", 3600)
	now := time.Date(2026, 3, 1, 23, 30, 0, 0, time.UTC) // already March 2nd in CET

	tests := []struct {
		input    string
		loc      *time.Location
		expected time.Time
	}{
		{"today", time.UTC, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"tomorrow", time.UTC, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)},
		{"today", berlin, time.Date(2026, 3, 2, 0, 0, 0, 0, berlin)},
		{"2026-04-15", time.UTC, time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)},
		{"2026-04-15", berlin, time.Date(2026, 4, 15, 0, 0, 0, 0, berlin)},
		{"2026-04-15 14:30", time.UTC, time.Date(2026, 4, 15, 14, 30, 0, 0, time.UTC)},
		{"April 15, 2026", time.UTC, time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input+"/"+tt.loc.String(), func(t *testing.T) {
			got, err := parseDue(tt.input, now, tt.loc)
			require.NoError(t, err)
			assert.Equal(t, tt.expected.UnixMilli(), got)
		})
	}

	_, err := parseDue("someday", now, time.UTC)
	assert.Equal(t, ExitInvalidArgument, mapErrorToExitCode(err))
}

func TestFindField(t *testing.T) {
	fields := []clickup.CustomFieldDefinition{
		{ID: "f-1", Name: "Story Points", Type: "number"},
		{ID: "f-2", Name: "Release Stage", Type: "drop_down"},
		{ID: "f-3", Name: "Owner", Type: "text"},
		{ID: "f-4", Name: "owner", Type: "text"},
	}

	for _, ref := range []string{"f-1", "Story Points", "story points", "story-points", "StoryPoints", "story_points"} {
		f, err := findField(fields, ref)
		require.NoError(t, err, ref)
		assert.Equal(t, "f-1", f.ID, ref)
	}

	_, err := findField(fields, "owner")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ambiguous")

	f, err := findField(fields, "f-4")
	require.NoError(t, err)
	assert.Equal(t, "owner", f.Name)

	_, err = findField(fields, "velocity")
	assert.Error(t, err)
}

func TestParseFieldValue(t *testing.T) {
	stage := clickup.CustomFieldDefinition{
		Name: "Release Stage",
		Type: "drop_down",
		TypeConfig: &clickup.CustomFieldTypeConfig{
			Options: []clickup.CustomFieldOption{{ID: "opt-a", Name: "alpha"}, {ID: "opt-b", Name: "Beta"}},
		},
	}

	tests := []struct {
		name     string
		field    clickup.CustomFieldDefinition
		raw      string
		expected interface{}
		wantErr  bool
	}{
		{"number", clickup.CustomFieldDefinition{Type: "number"}, "3.5", 3.5, false},
		{"bad number", clickup.CustomFieldDefinition{Type: "currency"}, "lots", nil, true},
		{"checkbox", clickup.CustomFieldDefinition{Type: "checkbox"}, "true", true, false},
		{"bad checkbox", clickup.CustomFieldDefinition{Type: "checkbox"}, "yes please", nil, true},
		{"option by name", stage, "beta", "opt-b", false},
		{"option by id", stage, "opt-a", "opt-a", false},
		{"missing option", stage, "ga", nil, true},
		{"text", clickup.CustomFieldDefinition{Type: "text"}, "hello", "hello", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFieldValue(tt.field, tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd(&app{})

	assert.Equal(t, "clickup", cmd.Use)
	for _, name := range []string{"json", "output", "token", "base-url", "debug"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "text", cmd.PersistentFlags().Lookup("output").DefValue)

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Subset(t, names, []string{"workspaces", "spaces", "folders", "lists", "tasks", "fields", "tree", "export", "init", "version"})
}
