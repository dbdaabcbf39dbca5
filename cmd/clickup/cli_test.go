package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelingevolution/clickup/internal/api"
	"github.com/modelingevolution/clickup/internal/config"
	"github.com/modelingevolution/clickup/internal/hierarchy"
	"github.com/modelingevolution/clickup/internal/store"
	"github.com/modelingevolution/clickup/pkg/clickup"
)

const testToken = "pk_cli_test"

var testNow = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

// cliEnv runs commands against a seeded sandbox with an in-memory
// filesystem and a fake environment.
type cliEnv struct {
	fs     afero.Fs
	env    map[string]string
	demo   *store.Demo
	opened []string

	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newCLIEnv(t *testing.T) *cliEnv {
	t.Helper()

	st := store.New()
	demo, err := st.SeedDemo()
	require.NoError(t, err)

	server := httptest.NewServer(api.NewRouter(st, nil, testToken))
	t.Cleanup(server.Close)

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/work/sub", 0755))
	require.NoError(t, fs.MkdirAll("/home/test", 0755))

	return &cliEnv{
		fs: fs,
		env: map[string]string{
			config.EnvToken:   testToken,
			config.EnvBaseURL: server.URL + "/api/v2",
		},
		demo: demo,
	}
}

func (e *cliEnv) newApp(workDir string) *app {
	e.stdout = &bytes.Buffer{}
	e.stderr = &bytes.Buffer{}
	return &app{
		fs:      e.fs,
		homeDir: "/home/test",
		workDir: workDir,
		lookupEnv: func(key string) (string, bool) {
			v, ok := e.env[key]
			return v, ok
		},
		stdout: e.stdout,
		stderr: e.stderr,
		openURL: func(url string) error {
			e.opened = append(e.opened, url)
			return nil
		},
		location: time.UTC,
		now:      func() time.Time { return testNow },
	}
}

// run executes one command line in /work.
func (e *cliEnv) run(args ...string) error {
	return e.runIn("/work", args...)
}

func (e *cliEnv) runIn(workDir string, args ...string) error {
	cmd := newRootCmd(e.newApp(workDir))
	cmd.SetArgs(args)
	return cmd.ExecuteContext(context.Background())
}

// runJSON executes a command with --json and decodes its output into v.
func (e *cliEnv) runJSON(t *testing.T, v interface{}, args ...string) {
	t.Helper()
	require.NoError(t, e.run(append(args, "--json")...), e.stderr.String())
	require.NoError(t, json.Unmarshal(e.stdout.Bytes(), v), e.stdout.String())
}

func TestCLI_Workspaces(t *testing.T) {
	e := newCLIEnv(t)

	var workspaces []clickup.Workspace
	e.runJSON(t, &workspaces, "workspaces")
	require.Len(t, workspaces, 1)
	assert.Equal(t, e.demo.TeamID, workspaces[0].ID)
	assert.Equal(t, "Demo Workspace", workspaces[0].Name)

	require.NoError(t, e.run("workspaces"))
	assert.Contains(t, e.stdout.String(), "Demo Workspace")

	require.NoError(t, e.run("workspaces", "-o", "yaml"))
	assert.Contains(t, e.stdout.String(), "name: Demo Workspace")
}

func TestCLI_SpacesUseOnlyWorkspace(t *testing.T) {
	e := newCLIEnv(t)

	require.NoError(t, e.run("spaces", "list"))
	out := e.stdout.String()
	assert.Contains(t, out, "Engineering")
	assert.Contains(t, out, "Operations")

	var space clickup.Space
	e.runJSON(t, &space, "spaces", "create", "Research")
	assert.Equal(t, "Research", space.Name)

	e.runJSON(t, &space, "spaces", "update", space.ID, "--private", "--color", "#112233")
	assert.True(t, space.Private)
	require.NotNil(t, space.Color)
	assert.Equal(t, "#112233", *space.Color)

	require.NoError(t, e.run("spaces", "delete", space.ID))
	assert.Contains(t, e.stdout.String(), "Deleted space "+space.ID)

	err := e.run("spaces", "update", e.demo.SpaceID)
	assert.Equal(t, ExitInvalidArgument, mapErrorToExitCode(err))
}

func TestCLI_FoldersAndLists(t *testing.T) {
	e := newCLIEnv(t)

	var folders []clickup.Folder
	e.runJSON(t, &folders, "folders", "list", "--space", e.demo.SpaceID)
	require.Len(t, folders, 1)
	assert.Equal(t, "Roadmap", folders[0].Name)

	var folder clickup.Folder
	e.runJSON(t, &folder, "folders", "create", "Backlog", "--space", e.demo.SpaceID)
	e.runJSON(t, &folder, "folders", "rename", folder.ID, "Icebox")
	assert.Equal(t, "Icebox", folder.Name)

	var list clickup.List
	e.runJSON(t, &list, "lists", "create", "Ideas", "--folder", folder.ID, "--due", "tomorrow", "--priority", "low")
	assert.Equal(t, "Ideas", list.Name)
	require.NotNil(t, list.Folder)
	assert.Equal(t, folder.ID, list.Folder.ID)
	require.NotNil(t, list.DueDate)
	assert.Equal(t, "2026-03-02", millisDate(list.DueDate))

	var lists []clickup.List
	e.runJSON(t, &lists, "lists", "list", "--space", e.demo.SpaceID)
	require.Len(t, lists, 1)
	assert.Equal(t, "Inbox", lists[0].Name)

	e.runJSON(t, &list, "lists", "update", list.ID, "--content", "someday")
	require.NotNil(t, list.Content)
	assert.Equal(t, "someday", *list.Content)

	err := e.run("lists", "create", "Nowhere")
	assert.Equal(t, ExitInvalidArgument, mapErrorToExitCode(err))

	require.NoError(t, e.run("folders", "delete", folder.ID))
	err = e.run("lists", "show", list.ID)
	assert.Equal(t, ExitNotFound, mapErrorToExitCode(err))
}

func TestCLI_TaskLifecycle(t *testing.T) {
	e := newCLIEnv(t)

	var page clickup.TasksResponse
	e.runJSON(t, &page, "tasks", "list", "--list", e.demo.ListID)
	assert.Len(t, page.Tasks, 3)
	assert.True(t, page.LastPage)

	e.runJSON(t, &page, "tasks", "list", "--list", e.demo.ListID, "--include-closed")
	assert.Len(t, page.Tasks, 4)

	e.runJSON(t, &page, "tasks", "list", "--list", e.demo.ListID, "--status", "in progress")
	require.Len(t, page.Tasks, 1)
	assert.Equal(t, "Implement OAuth flow", page.Tasks[0].Name)

	var task clickup.Task
	e.runJSON(t, &task, "tasks", "create", "Ship it",
		"--list", e.demo.ListID, "-p", "high", "--due", "2026-04-15", "--tag", "release", "-d", "Before Friday")
	assert.Equal(t, "Ship it", task.Name)
	require.NotNil(t, task.Priority)
	assert.Equal(t, "high", task.Priority.Priority)
	assert.Equal(t, "2026-04-15", millisDate(task.DueDate))
	require.Len(t, task.Tags, 1)
	assert.Equal(t, "release", task.Tags[0].Name)

	e.runJSON(t, &task, "tasks", "update", task.ID, "--status", "complete", "--add-assignee", strconv.FormatInt(e.demo.UserID, 10))
	assert.Equal(t, "complete", task.Status.Status)
	require.Len(t, task.Assignees, 1)

	require.NoError(t, e.run("tasks", "show", task.ID))
	assert.Contains(t, e.stdout.String(), "Before Friday")

	require.NoError(t, e.run("tasks", "open", task.ID))
	assert.Equal(t, []string{store.TaskURLPrefix + task.ID}, e.opened)

	require.NoError(t, e.run("tasks", "delete", task.ID))
	err := e.run("tasks", "show", task.ID)
	assert.Equal(t, ExitNotFound, mapErrorToExitCode(err))
}

func TestCLI_Fields(t *testing.T) {
	e := newCLIEnv(t)
	taskID := e.demo.TaskIDs[1]

	require.NoError(t, e.run("fields", "list", "--list", e.demo.ListID))
	assert.Contains(t, e.stdout.String(), "Story Points")
	assert.Contains(t, e.stdout.String(), "alpha, beta, ga")

	require.NoError(t, e.run("fields", "set", taskID, "story-points", "8"))
	require.NoError(t, e.run("fields", "set", taskID, "ReleaseStage", "beta", "--list", e.demo.ListID))

	var task clickup.Task
	e.runJSON(t, &task, "tasks", "show", taskID)
	values := map[string]interface{}{}
	for _, f := range task.CustomFields {
		values[f.Name] = f.Value
	}
	assert.Equal(t, float64(8), values["Story Points"])
	assert.NotNil(t, values["Release Stage"])

	require.NoError(t, e.run("fields", "unset", taskID, e.demo.PointsField))
	var after clickup.Task
	e.runJSON(t, &after, "tasks", "show", taskID)
	for _, f := range after.CustomFields {
		if f.ID == e.demo.PointsField {
			assert.Nil(t, f.Value)
		}
	}

	err := e.run("fields", "set", taskID, "Story Points", "many")
	assert.Equal(t, ExitInvalidArgument, mapErrorToExitCode(err))
	err = e.run("fields", "set", taskID, "Velocity", "1")
	assert.Equal(t, ExitInvalidArgument, mapErrorToExitCode(err))
}

func TestCLI_Tree(t *testing.T) {
	e := newCLIEnv(t)

	require.NoError(t, e.run("tree", "--tasks"))
	out := e.stdout.String()
	assert.Contains(t, out, "workspace "+e.demo.TeamID)
	assert.Contains(t, out, "Roadmap/ [folder "+e.demo.FolderID+"]")
	assert.Contains(t, out, "Sprint 1 [list "+e.demo.ListID+"] (3 tasks)")
	assert.Contains(t, out, "- Triage bug reports")

	var tree hierarchy.Tree
	e.runJSON(t, &tree, "tree")
	assert.Equal(t, "Demo Workspace", tree.WorkspaceName)
	assert.Equal(t, hierarchy.Counts{Spaces: 2, Folders: 1, Lists: 2}, tree.Counts())
}

func TestCLI_Export(t *testing.T) {
	e := newCLIEnv(t)
	dbPath := filepath.Join(t.TempDir(), "snapshot.db")

	var result exportResult
	e.runJSON(t, &result, "export", dbPath, "--tasks", "--include-closed")
	assert.Equal(t, hierarchy.Counts{Spaces: 2, Folders: 1, Lists: 2, Tasks: 5}, result.Counts)
	assert.False(t, result.Partial)
	assert.NotEmpty(t, result.UUID)

	var second exportResult
	e.runJSON(t, &second, "export", dbPath)
	assert.NotEqual(t, result.ExportID, second.ExportID)
	assert.Zero(t, second.Counts.Tasks)
}

func TestCLI_InitAndProjectDefaults(t *testing.T) {
	e := newCLIEnv(t)

	require.NoError(t, e.run("init", "--workspace", e.demo.TeamID, "--list", e.demo.ListID))
	assert.Contains(t, e.stdout.String(), "/work/clickup.toml")

	err := e.run("init", "--workspace", e.demo.TeamID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	// The list default is found from a subdirectory.
	require.NoError(t, e.runIn("/work/sub", "tasks", "list"))
	assert.Contains(t, e.stdout.String(), "Design login page")

	err = e.runIn("/work/sub", "folders", "list")
	assert.Equal(t, ExitNotConfigured, mapErrorToExitCode(err))
}

func TestCLI_ExitCodes(t *testing.T) {
	e := newCLIEnv(t)

	err := e.run("tasks", "list")
	assert.Equal(t, ExitNotConfigured, mapErrorToExitCode(err), "no list configured")

	err = e.run("tasks", "show", "nope")
	assert.Equal(t, ExitNotFound, mapErrorToExitCode(err))

	err = e.run("tasks", "create", "x", "--list", e.demo.ListID, "--priority", "asap")
	assert.Equal(t, ExitInvalidArgument, mapErrorToExitCode(err))

	err = e.run("tasks", "show")
	assert.Equal(t, ExitInvalidArgument, mapErrorToExitCode(err))

	err = e.run("workspaces", "--output", "xml")
	assert.Equal(t, ExitInvalidArgument, mapErrorToExitCode(err))

	err = e.run("workspaces", "--no-such-flag")
	assert.Equal(t, ExitInvalidArgument, mapErrorToExitCode(err))

	err = e.run("workspaces", "--token", "pk_wrong")
	assert.Equal(t, ExitUnauthorized, mapErrorToExitCode(err))

	err = e.run("spaces", "create", "Engineering")
	assert.Equal(t, ExitAPIError, mapErrorToExitCode(err), "duplicate space name is a 400")

	delete(e.env, config.EnvToken)
	err = e.run("workspaces")
	assert.Equal(t, ExitNotConfigured, mapErrorToExitCode(err))
}

func TestCLI_TokenFromDotEnv(t *testing.T) {
	e := newCLIEnv(t)
	delete(e.env, config.EnvToken)
	require.NoError(t, afero.WriteFile(e.fs, "/work/.env", []byte(config.EnvToken+"="+testToken+"\n"), 0600))

	require.NoError(t, e.run("workspaces"))
	assert.Contains(t, e.stdout.String(), "Demo Workspace")
}

func TestCLI_ErrorOutput(t *testing.T) {
	e := newCLIEnv(t)

	err := e.run("tasks", "show", "nope", "--json")
	require.Error(t, err)

	var buf bytes.Buffer
	printError(&buf, err, true)
	var body struct {
		Error struct {
			Message string `json:"message"`
			Code    int    `json:"code"`
			Status  int    `json:"status"`
			ECode   string `json:"ecode"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &body))
	assert.Equal(t, ExitNotFound, body.Error.Code)
	assert.Equal(t, 404, body.Error.Status)
	assert.Equal(t, "TASK_NOT_FOUND", body.Error.ECode)

	buf.Reset()
	printError(&buf, err, false)
	assert.Contains(t, buf.String(), "Error: ")
}

func TestCLI_Version(t *testing.T) {
	e := newCLIEnv(t)
	require.NoError(t, e.run("version"))
	assert.Contains(t, e.stdout.String(), "clickup ")
}
