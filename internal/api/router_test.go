package api_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelingevolution/clickup/internal/api"
	"github.com/modelingevolution/clickup/internal/hierarchy"
	"github.com/modelingevolution/clickup/internal/store"
	"github.com/modelingevolution/clickup/pkg/clickup"
)

const token = "pk_round_trip"

func newSandbox(t *testing.T) (*clickup.Client, *store.Demo) {
	t.Helper()

	st := store.New()
	demo, err := st.SeedDemo()
	require.NoError(t, err)

	server := httptest.NewServer(api.NewRouter(st, nil, token))
	t.Cleanup(server.Close)

	client, err := clickup.NewClient(
		clickup.WithAPIToken(token),
		clickup.WithBaseURL(server.URL+"/api/v2"),
	)
	require.NoError(t, err)
	return client, demo
}

func TestSDKRoundTrip_Hierarchy(t *testing.T) {
	client, demo := newSandbox(t)
	ctx := context.Background()

	workspaces, err := client.Workspaces.List(ctx)
	require.NoError(t, err)
	require.Len(t, workspaces, 1)
	assert.Equal(t, demo.TeamID, workspaces[0].ID)

	space, err := client.Spaces.Create(ctx, demo.TeamID, &clickup.CreateSpaceRequest{Name: "Research"})
	require.NoError(t, err)
	space, err = client.Spaces.Update(ctx, space.ID, &clickup.UpdateSpaceRequest{Color: clickup.String("#123456")})
	require.NoError(t, err)
	assert.Equal(t, "#123456", *space.Color)

	got, err := client.Spaces.Get(ctx, space.ID)
	require.NoError(t, err)
	assert.Equal(t, "Research", got.Name)

	folder, err := client.Folders.Create(ctx, space.ID, &clickup.CreateFolderRequest{Name: "Papers"})
	require.NoError(t, err)
	folder, err = client.Folders.Update(ctx, folder.ID, &clickup.UpdateFolderRequest{Name: "Reading"})
	require.NoError(t, err)
	assert.Equal(t, "Reading", folder.Name)

	list, err := client.Lists.CreateInFolder(ctx, folder.ID, &clickup.CreateListRequest{Name: "To read"})
	require.NoError(t, err)
	loose, err := client.Lists.CreateInSpace(ctx, space.ID, &clickup.CreateListRequest{Name: "Scratch"})
	require.NoError(t, err)
	list, err = client.Lists.Update(ctx, list.ID, &clickup.UpdateListRequest{Content: clickup.String("queue")})
	require.NoError(t, err)
	assert.Equal(t, "queue", *list.Content)

	lists, err := client.Lists.List(ctx, folder.ID)
	require.NoError(t, err)
	assert.Len(t, lists, 1)
	folderless, err := client.Lists.ListFolderless(ctx, space.ID)
	require.NoError(t, err)
	require.Len(t, folderless, 1)
	assert.Equal(t, loose.ID, folderless[0].ID)

	require.NoError(t, client.Lists.Delete(ctx, loose.ID))
	require.NoError(t, client.Folders.Delete(ctx, folder.ID))
	require.NoError(t, client.Spaces.Delete(ctx, space.ID))

	_, err = client.Spaces.Get(ctx, space.ID)
	require.Error(t, err)
	assert.True(t, clickup.IsNotFound(err))
	assert.Equal(t, "SPACE_NOT_FOUND", clickup.ErrorCode(err))
}

func TestSDKRoundTrip_Tasks(t *testing.T) {
	client, demo := newSandbox(t)
	ctx := context.Background()

	page, err := client.Tasks.List(ctx, demo.ListID)
	require.NoError(t, err)
	assert.Len(t, page.Tasks, 3)
	assert.True(t, page.LastPage)

	page, err = client.Tasks.List(ctx, demo.ListID,
		clickup.WithIncludeClosed(true),
		clickup.WithSubtasks(true),
		clickup.WithOrderBy("id"),
	)
	require.NoError(t, err)
	assert.Len(t, page.Tasks, 5)

	task, err := client.Tasks.Create(ctx, demo.ListID, &clickup.CreateTaskRequest{
		Name:      "Benchmark",
		Priority:  clickup.Int(3),
		Assignees: []int64{demo.UserID},
	})
	require.NoError(t, err)
	assert.Equal(t, "normal", task.Priority.Priority)

	task, err = client.Tasks.Update(ctx, task.ID, &clickup.UpdateTaskRequest{
		Status: clickup.String("in progress"),
	})
	require.NoError(t, err)
	assert.Equal(t, "in progress", task.Status.Status)

	fields, err := client.CustomFields.ListAccessible(ctx, demo.ListID)
	require.NoError(t, err)
	require.Len(t, fields, 2)

	require.NoError(t, client.CustomFields.SetValue(ctx, task.ID, demo.PointsField, &clickup.SetCustomFieldRequest{Value: 13}))
	task, err = client.Tasks.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(13), task.CustomFields[0].Value)

	cfg, err := task.CustomFields[1].DecodeTypeConfig()
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Len(t, cfg.Options, 3)
	assert.Equal(t, "beta", cfg.Options[1].Name)

	require.NoError(t, client.CustomFields.RemoveValue(ctx, task.ID, demo.PointsField))
	require.NoError(t, client.Tasks.Delete(ctx, task.ID))

	_, err = client.Tasks.Get(ctx, task.ID)
	assert.True(t, clickup.IsNotFound(err))

	err = client.CustomFields.SetValue(ctx, demo.TaskIDs[0], demo.PointsField, &clickup.SetCustomFieldRequest{Value: "many"})
	require.Error(t, err)
	assert.Equal(t, 400, clickup.StatusCode(err))
}

func TestSDKRoundTrip_WrongToken(t *testing.T) {
	_, demo := newSandbox(t)

	st := store.New()
	server := httptest.NewServer(api.NewRouter(st, nil, token))
	defer server.Close()

	client, err := clickup.NewClient(clickup.WithAPIToken("pk_wrong"), clickup.WithBaseURL(server.URL+"/api/v2"))
	require.NoError(t, err)

	_, err = client.Spaces.List(context.Background(), demo.TeamID)
	require.Error(t, err)
	assert.True(t, clickup.IsUnauthorized(err))
	assert.Equal(t, "OAUTH_025", clickup.ErrorCode(err))
}

func TestWalkAgainstSandbox(t *testing.T) {
	client, demo := newSandbox(t)

	tree, err := hierarchy.Walk(context.Background(), hierarchy.FromClient(client, clickup.WithIncludeClosed(true)), demo.TeamID, hierarchy.WithTasks())
	require.NoError(t, err)

	assert.Equal(t, hierarchy.Counts{Spaces: 2, Folders: 1, Lists: 2, Tasks: 5}, tree.Counts())
}
