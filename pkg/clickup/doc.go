// Package clickup provides a Go client for the ClickUp v2 REST API.
//
// A Client groups one sub-client per resource: workspaces (which the API
// calls teams), spaces, folders, lists, tasks and custom fields. Every method
// is a single request/response round trip.
//
// # Quick Start
//
//	client, err := clickup.NewClient(
//	    clickup.WithAPIToken(os.Getenv("CLICKUP_API_TOKEN")),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	teams, err := client.Workspaces.List(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	spaces, err := client.Spaces.List(ctx, teams[0].ID)
//
// # Tasks
//
//	resp, err := client.Tasks.List(ctx, listID,
//	    clickup.WithPage(0),
//	    clickup.WithIncludeClosed(true),
//	)
//
//	task, err := client.Tasks.Create(ctx, listID, &clickup.CreateTaskRequest{
//	    Name:     "Write release notes",
//	    Priority: clickup.Int(2),
//	})
//
// # Error Handling
//
// Blank identifiers and nil request bodies are rejected before anything is
// sent:
//
//	if clickup.IsArgumentError(err) { ... }
//
// Non-success responses carry the HTTP status and ClickUp's ECODE:
//
//	if clickup.IsNotFound(err) { ... }
//	if clickup.IsUnauthorized(err) { ... }
//
//	var apiErr *clickup.Error
//	if errors.As(err, &apiErr) {
//	    fmt.Println(apiErr.StatusCode, apiErr.Code)
//	}
//
// Bodies that do not match the expected shape produce a *DecodeError.
package clickup
