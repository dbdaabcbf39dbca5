package clickup

import (
	"context"
	"net/url"
	"strconv"

	"github.com/hashicorp/go-hclog"
)

// TaskClient accesses tasks.
type TaskClient struct {
	t      *transport
	logger hclog.Logger
}

// List returns one page of tasks in a list. Pages are 0-indexed; without
// WithPage the first page is returned. TasksResponse.LastPage reports
// whether more pages exist.
func (c *TaskClient) List(ctx context.Context, listID string, opts ...ListTasksOption) (*TasksResponse, error) {
	if err := requireID("listID", listID); err != nil {
		return nil, err
	}

	o := &listTasksOptions{}
	for _, opt := range opts {
		opt(o)
	}

	// page is always sent first, filters follow it.
	path := "list/" + url.PathEscape(listID) + "/task?page=" + strconv.Itoa(o.page)
	if q := o.filters(); len(q) > 0 {
		path += "&" + q.Encode()
	}

	c.logger.Info("getting tasks", "list_id", listID, "page", o.page)

	var resp TasksResponse
	if err := c.t.get(ctx, path, &resp); err != nil {
		return nil, err
	}

	c.logger.Info("retrieved tasks", "list_id", listID, "count", len(resp.Tasks), "last_page", resp.LastPage)
	return &resp, nil
}

// Get retrieves a task by ID.
func (c *TaskClient) Get(ctx context.Context, taskID string) (*Task, error) {
	if err := requireID("taskID", taskID); err != nil {
		return nil, err
	}

	c.logger.Info("getting task", "task_id", taskID)

	var task Task
	if err := c.t.get(ctx, "task/"+url.PathEscape(taskID), &task); err != nil {
		return nil, err
	}

	c.logger.Info("retrieved task", "task_id", task.ID, "name", task.Name)
	return &task, nil
}

// Create creates a task in a list.
func (c *TaskClient) Create(ctx context.Context, listID string, req *CreateTaskRequest) (*Task, error) {
	if err := requireID("listID", listID); err != nil {
		return nil, err
	}
	if err := requireBody("request", req); err != nil {
		return nil, err
	}
	if err := requireValid("request", req); err != nil {
		return nil, err
	}

	c.logger.Info("creating task", "list_id", listID, "name", req.Name)

	var task Task
	if err := c.t.post(ctx, "list/"+url.PathEscape(listID)+"/task", req, &task); err != nil {
		return nil, err
	}

	c.logger.Info("created task", "task_id", task.ID)
	return &task, nil
}

// Update modifies a task.
func (c *TaskClient) Update(ctx context.Context, taskID string, req *UpdateTaskRequest) (*Task, error) {
	if err := requireID("taskID", taskID); err != nil {
		return nil, err
	}
	if err := requireBody("request", req); err != nil {
		return nil, err
	}

	c.logger.Info("updating task", "task_id", taskID)

	var task Task
	if err := c.t.put(ctx, "task/"+url.PathEscape(taskID), req, &task); err != nil {
		return nil, err
	}

	c.logger.Info("updated task", "task_id", task.ID)
	return &task, nil
}

// Delete removes a task.
func (c *TaskClient) Delete(ctx context.Context, taskID string) error {
	if err := requireID("taskID", taskID); err != nil {
		return err
	}

	c.logger.Info("deleting task", "task_id", taskID)

	if err := c.t.delete(ctx, "task/"+url.PathEscape(taskID)); err != nil {
		return err
	}

	c.logger.Info("deleted task", "task_id", taskID)
	return nil
}
