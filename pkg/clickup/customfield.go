package clickup

import (
	"context"
	"net/url"

	"github.com/hashicorp/go-hclog"
)

// CustomFieldClient accesses custom fields and their values on tasks.
type CustomFieldClient struct {
	t      *transport
	logger hclog.Logger
}

// ListAccessible returns the custom fields available on a list.
func (c *CustomFieldClient) ListAccessible(ctx context.Context, listID string) ([]CustomFieldDefinition, error) {
	if err := requireID("listID", listID); err != nil {
		return nil, err
	}

	c.logger.Info("getting accessible custom fields", "list_id", listID)

	var resp CustomFieldsResponse
	if err := c.t.get(ctx, "list/"+url.PathEscape(listID)+"/field", &resp); err != nil {
		return nil, err
	}

	c.logger.Info("retrieved custom fields", "list_id", listID, "count", len(resp.Fields))
	return resp.Fields, nil
}

// SetValue sets a custom field value on a task.
func (c *CustomFieldClient) SetValue(ctx context.Context, taskID, fieldID string, req *SetCustomFieldRequest) error {
	if err := requireID("taskID", taskID); err != nil {
		return err
	}
	if err := requireID("fieldID", fieldID); err != nil {
		return err
	}
	if err := requireBody("request", req); err != nil {
		return err
	}

	c.logger.Info("setting custom field value", "task_id", taskID, "field_id", fieldID)

	if err := c.t.post(ctx, fieldPath(taskID, fieldID), req, nil); err != nil {
		return err
	}

	c.logger.Info("set custom field value", "task_id", taskID, "field_id", fieldID)
	return nil
}

// RemoveValue clears a custom field value on a task.
func (c *CustomFieldClient) RemoveValue(ctx context.Context, taskID, fieldID string) error {
	if err := requireID("taskID", taskID); err != nil {
		return err
	}
	if err := requireID("fieldID", fieldID); err != nil {
		return err
	}

	c.logger.Info("removing custom field value", "task_id", taskID, "field_id", fieldID)

	if err := c.t.delete(ctx, fieldPath(taskID, fieldID)); err != nil {
		return err
	}

	c.logger.Info("removed custom field value", "task_id", taskID, "field_id", fieldID)
	return nil
}

func fieldPath(taskID, fieldID string) string {
	return "task/" + url.PathEscape(taskID) + "/field/" + url.PathEscape(fieldID)
}
