package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/modelingevolution/clickup/pkg/clickup"
)

func newFieldsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fields",
		Short: "Manage custom field values",
		Long: `Manage custom field values. A field can be named by its ID or by its name;
names match ignoring case and separators.`,
	}
	cmd.AddCommand(
		newFieldsListCmd(a),
		newFieldsSetCmd(a),
		newFieldsUnsetCmd(a),
	)
	return cmd
}

func newFieldsListCmd(a *app) *cobra.Command {
	var list string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the custom fields available on a list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			listID, err := a.listID(list)
			if err != nil {
				return err
			}
			c, err := a.getClient()
			if err != nil {
				return err
			}

			fields, err := c.CustomFields.ListAccessible(cmd.Context(), listID)
			if err != nil {
				return err
			}

			return a.render(fields, func(w io.Writer) {
				printFields(w, fields)
			})
		},
	}
	cmd.Flags().StringVar(&list, "list", "", "List ID")
	return cmd
}

func newFieldsSetCmd(a *app) *cobra.Command {
	var list string

	cmd := &cobra.Command{
		Use:   "set <task> <field> <value>",
		Short: "Set a custom field on a task",
		Args:  exactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.getClient()
			if err != nil {
				return err
			}

			field, err := a.lookupField(cmd.Context(), c, args[0], args[1], list)
			if err != nil {
				return err
			}
			value, err := parseFieldValue(field, args[2])
			if err != nil {
				return err
			}

			req := &clickup.SetCustomFieldRequest{Value: value}
			if err := c.CustomFields.SetValue(cmd.Context(), args[0], field.ID, req); err != nil {
				return err
			}

			return a.success(fmt.Sprintf("Set %s on task %s", field.Name, args[0]))
		},
	}
	cmd.Flags().StringVar(&list, "list", "", "List the field belongs to (default: the task's list)")
	return cmd
}

func newFieldsUnsetCmd(a *app) *cobra.Command {
	var list string

	cmd := &cobra.Command{
		Use:   "unset <task> <field>",
		Short: "Remove a custom field value from a task",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.getClient()
			if err != nil {
				return err
			}

			field, err := a.lookupField(cmd.Context(), c, args[0], args[1], list)
			if err != nil {
				return err
			}

			if err := c.CustomFields.RemoveValue(cmd.Context(), args[0], field.ID); err != nil {
				return err
			}

			return a.success(fmt.Sprintf("Removed %s from task %s", field.Name, args[0]))
		},
	}
	cmd.Flags().StringVar(&list, "list", "", "List the field belongs to (default: the task's list)")
	return cmd
}

// lookupField finds a field definition on listID, or on the task's own list
// when listID is empty.
func (a *app) lookupField(ctx context.Context, c *clickup.Client, taskID, ref, listID string) (clickup.CustomFieldDefinition, error) {
	if listID == "" {
		task, err := c.Tasks.Get(ctx, taskID)
		if err != nil {
			return clickup.CustomFieldDefinition{}, err
		}
		if task.List == nil {
			return clickup.CustomFieldDefinition{}, usageErrorf("task %s has no list: use --list", taskID)
		}
		listID = task.List.ID
	}

	fields, err := c.CustomFields.ListAccessible(ctx, listID)
	if err != nil {
		return clickup.CustomFieldDefinition{}, err
	}
	return findField(fields, ref)
}
