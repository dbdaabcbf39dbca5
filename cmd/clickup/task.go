package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/modelingevolution/clickup/pkg/clickup"
)

func newTasksCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Manage tasks",
	}
	cmd.AddCommand(
		newTasksListCmd(a),
		newTasksShowCmd(a),
		newTasksCreateCmd(a),
		newTasksUpdateCmd(a),
		newTasksDeleteCmd(a),
		newTasksOpenCmd(a),
	)
	return cmd
}

func newTasksListCmd(a *app) *cobra.Command {
	var (
		list          string
		page          int
		includeClosed bool
		archived      bool
		subtasks      bool
		statuses      []string
		assignees     []int64
		orderBy       string
		reverse       bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List one page of tasks in a list",
		Long: `List one page of tasks in a list. Pages hold up to 100 tasks and start at 0.
Closed tasks and subtasks are hidden unless asked for.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if page < 0 {
				return usageErrorf("--page must not be negative")
			}
			listID, err := a.listID(list)
			if err != nil {
				return err
			}
			c, err := a.getClient()
			if err != nil {
				return err
			}

			opts := []clickup.ListTasksOption{
				clickup.WithPage(page),
				clickup.WithIncludeClosed(includeClosed),
			}
			if archived {
				opts = append(opts, clickup.WithArchived(true))
			}
			if subtasks {
				opts = append(opts, clickup.WithSubtasks(true))
			}
			if len(statuses) > 0 {
				opts = append(opts, clickup.WithStatuses(statuses...))
			}
			if len(assignees) > 0 {
				opts = append(opts, clickup.WithAssignees(assignees...))
			}
			if orderBy != "" {
				opts = append(opts, clickup.WithOrderBy(orderBy))
			}
			if reverse {
				opts = append(opts, clickup.WithReverse(true))
			}

			resp, err := c.Tasks.List(cmd.Context(), listID, opts...)
			if err != nil {
				return err
			}

			return a.render(resp, func(w io.Writer) {
				printTaskList(w, resp, page)
			})
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&list, "list", "", "List ID")
	flags.IntVar(&page, "page", 0, "Page number, starting at 0")
	flags.BoolVar(&includeClosed, "include-closed", false, "Include closed tasks")
	flags.BoolVar(&archived, "archived", false, "Include archived tasks")
	flags.BoolVar(&subtasks, "subtasks", false, "Include subtasks")
	flags.StringSliceVar(&statuses, "status", nil, "Only tasks with these statuses (repeatable)")
	flags.Int64SliceVar(&assignees, "assignee", nil, "Only tasks assigned to these user IDs (repeatable)")
	flags.StringVar(&orderBy, "order-by", "", "Sort by created, updated, id or due_date")
	flags.BoolVar(&reverse, "reverse", false, "Reverse the sort order")
	return cmd
}

func newTasksShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a task",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.getClient()
			if err != nil {
				return err
			}

			task, err := c.Tasks.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return a.render(task, func(w io.Writer) {
				printTask(w, task)
			})
		},
	}
}

func newTasksCreateCmd(a *app) *cobra.Command {
	var (
		list        string
		description string
		status      string
		priority    string
		due         string
		parent      string
		tags        []string
		assignees   []int64
	)

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a task",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &clickup.CreateTaskRequest{
				Name:      args[0],
				Tags:      tags,
				Assignees: assignees,
			}
			if description != "" {
				req.Description = clickup.String(description)
			}
			if status != "" {
				req.Status = clickup.String(status)
			}
			if parent != "" {
				req.Parent = clickup.String(parent)
			}
			if priority != "" {
				p, err := parsePriority(priority)
				if err != nil {
					return err
				}
				req.Priority = clickup.Int(p)
			}
			if due != "" {
				ms, err := parseDue(due, a.now(), a.location)
				if err != nil {
					return err
				}
				req.DueDate = clickup.Int64(ms)
			}

			listID, err := a.listID(list)
			if err != nil {
				return err
			}
			c, err := a.getClient()
			if err != nil {
				return err
			}

			task, err := c.Tasks.Create(cmd.Context(), listID, req)
			if err != nil {
				return err
			}

			return a.render(task, func(w io.Writer) {
				printTask(w, task)
			})
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&list, "list", "", "List ID")
	flags.StringVarP(&description, "description", "d", "", "Task description")
	flags.StringVar(&status, "status", "", "Initial status")
	flags.StringVarP(&priority, "priority", "p", "", "Priority: 1-4 or urgent/high/normal/low")
	flags.StringVar(&due, "due", "", "Due date (e.g. 2026-03-01, tomorrow)")
	flags.StringVar(&parent, "parent", "", "Parent task ID (creates a subtask)")
	flags.StringSliceVar(&tags, "tag", nil, "Tag name (repeatable)")
	flags.Int64SliceVar(&assignees, "assignee", nil, "Assignee user ID (repeatable)")
	return cmd
}

func newTasksUpdateCmd(a *app) *cobra.Command {
	var (
		name        string
		description string
		status      string
		priority    string
		due         string
		archived    bool
		addUsers    []int64
		removeUsers []int64
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a task",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &clickup.UpdateTaskRequest{}
			flags := cmd.Flags()
			changed := false
			if flags.Changed("name") {
				req.Name = clickup.String(name)
				changed = true
			}
			if flags.Changed("description") {
				req.Description = clickup.String(description)
				changed = true
			}
			if flags.Changed("status") {
				req.Status = clickup.String(status)
				changed = true
			}
			if flags.Changed("priority") {
				p, err := parsePriority(priority)
				if err != nil {
					return err
				}
				req.Priority = clickup.Int(p)
				changed = true
			}
			if flags.Changed("due") {
				ms, err := parseDue(due, a.now(), a.location)
				if err != nil {
					return err
				}
				req.DueDate = clickup.Int64(ms)
				changed = true
			}
			if flags.Changed("archived") {
				req.Archived = clickup.Bool(archived)
				changed = true
			}
			if len(addUsers) > 0 || len(removeUsers) > 0 {
				req.Assignees = &clickup.AssigneeChanges{Add: addUsers, Rem: removeUsers}
				changed = true
			}
			if !changed {
				return usageErrorf("nothing to update: see clickup tasks update --help")
			}

			c, err := a.getClient()
			if err != nil {
				return err
			}

			task, err := c.Tasks.Update(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}

			return a.render(task, func(w io.Writer) {
				printTask(w, task)
			})
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&name, "name", "", "New name")
	flags.StringVarP(&description, "description", "d", "", "New description")
	flags.StringVar(&status, "status", "", "New status")
	flags.StringVarP(&priority, "priority", "p", "", "New priority: 1-4 or urgent/high/normal/low")
	flags.StringVar(&due, "due", "", "New due date")
	flags.BoolVar(&archived, "archived", false, "Archive (or with =false, unarchive) the task")
	flags.Int64SliceVar(&addUsers, "add-assignee", nil, "Add an assignee by user ID (repeatable)")
	flags.Int64SliceVar(&removeUsers, "remove-assignee", nil, "Remove an assignee by user ID (repeatable)")
	return cmd
}

func newTasksDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.getClient()
			if err != nil {
				return err
			}

			if err := c.Tasks.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}

			return a.success(fmt.Sprintf("Deleted task %s", args[0]))
		},
	}
}

func newTasksOpenCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "open <id>",
		Short: "Open a task in the browser",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.getClient()
			if err != nil {
				return err
			}

			task, err := c.Tasks.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if task.URL == nil || *task.URL == "" {
				return fmt.Errorf("task %s has no URL", task.ID)
			}

			if err := a.openURL(*task.URL); err != nil {
				return fmt.Errorf("failed to open browser: %w", err)
			}
			return a.success(fmt.Sprintf("Opened %s", *task.URL))
		},
	}
}
