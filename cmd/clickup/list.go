package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/modelingevolution/clickup/pkg/clickup"
)

func newListsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lists",
		Short: "Manage lists",
	}
	cmd.AddCommand(
		newListsListCmd(a),
		newListsShowCmd(a),
		newListsCreateCmd(a),
		newListsUpdateCmd(a),
		newListsDeleteCmd(a),
	)
	return cmd
}

func newListsListCmd(a *app) *cobra.Command {
	var folder, space string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the lists of a folder, or the folderless lists of a space",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if folder != "" && space != "" {
				return usageErrorf("use either --folder or --space, not both")
			}

			var lists []clickup.List
			if folder != "" {
				c, err := a.getClient()
				if err != nil {
					return err
				}
				if lists, err = c.Lists.List(cmd.Context(), folder); err != nil {
					return err
				}
			} else {
				spaceID, err := a.spaceID(space)
				if err != nil {
					return err
				}
				c, err := a.getClient()
				if err != nil {
					return err
				}
				if lists, err = c.Lists.ListFolderless(cmd.Context(), spaceID); err != nil {
					return err
				}
			}

			return a.render(lists, func(w io.Writer) {
				printLists(w, lists)
			})
		},
	}
	cmd.Flags().StringVar(&folder, "folder", "", "Folder ID")
	cmd.Flags().StringVar(&space, "space", "", "Space ID (folderless lists)")
	return cmd
}

func newListsShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a list",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.getClient()
			if err != nil {
				return err
			}

			list, err := c.Lists.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return a.render(list, func(w io.Writer) {
				printList(w, list)
			})
		},
	}
}

func newListsCreateCmd(a *app) *cobra.Command {
	var folder, space, content, due, priority string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a list in a folder or directly in a space",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if (folder == "") == (space == "") {
				return usageErrorf("use exactly one of --folder or --space")
			}

			req := &clickup.CreateListRequest{Name: args[0]}
			if content != "" {
				req.Content = clickup.String(content)
			}
			if due != "" {
				ms, err := parseDue(due, a.now(), a.location)
				if err != nil {
					return err
				}
				req.DueDate = clickup.Int64(ms)
			}
			if priority != "" {
				p, err := parsePriority(priority)
				if err != nil {
					return err
				}
				req.Priority = clickup.Int(p)
			}

			c, err := a.getClient()
			if err != nil {
				return err
			}

			var list *clickup.List
			if folder != "" {
				list, err = c.Lists.CreateInFolder(cmd.Context(), folder, req)
			} else {
				list, err = c.Lists.CreateInSpace(cmd.Context(), space, req)
			}
			if err != nil {
				return err
			}

			return a.render(list, func(w io.Writer) {
				printList(w, list)
			})
		},
	}
	cmd.Flags().StringVar(&folder, "folder", "", "Folder ID")
	cmd.Flags().StringVar(&space, "space", "", "Space ID (folderless list)")
	cmd.Flags().StringVar(&content, "content", "", "List description")
	cmd.Flags().StringVar(&due, "due", "", "Due date (e.g. 2026-03-01, tomorrow)")
	cmd.Flags().StringVar(&priority, "priority", "", "Priority: 1-4 or urgent/high/normal/low")
	return cmd
}

func newListsUpdateCmd(a *app) *cobra.Command {
	var name, content, due string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a list",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &clickup.UpdateListRequest{}
			flags := cmd.Flags()
			if flags.Changed("name") {
				req.Name = clickup.String(name)
			}
			if flags.Changed("content") {
				req.Content = clickup.String(content)
			}
			if flags.Changed("due") {
				ms, err := parseDue(due, a.now(), a.location)
				if err != nil {
					return err
				}
				req.DueDate = clickup.Int64(ms)
			}
			if req.Name == nil && req.Content == nil && req.DueDate == nil {
				return usageErrorf("nothing to update: use --name, --content or --due")
			}

			c, err := a.getClient()
			if err != nil {
				return err
			}

			list, err := c.Lists.Update(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}

			return a.render(list, func(w io.Writer) {
				printList(w, list)
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&content, "content", "", "New description")
	cmd.Flags().StringVar(&due, "due", "", "New due date")
	return cmd
}

func newListsDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a list with its tasks",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.getClient()
			if err != nil {
				return err
			}

			if err := c.Lists.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}

			return a.success(fmt.Sprintf("Deleted list %s", args[0]))
		},
	}
}
