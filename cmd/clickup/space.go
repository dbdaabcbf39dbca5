package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/modelingevolution/clickup/pkg/clickup"
)

func newSpacesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spaces",
		Short: "Manage spaces",
	}
	cmd.AddCommand(
		newSpacesListCmd(a),
		newSpacesShowCmd(a),
		newSpacesCreateCmd(a),
		newSpacesUpdateCmd(a),
		newSpacesDeleteCmd(a),
	)
	return cmd
}

func newSpacesListCmd(a *app) *cobra.Command {
	var workspace string
	var archived bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List spaces in a workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.getClient()
			if err != nil {
				return err
			}
			workspaceID, err := a.workspaceID(cmd.Context(), workspace)
			if err != nil {
				return err
			}

			spaces, err := c.Spaces.List(cmd.Context(), workspaceID, clickup.WithArchivedSpaces(archived))
			if err != nil {
				return err
			}

			return a.render(spaces, func(w io.Writer) {
				printSpaces(w, spaces)
			})
		},
	}
	cmd.Flags().StringVar(&workspace, "workspace", "", "Workspace ID")
	cmd.Flags().BoolVar(&archived, "archived", false, "Include archived spaces")
	return cmd
}

func newSpacesShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a space",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.getClient()
			if err != nil {
				return err
			}

			space, err := c.Spaces.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return a.render(space, func(w io.Writer) {
				printSpace(w, space)
			})
		},
	}
}

func newSpacesCreateCmd(a *app) *cobra.Command {
	var workspace string
	var multipleAssignees bool

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a space",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.getClient()
			if err != nil {
				return err
			}
			workspaceID, err := a.workspaceID(cmd.Context(), workspace)
			if err != nil {
				return err
			}

			req := &clickup.CreateSpaceRequest{Name: args[0]}
			if cmd.Flags().Changed("multiple-assignees") {
				req.MultipleAssignees = clickup.Bool(multipleAssignees)
			}

			space, err := c.Spaces.Create(cmd.Context(), workspaceID, req)
			if err != nil {
				return err
			}

			return a.render(space, func(w io.Writer) {
				printSpace(w, space)
			})
		},
	}
	cmd.Flags().StringVar(&workspace, "workspace", "", "Workspace ID")
	cmd.Flags().BoolVar(&multipleAssignees, "multiple-assignees", false, "Allow several assignees per task")
	return cmd
}

func newSpacesUpdateCmd(a *app) *cobra.Command {
	var name, color string
	var private bool

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a space",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := &clickup.UpdateSpaceRequest{}
			flags := cmd.Flags()
			if flags.Changed("name") {
				req.Name = clickup.String(name)
			}
			if flags.Changed("color") {
				req.Color = clickup.String(color)
			}
			if flags.Changed("private") {
				req.Private = clickup.Bool(private)
			}
			if req.Name == nil && req.Color == nil && req.Private == nil {
				return usageErrorf("nothing to update: use --name, --color or --private")
			}

			c, err := a.getClient()
			if err != nil {
				return err
			}

			space, err := c.Spaces.Update(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}

			return a.render(space, func(w io.Writer) {
				printSpace(w, space)
			})
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "New name")
	cmd.Flags().StringVar(&color, "color", "", "New color (hex)")
	cmd.Flags().BoolVar(&private, "private", false, "Make the space private")
	return cmd
}

func newSpacesDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a space with everything in it",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.getClient()
			if err != nil {
				return err
			}

			if err := c.Spaces.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}

			return a.success(fmt.Sprintf("Deleted space %s", args[0]))
		},
	}
}
