package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/modelingevolution/clickup/pkg/clickup"
)

func newFoldersCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folders",
		Short: "Manage folders",
	}
	cmd.AddCommand(
		newFoldersListCmd(a),
		newFoldersShowCmd(a),
		newFoldersCreateCmd(a),
		newFoldersRenameCmd(a),
		newFoldersDeleteCmd(a),
	)
	return cmd
}

func newFoldersListCmd(a *app) *cobra.Command {
	var space string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List folders in a space",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			spaceID, err := a.spaceID(space)
			if err != nil {
				return err
			}
			c, err := a.getClient()
			if err != nil {
				return err
			}

			folders, err := c.Folders.List(cmd.Context(), spaceID)
			if err != nil {
				return err
			}

			return a.render(folders, func(w io.Writer) {
				printFolders(w, folders)
			})
		},
	}
	cmd.Flags().StringVar(&space, "space", "", "Space ID")
	return cmd
}

func newFoldersShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a folder and its lists",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.getClient()
			if err != nil {
				return err
			}

			folder, err := c.Folders.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return a.render(folder, func(w io.Writer) {
				printFolder(w, folder)
			})
		},
	}
}

func newFoldersCreateCmd(a *app) *cobra.Command {
	var space string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a folder",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			spaceID, err := a.spaceID(space)
			if err != nil {
				return err
			}
			c, err := a.getClient()
			if err != nil {
				return err
			}

			folder, err := c.Folders.Create(cmd.Context(), spaceID, &clickup.CreateFolderRequest{Name: args[0]})
			if err != nil {
				return err
			}

			return a.render(folder, func(w io.Writer) {
				printFolder(w, folder)
			})
		},
	}
	cmd.Flags().StringVar(&space, "space", "", "Space ID")
	return cmd
}

func newFoldersRenameCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a folder",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.getClient()
			if err != nil {
				return err
			}

			folder, err := c.Folders.Update(cmd.Context(), args[0], &clickup.UpdateFolderRequest{Name: args[1]})
			if err != nil {
				return err
			}

			return a.render(folder, func(w io.Writer) {
				printFolder(w, folder)
			})
		},
	}
}

func newFoldersDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a folder with its lists",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.getClient()
			if err != nil {
				return err
			}

			if err := c.Folders.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}

			return a.success(fmt.Sprintf("Deleted folder %s", args[0]))
		},
	}
}
