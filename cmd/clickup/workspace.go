package main

import (
	"io"

	"github.com/spf13/cobra"
)

func newWorkspacesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "workspaces",
		Aliases: []string{"teams"},
		Short:   "List the workspaces the token can access",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.getClient()
			if err != nil {
				return err
			}

			workspaces, err := c.Workspaces.List(cmd.Context())
			if err != nil {
				return err
			}

			return a.render(workspaces, func(w io.Writer) {
				printWorkspaces(w, workspaces)
			})
		},
	}
}
