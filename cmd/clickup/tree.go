package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/modelingevolution/clickup/internal/hierarchy"
	"github.com/modelingevolution/clickup/internal/snapshot"
	"github.com/modelingevolution/clickup/pkg/clickup"
)

// walkOptions are the flags shared by tree and export.
type walkOptions struct {
	workspace     string
	tasks         bool
	includeClosed bool
	maxPages      int
}

func (o *walkOptions) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&o.workspace, "workspace", "", "Workspace ID")
	flags.BoolVar(&o.tasks, "tasks", false, "Also fetch the tasks of every list")
	flags.BoolVar(&o.includeClosed, "include-closed", false, "Include closed tasks (with --tasks)")
	flags.IntVar(&o.maxPages, "max-pages", hierarchy.DefaultMaxPages, "Maximum task pages per list")
}

// walk resolves the workspace and walks it. A partial tree is returned
// together with the branch errors.
func (a *app) walk(cmd *cobra.Command, o *walkOptions) (*hierarchy.Tree, error) {
	c, err := a.getClient()
	if err != nil {
		return nil, err
	}
	workspaceID, err := a.workspaceID(cmd.Context(), o.workspace)
	if err != nil {
		return nil, err
	}

	var taskOpts []clickup.ListTasksOption
	if o.includeClosed {
		taskOpts = append(taskOpts, clickup.WithIncludeClosed(true))
	}
	opts := []hierarchy.Option{
		hierarchy.WithMaxPages(o.maxPages),
		hierarchy.WithLogger(a.logger),
	}
	if o.tasks {
		opts = append(opts, hierarchy.WithTasks())
	}

	tree, walkErr := hierarchy.Walk(cmd.Context(), hierarchy.FromClient(c, taskOpts...), workspaceID, opts...)
	if tree == nil {
		return nil, walkErr
	}

	// The workspace name only comes from the workspace listing.
	if workspaces, err := c.Workspaces.List(cmd.Context()); err == nil {
		for _, ws := range workspaces {
			if ws.ID == workspaceID {
				tree.WorkspaceName = ws.Name
			}
		}
	}
	return tree, walkErr
}

func newTreeCmd(a *app) *cobra.Command {
	o := &walkOptions{}

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Print the space, folder and list hierarchy of a workspace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := a.walk(cmd, o)
			if tree == nil {
				return err
			}

			if rerr := a.render(tree, func(w io.Writer) {
				tree.Print(w)
			}); rerr != nil {
				return rerr
			}
			return err
		},
	}
	o.bind(cmd)
	return cmd
}

// exportResult is what export reports on success.
type exportResult struct {
	File     string           `json:"file"`
	ExportID int64            `json:"export_id"`
	UUID     string           `json:"uuid"`
	Counts   hierarchy.Counts `json:"counts"`
	Partial  bool             `json:"partial"`
}

func newExportCmd(a *app) *cobra.Command {
	o := &walkOptions{}
	var allowPartial bool

	cmd := &cobra.Command{
		Use:   "export <file.db>",
		Short: "Save the workspace hierarchy into a SQLite file",
		Long: `Walk the workspace and save the hierarchy into a SQLite file. Every run adds a
new export to the file; earlier exports are kept.

If some branches fail, nothing is written unless --allow-partial is given.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, walkErr := a.walk(cmd, o)
			if tree == nil {
				return walkErr
			}
			if walkErr != nil && !allowPartial {
				return fmt.Errorf("walk incomplete, nothing exported (use --allow-partial): %w", walkErr)
			}

			store, err := snapshot.Open(args[0])
			if err != nil {
				return err
			}
			defer store.Close()

			exportID, err := store.Save(cmd.Context(), tree)
			if err != nil {
				return err
			}
			counts, err := store.Counts(cmd.Context(), exportID)
			if err != nil {
				return err
			}
			export, err := store.Export(cmd.Context(), exportID)
			if err != nil {
				return err
			}

			result := exportResult{
				File:     args[0],
				ExportID: exportID,
				UUID:     export.UUID,
				Counts:   counts,
				Partial:  walkErr != nil,
			}
			return a.render(result, func(w io.Writer) {
				fmt.Fprintf(w, "Exported workspace %s to %s (export %d)\n", tree.WorkspaceID, args[0], exportID)
				fmt.Fprintf(w, "  %d spaces, %d folders, %d lists, %d tasks\n",
					counts.Spaces, counts.Folders, counts.Lists, counts.Tasks)
				if walkErr != nil {
					fmt.Fprintf(w, "  partial: %s\n", walkErr)
				}
			})
		},
	}
	o.bind(cmd)
	cmd.Flags().BoolVar(&allowPartial, "allow-partial", false, "Save even when some branches failed")
	return cmd
}
