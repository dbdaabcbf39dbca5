package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/modelingevolution/clickup/internal/config"
)

func newInitCmd(a *app) *cobra.Command {
	var cfg config.ProjectConfig

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a clickup.toml in the current directory",
		Long: `Create a clickup.toml configuration file in the current directory.

The file pins the workspace, space and list that commands use when --workspace,
--space or --list are not given. Commands run in any subdirectory find it too.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Workspace == "" {
				return usageErrorf("--workspace is required")
			}

			// Check if config already exists
			if exists, _ := afero.Exists(a.fs, filepath.Join(a.workDir, config.ConfigFileName)); exists {
				return fmt.Errorf("%s already exists in this directory", config.ConfigFileName)
			}

			path, err := config.WriteProjectConfig(a.fs, a.workDir, &cfg)
			if err != nil {
				return err
			}

			return a.render(map[string]string{
				"path":      path,
				"workspace": cfg.Workspace,
				"space":     cfg.Space,
				"list":      cfg.List,
			}, func(w io.Writer) {
				fmt.Fprintf(w, "Created %s\n", path)
			})
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&cfg.Workspace, "workspace", "", "Default workspace ID")
	flags.StringVar(&cfg.Space, "space", "", "Default space ID")
	flags.StringVar(&cfg.List, "list", "", "Default list ID")
	flags.StringVar(&cfg.BaseURL, "base-url", "", "API base URL for this project")
	return cmd
}
