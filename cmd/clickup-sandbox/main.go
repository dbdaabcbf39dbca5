// Command clickup-sandbox serves an in-memory imitation of the ClickUp v2 API
// for local development and tests.
package main

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/modelingevolution/clickup/internal/api"
	"github.com/modelingevolution/clickup/internal/server"
	"github.com/modelingevolution/clickup/internal/store"
)

type options struct {
	addr     string
	token    string
	seed     bool
	logLevel string
}

func main() {
	if err := newRootCmd(os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd(logOutput io.Writer) *cobra.Command {
	o := &options{}

	cmd := &cobra.Command{
		Use:   "clickup-sandbox",
		Short: "Serve an in-memory ClickUp API",
		Long: `Serve an in-memory imitation of the ClickUp v2 API under /api/v2.

Point the CLI at it with --base-url http://<addr>/api/v2. Data lives only as
long as the process.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := hclog.New(&hclog.LoggerOptions{
				Name:   "clickup-sandbox",
				Level:  hclog.LevelFromString(o.logLevel),
				Output: logOutput,
			})

			handler, err := buildHandler(o, logger)
			if err != nil {
				return err
			}

			return server.New(o.addr, handler, logger).Run(cmd.Context())
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&o.addr, "addr", server.DefaultAddress, "Address to listen on")
	flags.StringVar(&o.token, "token", "", "Accepted API token (empty accepts any request)")
	flags.BoolVar(&o.seed, "seed", false, "Start with a demo workspace")
	flags.StringVar(&o.logLevel, "log-level", "info", "Log level: trace, debug, info, warn, error")
	return cmd
}

// buildHandler creates the store, seeds it when asked and returns the router.
func buildHandler(o *options, logger hclog.Logger) (http.Handler, error) {
	st := store.New()
	if o.seed {
		demo, err := st.SeedDemo()
		if err != nil {
			return nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
		logger.Info("seeded demo workspace",
			"workspace_id", demo.TeamID,
			"space_id", demo.SpaceID,
			"list_id", demo.ListID,
		)
	} else {
		st.AddTeam("Sandbox")
		st.AddUser("Sandbox User", "sandbox@example.com")
	}

	if o.token == "" {
		logger.Warn("no --token given, authentication is disabled")
	}
	return api.NewRouter(st, logger, o.token), nil
}
