package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/browser"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/modelingevolution/clickup/internal/config"
	"github.com/modelingevolution/clickup/internal/identity"
	"github.com/modelingevolution/clickup/pkg/clickup"
)

// app carries the process environment and global flags through every
// command.
type app struct {
	fs        afero.Fs
	homeDir   string
	workDir   string
	lookupEnv config.LookupFunc
	stdout    io.Writer
	stderr    io.Writer
	openURL   func(string) error
	location  *time.Location
	now       func() time.Time

	// Global flags
	jsonOutput bool
	output     string
	token      string
	baseURL    string
	debug      bool

	cfg    *config.ResolvedConfig
	client *clickup.Client
	logger hclog.Logger
}

func newApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}
	workDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	return &app{
		fs:        afero.NewOsFs(),
		homeDir:   homeDir,
		workDir:   workDir,
		lookupEnv: os.LookupEnv,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
		openURL:   browser.OpenURL,
		location:  time.Local,
		now:       time.Now,
	}, nil
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "clickup",
		Short: "ClickUp command line client",
		Long: `Browse and edit ClickUp workspaces, spaces, folders, lists, tasks and
custom fields from the terminal.

The API token is read from --token, CLICKUP_API_TOKEN, a .env file or
~/.clickup/config.toml. Default workspace, space and list IDs can be kept in a
clickup.toml created with "clickup init".`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.jsonOutput {
				a.output = "json"
			}
			err := validation.Validate(a.output, validation.In("text", "json", "yaml"))
			if err != nil {
				return usageErrorf("invalid --output %q: use text, json or yaml", a.output)
			}
			return nil
		},
	}
	rootCmd.SetOut(a.stdout)
	rootCmd.SetErr(a.stderr)
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &usageError{msg: err.Error()}
	})

	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&a.jsonOutput, "json", false, "Output as JSON (same as --output json)")
	flags.StringVarP(&a.output, "output", "o", "text", "Output format: text, json or yaml")
	flags.StringVar(&a.token, "token", "", "ClickUp API token")
	flags.StringVar(&a.baseURL, "base-url", "", "API base URL")
	flags.BoolVar(&a.debug, "debug", false, "Log HTTP requests to stderr")

	rootCmd.AddCommand(
		newWorkspacesCmd(a),
		newSpacesCmd(a),
		newFoldersCmd(a),
		newListsCmd(a),
		newTasksCmd(a),
		newFieldsCmd(a),
		newTreeCmd(a),
		newExportCmd(a),
		newInitCmd(a),
		newVersionCmd(a),
	)
	return rootCmd
}

// Execute runs the root command
func Execute() {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(ExitGeneralError)
	}

	if err := newRootCmd(a).Execute(); err != nil {
		printError(a.stderr, err, a.output == "json")
		os.Exit(mapErrorToExitCode(err))
	}
}

// usageError is a problem with the command line itself.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

func usageErrorf(format string, args ...interface{}) error {
	return &usageError{msg: fmt.Sprintf(format, args...)}
}

// errMissingDefault is returned when a command needs a workspace, space or
// list and none was given or configured.
var errMissingDefault = errors.New("not configured")

// mapErrorToExitCode maps an error to the appropriate exit code
func mapErrorToExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var usageErr *usageError
	switch {
	case errors.Is(err, config.ErrNoToken), errors.Is(err, errMissingDefault):
		return ExitNotConfigured
	case errors.As(err, &usageErr), clickup.IsArgumentError(err):
		return ExitInvalidArgument
	case clickup.IsDecodeError(err):
		return ExitDecodeError
	case clickup.IsNotFound(err):
		return ExitNotFound
	case clickup.IsUnauthorized(err):
		return ExitUnauthorized
	case clickup.StatusCode(err) != 0:
		return ExitAPIError
	default:
		return ExitGeneralError
	}
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the CLI version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.render(map[string]string{"version": identity.Version, "user_agent": identity.UserAgent()}, func(w io.Writer) {
				fmt.Fprintf(w, "clickup %s\n", identity.Version)
			})
		},
	}
}
