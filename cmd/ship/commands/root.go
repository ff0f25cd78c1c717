// Package commands implements the CLI commands for the ship release manager.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/ship/internal/app"
	"go.trai.ch/ship/internal/build"
)

// CLI represents the command line interface for ship.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Packages(ctx context.Context) error
	Check(ctx context.Context) error
	Status(ctx context.Context) error
	Bump(ctx context.Context, opts app.BumpOptions) error
	Propagate(ctx context.Context) error
	Rectify(ctx context.Context, opts app.RectifyOptions) error
	CommitAndPush(ctx context.Context, opts app.CommitOptions) error
	Prepare(ctx context.Context, opts app.PrepareOptions) error
	Publish(ctx context.Context, opts app.PublishOptions) error
	Exec(ctx context.Context, opts app.ExecOptions) error
}

// JSONSwitcher is implemented by loggers that can switch to JSON output.
type JSONSwitcher interface {
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app. logs receives the
// --json-logs flag and may be nil.
func New(a Application, logs JSONSwitcher) *CLI {
	rootCmd := &cobra.Command{
		Use:           "ship",
		Short:         "Release lifecycle manager for multi-package suites",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("json-logs", false, "Write logs as JSON lines")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		if logs != nil && jsonLogs {
			logs.SetJSON(true)
		}
	}

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newPackagesCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newBumpCmd())
	rootCmd.AddCommand(c.newPropagateCmd())
	rootCmd.AddCommand(c.newRectifyCmd())
	rootCmd.AddCommand(c.newCommitCmd())
	rootCmd.AddCommand(c.newPrepareCmd())
	rootCmd.AddCommand(c.newPublishCmd())
	rootCmd.AddCommand(c.newExecCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
