// Package commands implements the CLI commands for the mach task runner.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.hartos.dev/mach/internal/build"
	"go.hartos.dev/mach/internal/core/domain"
)

// CLI represents the command line interface for mach.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, taskName string) error
	Tasks() []domain.TaskDefinition
	Catalog() []domain.CatalogEntry
}

// New creates a new CLI instance with the given app. One subcommand is
// generated per task in the table; tasks without a description stay hidden.
// Invoking mach without a task prints the catalog.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "mach [task]",
		Short:         "Task runner for the hartos kernel workspace",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		Args:          cobra.ArbitraryArgs,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	// Unmatched names fall through to the task table so an unknown task is
	// reported by the engine, not by cobra.
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return c.printCatalog(cmd)
		}
		return c.app.Run(cmd.Context(), args[0])
	}

	for _, def := range a.Tasks() {
		rootCmd.AddCommand(c.newTaskCmd(def))
	}
	rootCmd.AddCommand(c.newVersionCmd())
	rootCmd.SetHelpCommand(c.newHelpCmd())

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

// SetOutput sets the output and error streams for the root command. Used for
// testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
