// Package main is the entry point for the mach task runner.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.hartos.dev/mach/cmd/mach/commands"
	"go.hartos.dev/mach/internal/adapters/shell"
	"go.hartos.dev/mach/internal/app"
	"go.hartos.dev/mach/internal/core/domain"
	_ "go.hartos.dev/mach/internal/wiring"
)

// Exit statuses distinct from subprocess failures.
const (
	exitFailure           = 1
	exitUnknownTask       = 2
	exitUndefinedOverride = 3
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, provideComponents))
}

func provideComponents(ctx context.Context) (*app.Components, func(), error) {
	c, _, err := graft.ExecuteFor[*app.Components](ctx)
	return c, func() {}, err
}

func run(ctx context.Context, args []string, stderr io.Writer, provider ComponentProvider) int {
	// An interrupt kills the running subprocess and aborts the remaining
	// steps; there is no graceful shutdown to perform.
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := provider(ctx)
	if err != nil {
		// The logger is not available if initialization failed.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return exitFailure
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return exitStatus(err)
	}
	return 0
}

// exitStatus maps an execution error to the process exit code: a failing
// subprocess's status is propagated unchanged, engine-level errors get their
// own distinct codes.
func exitStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrUnknownTask):
		return exitUnknownTask
	case errors.Is(err, domain.ErrUndefinedOverride):
		return exitUndefinedOverride
	}
	if code, ok := shell.ExitStatus(err); ok {
		return code
	}
	return exitFailure
}
