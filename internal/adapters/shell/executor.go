// Package shell executes task steps as subprocesses.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"

	"go.hartos.dev/mach/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Executor implements ports.Executor using os/exec.
type Executor struct{}

// NewExecutor creates a new shell executor.
func NewExecutor() *Executor {
	return &Executor{}
}

// Execute runs the invocation's stages and blocks until all of them have
// exited. A single-stage invocation writes to the provided streams directly.
// For pipelines, every stage is started before any is waited on, stdout of
// each stage feeds the next stage's stdin, and the earliest failing stage
// determines the reported error even when a later stage exits cleanly.
func (e *Executor) Execute(ctx context.Context, inv domain.Invocation, stdout, stderr io.Writer) error {
	if len(inv.Stages) == 0 {
		return nil
	}

	cmds := make([]*exec.Cmd, len(inv.Stages))
	for i, argv := range inv.Stages {
		if len(argv) == 0 {
			return zerr.With(domain.ErrEmptyStep, "stage", i+1)
		}
		cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // task-defined command
		cmd.Stderr = stderr
		cmds[i] = cmd
	}

	// Chain the pipeline. The first stage reads the process stdin, the last
	// stage writes the caller's stdout.
	cmds[0].Stdin = os.Stdin
	for i := 1; i < len(cmds); i++ {
		pipe, err := cmds[i-1].StdoutPipe()
		if err != nil {
			return zerr.Wrap(err, "failed to create pipe")
		}
		cmds[i].Stdin = pipe
	}
	cmds[len(cmds)-1].Stdout = stdout

	started := 0
	for _, cmd := range cmds {
		if err := cmd.Start(); err != nil {
			reap(cmds[:started])
			return zerr.With(zerr.Wrap(err, "failed to start command"), "command", cmd.Args[0])
		}
		started++
	}

	// Wait on every stage before judging any of them so a failed early stage
	// cannot be masked by a later stage draining the pipe and exiting zero.
	errs := make([]error, len(cmds))
	var g errgroup.Group
	for i := range cmds {
		g.Go(func() error {
			errs[i] = cmds[i].Wait()
			return nil
		})
	}
	_ = g.Wait()

	for i, err := range errs {
		if err != nil {
			return zerr.With(
				zerr.With(
					zerr.Wrap(err, "command failed"),
					"command", cmds[i].Args[0],
				),
				"exit_code", exitCode(err),
			)
		}
	}
	return nil
}

func reap(cmds []*exec.Cmd) {
	for _, cmd := range cmds {
		if cmd.Process != nil {
			_ = cmd.Process.Kill()
			_ = cmd.Wait()
		}
	}
}

func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// ExitStatus extracts the subprocess exit status carried by err, so the
// first failing step's status can be propagated unchanged as the process
// exit code.
func ExitStatus(err error) (int, bool) {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode(), true
	}
	return 0, false
}
