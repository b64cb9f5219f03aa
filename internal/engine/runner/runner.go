// Package runner drives task execution: name lookup, per-step flag
// composition and strictly sequential, fail-fast subprocess sequencing.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"go.hartos.dev/mach/internal/core/domain"
	"go.hartos.dev/mach/internal/core/ports"
	"go.hartos.dev/mach/internal/ui/style"
	"go.trai.ch/zerr"
)

// Runner is the invocation driver. It owns no state between invocations.
type Runner struct {
	executor ports.Executor
	logger   ports.Logger
	stdout   io.Writer
	stderr   io.Writer
}

// NewRunner creates a Runner whose subprocesses inherit the process streams.
func NewRunner(executor ports.Executor, logger ports.Logger) *Runner {
	return &Runner{
		executor: executor,
		logger:   logger,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
}

// WithStreams redirects subprocess output. Used by tests.
func (r *Runner) WithStreams(stdout, stderr io.Writer) *Runner {
	r.stdout = stdout
	r.stderr = stderr
	return r
}

// Run executes the named task against the override snapshot. Steps run one
// after another on the calling goroutine; the first failure aborts the
// remaining steps and is returned with the failing subprocess's status
// attached. No subprocess is spawned for an unknown task or an undefined
// override reference.
func (r *Runner) Run(ctx context.Context, table *domain.TaskTable, ov domain.Overrides, name string) error {
	def, ok := table.Lookup(name)
	if !ok {
		return zerr.With(domain.ErrUnknownTask, "task", name)
	}

	target := domain.ResolveTarget(ov)
	if err := target.Validate(); err != nil {
		return err
	}
	profile := domain.ResolveProfile(ov)

	steps, err := domain.ExpandSteps(def, domain.ExpandVars(ov, target, profile))
	if err != nil {
		return err
	}

	for i, step := range steps {
		flags := domain.Compose(step.Kind, target, profile, ov)
		inv := buildInvocation(step, flags)

		r.logger.Info(style.Arrow + " " + describe(inv))
		if err := r.executor.Execute(ctx, inv, r.stdout, r.stderr); err != nil {
			return zerr.With(
				zerr.With(
					zerr.With(
						zerr.Wrap(err, "task step failed"),
						"task", name,
					),
					"step", i+1,
				),
				"flags_fp", fmt.Sprintf("%016x", flags.Fingerprint()),
			)
		}
	}
	return nil
}

// buildInvocation materializes one step: the composed flags slot in after
// each command's argv, followed by its tail tokens.
func buildInvocation(step domain.Step, flags domain.FlagSet) domain.Invocation {
	stages := make([][]string, 0, len(step.Pipeline))
	for _, cmd := range step.Pipeline {
		argv := slices.Clone(cmd.Argv)
		if cmd.UseFlags {
			argv = append(argv, flags.Tokens()...)
		}
		argv = append(argv, cmd.Tail...)
		stages = append(stages, argv)
	}
	return domain.Invocation{Stages: stages}
}

func describe(inv domain.Invocation) string {
	parts := make([]string, 0, len(inv.Stages))
	for _, argv := range inv.Stages {
		parts = append(parts, strings.Join(argv, " "))
	}
	return strings.Join(parts, " | ")
}
