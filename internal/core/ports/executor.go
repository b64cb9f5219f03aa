// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.hartos.dev/mach/internal/core/domain"
)

// Executor defines the interface for running task invocations.
//
//go:generate mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs a fully-expanded invocation and blocks until every stage
	// has exited. Subprocess output is written to stdout and stderr
	// unmodified. The returned error carries the earliest failing stage's
	// exit status, even when a later pipeline stage exits cleanly.
	Execute(ctx context.Context, inv domain.Invocation, stdout, stderr io.Writer) error
}
