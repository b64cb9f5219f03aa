// Package app implements the application layer for mach.
package app

import (
	"context"

	"go.hartos.dev/mach/internal/core/domain"
	"go.hartos.dev/mach/internal/core/ports"
	"go.hartos.dev/mach/internal/engine/runner"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	loader ports.ConfigLoader
	runner *runner.Runner
	table  *domain.TaskTable
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, r *runner.Runner, table *domain.TaskTable) *App {
	return &App{
		loader: loader,
		runner: r,
		table:  table,
	}
}

// Run executes a single task by name. The override snapshot is taken once
// here and threaded through resolution and composition.
func (a *App) Run(ctx context.Context, taskName string) error {
	ov, err := a.loader.Load(".")
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}
	return a.runner.Run(ctx, a.table, ov, taskName)
}

// Tasks returns every task definition, hidden ones included, sorted by name.
func (a *App) Tasks() []domain.TaskDefinition {
	return a.table.Definitions()
}

// Catalog returns the documented task catalog.
func (a *App) Catalog() []domain.CatalogEntry {
	return domain.Catalog(a.table)
}
