// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.hartos.dev/mach/internal/adapters/config"
	_ "go.hartos.dev/mach/internal/adapters/logger"
	_ "go.hartos.dev/mach/internal/adapters/shell"
	// Register app and engine nodes.
	_ "go.hartos.dev/mach/internal/app"
	_ "go.hartos.dev/mach/internal/engine/runner"
)
