package app

import "go.hartos.dev/mach/internal/core/ports"

// Components contains the initialized application components needed by the
// CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}
