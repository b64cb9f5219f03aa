package ports

import "go.hartos.dev/mach/internal/core/domain"

// ConfigLoader produces the override snapshot for one invocation.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the optional config file in dir, applies recognized
	// environment overrides on top and fills the rest with built-in
	// defaults. The snapshot is read-only once returned.
	Load(dir string) (domain.Overrides, error)
}
