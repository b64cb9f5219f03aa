package config

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.hartos.dev/mach/internal/core/ports"
)

// NodeID is the unique identifier for the config loader Graft node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[ports.ConfigLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ConfigLoader, error) {
			return NewLoader(os.Environ()), nil
		},
	})
}
