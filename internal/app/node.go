package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.hartos.dev/mach/internal/adapters/config"
	"go.hartos.dev/mach/internal/adapters/logger"
	"go.hartos.dev/mach/internal/core/domain"
	"go.hartos.dev/mach/internal/core/ports"
	"go.hartos.dev/mach/internal/engine/runner"
)

const (
	// NodeID is the unique identifier for the main App Graft node.
	NodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			runner.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			r, err := graft.Dep[*runner.Runner](ctx)
			if err != nil {
				return nil, err
			}
			table, err := domain.Builtin()
			if err != nil {
				return nil, err
			}
			return New(loader, r, table), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log}, nil
		},
	})
}
