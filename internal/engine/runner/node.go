package runner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.hartos.dev/mach/internal/adapters/logger"
	"go.hartos.dev/mach/internal/adapters/shell"
	"go.hartos.dev/mach/internal/core/ports"
)

// NodeID is the unique identifier for the runner Graft node.
const NodeID graft.ID = "engine.runner"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Runner, error) {
			executor, err := graft.Dep[ports.Executor](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(executor, log), nil
		},
	})
}
