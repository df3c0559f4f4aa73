package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shipit/internal/adapters/logger"
	"go.trai.ch/shipit/internal/core/ports"
	"go.trai.ch/shipit/internal/engine/gate"
)

// NodeID is the unique identifier for the command runner Graft node.
const NodeID graft.ID = "adapter.runner"

func init() {
	graft.Register(graft.Node[ports.CommandRunner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{gate.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.CommandRunner, error) {
			g, err := graft.Dep[*gate.Gate](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(g, log), nil
		},
	})
}
