package gcs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shipit/internal/adapters/logger"
	"go.trai.ch/shipit/internal/adapters/shell"
	"go.trai.ch/shipit/internal/core/ports"
)

// NodeID is the unique identifier for the uploader Graft node.
const NodeID graft.ID = "adapter.uploader"

func init() {
	graft.Register(graft.Node[ports.Uploader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Uploader, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewUploader(runner, log), nil
		},
	})
}
