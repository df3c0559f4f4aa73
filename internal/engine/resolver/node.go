package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shipit/internal/adapters/gcs"
	"go.trai.ch/shipit/internal/adapters/logger"
	"go.trai.ch/shipit/internal/adapters/manifest"
	"go.trai.ch/shipit/internal/adapters/scan"
	"go.trai.ch/shipit/internal/adapters/telemetry"
	"go.trai.ch/shipit/internal/core/ports"
	"go.trai.ch/shipit/internal/engine/rewrite"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			scan.NodeID,
			rewrite.NodeID,
			gcs.NodeID,
			manifest.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			scanner, err := graft.Dep[ports.ImportScanner](ctx)
			if err != nil {
				return nil, err
			}
			rewriter, err := graft.Dep[*rewrite.Rewriter](ctx)
			if err != nil {
				return nil, err
			}
			uploader, err := graft.Dep[ports.Uploader](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.ManifestStore](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return New(scanner, rewriter, uploader, store, log, tel), nil
		},
	})
}
