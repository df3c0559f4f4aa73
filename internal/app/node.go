package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shipit/internal/adapters/config"
	"go.trai.ch/shipit/internal/adapters/fs"
	"go.trai.ch/shipit/internal/adapters/git"
	"go.trai.ch/shipit/internal/adapters/logger"
	"go.trai.ch/shipit/internal/adapters/manifest"
	"go.trai.ch/shipit/internal/adapters/telemetry"
	"go.trai.ch/shipit/internal/core/ports"
	"go.trai.ch/shipit/internal/engine/gate"
	"go.trai.ch/shipit/internal/engine/resolver"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components bundles everything the CLI entry point needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			git.NodeID,
			fs.HasherNodeID,
			manifest.NodeID,
			resolver.NodeID,
			gate.NodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.SettingsLoader](ctx)
	if err != nil {
		return nil, err
	}
	repo, err := graft.Dep[*git.Repository](ctx)
	if err != nil {
		return nil, err
	}
	fileHasher, err := graft.Dep[*fs.Hasher](ctx)
	if err != nil {
		return nil, err
	}
	store, err := graft.Dep[ports.ManifestStore](ctx)
	if err != nil {
		return nil, err
	}
	res, err := graft.Dep[*resolver.Resolver](ctx)
	if err != nil {
		return nil, err
	}
	g, err := graft.Dep[*gate.Gate](ctx)
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
	return New(loader, repo, repo, fileHasher, store, res, g, log, tel), nil
}
