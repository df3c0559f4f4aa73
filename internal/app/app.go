// Package app implements the application layer for shipit.
package app

import (
	"context"
	"path/filepath"
	"strconv"

	"go.trai.ch/shipit/internal/core/domain"
	"go.trai.ch/shipit/internal/core/ports"
	"go.trai.ch/shipit/internal/engine/gate"
	"go.trai.ch/shipit/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App orchestrates one deploy run: settings, worktree, manifest, graph walk.
type App struct {
	loader       ports.SettingsLoader
	repo         ports.Repository
	commitHasher ports.ContentHasher
	fileHasher   ports.ContentHasher
	store        ports.ManifestStore
	resolver     *resolver.Resolver
	gate         *gate.Gate
	logger       ports.Logger
	telemetry    ports.Telemetry
}

// New creates a new App instance.
func New(
	loader ports.SettingsLoader,
	repo ports.Repository,
	commitHasher, fileHasher ports.ContentHasher,
	store ports.ManifestStore,
	res *resolver.Resolver,
	g *gate.Gate,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		loader:       loader,
		repo:         repo,
		commitHasher: commitHasher,
		fileHasher:   fileHasher,
		store:        store,
		resolver:     res,
		gate:         g,
		logger:       logger,
		telemetry:    telemetry,
	}
}

// Run performs a full deploy using the settings file at configPath.
func (a *App) Run(ctx context.Context, configPath string) error {
	defer func() { _ = a.telemetry.Close() }()

	settings, err := a.loader.Load(configPath)
	if err != nil {
		return err
	}
	a.gate.SetCapacity(settings.GateCapacity)

	worktree := settings.Worktree
	if settings.Repository != "" {
		if err := a.repo.EnsureWorktree(ctx, settings.Repository, settings.Branch, worktree); err != nil {
			return err
		}
	}

	branch := settings.Branch
	if branch == "" && settings.Hash == domain.HashModeCommit {
		branch, err = a.repo.CurrentBranch(ctx, worktree)
		if err != nil {
			return err
		}
	}

	manifestPath := filepath.Join(worktree, settings.ManifestName)
	manifest, err := a.store.Load(manifestPath)
	if err != nil {
		return err
	}

	hasher := a.commitHasher
	if settings.Hash == domain.HashModeContent {
		hasher = a.fileHasher
	}

	version, err := a.resolver.Run(ctx, hasher, settings, manifest, manifestPath, worktree, branch)
	if err != nil {
		return zerr.Wrap(err, domain.ErrDeployFailed.Error())
	}
	a.logger.Info("deploy complete, entry " + manifest.Entry + " is at version " + strconv.Itoa(version))

	if settings.PushManifest {
		if err := a.repo.CommitManifest(ctx, worktree, settings.ManifestName, "update deploy manifest"); err != nil {
			return err
		}
		if err := a.repo.Push(ctx, worktree, branch); err != nil {
			return err
		}
	}
	return nil
}
