// Package resolver walks the import graph and deploys changed files in
// dependency order, assigning each a monotonically increasing version.
package resolver

import (
	"context"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"go.trai.ch/shipit/internal/core/domain"
	"go.trai.ch/shipit/internal/core/ports"
	"go.trai.ch/shipit/internal/engine/rewrite"
	"go.trai.ch/zerr"
)

// Resolver deploys an import graph rooted at the manifest entry.
type Resolver struct {
	scanner   ports.ImportScanner
	rewriter  *rewrite.Rewriter
	uploader  ports.Uploader
	store     ports.ManifestStore
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates a new Resolver.
func New(
	scanner ports.ImportScanner,
	rewriter *rewrite.Rewriter,
	uploader ports.Uploader,
	store ports.ManifestStore,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Resolver {
	return &Resolver{
		scanner:   scanner,
		rewriter:  rewriter,
		uploader:  uploader,
		store:     store,
		logger:    logger,
		telemetry: telemetry,
	}
}

// Run resolves the manifest entry and everything it reaches. The hasher is
// passed per run because the hash mode is a runtime setting. Run returns the
// final version of the entry file.
func (r *Resolver) Run(
	ctx context.Context,
	hasher ports.ContentHasher,
	settings *domain.Settings,
	manifest *domain.Manifest,
	manifestPath, worktree, branch string,
) (int, error) {
	if manifest.Entry == "" {
		return 0, zerr.With(domain.ErrMissingEntry, "manifest", manifestPath)
	}
	if manifest.Target == "" {
		return 0, zerr.With(domain.ErrMissingTarget, "manifest", manifestPath)
	}

	root := worktree
	if manifest.Base != "" {
		root = filepath.Join(worktree, filepath.FromSlash(manifest.Base))
	}
	if _, err := os.Stat(filepath.Join(root, filepath.FromSlash(manifest.Entry))); err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrEntryNotFound.Error()), "entry", manifest.Entry)
	}

	s := &session{
		resolver:     r,
		hasher:       hasher,
		settings:     settings,
		manifest:     manifest,
		manifestPath: manifestPath,
		root:         root,
		branch:       branch,
		futures:      make(map[string]*future),
	}
	return s.resolve(ctx, manifest.Entry, domain.CallTree{})
}

// future is the memoized outcome of one file's resolution. Every identity is
// resolved at most once per run; later arrivals wait on done.
type future struct {
	done    chan struct{}
	version int
	err     error
}

// session is the per-run state of a graph walk.
type session struct {
	resolver     *Resolver
	hasher       ports.ContentHasher
	settings     *domain.Settings
	manifest     *domain.Manifest
	manifestPath string
	root         string
	branch       string

	mu      sync.Mutex
	futures map[string]*future

	// manifestMu guards ledger mutation and persistence. Futures guarantee a
	// single writer per record, but the map and the marshalled snapshot are
	// shared across files.
	manifestMu sync.Mutex
}

// resolve returns the final version of identity for this run. The call tree
// carries the active resolution path for cycle detection and must be checked
// before consulting the memo: a completed future for an identity is a
// diamond, not a cycle.
func (s *session) resolve(ctx context.Context, identity string, tree domain.CallTree) (int, error) {
	if tree.Contains(identity) {
		return 0, zerr.With(domain.ErrCycleDetected, "cycle", tree.Cycle(identity))
	}

	s.mu.Lock()
	if f, ok := s.futures[identity]; ok {
		s.mu.Unlock()
		select {
		case <-f.done:
			return f.version, f.err
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}
	f := &future{done: make(chan struct{})}
	s.futures[identity] = f
	s.mu.Unlock()

	f.version, f.err = s.deploy(ctx, identity, tree)
	close(f.done)
	return f.version, f.err
}

// deploy performs the post-order work for one file: resolve all imports
// first, then decide whether this file changed and ship it if so.
func (s *session) deploy(ctx context.Context, identity string, tree domain.CallTree) (version int, err error) {
	ctx, vertex := s.resolver.telemetry.Record(ctx, identity)
	defer func() { vertex.Complete(err) }()

	edges, err := s.resolver.scanner.Scan(s.root, identity)
	if err != nil {
		return 0, err
	}

	versions, err := s.resolveChildren(ctx, identity, tree, edges)
	if err != nil {
		return 0, err
	}

	hash, err := s.hasher.Hash(ctx, s.root, s.branch, identity)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file"), "file", identity)
	}

	s.manifestMu.Lock()
	rec := s.manifest.Record(identity)
	if !rec.Changed(hash, versions) {
		version = rec.Version
		s.manifestMu.Unlock()
		vertex.Cached()
		return version, nil
	}
	rec.Version++
	rec.Hash = hash
	rec.Snapshot(versions)
	version = rec.Version
	s.manifestMu.Unlock()

	url, err := s.ship(ctx, identity, version, edges, versions)
	if err != nil {
		return 0, err
	}

	s.manifestMu.Lock()
	rec.URL = url
	err = s.resolver.store.Save(s.manifestPath, s.manifest)
	s.manifestMu.Unlock()
	if err != nil {
		return 0, err
	}

	s.resolver.logger.Info("deployed " + identity + " as version " + strconv.Itoa(version))
	vertex.Log(domain.LogLevelInfo, "deployed version "+strconv.Itoa(version))
	return version, nil
}

// resolveChildren resolves every distinct import concurrently and returns the
// final version each dependency identity settled on.
func (s *session) resolveChildren(
	ctx context.Context,
	identity string,
	tree domain.CallTree,
	edges []domain.Edge,
) (map[string]int, error) {
	distinct := make(map[string]bool, len(edges))
	for _, e := range edges {
		distinct[e.Path] = true
	}

	var mu sync.Mutex
	versions := make(map[string]int, len(distinct))
	childTree := tree.Push(identity)

	g, gctx := errgroup.WithContext(ctx)
	for child := range distinct {
		g.Go(func() error {
			v, err := s.resolve(gctx, child, childTree)
			if err != nil {
				return err
			}
			mu.Lock()
			versions[child] = v
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return versions, nil
}

// ship builds the versioned artifact and uploads it, returning the public URL.
func (s *session) ship(
	ctx context.Context,
	identity string,
	version int,
	edges []domain.Edge,
	versions map[string]int,
) (string, error) {
	replacements := make([]rewrite.Replacement, 0, len(edges))
	for _, e := range edges {
		replacements = append(replacements, rewrite.Replacement{
			Specifier: e.Specifier,
			Version:   versions[e.Path],
		})
	}

	artifact, err := s.resolver.rewriter.Build(s.root, identity, version, replacements)
	if err != nil {
		return "", err
	}
	defer func() { _ = os.RemoveAll(filepath.Dir(artifact)) }()

	return s.resolver.uploader.Upload(ctx, domain.UploadRequest{
		Local:        artifact,
		Destination:  destination(s.manifest.Target, identity, version),
		ContentType:  s.settings.ContentType(path.Ext(identity)),
		CacheControl: s.settings.CacheControl,
		PublicPrefix: s.manifest.TargetURL,
	})
}

// destination composes the store path for a versioned artifact, preserving
// the target's scheme and collapsing duplicate slashes in the object path.
func destination(target, identity string, version int) string {
	name := rewrite.VersionedName(path.Base(identity), version)
	rest := path.Join(path.Dir(identity), name)

	scheme := ""
	if i := strings.Index(target, "://"); i >= 0 {
		scheme, target = target[:i+3], target[i+3:]
	}
	return scheme + path.Join(target, rest)
}
