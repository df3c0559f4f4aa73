// Package git provides the source repository adapter.
package git

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/shipit/internal/core/domain"
	"go.trai.ch/shipit/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Repository    = (*Repository)(nil)
	_ ports.ContentHasher = (*Repository)(nil)
)

// Repository implements ports.Repository by shelling out to git through the
// command runner, so repository commands count against the global gate.
type Repository struct {
	runner ports.CommandRunner
	logger ports.Logger
}

// NewRepository creates a new Repository.
func NewRepository(runner ports.CommandRunner, logger ports.Logger) *Repository {
	return &Repository{
		runner: runner,
		logger: logger,
	}
}

// CurrentBranch returns the branch currently checked out in dir.
func (r *Repository) CurrentBranch(ctx context.Context, dir string) (string, error) {
	stdout, _, err := r.runner.Run(ctx, dir, "git", "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve current branch")
	}
	return strings.TrimSpace(stdout), nil
}

// LastCommit returns the short id of the last commit on branch touching
// path. A path that was never committed yields the empty string without
// error; any git failure is fatal for the run.
func (r *Repository) LastCommit(ctx context.Context, dir, branch, path string) (string, error) {
	stdout, _, err := r.runner.Run(ctx, dir, "git", "log", "-1", "--format=%h", branch, "--", path)
	if err != nil {
		return "", zerr.With(zerr.With(zerr.Wrap(err, "failed to read last commit"), "path", path), "branch", branch)
	}
	return strings.TrimSpace(stdout), nil
}

// Hash implements ports.ContentHasher: the content identity of a file is the
// last committed revision touching it, so uncommitted edits never trigger a
// redeploy.
func (r *Repository) Hash(ctx context.Context, root, branch, path string) (string, error) {
	return r.LastCommit(ctx, root, branch, path)
}

// EnsureWorktree makes dir a clean working copy of branch: a fresh clone if
// dir holds no repository, otherwise fetch plus hard reset. An empty branch
// means the remote's default branch.
func (r *Repository) EnsureWorktree(ctx context.Context, url, branch, dir string) error {
	if _, err := os.Stat(filepath.Join(dir, ".git")); err != nil {
		r.logger.Info("cloning " + url + " into " + dir)
		args := []string{"clone", url, dir}
		if branch != "" {
			args = []string{"clone", "--branch", branch, url, dir}
		}
		if _, _, err := r.runner.Run(ctx, "", "git", args...); err != nil {
			return zerr.With(zerr.With(zerr.Wrap(err, domain.ErrWorktreeFailed.Error()), "url", url), "branch", branch)
		}
		return nil
	}

	steps := [][]string{
		{"fetch", "origin"},
		{"reset", "--hard", "origin/HEAD"},
	}
	if branch != "" {
		steps = [][]string{
			{"fetch", "origin", branch},
			{"checkout", branch},
			{"reset", "--hard", "origin/" + branch},
		}
	}
	for _, args := range steps {
		if _, _, err := r.runner.Run(ctx, dir, "git", args...); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrWorktreeFailed.Error()), "branch", branch)
		}
	}
	return nil
}

// CommitManifest commits the manifest at path. An unchanged manifest is a
// no-op, not an error.
func (r *Repository) CommitManifest(ctx context.Context, dir, path, message string) error {
	if _, _, err := r.runner.Run(ctx, dir, "git", "add", path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stage manifest"), "path", path)
	}

	stdout, stderr, err := r.runner.Run(ctx, dir, "git", "commit", "-m", message, "--", path)
	if err != nil {
		if isNothingToCommit(stdout + stderr) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, "failed to commit manifest"), "path", path)
	}
	return nil
}

// Push pushes branch to the default remote.
func (r *Repository) Push(ctx context.Context, dir, branch string) error {
	if _, _, err := r.runner.Run(ctx, dir, "git", "push", "origin", branch); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to push"), "branch", branch)
	}
	return nil
}

// git prints "nothing to commit" on stdout for a clean tree, but routes it
// to stderr when invoked with an explicit pathspec on some versions. Check
// both spellings.
func isNothingToCommit(out string) bool {
	return strings.Contains(out, "nothing to commit") ||
		strings.Contains(out, "no changes added to commit")
}
