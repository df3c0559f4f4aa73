package git_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shipit/internal/adapters/git"
	"go.trai.ch/shipit/internal/core/domain"
	"go.trai.ch/shipit/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func mkGitDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".git"), 0o750)
}

func newRepo(t *testing.T) (*git.Repository, *mocks.MockCommandRunner) {
	t.Helper()
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	return git.NewRepository(runner, logger), runner
}

func TestRepository_CurrentBranch(t *testing.T) {
	t.Parallel()

	repo, runner := newRepo(t)
	runner.EXPECT().
		Run(gomock.Any(), "/work", "git", "rev-parse", "--abbrev-ref", "HEAD").
		Return("main\n", "", nil)

	branch, err := repo.CurrentBranch(context.Background(), "/work")
	require.NoError(t, err)
	assert.Equal(t, "main", branch)
}

func TestRepository_LastCommit(t *testing.T) {
	t.Parallel()

	t.Run("committed", func(t *testing.T) {
		t.Parallel()
		repo, runner := newRepo(t)
		runner.EXPECT().
			Run(gomock.Any(), "/work", "git", "log", "-1", "--format=%h", "main", "--", "app/index.js").
			Return("abc123\n", "", nil)

		hash, err := repo.LastCommit(context.Background(), "/work", "main", "app/index.js")
		require.NoError(t, err)
		assert.Equal(t, "abc123", hash)
	})

	t.Run("never committed", func(t *testing.T) {
		t.Parallel()
		repo, runner := newRepo(t)
		runner.EXPECT().
			Run(gomock.Any(), "/work", "git", "log", "-1", "--format=%h", "main", "--", "new.js").
			Return("", "", nil)

		hash, err := repo.Hash(context.Background(), "/work", "main", "new.js")
		require.NoError(t, err)
		assert.Empty(t, hash)
	})

	t.Run("git failure is fatal", func(t *testing.T) {
		t.Parallel()
		repo, runner := newRepo(t)
		runner.EXPECT().
			Run(gomock.Any(), "/work", "git", "log", "-1", "--format=%h", "gone", "--", "a.js").
			Return("", "fatal: bad revision", zerr.New("command failed"))

		_, err := repo.LastCommit(context.Background(), "/work", "gone", "a.js")
		require.Error(t, err)
	})
}

func TestRepository_EnsureWorktree_Reset(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	// A .git directory makes the adapter reset instead of clone.
	require.NoError(t, mkGitDir(dir))

	repo, runner := newRepo(t)
	gomock.InOrder(
		runner.EXPECT().Run(gomock.Any(), dir, "git", "fetch", "origin", "main").Return("", "", nil),
		runner.EXPECT().Run(gomock.Any(), dir, "git", "checkout", "main").Return("", "", nil),
		runner.EXPECT().Run(gomock.Any(), dir, "git", "reset", "--hard", "origin/main").Return("", "", nil),
	)

	require.NoError(t, repo.EnsureWorktree(context.Background(), "git@example.com:app.git", "main", dir))
}

func TestRepository_EnsureWorktree_Clone(t *testing.T) {
	t.Parallel()

	dir := t.TempDir() + "/checkout"
	repo, runner := newRepo(t)
	runner.EXPECT().
		Run(gomock.Any(), "", "git", "clone", "--branch", "main", "git@example.com:app.git", dir).
		Return("", "", nil)

	require.NoError(t, repo.EnsureWorktree(context.Background(), "git@example.com:app.git", "main", dir))
}

func TestRepository_EnsureWorktree_DefaultBranch(t *testing.T) {
	t.Parallel()

	t.Run("clone without branch pin", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir() + "/checkout"
		repo, runner := newRepo(t)
		runner.EXPECT().
			Run(gomock.Any(), "", "git", "clone", "git@example.com:app.git", dir).
			Return("", "", nil)

		require.NoError(t, repo.EnsureWorktree(context.Background(), "git@example.com:app.git", "", dir))
	})

	t.Run("reset to remote head", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		require.NoError(t, mkGitDir(dir))

		repo, runner := newRepo(t)
		gomock.InOrder(
			runner.EXPECT().Run(gomock.Any(), dir, "git", "fetch", "origin").Return("", "", nil),
			runner.EXPECT().Run(gomock.Any(), dir, "git", "reset", "--hard", "origin/HEAD").Return("", "", nil),
		)

		require.NoError(t, repo.EnsureWorktree(context.Background(), "git@example.com:app.git", "", dir))
	})
}

func TestRepository_CommitManifest_Clean(t *testing.T) {
	t.Parallel()

	repo, runner := newRepo(t)
	gomock.InOrder(
		runner.EXPECT().Run(gomock.Any(), "/work", "git", "add", "deploy.json").Return("", "", nil),
		runner.EXPECT().
			Run(gomock.Any(), "/work", "git", "commit", "-m", "deploy", "--", "deploy.json").
			Return("nothing to commit, working tree clean\n", "", zerr.New(domain.ErrCommandFailed.Error())),
	)

	// An unchanged manifest is a no-op, not an error.
	require.NoError(t, repo.CommitManifest(context.Background(), "/work", "deploy.json", "deploy"))
}
