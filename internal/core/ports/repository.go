package ports

import "context"

// Repository provides the source repository the deployed files live in.
//
//go:generate go run go.uber.org/mock/mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks
type Repository interface {
	// CurrentBranch returns the branch currently checked out in dir.
	CurrentBranch(ctx context.Context, dir string) (string, error)

	// LastCommit returns the short id of the last commit on branch touching
	// path, or the empty string if the path was never committed.
	LastCommit(ctx context.Context, dir, branch, path string) (string, error)

	// EnsureWorktree makes dir a clean working copy of branch: cloning from
	// url when dir does not exist, otherwise fetching and hard-resetting.
	EnsureWorktree(ctx context.Context, url, branch, dir string) error

	// CommitManifest commits the manifest at path (relative to dir).
	CommitManifest(ctx context.Context, dir, path, message string) error

	// Push pushes branch to the default remote.
	Push(ctx context.Context, dir, branch string) error
}
