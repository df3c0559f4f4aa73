package ports

import "context"

// ContentHasher derives a stable identifier for a file's content.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type ContentHasher interface {
	// Hash returns the content identity of the file at path (relative to the
	// worktree at root). The commit-based implementation returns the short
	// id of the last commit on branch touching path, empty if the path was
	// never committed.
	Hash(ctx context.Context, root, branch, path string) (string, error)
}
