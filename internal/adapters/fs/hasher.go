// Package fs provides the worktree content hasher.
package fs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/shipit/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ContentHasher = (*Hasher)(nil)

// Hasher implements ports.ContentHasher over live worktree bytes. It is the
// hash mode for repositories without usable history; unlike the commit-based
// hasher, uncommitted edits do trigger a redeploy.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Hash computes the XXHash of the file's content. The branch parameter is
// ignored; worktree bytes have no revision.
func (h *Hasher) Hash(_ context.Context, root, _ string, path string) (string, error) {
	full := filepath.Join(root, filepath.FromSlash(path))

	f, err := os.Open(full) //nolint:gosec // path is rooted in the worktree
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // best effort close in defer

	digest := xxhash.New()
	if _, err := io.Copy(digest, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return fmt.Sprintf("%016x", digest.Sum64()), nil
}
