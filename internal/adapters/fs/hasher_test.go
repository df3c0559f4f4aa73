package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shipit/internal/adapters/fs"
)

func TestHasher_Hash(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.js"), []byte("let x = 1;\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.js"), []byte("let x = 2;\n"), 0o600))

	h := fs.NewHasher()
	ctx := context.Background()

	hashA, err := h.Hash(ctx, root, "main", "a.js")
	require.NoError(t, err)
	require.Len(t, hashA, 16)

	again, err := h.Hash(ctx, root, "other-branch", "a.js")
	require.NoError(t, err)
	assert.Equal(t, hashA, again, "hash must be stable and branch-independent")

	hashB, err := h.Hash(ctx, root, "main", "b.js")
	require.NoError(t, err)
	assert.NotEqual(t, hashA, hashB)
}

func TestHasher_Missing(t *testing.T) {
	t.Parallel()

	h := fs.NewHasher()
	_, err := h.Hash(context.Background(), t.TempDir(), "main", "nope.js")
	require.Error(t, err)
}
