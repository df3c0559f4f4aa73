package manifest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shipit/internal/adapters/manifest"
	"go.trai.ch/shipit/internal/core/domain"
)

func TestStore_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "deploy.json")
	store := manifest.NewStore()

	m := &domain.Manifest{
		Entry:     "index.js",
		Target:    "gs://bucket/app",
		TargetURL: "https://cdn.example.com/app",
		Files: map[string]*domain.FileRecord{
			"index.js": {
				Version:      3,
				Hash:         "abc123",
				Dependencies: map[string]int{"a.js": 2},
				URL:          "https://cdn.example.com/app/index-3.js",
			},
		},
	}
	require.NoError(t, store.Save(path, m))

	got, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, m, got)
}

func TestStore_LoadMissing(t *testing.T) {
	t.Parallel()

	store := manifest.NewStore()
	got, err := store.Load(filepath.Join(t.TempDir(), "deploy.json"))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Empty(t, got.Files)
	assert.NotNil(t, got.Files)
}

func TestStore_LoadCorrupt(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "deploy.json")
	require.NoError(t, os.WriteFile(path, []byte("{ invalid json"), 0o600))

	store := manifest.NewStore()
	_, err := store.Load(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrManifestUnmarshalFailed.Error())
}

func TestStore_SaveCreatesDirectories(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "dir", "deploy.json")
	store := manifest.NewStore()

	require.NoError(t, store.Save(path, &domain.Manifest{Entry: "index.js"}))

	got, err := store.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "index.js", got.Entry)
}
