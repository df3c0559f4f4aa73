package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/shipit/internal/adapters/fs"
	"go.trai.ch/shipit/internal/adapters/manifest"
	"go.trai.ch/shipit/internal/adapters/scan"
	"go.trai.ch/shipit/internal/adapters/telemetry"
	"go.trai.ch/shipit/internal/app"
	"go.trai.ch/shipit/internal/core/domain"
	"go.trai.ch/shipit/internal/core/ports/mocks"
	"go.trai.ch/shipit/internal/engine/gate"
	"go.trai.ch/shipit/internal/engine/resolver"
	"go.trai.ch/shipit/internal/engine/rewrite"
	"go.uber.org/mock/gomock"
)

type harness struct {
	app      *app.App
	worktree string
	loader   *mocks.MockSettingsLoader
	repo     *mocks.MockRepository
	uploader *mocks.MockUploader
	settings *domain.Settings
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		worktree: t.TempDir(),
		loader:   mocks.NewMockSettingsLoader(ctrl),
		repo:     mocks.NewMockRepository(ctrl),
		uploader: mocks.NewMockUploader(ctrl),
	}
	h.settings = &domain.Settings{
		Worktree:     h.worktree,
		ManifestName: domain.DefaultManifestName,
		Hash:         domain.HashModeContent,
		GateCapacity: domain.DefaultGateCapacity,
		CacheControl: domain.DefaultCacheControl,
	}
	h.loader.EXPECT().Load("shipit.yaml").Return(h.settings, nil).AnyTimes()

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	store := manifest.NewStore()
	res := resolver.New(
		scan.NewScanner(),
		rewrite.New(),
		h.uploader,
		store,
		logger,
		telemetry.NewNoop(),
	)

	h.app = app.New(
		h.loader,
		h.repo,
		mocks.NewMockContentHasher(ctrl), // commit-mode hasher, unused under content mode
		fs.NewHasher(),
		store,
		res,
		gate.New(domain.DefaultGateCapacity),
		logger,
		telemetry.NewNoop(),
	)
	return h
}

func (h *harness) seed(t *testing.T) {
	t.Helper()
	require.NoError(t, os.WriteFile(
		filepath.Join(h.worktree, "index.js"),
		[]byte("import './util.js';\n"), 0o644))
	require.NoError(t, os.WriteFile(
		filepath.Join(h.worktree, "util.js"),
		[]byte("export const u = 1;\n"), 0o644))
	require.NoError(t, manifest.NewStore().Save(
		filepath.Join(h.worktree, domain.DefaultManifestName),
		&domain.Manifest{Entry: "index.js", Target: "gs://bucket/app"},
	))
}

func TestApp_Run(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.seed(t)
	h.uploader.EXPECT().
		Upload(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req domain.UploadRequest) (string, error) {
			return req.Destination, nil
		}).
		Times(2)

	require.NoError(t, h.app.Run(context.Background(), "shipit.yaml"))

	saved, err := manifest.NewStore().Load(filepath.Join(h.worktree, domain.DefaultManifestName))
	require.NoError(t, err)
	assert.Equal(t, 1, saved.Files["index.js"].Version)
	assert.Equal(t, 1, saved.Files["util.js"].Version)
}

func TestApp_RunWithRemoteWorktree(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.seed(t)
	h.settings.Repository = "git@example.com:site/assets.git"
	h.settings.Branch = "main"
	h.repo.EXPECT().
		EnsureWorktree(gomock.Any(), "git@example.com:site/assets.git", "main", h.worktree).
		Return(nil)
	h.uploader.EXPECT().
		Upload(gomock.Any(), gomock.Any()).
		Return("gs://bucket/app/x", nil).
		AnyTimes()

	require.NoError(t, h.app.Run(context.Background(), "shipit.yaml"))
}

func TestApp_RunPushesManifest(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	h.seed(t)
	h.settings.Branch = "main"
	h.settings.PushManifest = true
	h.uploader.EXPECT().
		Upload(gomock.Any(), gomock.Any()).
		Return("gs://bucket/app/x", nil).
		AnyTimes()
	gomock.InOrder(
		h.repo.EXPECT().
			CommitManifest(gomock.Any(), h.worktree, domain.DefaultManifestName, gomock.Any()).
			Return(nil),
		h.repo.EXPECT().Push(gomock.Any(), h.worktree, "main").Return(nil),
	)

	require.NoError(t, h.app.Run(context.Background(), "shipit.yaml"))
}

func TestApp_RunMissingEntry(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	// No manifest seeded: loading yields an empty manifest without an entry.
	err := h.app.Run(context.Background(), "shipit.yaml")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrMissingEntry.Error())
}

func TestApp_RunLoaderFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	loader := mocks.NewMockSettingsLoader(ctrl)
	loader.EXPECT().Load("broken.yaml").Return(nil, domain.ErrSettingsParseFailed)

	h := newHarness(t)
	broken := app.New(
		loader, h.repo, mocks.NewMockContentHasher(ctrl), fs.NewHasher(),
		manifest.NewStore(),
		resolver.New(scan.NewScanner(), rewrite.New(), h.uploader, manifest.NewStore(),
			mocks.NewMockLogger(ctrl), telemetry.NewNoop()),
		gate.New(0),
		mocks.NewMockLogger(ctrl),
		telemetry.NewNoop(),
	)

	err := broken.Run(context.Background(), "broken.yaml")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrSettingsParseFailed.Error())
}
