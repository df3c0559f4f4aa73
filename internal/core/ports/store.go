package ports

import "go.trai.ch/shipit/internal/core/domain"

// ManifestStore loads and persists the deploy manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ManifestStore interface {
	// Load reads the manifest from the given path.
	Load(path string) (*domain.Manifest, error)

	// Save persists the full manifest to the given path. It is called after
	// every changed file, so a crashed run resumes where it left off.
	Save(path string, m *domain.Manifest) error
}
