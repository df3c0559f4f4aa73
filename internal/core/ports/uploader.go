package ports

import (
	"context"

	"go.trai.ch/shipit/internal/core/domain"
)

// Uploader ships a local artifact to the object store.
//
//go:generate go run go.uber.org/mock/mockgen -source=uploader.go -destination=mocks/mock_uploader.go -package=mocks
type Uploader interface {
	// Upload stores the artifact under its destination with compression,
	// sets cache/encoding/type metadata, grants public read, and returns the
	// public URL.
	//
	// Upload is safe to re-run: a pre-existing object at the destination is
	// a no-op outcome, not an error. Metadata and ACL calls are retried
	// indefinitely with a fixed delay.
	Upload(ctx context.Context, req domain.UploadRequest) (string, error)
}
