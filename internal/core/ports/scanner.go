// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/shipit/internal/core/domain"

// ImportScanner extracts import edges from source files.
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type ImportScanner interface {
	// Scan returns the ordered import edges of the file at identity, read
	// from the worktree rooted at root. Only relative specifiers are
	// returned; duplicates are preserved in source order. Results are cached
	// for the lifetime of the scanner.
	Scan(root, identity string) ([]domain.Edge, error)

	// Resolve canonicalizes a relative specifier found in the file at
	// fromIdentity to a file identity relative to root.
	Resolve(root, fromIdentity, specifier string) (string, error)
}
