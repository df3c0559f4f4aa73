package scan

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shipit/internal/core/ports"
)

// NodeID is the unique identifier for the import scanner Graft node.
const NodeID graft.ID = "adapter.scanner"

func init() {
	graft.Register(graft.Node[ports.ImportScanner]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ImportScanner, error) {
			return NewScanner(), nil
		},
	})
}
