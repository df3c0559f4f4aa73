package gate

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/shipit/internal/core/domain"
)

// NodeID is the unique identifier for the concurrency gate Graft node.
const NodeID graft.ID = "engine.gate"

func init() {
	graft.Register(graft.Node[*Gate]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Gate, error) {
			return New(domain.DefaultGateCapacity), nil
		},
	})
}
