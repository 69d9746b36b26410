package progrock

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/core/ports"
)

// NodeID is the unique identifier for the progress sink Graft node.
const NodeID graft.ID = "adapter.progress_sink"

func init() {
	graft.Register(graft.Node[ports.ProgressSink]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ProgressSink, error) {
			return New(), nil
		},
	})
}
