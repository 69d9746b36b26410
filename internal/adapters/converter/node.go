package converter

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/adapters/config" //nolint:depguard // Wired in adapter node
	"go.trai.ch/forge/internal/adapters/logger" //nolint:depguard // Wired in adapter node
	"go.trai.ch/forge/internal/core/ports"
)

// NodeID is the unique identifier for the converter runner Graft node.
const NodeID graft.ID = "adapter.converter"

func init() {
	graft.Register(graft.Node[ports.Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.Runner, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(cfg.Timeout(), log), nil
		},
	})
}
