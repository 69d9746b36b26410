package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/adapters/cachestore" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/forge/internal/adapters/config"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/forge/internal/adapters/converter"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/forge/internal/adapters/logger"     //nolint:depguard // Wired in engine wiring
	progsink "go.trai.ch/forge/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/forge/internal/core/ports"
)

// NodeID is the unique identifier for the pipeline Graft node.
const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			cachestore.NodeID,
			converter.NodeID,
			logger.NodeID,
			progsink.NodeID,
		},
		Run: func(ctx context.Context) (*Pipeline, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.CacheStore](ctx)
			if err != nil {
				return nil, err
			}

			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			sink, err := graft.Dep[ports.ProgressSink](ctx)
			if err != nil {
				return nil, err
			}

			opts := Options{
				Converter:     cfg.Converter,
				DerivedSuffix: cfg.DerivedSuffix,
				Workers:       cfg.Workers,
			}
			return New(opts, store, runner, log, sink), nil
		},
	})
}
