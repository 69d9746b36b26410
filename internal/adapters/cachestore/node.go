package cachestore

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/forge/internal/adapters/config"      //nolint:depguard // Wired in adapter node
	"go.trai.ch/forge/internal/adapters/fingerprint" //nolint:depguard // Wired in adapter node
	"go.trai.ch/forge/internal/adapters/logger"      //nolint:depguard // Wired in adapter node
	"go.trai.ch/forge/internal/core/ports"
)

// NodeID is the unique identifier for the cache store Graft node.
const NodeID graft.ID = "adapter.cache_store"

func init() {
	graft.Register(graft.Node[ports.CacheStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fingerprint.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.CacheStore, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			fp, err := graft.Dep[ports.Fingerprinter](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(Options{
				Dir:            cfg.CacheDir,
				MaxMemoryBytes: cfg.MaxMemoryBytes(),
				RecentLimit:    cfg.RecentLimit,
				DerivedSuffix:  cfg.DerivedSuffix,
				Enabled:        cfg.Enabled(),
			}, fp, log), nil
		},
	})
}
