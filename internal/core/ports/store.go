package ports

import "go.trai.ch/forge/internal/core/domain"

// CacheStore is the multi-domain cache consumed by the pipeline, the
// replacer, and the editor shell. Every lookup on a disabled store misses,
// and every internal I/O failure degrades to miss or no-op: the cache never
// halts the workflow it accelerates.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CacheStore interface {
	// IsConversionCached reports whether path has a valid conversion
	// fingerprint: the stored quick hash matches a recomputation and the
	// derived artifact still exists on disk.
	IsConversionCached(path string) bool

	// MarkConverted records the current quick hash of path as its
	// conversion fingerprint.
	MarkConverted(path string)

	// InvalidateConversion drops the conversion fingerprint for path.
	InvalidateConversion(path string)

	// GetParsed returns the parsed document for path if the file's mtime
	// still matches the cached entry.
	GetParsed(path string) (*domain.Document, bool)

	// PutParsed caches the parsed document for path under its current
	// mtime.
	PutParsed(path string, doc *domain.Document)

	// InvalidateParsed sweeps every document entry for path, regardless
	// of the mtime it was cached under.
	InvalidateParsed(path string)

	// GetObject returns a parsed object by source path and stable id.
	GetObject(path, id string) (domain.Entity, bool)

	// PutObject caches a parsed object.
	PutObject(path, id string, obj domain.Entity)

	// InvalidateObjects sweeps every object entry for path.
	InvalidateObjects(path string)

	// GetTerrain returns the terrain bundle for a content key, consulting
	// memory first and the disk bundle second.
	GetTerrain(key domain.TerrainKey) (*domain.TerrainBundle, bool)

	// PutTerrain caches a terrain bundle in memory and on disk.
	PutTerrain(key domain.TerrainKey, bundle *domain.TerrainBundle)

	// InvalidateTerrain removes the bundle for key from memory and disk.
	InvalidateTerrain(key domain.TerrainKey)

	// GetGridConfig returns the cached grid configuration for a level.
	GetGridConfig(path string) (domain.GridConfig, bool)

	// PutGridConfig caches the grid configuration for a level.
	PutGridConfig(path string, cfg domain.GridConfig)

	// AddRecent records path at the front of the recent list.
	AddRecent(path string)

	// Recent returns the recent paths, most recent first.
	Recent() []string

	// ClearRecent empties the recent list.
	ClearRecent()

	// Stats returns a snapshot of per-domain and aggregate counters.
	Stats() domain.Stats

	// ResetStats zeroes all hit/miss counters.
	ResetStats()

	// ClearDomain empties a single domain's table.
	ClearDomain(d domain.CacheDomain)

	// ClearAll empties every in-memory table.
	ClearAll()

	// ClearDisk removes persisted terrain bundles and snapshots.
	ClearDisk()

	// SetEnabled toggles the store globally.
	SetEnabled(enabled bool)

	// Flush writes the durable domains to disk now.
	Flush()

	// Close flushes and stops the background flusher.
	Close() error
}
