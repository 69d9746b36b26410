package cachestore

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/zerr"
)

// Terrain bundles are persisted as three sibling artifacts per content key:
// the rasterized image, a small metadata record, and an optional compressed
// height array. Image plus metadata present is necessary and sufficient for
// a disk hit; the height array is best effort.
const (
	terrainImageSuffix  = "_terrain.png"
	terrainMetaSuffix   = "_meta.json"
	terrainHeightSuffix = "_heights.cbor.zst"
)

type terrainMeta struct {
	GridWidth  int `json:"grid_width"`
	GridHeight int `json:"grid_height"`
}

// GetTerrain returns the terrain bundle for a content key. Memory is
// consulted first; a disk hit repopulates memory.
func (s *Store) GetTerrain(key domain.TerrainKey) (*domain.TerrainBundle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled {
		return nil, false
	}

	if bundle, ok := s.terrain[key]; ok {
		s.hit(domain.DomainTerrain)
		return bundle, true
	}

	bundle, err := s.readTerrainBundle(key)
	if err != nil {
		s.miss(domain.DomainTerrain)
		return nil, false
	}

	s.terrain[key] = bundle
	s.usage[domain.DomainTerrain] += terrainSize(bundle)
	s.hit(domain.DomainTerrain)
	return bundle, true
}

// PutTerrain caches a bundle in memory and writes the disk artifacts.
// Disk failures are logged; the memory entry still serves this session.
func (s *Store) PutTerrain(key domain.TerrainKey, bundle *domain.TerrainBundle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled || bundle == nil {
		return
	}

	s.terrain[key] = bundle
	s.usage[domain.DomainTerrain] += terrainSize(bundle)
	s.evictWhenOverBudget()

	if err := s.writeTerrainBundle(key, bundle); err != nil {
		s.log.Warn("failed to persist terrain bundle: " + err.Error())
	}
}

// InvalidateTerrain removes the bundle for key from memory and disk.
func (s *Store) InvalidateTerrain(key domain.TerrainKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.terrain, key)
	for _, suffix := range []string{terrainImageSuffix, terrainMetaSuffix, terrainHeightSuffix} {
		path := s.terrainPath(key, suffix)
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			s.log.Warn("failed to remove terrain artifact: " + err.Error())
		}
	}
}

func (s *Store) terrainPath(key domain.TerrainKey, suffix string) string {
	return filepath.Join(s.opts.Dir, terrainSubdir, string(key)+suffix)
}

func (s *Store) readTerrainBundle(key domain.TerrainKey) (*domain.TerrainBundle, error) {
	image, err := os.ReadFile(s.terrainPath(key, terrainImageSuffix)) //nolint:gosec // Cache dir
	if err != nil {
		return nil, zerr.Wrap(err, "terrain image missing")
	}

	metaData, err := os.ReadFile(s.terrainPath(key, terrainMetaSuffix)) //nolint:gosec // Cache dir
	if err != nil {
		return nil, zerr.Wrap(err, "terrain metadata missing")
	}
	var meta terrainMeta
	if err := json.Unmarshal(metaData, &meta); err != nil {
		return nil, zerr.Wrap(err, "terrain metadata corrupt")
	}

	bundle := &domain.TerrainBundle{
		Image:      image,
		GridWidth:  meta.GridWidth,
		GridHeight: meta.GridHeight,
	}

	// Height array is optional; a corrupt one degrades to nil.
	if heights, err := readHeights(s.terrainPath(key, terrainHeightSuffix)); err == nil {
		bundle.Heights = heights
	}

	return bundle, nil
}

func (s *Store) writeTerrainBundle(key domain.TerrainKey, bundle *domain.TerrainBundle) error {
	dir := filepath.Join(s.opts.Dir, terrainSubdir)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create terrain cache directory")
	}

	if err := os.WriteFile(s.terrainPath(key, terrainImageSuffix), bundle.Image, 0o644); err != nil { //nolint:gosec // Cache artifact
		return zerr.Wrap(err, "failed to write terrain image")
	}

	metaData, err := json.MarshalIndent(terrainMeta{
		GridWidth:  bundle.GridWidth,
		GridHeight: bundle.GridHeight,
	}, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal terrain metadata")
	}
	if err := os.WriteFile(s.terrainPath(key, terrainMetaSuffix), metaData, 0o644); err != nil { //nolint:gosec // Cache artifact
		return zerr.Wrap(err, "failed to write terrain metadata")
	}

	if len(bundle.Heights) > 0 {
		if err := writeHeights(s.terrainPath(key, terrainHeightSuffix), bundle.Heights); err != nil {
			// Optional artifact; image and metadata already landed.
			s.log.Warn("failed to write terrain height array: " + err.Error())
		}
	}

	return nil
}

func readHeights(path string) ([]float32, error) {
	compressed, err := os.ReadFile(path) //nolint:gosec // Cache dir
	if err != nil {
		return nil, zerr.Wrap(err, "height array missing")
	}

	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create zstd reader")
	}
	defer dec.Close()

	raw, err := dec.DecodeAll(compressed, nil)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to decompress height array")
	}

	var heights []float32
	if err := cbor.Unmarshal(raw, &heights); err != nil {
		return nil, zerr.Wrap(err, "failed to decode height array")
	}
	return heights, nil
}

func writeHeights(path string, heights []float32) error {
	raw, err := cbor.Marshal(heights)
	if err != nil {
		return zerr.Wrap(err, "failed to encode height array")
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return zerr.Wrap(err, "failed to create zstd writer")
	}
	compressed := enc.EncodeAll(raw, nil)
	if err := enc.Close(); err != nil {
		return zerr.Wrap(err, "failed to finish zstd stream")
	}

	if err := os.WriteFile(path, compressed, 0o644); err != nil { //nolint:gosec // Cache artifact
		return zerr.Wrap(err, "failed to write height array")
	}
	return nil
}

func terrainSize(b *domain.TerrainBundle) int64 {
	return int64(len(b.Image)) + int64(len(b.Heights))*4
}
