// Package cachestore implements the multi-domain cache with memory-budget
// eviction, hit/miss statistics, and disk persistence for durable domains.
package cachestore

import (
	"encoding/json"
	"path/filepath"
	"sync"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
)

var _ ports.CacheStore = (*Store)(nil)

// Options configures a Store.
type Options struct {
	// Dir is the cache directory holding snapshots and terrain bundles.
	Dir string
	// MaxMemoryBytes bounds the estimated size of the size-tracked
	// domains (documents, objects, terrain).
	MaxMemoryBytes int64
	// RecentLimit caps the recent-items list.
	RecentLimit int
	// DerivedSuffix is appended to a source path to locate its derived
	// artifact when validating a conversion fingerprint.
	DerivedSuffix string
	// Enabled toggles the whole store; a disabled store misses on every
	// get and ignores every put.
	Enabled bool
}

// Store holds every domain table plus cross-cutting memory accounting and
// statistics. It assumes a single logical owner per process; disk
// persistence is last-writer-wins.
type Store struct {
	opts  Options
	fp    ports.Fingerprinter
	log   ports.Logger
	clock clockwork.Clock

	mu      sync.RWMutex
	enabled bool

	fingerprints map[string]string
	documents    map[domain.DocumentKey]*domain.Document
	objects      map[domain.ObjectKey]domain.Entity
	terrain      map[domain.TerrainKey]*domain.TerrainBundle
	grid         map[string]domain.GridConfig
	recent       []string

	usage map[domain.CacheDomain]int64
	stats map[domain.CacheDomain]*domain.DomainStats
	dirty bool

	closeOnce   sync.Once
	stopFlusher chan struct{}
	flusherDone chan struct{}
}

// New creates a Store, loads the durable snapshots, and starts the periodic
// flusher. Load failures degrade to empty tables with a logged warning.
func New(opts Options, fp ports.Fingerprinter, log ports.Logger) *Store {
	return newStore(opts, fp, log, clockwork.NewRealClock())
}

func newStore(opts Options, fp ports.Fingerprinter, log ports.Logger, clock clockwork.Clock) *Store {
	if opts.RecentLimit <= 0 {
		opts.RecentLimit = 10
	}
	if opts.DerivedSuffix == "" {
		opts.DerivedSuffix = ".converted.xml"
	}

	s := &Store{
		opts:         opts,
		fp:           fp,
		log:          log,
		clock:        clock,
		enabled:      opts.Enabled,
		fingerprints: make(map[string]string),
		documents:    make(map[domain.DocumentKey]*domain.Document),
		objects:      make(map[domain.ObjectKey]domain.Entity),
		terrain:      make(map[domain.TerrainKey]*domain.TerrainBundle),
		grid:         make(map[string]domain.GridConfig),
		usage:        make(map[domain.CacheDomain]int64),
		stats:        make(map[domain.CacheDomain]*domain.DomainStats),
		stopFlusher:  make(chan struct{}),
		flusherDone:  make(chan struct{}),
	}
	for _, d := range domain.Domains() {
		s.stats[d] = &domain.DomainStats{}
	}

	if s.enabled {
		s.loadSnapshots()
	}
	go s.flushLoop()
	return s
}

// canonical normalizes a path into the cross-domain key form.
func canonical(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

func (s *Store) hit(d domain.CacheDomain)  { s.stats[d].Hits++ }
func (s *Store) miss(d domain.CacheDomain) { s.stats[d].Misses++ }

// IsConversionCached reports whether the conversion fingerprint for path is
// still valid: the derived artifact exists and the recomputed quick hash
// matches. A mismatch implicitly invalidates the stored fingerprint.
func (s *Store) IsConversionCached(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled {
		return false
	}

	if !fileExists(path + s.opts.DerivedSuffix) {
		s.miss(domain.DomainFingerprint)
		return false
	}

	key := canonical(path)
	stored, ok := s.fingerprints[key]
	if !ok {
		s.miss(domain.DomainFingerprint)
		return false
	}

	current, err := s.fp.QuickHash(path)
	if err != nil || current != stored {
		delete(s.fingerprints, key)
		s.dirty = true
		s.miss(domain.DomainFingerprint)
		return false
	}

	s.hit(domain.DomainFingerprint)
	return true
}

// MarkConverted stores the current quick hash of path as its conversion
// fingerprint. The snapshot is flushed periodically, never per update.
func (s *Store) MarkConverted(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled {
		return
	}

	hash, err := s.fp.QuickHash(path)
	if err != nil {
		s.log.Warn("failed to fingerprint converted file: " + err.Error())
		return
	}
	s.fingerprints[canonical(path)] = hash
	s.dirty = true
}

// InvalidateConversion drops the conversion fingerprint for path.
func (s *Store) InvalidateConversion(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := canonical(path)
	if _, ok := s.fingerprints[key]; ok {
		delete(s.fingerprints, key)
		s.dirty = true
	}
}

// GetParsed returns the parsed document cached under the file's current
// mtime. An unreadable file returns a miss without touching counters.
func (s *Store) GetParsed(path string) (*domain.Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled {
		return nil, false
	}

	mtime := s.fp.ModTime(path)
	if mtime == 0 {
		return nil, false
	}

	key := domain.DocumentKey{Path: canonical(path), ModTime: mtime}
	if doc, ok := s.documents[key]; ok {
		s.hit(domain.DomainDocument)
		return doc, true
	}
	s.miss(domain.DomainDocument)
	return nil, false
}

// PutParsed caches a parsed document under the file's current mtime.
func (s *Store) PutParsed(path string, doc *domain.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled || doc == nil {
		return
	}
	mtime := s.fp.ModTime(path)
	if mtime == 0 {
		return
	}

	key := domain.DocumentKey{Path: canonical(path), ModTime: mtime}
	s.documents[key] = doc
	s.usage[domain.DomainDocument] += estimateJSONSize(doc)
	s.evictWhenOverBudget()
}

// InvalidateParsed sweeps every document entry for path, including stale
// entries cached under older timestamps.
func (s *Store) InvalidateParsed(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	abs := canonical(path)
	for key := range s.documents {
		if key.Path == abs {
			delete(s.documents, key)
		}
	}
}

// GetObject returns a cached parsed object by source path and stable id.
func (s *Store) GetObject(path, id string) (domain.Entity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled {
		return domain.Entity{}, false
	}

	key := domain.ObjectKey{Path: canonical(path), ID: id}
	if obj, ok := s.objects[key]; ok {
		s.hit(domain.DomainObject)
		return obj, true
	}
	s.miss(domain.DomainObject)
	return domain.Entity{}, false
}

// PutObject caches a parsed object.
func (s *Store) PutObject(path, id string, obj domain.Entity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled {
		return
	}
	key := domain.ObjectKey{Path: canonical(path), ID: id}
	s.objects[key] = obj
	s.usage[domain.DomainObject] += estimateJSONSize(obj)
	s.evictWhenOverBudget()
}

// InvalidateObjects sweeps every object entry for path.
func (s *Store) InvalidateObjects(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	abs := canonical(path)
	for key := range s.objects {
		if key.Path == abs {
			delete(s.objects, key)
		}
	}
}

// GetGridConfig returns the cached grid configuration for a level path.
func (s *Store) GetGridConfig(path string) (domain.GridConfig, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.enabled {
		return domain.GridConfig{}, false
	}
	cfg, ok := s.grid[canonical(path)]
	return cfg, ok
}

// PutGridConfig caches the grid configuration for a level path.
func (s *Store) PutGridConfig(path string, cfg domain.GridConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled {
		return
	}
	s.grid[canonical(path)] = cfg
}

// evictWhenOverBudget clears the entirety of the largest size-tracked
// domain when the running total exceeds the budget. Coarse whole-domain
// eviction trades precision for zero bookkeeping on the hot path.
// Caller holds the write lock.
func (s *Store) evictWhenOverBudget() {
	if s.opts.MaxMemoryBytes <= 0 {
		return
	}
	var total int64
	for _, u := range s.usage {
		total += u
	}
	if total <= s.opts.MaxMemoryBytes {
		return
	}

	largest := domain.DomainDocument
	for d, u := range s.usage {
		if u > s.usage[largest] {
			largest = d
		}
	}
	s.clearDomainLocked(largest)
	s.log.Warn("cache memory budget exceeded, cleared domain: " + string(largest))
}

func (s *Store) clearDomainLocked(d domain.CacheDomain) {
	switch d {
	case domain.DomainFingerprint:
		s.fingerprints = make(map[string]string)
		s.dirty = true
	case domain.DomainDocument:
		s.documents = make(map[domain.DocumentKey]*domain.Document)
	case domain.DomainObject:
		s.objects = make(map[domain.ObjectKey]domain.Entity)
	case domain.DomainTerrain:
		s.terrain = make(map[domain.TerrainKey]*domain.TerrainBundle)
	case domain.DomainGridConfig:
		s.grid = make(map[string]domain.GridConfig)
	}
	s.usage[d] = 0
}

// ClearDomain empties a single domain's table.
func (s *Store) ClearDomain(d domain.CacheDomain) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearDomainLocked(d)
}

// ClearAll empties every in-memory table. Durable snapshots on disk are
// untouched; use ClearDisk for those.
func (s *Store) ClearAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range domain.Domains() {
		s.clearDomainLocked(d)
	}
}

// SetEnabled toggles the store globally.
func (s *Store) SetEnabled(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = enabled
}

// Stats returns a snapshot of per-domain counters and table sizes.
func (s *Store) Stats() domain.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, u := range s.usage {
		total += u
	}

	st := domain.Stats{
		Enabled:     s.enabled,
		MemoryUsage: total,
		MemoryMax:   s.opts.MaxMemoryBytes,
		Sizes: map[domain.CacheDomain]int{
			domain.DomainFingerprint: len(s.fingerprints),
			domain.DomainDocument:    len(s.documents),
			domain.DomainObject:      len(s.objects),
			domain.DomainTerrain:     len(s.terrain),
			domain.DomainGridConfig:  len(s.grid),
		},
		PerDomain: make(map[domain.CacheDomain]domain.DomainStats, len(s.stats)),
	}
	for d, ds := range s.stats {
		st.PerDomain[d] = *ds
	}
	return st
}

// ResetStats zeroes every hit/miss counter.
func (s *Store) ResetStats() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range domain.Domains() {
		s.stats[d] = &domain.DomainStats{}
	}
}

// estimateJSONSize approximates an entry's memory footprint by its
// serialized size. Failures count as zero; accounting is best effort.
func estimateJSONSize(v any) int64 {
	data, err := json.Marshal(v)
	if err != nil {
		return 0
	}
	return int64(len(data))
}
