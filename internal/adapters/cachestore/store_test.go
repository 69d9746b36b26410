package cachestore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/adapters/cachestore"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func newTestStore(t *testing.T, opts cachestore.Options) (*cachestore.Store, *mocks.MockFingerprinter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	fp := mocks.NewMockFingerprinter(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	if opts.Dir == "" {
		opts.Dir = t.TempDir()
	}
	s := cachestore.New(opts, fp, logger)
	t.Cleanup(func() { _ = s.Close() })
	return s, fp
}

// seedSource creates a source file plus its derived artifact so fingerprint
// validation can pass.
func seedSource(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("binary"), 0o644))
	require.NoError(t, os.WriteFile(path+".converted.xml", []byte("<level/>"), 0o644))
	return path
}

func TestMarkConvertedIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	s, fp := newTestStore(t, cachestore.Options{Dir: dir, Enabled: true})
	src := seedSource(t, dir, "town.fcb")

	fp.EXPECT().QuickHash(src).Return("abc123", nil).AnyTimes()

	s.MarkConverted(src)
	require.True(t, s.IsConversionCached(src))
	s.MarkConverted(src)
	require.True(t, s.IsConversionCached(src))
}

func TestIsConversionCachedRequiresDerivedArtifact(t *testing.T) {
	dir := t.TempDir()
	s, fp := newTestStore(t, cachestore.Options{Dir: dir, Enabled: true})
	src := seedSource(t, dir, "town.fcb")

	fp.EXPECT().QuickHash(src).Return("abc123", nil).AnyTimes()
	s.MarkConverted(src)
	require.True(t, s.IsConversionCached(src))

	require.NoError(t, os.Remove(src+".converted.xml"))
	require.False(t, s.IsConversionCached(src))
}

func TestIsConversionCachedHashMismatchInvalidates(t *testing.T) {
	dir := t.TempDir()
	s, fp := newTestStore(t, cachestore.Options{Dir: dir, Enabled: true})
	src := seedSource(t, dir, "town.fcb")

	fp.EXPECT().QuickHash(src).Return("before", nil).Times(1)
	s.MarkConverted(src)

	// Content changed; the stale fingerprint is dropped on first check.
	fp.EXPECT().QuickHash(src).Return("after", nil).Times(1)
	require.False(t, s.IsConversionCached(src))

	// Second check misses on the absent entry without re-hashing.
	require.False(t, s.IsConversionCached(src))
}

func TestFingerprintErrorDegradesToMiss(t *testing.T) {
	dir := t.TempDir()
	s, fp := newTestStore(t, cachestore.Options{Dir: dir, Enabled: true})
	src := seedSource(t, dir, "town.fcb")

	fp.EXPECT().QuickHash(src).Return("", zerr.New("unreadable")).Times(1)
	s.MarkConverted(src)
	require.False(t, s.IsConversionCached(src))
}

func TestDisabledStoreMissesEverything(t *testing.T) {
	dir := t.TempDir()
	s, _ := newTestStore(t, cachestore.Options{Dir: dir, Enabled: false})
	src := seedSource(t, dir, "town.fcb")

	s.MarkConverted(src)
	require.False(t, s.IsConversionCached(src))

	s.PutParsed(src, &domain.Document{Path: src})
	_, ok := s.GetParsed(src)
	require.False(t, ok)

	s.AddRecent(src)
	require.Empty(t, s.Recent())

	require.False(t, s.Stats().Enabled)
}

func TestParsedDocumentKeyedByModTime(t *testing.T) {
	dir := t.TempDir()
	s, fp := newTestStore(t, cachestore.Options{Dir: dir, Enabled: true})
	src := seedSource(t, dir, "level.xml")
	doc := &domain.Document{Path: src}

	fp.EXPECT().ModTime(src).Return(int64(1000)).Times(2)
	s.PutParsed(src, doc)
	got, ok := s.GetParsed(src)
	require.True(t, ok)
	require.Same(t, doc, got)

	// File touched since caching: the old entry no longer matches.
	fp.EXPECT().ModTime(src).Return(int64(2000)).Times(1)
	_, ok = s.GetParsed(src)
	require.False(t, ok)
}

func TestInvalidateParsedSweepsStaleEntries(t *testing.T) {
	dir := t.TempDir()
	s, fp := newTestStore(t, cachestore.Options{Dir: dir, Enabled: true})
	src := seedSource(t, dir, "level.xml")

	// Two entries for the same path under different timestamps.
	fp.EXPECT().ModTime(src).Return(int64(1000)).Times(1)
	s.PutParsed(src, &domain.Document{Path: src})
	fp.EXPECT().ModTime(src).Return(int64(2000)).Times(1)
	s.PutParsed(src, &domain.Document{Path: src})

	s.InvalidateParsed(src)

	fp.EXPECT().ModTime(src).Return(int64(1000)).Times(1)
	_, ok := s.GetParsed(src)
	require.False(t, ok)
	fp.EXPECT().ModTime(src).Return(int64(2000)).Times(1)
	_, ok = s.GetParsed(src)
	require.False(t, ok)
}

func TestUnreadableFileBypassesDocumentCache(t *testing.T) {
	dir := t.TempDir()
	s, fp := newTestStore(t, cachestore.Options{Dir: dir, Enabled: true})

	fp.EXPECT().ModTime("/gone.xml").Return(int64(0)).Times(2)
	s.PutParsed("/gone.xml", &domain.Document{Path: "/gone.xml"})
	_, ok := s.GetParsed("/gone.xml")
	require.False(t, ok)

	// Neither call touched the hit/miss counters.
	ds := s.Stats().PerDomain[domain.DomainDocument]
	require.Equal(t, uint64(0), ds.Hits)
	require.Equal(t, uint64(0), ds.Misses)
}

func TestObjectCacheByStableID(t *testing.T) {
	dir := t.TempDir()
	s, _ := newTestStore(t, cachestore.Options{Dir: dir, Enabled: true})

	obj := domain.Entity{ID: 7, Name: "spawn_point", Class: "Marker"}
	s.PutObject("/level.xml", "7", obj)

	got, ok := s.GetObject("/level.xml", "7")
	require.True(t, ok)
	require.Equal(t, obj, got)

	_, ok = s.GetObject("/level.xml", "8")
	require.False(t, ok)

	s.InvalidateObjects("/level.xml")
	_, ok = s.GetObject("/level.xml", "7")
	require.False(t, ok)
}

func TestEvictionClearsSingleLargestDomain(t *testing.T) {
	dir := t.TempDir()
	s, fp := newTestStore(t, cachestore.Options{Dir: dir, MaxMemoryBytes: 512, Enabled: true})
	src := seedSource(t, dir, "level.xml")

	// Objects stay small; documents grow past the budget.
	s.PutObject("/level.xml", "1", domain.Entity{ID: 1, Name: "a"})

	big := &domain.Document{Path: src}
	for i := uint64(0); i < 20; i++ {
		big.Entities = append(big.Entities, domain.Entity{ID: i, Name: "entity_with_a_long_name", Class: "Prop"})
	}
	fp.EXPECT().ModTime(src).Return(int64(1000)).AnyTimes()
	s.PutParsed(src, big)

	stats := s.Stats()
	// The document table, the largest domain, was cleared whole; the small
	// object entry survived.
	require.Equal(t, 0, stats.Sizes[domain.DomainDocument])
	require.Equal(t, 1, stats.Sizes[domain.DomainObject])
	require.Less(t, stats.MemoryUsage, int64(512))
}

func TestGridConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, _ := newTestStore(t, cachestore.Options{Dir: dir, Enabled: true})

	cfg := domain.GridConfig{CellSize: 64, Width: 128, Height: 128}
	s.PutGridConfig("/level.xml", cfg)
	got, ok := s.GetGridConfig("/level.xml")
	require.True(t, ok)
	require.Equal(t, cfg, got)

	s.ClearDomain(domain.DomainGridConfig)
	_, ok = s.GetGridConfig("/level.xml")
	require.False(t, ok)
}

func TestStatsRates(t *testing.T) {
	dir := t.TempDir()
	s, _ := newTestStore(t, cachestore.Options{Dir: dir, Enabled: true})

	// One hit, one miss on the object domain.
	s.PutObject("/a.xml", "1", domain.Entity{ID: 1})
	_, _ = s.GetObject("/a.xml", "1")
	_, _ = s.GetObject("/a.xml", "2")

	ds := s.Stats().PerDomain[domain.DomainObject]
	require.Equal(t, uint64(1), ds.Hits)
	require.Equal(t, uint64(1), ds.Misses)
	require.InDelta(t, 50.0, ds.Rate(), 1e-9)

	s.ResetStats()
	ds = s.Stats().PerDomain[domain.DomainObject]
	require.Equal(t, uint64(0), ds.Hits+ds.Misses)
}
