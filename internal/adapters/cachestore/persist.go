package cachestore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"time"

	"go.trai.ch/zerr"
)

// snapshotVersion tags the on-disk record format. A mismatch on load
// degrades to an empty table, never an error.
const snapshotVersion = "1"

const (
	fingerprintFile = "fingerprints.json"
	recentFile      = "recent.json"
	terrainSubdir   = "terrain"
	flushInterval   = 30 * time.Second
)

type fingerprintRecord struct {
	FormatVersion string            `json:"format_version"`
	LastUpdated   time.Time         `json:"last_updated"`
	Conversions   map[string]string `json:"conversions"`
}

type recentRecord struct {
	FormatVersion string    `json:"format_version"`
	LastUpdated   time.Time `json:"last_updated"`
	Paths         []string  `json:"paths"`
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// loadSnapshots restores the durable domains. Every failure path ends in an
// empty table plus a warning; the cache never refuses to start.
func (s *Store) loadSnapshots() {
	if fps, err := loadFingerprintSnapshot(filepath.Join(s.opts.Dir, fingerprintFile)); err != nil {
		s.log.Warn("discarding fingerprint snapshot: " + err.Error())
	} else if fps != nil {
		s.fingerprints = fps
	}

	if paths, err := loadRecentSnapshot(filepath.Join(s.opts.Dir, recentFile)); err != nil {
		s.log.Warn("discarding recent list snapshot: " + err.Error())
	} else if paths != nil {
		// Entries pointing at paths that no longer exist are dropped.
		kept := paths[:0]
		for _, p := range paths {
			if fileExists(p) {
				kept = append(kept, p)
			}
		}
		if len(kept) > s.opts.RecentLimit {
			kept = kept[:s.opts.RecentLimit]
		}
		s.recent = kept
	}
}

func loadFingerprintSnapshot(path string) (map[string]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is under the cache dir
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, "failed to read fingerprint snapshot")
	}

	var rec fingerprintRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, zerr.Wrap(err, "failed to decode fingerprint snapshot")
	}
	if rec.FormatVersion != snapshotVersion {
		return nil, zerr.With(zerr.New("unsupported snapshot version"), "version", rec.FormatVersion)
	}
	return rec.Conversions, nil
}

func loadRecentSnapshot(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is under the cache dir
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, "failed to read recent list snapshot")
	}

	var rec recentRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, zerr.Wrap(err, "failed to decode recent list snapshot")
	}
	if rec.FormatVersion != snapshotVersion {
		return nil, zerr.With(zerr.New("unsupported snapshot version"), "version", rec.FormatVersion)
	}
	return rec.Paths, nil
}

// AddRecent records path at the front of the recent list, deduplicated and
// capped at the configured limit.
func (s *Store) AddRecent(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.enabled {
		return
	}

	abs := canonical(path)
	if i := slices.Index(s.recent, abs); i >= 0 {
		s.recent = slices.Delete(s.recent, i, i+1)
	}
	s.recent = append([]string{abs}, s.recent...)
	if len(s.recent) > s.opts.RecentLimit {
		s.recent = s.recent[:s.opts.RecentLimit]
	}
	s.dirty = true
}

// Recent returns the recent paths, most recent first.
func (s *Store) Recent() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.recent)
}

// ClearRecent empties the recent list.
func (s *Store) ClearRecent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recent = nil
	s.dirty = true
}

// Flush writes the durable domains to disk if anything changed since the
// last flush. Write failures are logged and swallowed.
func (s *Store) Flush() {
	s.mu.Lock()
	if !s.dirty || !s.enabled {
		s.mu.Unlock()
		return
	}
	fps := make(map[string]string, len(s.fingerprints))
	for k, v := range s.fingerprints {
		fps[k] = v
	}
	recent := slices.Clone(s.recent)
	s.dirty = false
	s.mu.Unlock()

	now := s.clock.Now()
	if err := writeSnapshot(filepath.Join(s.opts.Dir, fingerprintFile), fingerprintRecord{
		FormatVersion: snapshotVersion,
		LastUpdated:   now,
		Conversions:   fps,
	}); err != nil {
		s.log.Warn("failed to write fingerprint snapshot: " + err.Error())
	}
	if err := writeSnapshot(filepath.Join(s.opts.Dir, recentFile), recentRecord{
		FormatVersion: snapshotVersion,
		LastUpdated:   now,
		Paths:         recent,
	}); err != nil {
		s.log.Warn("failed to write recent list snapshot: " + err.Error())
	}
}

func writeSnapshot(path string, rec any) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal snapshot")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create cache directory")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // Cache record
		return zerr.Wrap(err, "failed to write snapshot")
	}
	return nil
}

// ClearDisk removes the terrain bundles and the durable snapshots.
func (s *Store) ClearDisk() {
	terrainDir := filepath.Join(s.opts.Dir, terrainSubdir)
	for _, pattern := range []string{"*.png", "*.json", "*.cbor.zst"} {
		matches, err := filepath.Glob(filepath.Join(terrainDir, pattern))
		if err != nil {
			continue
		}
		for _, m := range matches {
			if err := os.Remove(m); err != nil {
				s.log.Warn("failed to remove terrain cache file: " + err.Error())
			}
		}
	}
	for _, f := range []string{fingerprintFile, recentFile} {
		if err := os.Remove(filepath.Join(s.opts.Dir, f)); err != nil && !os.IsNotExist(err) {
			s.log.Warn("failed to remove snapshot: " + err.Error())
		}
	}
}

// flushLoop periodically flushes dirty state so a crash loses at most one
// interval of fingerprint updates.
func (s *Store) flushLoop() {
	defer close(s.flusherDone)

	ticker := s.clock.NewTicker(flushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.Chan():
			s.Flush()
		case <-s.stopFlusher:
			return
		}
	}
}

// Close flushes once more and stops the background flusher. Safe to call
// more than once.
func (s *Store) Close() error {
	s.closeOnce.Do(func() {
		close(s.stopFlusher)
		<-s.flusherDone
		s.Flush()
	})
	return nil
}
