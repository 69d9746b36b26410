// Package app implements the application layer for forge.
package app

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/forge/internal/engine/pipeline"
	"go.trai.ch/forge/internal/engine/replacer"
	"go.trai.ch/zerr"
)

// App represents the main application logic. It owns the cache store's
// lifecycle and is the single entry point for the CLI and for the editor
// shell consuming the cache.
type App struct {
	sourceSuffix string
	store        ports.CacheStore
	fp           ports.Fingerprinter
	pipe         *pipeline.Pipeline
	repl         *replacer.Replacer
	logger       ports.Logger
}

// New creates a new App instance.
func New(sourceSuffix string, store ports.CacheStore, fp ports.Fingerprinter, pipe *pipeline.Pipeline, repl *replacer.Replacer, logger ports.Logger) *App {
	return &App{
		sourceSuffix: sourceSuffix,
		store:        store,
		fp:           fp,
		pipe:         pipe,
		repl:         repl,
		logger:       logger,
	}
}

// Convert resolves the given paths to source asset files and runs the
// batch through the conversion pipeline. Directory arguments are scanned
// non-recursively for files carrying the source suffix. Every resolved
// file is recorded in the recent list.
func (a *App) Convert(ctx context.Context, paths []string) (domain.BatchReport, error) {
	// 1. Resolve the batch
	files, err := a.resolveSources(paths)
	if err != nil {
		return domain.BatchReport{}, err
	}
	if len(files) == 0 {
		return domain.BatchReport{}, zerr.With(zerr.New("no source files found"), "suffix", a.sourceSuffix)
	}

	for _, f := range files {
		a.store.AddRecent(f)
	}

	// 2. Run the pipeline
	report, err := a.pipe.Convert(ctx, files)
	if err != nil {
		return report, zerr.Wrap(err, "batch conversion interrupted")
	}
	return report, nil
}

// Commit replaces the given originals with their re-encoded binaries.
func (a *App) Commit(ctx context.Context, files []string) domain.CommitResult {
	return a.repl.Commit(ctx, files)
}

// Recent returns the recently used source files, most recent first.
func (a *App) Recent() []string {
	return a.store.Recent()
}

// Stats returns a snapshot of cache statistics.
func (a *App) Stats() domain.Stats {
	return a.store.Stats()
}

// Clean empties the in-memory cache tables; with disk set it also removes
// persisted snapshots and terrain bundles.
func (a *App) Clean(disk bool) {
	a.store.ClearAll()
	a.store.ResetStats()
	if disk {
		a.store.ClearDisk()
	}
}

// Shutdown flushes durable cache domains and stops background work.
func (a *App) Shutdown() error {
	return a.store.Close()
}

// IsConversionCached reports whether path still has a valid conversion
// fingerprint.
func (a *App) IsConversionCached(path string) bool {
	return a.store.IsConversionCached(path)
}

// MarkConverted records the current fingerprint for path.
func (a *App) MarkConverted(path string) {
	a.store.MarkConverted(path)
}

// Invalidate drops every cache entry derived from path: its conversion
// fingerprint, parsed documents, and parsed objects.
func (a *App) Invalidate(path string) {
	a.store.InvalidateConversion(path)
	a.store.InvalidateParsed(path)
	a.store.InvalidateObjects(path)
}

// GetParsed returns the cached parsed document for path, if still fresh.
func (a *App) GetParsed(path string) (*domain.Document, bool) {
	return a.store.GetParsed(path)
}

// PutParsed caches the parsed document for path.
func (a *App) PutParsed(path string, doc *domain.Document) {
	a.store.PutParsed(path, doc)
}

// TerrainKey derives the content-addressed cache key for the terrain
// files in dir matching pattern. The key changes whenever the directory's
// file count, total size, or newest mtime changes.
func (a *App) TerrainKey(dir, pattern string) domain.TerrainKey {
	return a.fp.DirectoryKey(dir, pattern)
}

// GetTerrain returns the cached terrain bundle for key.
func (a *App) GetTerrain(key domain.TerrainKey) (*domain.TerrainBundle, bool) {
	return a.store.GetTerrain(key)
}

// PutTerrain caches the terrain bundle for key.
func (a *App) PutTerrain(key domain.TerrainKey, bundle *domain.TerrainBundle) {
	a.store.PutTerrain(key, bundle)
}

// resolveSources expands directory arguments into their source files and
// passes plain files through unchanged.
func (a *App) resolveSources(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "resolving batch path"), "path", p)
		}
		if !info.IsDir() {
			files = append(files, p)
			continue
		}
		matches, err := filepath.Glob(filepath.Join(p, "*"+a.sourceSuffix))
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "scanning directory"), "path", p)
		}
		sort.Strings(matches)
		files = append(files, matches...)
	}
	return files, nil
}
