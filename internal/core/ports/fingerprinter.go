// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/forge/internal/core/domain"

// Fingerprinter computes content fingerprints and cheap change proxies.
//
//go:generate go run go.uber.org/mock/mockgen -source=fingerprinter.go -destination=mocks/mock_fingerprinter.go -package=mocks
type Fingerprinter interface {
	// QuickHash hashes only a bounded prefix of the file. Fast, and
	// deliberately blind to changes confined to the tail.
	QuickHash(path string) (string, error)

	// FullHash streams the entire file.
	FullHash(path string) (string, error)

	// ModTime returns the file's modification time in unix nanoseconds,
	// or 0 when the file cannot be stat'ed.
	ModTime(path string) int64

	// DirectoryKey derives a content-addressed key from the aggregate
	// stat (file count, total size, newest mtime) of the files in dir
	// matching the glob pattern.
	DirectoryKey(dir, pattern string) domain.TerrainKey
}
