// Package fingerprint computes content fingerprints for source assets.
package fingerprint

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/blake3"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Fingerprinter = (*Hasher)(nil)

// quickHashWindow bounds the prefix read by QuickHash. Mutations to these
// binary formats cluster near the front of the file; changes confined to
// the tail go undetected, which is the accepted trade for not streaming
// multi-hundred-megabyte assets on every cache probe.
const quickHashWindow = 1 << 20

// fullHashChunk is the buffer size FullHash streams with.
const fullHashChunk = 32 * 1024

// Hasher implements ports.Fingerprinter with xxhash for file content and
// blake3 for content-addressed directory keys.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// QuickHash hashes the first quickHashWindow bytes of the file.
func (h *Hasher) QuickHash(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open file for quick hash"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.CopyN(hasher, f, quickHashWindow); err != nil && !errors.Is(err, io.EOF) {
		return "", zerr.With(zerr.Wrap(err, "failed to read quick hash window"), "path", path)
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// FullHash streams the whole file in fixed-size chunks.
func (h *Hasher) FullHash(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open file for full hash"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.CopyBuffer(hasher, f, make([]byte, fullHashChunk)); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// ModTime returns the file's mtime in unix nanoseconds, 0 when it cannot be
// stat'ed. Callers treat 0 as "uncacheable", not as an error.
func (h *Hasher) ModTime(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.ModTime().UnixNano()
}

// DirectoryKey derives a content-addressed key from the files in dir that
// match pattern: their count, total byte size, and newest mtime. Equal keys
// imply the directory's aggregate stat is unchanged. When nothing matches,
// the key degrades to a digest of the directory path so callers still get a
// stable, collision-free identity.
func (h *Hasher) DirectoryKey(dir, pattern string) domain.TerrainKey {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil || len(matches) == 0 {
		sum := blake3.Sum256([]byte(dir))
		return domain.TerrainKey(hex.EncodeToString(sum[:16]))
	}
	sort.Strings(matches)

	var totalSize int64
	var newest int64
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil {
			continue
		}
		totalSize += info.Size()
		if mt := info.ModTime().UnixNano(); mt > newest {
			newest = mt
		}
	}

	keyData := fmt.Sprintf("%d_%d_%d", len(matches), totalSize, newest)
	sum := blake3.Sum256([]byte(keyData))
	return domain.TerrainKey(hex.EncodeToString(sum[:16]))
}
