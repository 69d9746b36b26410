// Package domain contains the core types of the asset conversion cache.
package domain

// CacheDomain identifies one of the independent cache tables.
type CacheDomain string

const (
	// DomainFingerprint maps canonical source paths to the quick hash
	// captured at the last successful conversion.
	DomainFingerprint CacheDomain = "fingerprint"
	// DomainDocument caches parsed documents keyed by (path, mtime).
	DomainDocument CacheDomain = "document"
	// DomainObject caches parsed objects keyed by (path, object id).
	DomainObject CacheDomain = "object"
	// DomainTerrain caches rendered terrain bundles keyed by content digest.
	DomainTerrain CacheDomain = "terrain"
	// DomainGridConfig caches per-level grid configuration.
	DomainGridConfig CacheDomain = "grid_config"
)

// Domains lists every cache domain in a stable order.
func Domains() []CacheDomain {
	return []CacheDomain{
		DomainFingerprint,
		DomainDocument,
		DomainObject,
		DomainTerrain,
		DomainGridConfig,
	}
}

// DocumentKey identifies a parsed document. ModTime participates in the key
// so a rewritten file naturally misses; stale entries for older timestamps
// are swept by path on invalidation.
type DocumentKey struct {
	Path    string
	ModTime int64
}

// ObjectKey identifies a parsed object inside a source file. The ID is a
// stable identifier assigned at parse time, never a runtime address.
type ObjectKey struct {
	Path string
	ID   string
}

// Entity is one parsed entity of a document.
type Entity struct {
	ID       uint64            `json:"id"`
	Name     string            `json:"name"`
	Class    string            `json:"class"`
	Position [3]float64        `json:"position"`
	Attrs    map[string]string `json:"attrs,omitempty"`
}

// Document is the payload of the document domain.
type Document struct {
	Path     string   `json:"path"`
	Entities []Entity `json:"entities"`
}

// TerrainKey is the content-addressed key of a terrain bundle: a digest of
// the owning directory's file count, total size, and newest mtime.
type TerrainKey string

// TerrainBundle is the payload of the terrain domain. Image holds the
// rasterized PNG bytes; Heights is optional.
type TerrainBundle struct {
	Image      []byte
	Heights    []float32
	GridWidth  int
	GridHeight int
}

// GridConfig is the payload of the grid config domain.
type GridConfig struct {
	CellSize float64 `json:"cell_size"`
	Width    int     `json:"width"`
	Height   int     `json:"height"`
	OffsetX  float64 `json:"offset_x"`
	OffsetY  float64 `json:"offset_y"`
}
