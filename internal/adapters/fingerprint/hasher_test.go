package fingerprint_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/adapters/fingerprint"
)

const window = 1 << 20

func writeFile(t *testing.T, path string, data []byte) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, data, 0o644))
}

func TestQuickHash_Deterministic(t *testing.T) {
	h := fingerprint.NewHasher()
	path := filepath.Join(t.TempDir(), "asset.bin")
	writeFile(t, path, bytes.Repeat([]byte{0xAB}, 4096))

	first, err := h.QuickHash(path)
	require.NoError(t, err)
	second, err := h.QuickHash(path)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestQuickHash_ChangeInsideWindowChangesHash(t *testing.T) {
	h := fingerprint.NewHasher()
	path := filepath.Join(t.TempDir(), "asset.bin")
	data := bytes.Repeat([]byte{0x00}, window+4096)
	writeFile(t, path, data)

	before, err := h.QuickHash(path)
	require.NoError(t, err)

	data[window/2] = 0xFF
	writeFile(t, path, data)

	after, err := h.QuickHash(path)
	require.NoError(t, err)
	require.NotEqual(t, before, after)
}

func TestQuickHash_ChangeBeyondWindowIsInvisible(t *testing.T) {
	// Pinned behavior: the quick hash reads only the first 1 MiB, so
	// mutations confined to the tail do not change it.
	h := fingerprint.NewHasher()
	path := filepath.Join(t.TempDir(), "asset.bin")
	data := bytes.Repeat([]byte{0x00}, window+4096)
	writeFile(t, path, data)

	before, err := h.QuickHash(path)
	require.NoError(t, err)

	data[window+100] = 0xFF
	writeFile(t, path, data)

	after, err := h.QuickHash(path)
	require.NoError(t, err)
	require.Equal(t, before, after)

	full1, err := h.FullHash(path)
	require.NoError(t, err)
	data[window+100] = 0xEE
	writeFile(t, path, data)
	full2, err := h.FullHash(path)
	require.NoError(t, err)
	require.NotEqual(t, full1, full2)
}

func TestQuickHash_ShortFile(t *testing.T) {
	h := fingerprint.NewHasher()
	path := filepath.Join(t.TempDir(), "small.bin")
	writeFile(t, path, []byte("tiny"))

	quick, err := h.QuickHash(path)
	require.NoError(t, err)
	full, err := h.FullHash(path)
	require.NoError(t, err)
	require.Equal(t, full, quick)
}

func TestQuickHash_MissingFile(t *testing.T) {
	h := fingerprint.NewHasher()
	_, err := h.QuickHash(filepath.Join(t.TempDir(), "nope.bin"))
	require.Error(t, err)
}

func TestModTime_MissingFileIsZero(t *testing.T) {
	h := fingerprint.NewHasher()
	require.Zero(t, h.ModTime(filepath.Join(t.TempDir(), "nope.bin")))
}

func TestDirectoryKey_Deterministic(t *testing.T) {
	h := fingerprint.NewHasher()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.csdat"), []byte("aaaa"))
	writeFile(t, filepath.Join(dir, "b.csdat"), []byte("bbbbbb"))

	k1 := h.DirectoryKey(dir, "*.csdat")
	k2 := h.DirectoryKey(dir, "*.csdat")
	require.Equal(t, k1, k2)
	require.NotEmpty(t, k1)
}

func TestDirectoryKey_ChangesWithContent(t *testing.T) {
	h := fingerprint.NewHasher()
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.csdat"), []byte("aaaa"))

	base := h.DirectoryKey(dir, "*.csdat")

	// More files changes the count component.
	writeFile(t, filepath.Join(dir, "b.csdat"), []byte("bb"))
	withExtra := h.DirectoryKey(dir, "*.csdat")
	require.NotEqual(t, base, withExtra)

	// Growing a file changes the total size component.
	writeFile(t, filepath.Join(dir, "b.csdat"), []byte("bbbbbbbb"))
	grown := h.DirectoryKey(dir, "*.csdat")
	require.NotEqual(t, withExtra, grown)

	// Touching the newest mtime changes the key even at constant size.
	future := time.Now().Add(2 * time.Second)
	require.NoError(t, os.Chtimes(filepath.Join(dir, "b.csdat"), future, future))
	touched := h.DirectoryKey(dir, "*.csdat")
	require.NotEqual(t, grown, touched)
}

func TestDirectoryKey_EmptyDirFallsBackToPath(t *testing.T) {
	h := fingerprint.NewHasher()
	dir := t.TempDir()
	k1 := h.DirectoryKey(dir, "*.csdat")
	k2 := h.DirectoryKey(dir, "*.csdat")
	require.Equal(t, k1, k2)

	other := t.TempDir()
	require.NotEqual(t, k1, h.DirectoryKey(other, "*.csdat"))
}
