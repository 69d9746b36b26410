package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/forge/internal/app"
	"go.trai.ch/forge/internal/core/domain"
	"go.trai.ch/forge/internal/core/ports/mocks"
	"go.trai.ch/forge/internal/engine/pipeline"
	"go.trai.ch/forge/internal/engine/replacer"
	"go.uber.org/mock/gomock"
)

func newApp(t *testing.T) (*app.App, *mocks.MockCacheStore, *mocks.MockRunner) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := mocks.NewMockCacheStore(ctrl)
	fp := mocks.NewMockFingerprinter(ctrl)
	runner := mocks.NewMockRunner(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	sink := mocks.NewMockProgressSink(ctrl)

	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()
	sink.EXPECT().Step(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	pipe := pipeline.New(pipeline.Options{Converter: "conv", Workers: 1}, store, runner, logger, sink)
	repl := replacer.New(replacer.Options{Converter: "conv"}, store, runner, logger)
	return app.New(".data.fcb", store, fp, pipe, repl, logger), store, runner
}

func TestConvertScansDirectories(t *testing.T) {
	a, store, runner := newApp(t)
	dir := t.TempDir()

	for _, name := range []string{"town.data.fcb", "forest.data.fcb", "cave.data.fcb"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	// Files without the source suffix are not part of the batch.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))

	store.EXPECT().AddRecent(gomock.Any()).Times(3)
	store.EXPECT().IsConversionCached(gomock.Any()).Return(false).Times(3)
	store.EXPECT().MarkConverted(gomock.Any()).Times(3)
	store.EXPECT().Flush().Times(1)
	runner.EXPECT().Convert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)

	report, err := a.Convert(context.Background(), []string{dir})
	require.NoError(t, err)
	require.Equal(t, 3, report.Succeeded)
	require.Equal(t, 3, report.Total())
}

func TestConvertMixesFilesAndDirectories(t *testing.T) {
	a, store, runner := newApp(t)
	dir := t.TempDir()

	inDir := filepath.Join(dir, "a.data.fcb")
	require.NoError(t, os.WriteFile(inDir, []byte("x"), 0o644))
	loose := filepath.Join(dir, "loose.bin")
	require.NoError(t, os.WriteFile(loose, []byte("x"), 0o644))

	store.EXPECT().AddRecent(gomock.Any()).Times(2)
	store.EXPECT().IsConversionCached(gomock.Any()).Return(false).Times(2)
	store.EXPECT().MarkConverted(gomock.Any()).Times(2)
	store.EXPECT().Flush().Times(1)
	runner.EXPECT().Convert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	// An explicit file argument bypasses the suffix filter.
	report, err := a.Convert(context.Background(), []string{loose, dir})
	require.NoError(t, err)
	require.Equal(t, 2, report.Succeeded)
}

func TestConvertEmptyBatchFails(t *testing.T) {
	a, _, _ := newApp(t)
	_, err := a.Convert(context.Background(), []string{t.TempDir()})
	require.Error(t, err)
}

func TestConvertMissingPathFails(t *testing.T) {
	a, _, _ := newApp(t)
	_, err := a.Convert(context.Background(), []string{"/does/not/exist"})
	require.Error(t, err)
}

func TestInvalidateSweepsDerivedDomains(t *testing.T) {
	a, store, _ := newApp(t)

	store.EXPECT().InvalidateConversion("level.fcb").Times(1)
	store.EXPECT().InvalidateParsed("level.fcb").Times(1)
	store.EXPECT().InvalidateObjects("level.fcb").Times(1)

	a.Invalidate("level.fcb")
}

func TestCleanWithDisk(t *testing.T) {
	a, store, _ := newApp(t)

	store.EXPECT().ClearAll().Times(1)
	store.EXPECT().ResetStats().Times(1)
	store.EXPECT().ClearDisk().Times(1)
	a.Clean(true)

	store.EXPECT().ClearAll().Times(1)
	store.EXPECT().ResetStats().Times(1)
	a.Clean(false)
}

func TestShutdownClosesStore(t *testing.T) {
	a, store, _ := newApp(t)

	store.EXPECT().Close().Return(nil).Times(1)
	require.NoError(t, a.Shutdown())
}

func TestCollaboratorPassthrough(t *testing.T) {
	a, store, _ := newApp(t)

	doc := &domain.Document{Path: "level.xml"}
	store.EXPECT().GetParsed("level.xml").Return(doc, true)
	got, ok := a.GetParsed("level.xml")
	require.True(t, ok)
	require.Same(t, doc, got)

	store.EXPECT().IsConversionCached("level.fcb").Return(true)
	require.True(t, a.IsConversionCached("level.fcb"))
}

func TestTerrainKeyDelegatesToFingerprinter(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockCacheStore(ctrl)
	fp := mocks.NewMockFingerprinter(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	a := app.New(".data.fcb", store, fp, nil, nil, logger)

	fp.EXPECT().DirectoryKey("maps", "*.raw").Return(domain.TerrainKey("k1"))
	require.Equal(t, domain.TerrainKey("k1"), a.TerrainKey("maps", "*.raw"))
}
