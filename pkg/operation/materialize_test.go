package operation_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idchunk/pkg/chunk"
	"idchunk/pkg/config"
	"idchunk/pkg/mapper"
	"idchunk/pkg/operation"
)

// 🧪 countFiles walks dir and returns the number of files in it.
func countFiles(t *testing.T, dir string) int {
	t.Helper()
	files, err := mapper.ListFiles(context.Background(), dir, mapper.ListOptions{Recursive: true})
	require.NoError(t, err)
	return len(files)
}

// 🧪 mapAndChunk maps the IDs and splits them by the configured size.
func mapAndChunk(t *testing.T, ctx context.Context, cfg *config.Config, list []string) []chunk.Chunk {
	t.Helper()
	res, err := mapper.Map(ctx, cfg.Source, list)
	require.NoError(t, err)
	chunks, err := chunk.Split(res.Found, cfg.ChunkSize)
	require.NoError(t, err)
	return chunks
}

// 🧪 TestMaterializeCopy tests copying chunk folders into the destination.
func TestMaterializeCopy(t *testing.T) {
	ctx, cfg, ulog := createTestEnv(t,
		[]string{"4059", "4239", "5000"},
		"4059\n4239\n5000\n",
	)
	cfg.ChunkSize = 2
	cfg.Mode = config.ModeCopy

	op, err := operation.New(operation.Options{Config: cfg, UserLogger: ulog})
	require.NoError(t, err)

	chunks := mapAndChunk(t, ctx, cfg, []string{"4059", "4239", "5000"})
	require.Len(t, chunks, 2)

	res, err := op.Materialize(ctx, chunks)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Processed)
	assert.Empty(t, res.Failures)

	// Namespaced per chunk: dest/chunk_1/4059 etc.
	assert.FileExists(t, filepath.Join(cfg.Destination, "chunk_1", "4059", "data.txt"))
	assert.FileExists(t, filepath.Join(cfg.Destination, "chunk_1", "4239", "data.txt"))
	assert.FileExists(t, filepath.Join(cfg.Destination, "chunk_2", "5000", "data.txt"))

	// Copy keeps the sources in place
	assert.DirExists(t, filepath.Join(cfg.Source, "4059"))
	assert.Equal(t, 1, countFiles(t, filepath.Join(cfg.Destination, "chunk_1", "4059")))
}

// 🧪 TestMaterializeMove tests that moved sources are gone and the
// destination holds the same files.
func TestMaterializeMove(t *testing.T) {
	ctx, cfg, ulog := createTestEnv(t, []string{"4059"}, "4059\n")
	cfg.ChunkSize = 1
	cfg.Mode = config.ModeMove

	srcFolder := filepath.Join(cfg.Source, "4059")
	wantFiles := countFiles(t, srcFolder)

	op, err := operation.New(operation.Options{Config: cfg, UserLogger: ulog})
	require.NoError(t, err)

	chunks := mapAndChunk(t, ctx, cfg, []string{"4059"})
	res, err := op.Materialize(ctx, chunks)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Processed)

	assert.NoDirExists(t, srcFolder)
	target := filepath.Join(cfg.Destination, "chunk_1", "4059")
	assert.DirExists(t, target)
	assert.Equal(t, wantFiles, countFiles(t, target))
}

// 🧪 TestMaterializePartialFailure tests that a failing item is collected
// and the remaining items still get processed.
func TestMaterializePartialFailure(t *testing.T) {
	ctx, cfg, ulog := createTestEnv(t, []string{"4059", "4239"}, "4059\n4239\n")
	cfg.ChunkSize = 10
	cfg.Mode = config.ModeCopy

	op, err := operation.New(operation.Options{Config: cfg, UserLogger: ulog})
	require.NoError(t, err)

	chunks := mapAndChunk(t, ctx, cfg, []string{"4059", "4239"})
	require.Len(t, chunks, 1)

	// Simulate a folder vanishing between mapping and materialization
	chunks[0].Items[0].Path = filepath.Join(cfg.Source, "gone")

	res, err := op.Materialize(ctx, chunks)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Processed)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, "4059", res.Failures[0].ID)
	assert.Error(t, res.Failures[0].Err)

	assert.FileExists(t, filepath.Join(cfg.Destination, "chunk_1", "4239", "data.txt"))
}

// 🧪 TestMaterializeReplacesExistingTarget tests the replace semantics.
func TestMaterializeReplacesExistingTarget(t *testing.T) {
	ctx, cfg, ulog := createTestEnv(t, []string{"4059"}, "4059\n")
	cfg.ChunkSize = 1
	cfg.Mode = config.ModeCopy

	stale := filepath.Join(cfg.Destination, "chunk_1", "4059")
	require.NoError(t, os.MkdirAll(stale, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(stale, "stale.txt"), []byte("old"), 0644))

	op, err := operation.New(operation.Options{Config: cfg, UserLogger: ulog})
	require.NoError(t, err)

	chunks := mapAndChunk(t, ctx, cfg, []string{"4059"})
	res, err := op.Materialize(ctx, chunks)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Processed)

	assert.NoFileExists(t, filepath.Join(stale, "stale.txt"))
	assert.FileExists(t, filepath.Join(stale, "data.txt"))
}

// 🧪 TestMaterializeRequiresMode tests the mode guard.
func TestMaterializeRequiresMode(t *testing.T) {
	ctx, cfg, ulog := createTestEnv(t, []string{"4059"}, "4059\n")
	cfg.ChunkSize = 1
	cfg.Mode = config.ModeNone

	op, err := operation.New(operation.Options{Config: cfg, UserLogger: ulog})
	require.NoError(t, err)

	chunks := mapAndChunk(t, ctx, cfg, []string{"4059"})
	_, err = op.Materialize(ctx, chunks)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidMode)
}
