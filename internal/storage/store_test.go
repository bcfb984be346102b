package storage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hemangjain17/TruthLens-backend/internal/storage"
)

func TestNewVideoStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "videos")

	store, err := storage.NewVideoStore(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, store.Dir())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSaveWritesFile(t *testing.T) {
	store, err := storage.NewVideoStore(t.TempDir())
	require.NoError(t, err)

	content := "not really a video"
	stored, err := store.Save(strings.NewReader(content), "clip.mp4")
	require.NoError(t, err)

	assert.Equal(t, "clip.mp4", stored.Filename)
	assert.Equal(t, int64(len(content)), stored.Size)
	assert.True(t, strings.HasSuffix(stored.Path, "_clip.mp4"), "key should keep the original name as suffix: %s", stored.Path)
	assert.Equal(t, store.Dir(), filepath.Dir(stored.Path))

	data, err := os.ReadFile(stored.Path)
	require.NoError(t, err)
	assert.Equal(t, content, string(data))
}

func TestSaveSameNameDoesNotClobber(t *testing.T) {
	store, err := storage.NewVideoStore(t.TempDir())
	require.NoError(t, err)

	first, err := store.Save(strings.NewReader("first"), "clip.mp4")
	require.NoError(t, err)
	second, err := store.Save(strings.NewReader("second"), "clip.mp4")
	require.NoError(t, err)

	assert.NotEqual(t, first.Path, second.Path)

	data, err := os.ReadFile(first.Path)
	require.NoError(t, err)
	assert.Equal(t, "first", string(data))
}

func TestSaveStripsDirectoryFromName(t *testing.T) {
	store, err := storage.NewVideoStore(t.TempDir())
	require.NoError(t, err)

	stored, err := store.Save(strings.NewReader("x"), "../../escape.mp4")
	require.NoError(t, err)

	assert.Equal(t, "escape.mp4", stored.Filename)
	assert.Equal(t, store.Dir(), filepath.Dir(stored.Path))
}
