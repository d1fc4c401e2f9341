package index

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddingStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "embeddings.json")

	store := LoadEmbeddingStore(path, discardLogger())
	assert.Equal(t, 0, store.Len())

	store.Upsert("/home", []float32{0.1, -0.2, 0.3}, "ROUTE: /home")
	require.NoError(t, store.Save())

	reloaded := LoadEmbeddingStore(path, discardLogger())
	require.Equal(t, 1, reloaded.Len())

	rec, ok := reloaded.Get("/home")
	require.True(t, ok)
	assert.Equal(t, []float32{0.1, -0.2, 0.3}, rec.Embedding)
	assert.Equal(t, "ROUTE: /home", rec.Text)
}

func TestEmbeddingStoreUpsertOverwrites(t *testing.T) {
	store := LoadEmbeddingStore(filepath.Join(t.TempDir(), "embeddings.json"), discardLogger())

	store.Upsert("/home", []float32{1}, "old text")
	store.Upsert("/home", []float32{2}, "new text")

	assert.Equal(t, 1, store.Len())
	rec, _ := store.Get("/home")
	assert.Equal(t, []float32{2}, rec.Embedding)
	assert.Equal(t, "new text", rec.Text)
}

func TestEmbeddingStoreCorruptFileStartsFresh(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "embeddings.json")
	require.NoError(t, os.WriteFile(path, []byte("[1,2,3]"), 0o644))

	store := LoadEmbeddingStore(path, discardLogger())
	assert.Equal(t, 0, store.Len())
}

func TestEmbeddingStoreFileShape(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "embeddings.json")

	store := LoadEmbeddingStore(path, discardLogger())
	store.Upsert("/home", []float32{0.5}, "ROUTE: /home")
	require.NoError(t, store.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Contains(t, raw, "/home")
	assert.Contains(t, raw["/home"], "embedding")
	assert.Contains(t, raw["/home"], "text")
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store := LoadEmbeddingStore(filepath.Join(dir, "embeddings.json"), discardLogger())
	store.Upsert("/home", []float32{1}, "text")
	require.NoError(t, store.Save())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "embeddings.json", entries[0].Name())
}
