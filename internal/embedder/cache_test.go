package embedder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeHash(t *testing.T) {
	assert.Equal(t,
		"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		ComputeHash(""))
	assert.Equal(t, ComputeHash("hello"), ComputeHash("hello"))
	assert.NotEqual(t, ComputeHash("hello"), ComputeHash("hello "))
}

func TestCacheGetSet(t *testing.T) {
	c := NewCache(10)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("key", []float32{1, 2, 3})
	vec, ok := c.Get("key")
	require.True(t, ok)
	assert.Equal(t, []float32{1, 2, 3}, vec)
	assert.Equal(t, 1, c.Size())
}

func TestCacheReturnsCopies(t *testing.T) {
	c := NewCache(10)
	original := []float32{1, 2, 3}
	c.Set("key", original)

	// Mutating either the input or a retrieved value must not affect the cache.
	original[0] = 99
	got, _ := c.Get("key")
	got[1] = 99

	fresh, _ := c.Get("key")
	assert.Equal(t, []float32{1, 2, 3}, fresh)
}

func TestCacheEviction(t *testing.T) {
	c := NewCache(2)
	c.Set("a", []float32{1})
	c.Set("b", []float32{2})
	c.Set("c", []float32{3})

	assert.Equal(t, 2, c.Size())
	_, ok := c.Get("a")
	assert.False(t, ok, "oldest entry should be evicted")
}

func TestCacheClear(t *testing.T) {
	c := NewCache(10)
	c.Set("a", []float32{1})
	c.Clear()
	assert.Equal(t, 0, c.Size())
}

func TestCacheDefaultSize(t *testing.T) {
	c := NewCache(0)
	c.Set("a", []float32{1})
	assert.Equal(t, 1, c.Size())
}
