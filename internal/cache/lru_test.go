package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLRU_Eviction(t *testing.T) {
	c := NewLRU[int, string](2)
	c.Set(1, "a")
	c.Set(2, "b")

	// Touch 1 so 2 becomes least recently used.
	_, ok := c.Get(1)
	assert.True(t, ok)

	c.Set(3, "c")
	assert.Equal(t, 2, c.Len())

	_, ok = c.Get(2)
	assert.False(t, ok)
	v, ok := c.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	hits, misses, evictions := c.Stats()
	assert.Equal(t, int64(2), hits)
	assert.Equal(t, int64(1), misses)
	assert.Equal(t, int64(1), evictions)
}

func TestLRU_Unbounded(t *testing.T) {
	c := NewLRU[int, int](0)
	for i := range 1000 {
		c.Set(i, i*i)
	}
	assert.Equal(t, 1000, c.Len())
	v, ok := c.Peek(31)
	assert.True(t, ok)
	assert.Equal(t, 961, v)

	c.Purge()
	assert.Equal(t, 0, c.Len())
}

func TestLRU_Update(t *testing.T) {
	c := NewLRU[string, int](4)
	c.Set("k", 1)
	c.Set("k", 2)
	v, _ := c.Get("k")
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, c.Len())
}

func TestSharded_Distribution(t *testing.T) {
	s := NewSharded[uint64, int](0, func(k uint64) uint64 { return k * 0x9e3779b97f4a7c15 >> 7 })
	for i := range uint64(1000) {
		s.Set(i, int(i))
	}
	assert.Equal(t, 1000, s.Len())

	nonEmpty := 0
	for _, n := range s.ShardLens() {
		if n > 0 {
			nonEmpty++
		}
	}
	assert.Greater(t, nonEmpty, 30)
}

func TestSharded_Concurrent(t *testing.T) {
	s := NewSharded[uint64, uint64](0, func(k uint64) uint64 { return k })
	var wg sync.WaitGroup
	for w := range uint64(8) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range uint64(500) {
				key := w*1000 + i
				s.Set(key, key)
				got, ok := s.Get(key)
				assert.True(t, ok)
				assert.Equal(t, key, got)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 4000, s.Len())
}
