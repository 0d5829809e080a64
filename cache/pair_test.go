package cache

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/recordlink/model"
	"github.com/hupe1980/recordlink/score"
)

func TestPairCache_Canonical(t *testing.T) {
	pc := NewPairCache()
	pc.Set(7, 3, score.Of(1.5))

	r, ok := pc.Get(3, 7)
	assert.True(t, ok)
	assert.Equal(t, 1.5, r.Total())

	_, ok = pc.Get(3, 8)
	assert.False(t, ok)

	st := pc.Stats()
	assert.Equal(t, int64(1), st.Hits)
	assert.Equal(t, int64(1), st.Misses)
	assert.Equal(t, 1, st.Entries)
}

func TestPairCache_GetOrCompute(t *testing.T) {
	pc := NewPairCache()
	calls := 0
	fn := func(lo, hi model.RecordID) score.Result {
		calls++
		assert.LessOrEqual(t, lo, hi)
		return score.Of(float64(hi - lo))
	}

	assert.Equal(t, 4.0, pc.GetOrCompute(9, 5, fn).Total())
	assert.Equal(t, 4.0, pc.GetOrCompute(5, 9, fn).Total())
	assert.Equal(t, 1, calls)
}

func TestPairCache_Capacity(t *testing.T) {
	pc := NewPairCache(WithCapacity(64))
	for i := range model.RecordID(1000) {
		pc.Set(i, i+1, score.Of(float64(i)))
	}
	assert.LessOrEqual(t, pc.Len(), 64)
	assert.Greater(t, pc.Stats().Evictions, int64(0))

	pc.Purge()
	assert.Equal(t, 0, pc.Len())
}

func TestPairCache_Concurrent(t *testing.T) {
	pc := NewPairCache()
	var wg sync.WaitGroup
	for w := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range model.RecordID(200) {
				pc.GetOrCompute(i, model.RecordID(w), func(lo, hi model.RecordID) score.Result {
					return score.Of(float64(lo + hi))
				})
			}
		}()
	}
	wg.Wait()
	r, ok := pc.Get(3, 5)
	assert.True(t, ok)
	assert.Equal(t, 8.0, r.Total())
}
