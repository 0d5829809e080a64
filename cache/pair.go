package cache

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	icache "github.com/hupe1980/recordlink/internal/cache"
	"github.com/hupe1980/recordlink/model"
	"github.com/hupe1980/recordlink/score"
)

// Stats is a snapshot of cache counters.
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Entries   int
}

// PairCache memoizes comparison results between base records.
type PairCache struct {
	c *icache.Sharded[model.Pair[model.RecordID], score.Result]
}

// Option configures a PairCache.
type Option func(*options)

type options struct {
	capacity int
}

// WithCapacity bounds the cache to roughly n entries (LRU per shard).
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// NewPairCache creates an empty cache.
func NewPairCache(optFns ...Option) *PairCache {
	var o options
	for _, fn := range optFns {
		fn(&o)
	}
	return &PairCache{
		c: icache.NewSharded[model.Pair[model.RecordID], score.Result](o.capacity, hashPair),
	}
}

func hashPair(p model.Pair[model.RecordID]) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint32(buf[0:4], uint32(p.Lo))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(p.Hi))
	return xxhash.Sum64(buf[:])
}

// Get returns the cached result for the unordered pair (a, b).
func (pc *PairCache) Get(a, b model.RecordID) (score.Result, bool) {
	return pc.c.Get(model.NewPair(a, b))
}

// Set stores the result for the unordered pair (a, b).
func (pc *PairCache) Set(a, b model.RecordID, r score.Result) {
	pc.c.Set(model.NewPair(a, b), r)
}

// GetOrCompute returns the cached result for (a, b), computing and storing it
// on a miss. fn receives the canonical ordering (lo, hi).
func (pc *PairCache) GetOrCompute(a, b model.RecordID, fn func(lo, hi model.RecordID) score.Result) score.Result {
	key := model.NewPair(a, b)
	if r, ok := pc.c.Get(key); ok {
		return r
	}
	r := fn(key.Lo, key.Hi)
	pc.c.Set(key, r)
	return r
}

// Len returns the number of cached pairs.
func (pc *PairCache) Len() int {
	return pc.c.Len()
}

// Purge removes every entry.
func (pc *PairCache) Purge() {
	pc.c.Purge()
}

// Stats returns a snapshot of the cache counters.
func (pc *PairCache) Stats() Stats {
	h, m, e := pc.c.Stats()
	return Stats{Hits: h, Misses: m, Evictions: e, Entries: pc.c.Len()}
}
