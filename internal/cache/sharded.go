package cache

const numShards = 64

// Sharded distributes entries across 64 LRU shards to reduce lock contention.
type Sharded[K comparable, V any] struct {
	shards [numShards]*LRU[K, V]
	hash   func(K) uint64
}

// NewSharded creates a sharded cache. The capacity is divided evenly across
// shards; 0 keeps every shard unbounded.
func NewSharded[K comparable, V any](capacity int, hash func(K) uint64) *Sharded[K, V] {
	shardCapacity := 0
	if capacity > 0 {
		shardCapacity = max(capacity/numShards, 1)
	}

	s := &Sharded[K, V]{hash: hash}
	for i := range numShards {
		s.shards[i] = NewLRU[K, V](shardCapacity)
	}
	return s
}

func (s *Sharded[K, V]) shard(key K) *LRU[K, V] {
	return s.shards[s.hash(key)%numShards]
}

// Get returns the cached value for key.
func (s *Sharded[K, V]) Get(key K) (V, bool) {
	return s.shard(key).Get(key)
}

// Peek returns the cached value without touching recency or stats.
func (s *Sharded[K, V]) Peek(key K) (V, bool) {
	return s.shard(key).Peek(key)
}

// Set stores value under key.
func (s *Sharded[K, V]) Set(key K, value V) {
	s.shard(key).Set(key, value)
}

// Len returns the number of entries across all shards.
func (s *Sharded[K, V]) Len() int {
	var total int
	for i := range numShards {
		total += s.shards[i].Len()
	}
	return total
}

// Purge empties every shard.
func (s *Sharded[K, V]) Purge() {
	for i := range numShards {
		s.shards[i].Purge()
	}
}

// Stats returns aggregated counters.
func (s *Sharded[K, V]) Stats() (hits, misses, evictions int64) {
	for i := range numShards {
		h, m, e := s.shards[i].Stats()
		hits += h
		misses += m
		evictions += e
	}
	return hits, misses, evictions
}

// ShardLens returns the number of entries per shard.
func (s *Sharded[K, V]) ShardLens() []int {
	out := make([]int, numShards)
	for i := range numShards {
		out[i] = s.shards[i].Len()
	}
	return out
}
