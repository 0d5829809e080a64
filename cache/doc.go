// Package cache provides the base-pair distance cache shared between
// clustering sessions.
//
// Keys are canonical (lo, hi) record pairs, so a PairCache may outlive any
// single clusterer run and be handed to every run over the same record
// universe. Entries are spread over 64 shards keyed by xxhash, which makes
// the cache safe for concurrent workers.
//
//	pc := cache.NewPairCache()
//	c, _ := cluster.New(initial, features, fn, cluster.WithPairCache(pc))
//
// A positive capacity bounds the cache with LRU eviction; the default keeps
// every pair.
package cache
