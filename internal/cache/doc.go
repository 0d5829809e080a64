// Package cache provides the LRU building blocks behind the public cache package.
//
// # LRU
//
// LRU is a single-lock cache. A capacity of zero disables eviction, which is
// the right setting for distance caches that must remember every pair for the
// lifetime of a run.
//
// # Sharded
//
// Sharded spreads entries over 64 LRU shards selected by a caller-supplied
// hash, so concurrent clustering workers rarely contend on the same lock.
package cache
