// Package minhash provides a deterministic, seed-derived family of 32-bit
// hash functions and MinHash blocking keys over token sets.
//
// The default avalanche function is Bob Jenkins' lookup3 (hashlittle). Each
// family member is identified by an integer index; its sub-seed is drawn from
// a pseudo-random source keyed on index XOR the family seed, so the same
// (seed, index) always yields the same function:
//
//	fam := minhash.New(42)
//	key, err := fam.MinHash([]string{"paris", "france"}, 1, 0b111)
//
// Families are safe for concurrent use.
package minhash
