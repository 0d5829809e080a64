// Package testutil provides testing utilities for recordlink.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating synthetic records with a known
// ground-truth grouping, and for checking partition properties.
//
// # Synthetic Records
//
//	rng := testutil.NewRNG(seed)
//	points, gold := rng.GroupedPoints(10, 5, 0.1) // 10 groups of 5 points
//	tokens, gold := rng.TokenRecords(10, 5, 8)    // shared vocabulary per group
//
// # Partition Checks
//
//	ok := testutil.IsPartition(clusters, n)
package testutil
