// Package model defines core types used throughout recordlink.
//
// # Identity Types
//
//   - RecordID: 0-based index of a base record in the caller's universe (uint32)
//   - ClusterID: session-unique identifier of a composite cluster (uint64)
//
// # Data Types
//
//   - Cluster: sorted, duplicate-free set of RecordIDs
//
// Clusters are values. Every operation that changes membership returns a
// new Cluster and leaves its inputs untouched, so a Cluster may be shared
// between blocks, maximal maps and clusterer runs.
//
//	a := model.NewCluster(3, 1)
//	b := model.Singleton(2)
//	ab := a.Union(b) // {1, 2, 3}
package model
