// Package cluster implements greedy agglomerative clustering over composite
// clusters of base records.
//
// A Clusterer starts from a set of disjoint composite clusters and repeatedly
// merges the best pair under the configured linkage until the best score is
// no longer better than the threshold, or a single cluster remains.
//
// # Linkage
//
//   - Min: the best-scoring base pair across the two clusters (single link).
//   - Max: the worst-scoring base pair (complete link).
//   - Mean: the average over all base pairs (average link).
//
// Min and Max pick the numeric minimum and maximum of the base totals.
//
// # Caching
//
// Base-pair results are memoized in a cache.PairCache that may be shared
// across runs over the same records. Cluster-pair linkage results are cached
// for the lifetime of one run. Cluster ids come from an IDGenerator that may
// be shared across runs to keep ids unique.
//
// # Usage
//
//	fn := func(a, b float64) score.Result { return score.Of(math.Abs(a - b)) }
//	c, err := cluster.New(model.Singletons(ids), features, fn,
//	    cluster.WithThreshold(3),
//	)
//	clusters, err := c.Cluster(ctx)
package cluster
