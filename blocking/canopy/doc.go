// Package canopy implements Canopies blocking.
//
// Records are grouped around exemplars using a cheap metric and two
// thresholds. Every record within the loose threshold t1 of an exemplar joins
// its canopy; records within the tight threshold t2 are removed from the pool
// of future exemplars. Canopies may therefore overlap, and every record ends
// up in at least one canopy.
//
// Each canopy is resolved by an expensive blocking.Method and the results are
// reconciled with blocking.Merge.
//
//	b, err := canopy.New(records, table.Similarity, method, 0, 0.5,
//	    canopy.WithDirection(score.Similarity),
//	    canopy.WithWorkers(4),
//	)
//	clusters, err := b.Cluster(ctx)
package canopy
