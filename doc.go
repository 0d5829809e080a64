// Package recordlink resolves which records refer to the same real-world
// entity.
//
// A Resolver turns records into TF-IDF, category and named-entity features,
// optionally splits the record universe into blocks, and runs agglomerative
// clustering inside every block. Overlapping block results are joined by
// transitive closure, so the output is always a partition of the input.
//
// # Quick Start
//
//	records, _ := dataset.Load(ctx, blobstore.NewLocalStore("./data"), "records.jsonl.zst")
//
//	r, _ := recordlink.New(
//	    recordlink.WithBlocking(recordlink.Canopies),
//	    recordlink.WithLinkage(cluster.Mean),
//	    recordlink.WithThreshold(2.0),
//	)
//	res, _ := r.Resolve(ctx, records)
//	for _, c := range res.Clusters {
//	    fmt.Println(c)
//	}
//
// # Blocking
//
//   - None: one clustering run over the whole universe (quadratic).
//   - Canopies: overlapping canopies from a cheap named-entity similarity,
//     each clustered independently and possibly in parallel.
//   - Lego: iterative blocking over MinHash criteria, feeding merged clusters
//     back into the blocks that share their records.
//
// # Evaluation
//
// When records carry gold labels, Evaluate reports pairwise F1, cluster F1
// and the variation of information of a result.
package recordlink
