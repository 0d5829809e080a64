// Package lexical provides an in-memory inverted index with TF-IDF scoring.
//
// Documents are token sequences. Tokens are lowercased; each (document, term)
// pair stores a length-normalized term frequency (occurrences / length) and
// each term keeps a Roaring bitmap of the documents it appears in.
//
// # Usage
//
//	idx := lexical.New()
//	a := idx.AddDocument([]string{"Paris", "France"})
//	b := idx.AddDocument([]string{"paris", "Texas"})
//	scores := idx.Scores(a) // map[b] = tf(paris,a) * tf(paris,b) * idf(paris)
//
// # IDF Caching
//
// Inverse document frequencies are computed lazily on first use and cached.
// Documents added afterwards leave the cache stale until RecomputeIDF is
// called; Stale reports this condition.
//
// # Thread Safety
//
// The index is safe for concurrent reads and writes.
package lexical
