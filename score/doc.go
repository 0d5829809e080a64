// Package score defines comparison results and the score direction shared by
// every component of one resolution run.
//
// A Result is a tagged value with three shapes:
//
//   - Accumulative: a total plus named feature contributions; supports Add and Normalize.
//   - Constant: a fixed scalar, typically a threshold.
//   - Unbounded: the worst possible score under any Direction.
//
// Results are compared by their totals only, and always through a Direction:
//
//	dir := score.Similarity
//	if dir.Better(candidate, threshold) {
//	    // merge
//	}
package score
