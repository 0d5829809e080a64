// Package lego implements Lego blocking, an iterative blocking scheme that
// feeds merge results from one block back into the others.
//
// Every criterion partitions the records into blocks, and all blocks enter a
// hit-count priority queue. The blocker repeatedly dequeues the block with
// the most hits, widens each of its clusters with everything already known
// to match its members, and resolves it with the ER method. When the result
// teaches something new about a record, every other block containing that
// record is hit so it is revisited, even if it was already processed.
//
// The final clustering is read from the per-record maximal clusters.
package lego
