// Package feature holds the per-record feature representation and the
// comparer used as the expensive similarity between two records.
//
// A Representation combines TF-IDF weights, a category and named-entity
// counts. Comparer.Compare scores two representations as a similarity with
// one contribution per feature group, so the clusterer can report which
// groups drove its merges.
package feature
