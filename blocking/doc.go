// Package blocking defines the contracts shared by blocking strategies and
// the transitive-closure merge that reconciles their output.
//
// A blocking strategy narrows the comparison space by grouping records into
// blocks and hands each block to an expensive ER Method, typically an
// agglomerative clusterer (see package cluster). Strategies live in the
// canopy and lego subpackages.
package blocking
