package blocking

import (
	"context"
	"slices"

	"github.com/hupe1980/recordlink/model"
)

// Method resolves a block of composite clusters into a clustering of the
// same base records. Implementations must only merge input clusters.
type Method func(ctx context.Context, block []model.Cluster) ([]model.Cluster, error)

// Criterion partitions records into blocks of record ids.
type Criterion func(records []model.RecordID) [][]model.RecordID

// Merge returns the connected components of the co-membership graph across
// all clusterings: two records end up together when any chain of clusters
// links them. The result is sorted by smallest member and does not depend
// on input order.
func Merge(clusterings [][]model.Cluster) []model.Cluster {
	uf := newUnionFind()
	for _, clustering := range clusterings {
		for _, c := range clustering {
			if len(c) == 0 {
				continue
			}
			uf.add(c[0])
			for _, r := range c[1:] {
				uf.union(c[0], r)
			}
		}
	}

	groups := make(map[model.RecordID][]model.RecordID)
	for r := range uf.parent {
		root := uf.find(r)
		groups[root] = append(groups[root], r)
	}

	out := make([]model.Cluster, 0, len(groups))
	for _, members := range groups {
		out = append(out, model.NewCluster(members...))
	}
	model.SortClusters(out)
	return out
}

type unionFind struct {
	parent map[model.RecordID]model.RecordID
	rank   map[model.RecordID]uint8
}

func newUnionFind() *unionFind {
	return &unionFind{
		parent: make(map[model.RecordID]model.RecordID),
		rank:   make(map[model.RecordID]uint8),
	}
}

func (u *unionFind) add(r model.RecordID) {
	if _, ok := u.parent[r]; !ok {
		u.parent[r] = r
	}
}

func (u *unionFind) find(r model.RecordID) model.RecordID {
	u.add(r)
	root := r
	for u.parent[root] != root {
		root = u.parent[root]
	}
	// Path compression.
	for u.parent[r] != root {
		next := u.parent[r]
		u.parent[r] = root
		r = next
	}
	return root
}

func (u *unionFind) union(a, b model.RecordID) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	switch {
	case u.rank[ra] < u.rank[rb]:
		u.parent[ra] = rb
	case u.rank[ra] > u.rank[rb]:
		u.parent[rb] = ra
	default:
		u.parent[rb] = ra
		u.rank[ra]++
	}
}

// Blocks runs every criterion over records and wraps each resulting block as
// singleton clusters, in criterion order.
func Blocks(records []model.RecordID, criteria ...Criterion) [][]model.Cluster {
	var out [][]model.Cluster
	for _, criterion := range criteria {
		for _, ids := range criterion(records) {
			out = append(out, model.Singletons(slices.Clone(ids)))
		}
	}
	return out
}
