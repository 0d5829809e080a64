package model

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// RecordID is an opaque, dense identifier for a base record.
// It indexes into an external feature store; the engine never inspects
// record content directly.
type RecordID uint32

// ClusterID identifies a composite cluster within one clustering session.
// Invariant: never reused once retired by a merge.
type ClusterID uint64

// Pair is a canonicalized (Lo <= Hi) pair of identifiers used as a cache key.
type Pair[T ~uint32 | ~uint64] struct {
	Lo T
	Hi T
}

// NewPair returns the canonical ordering of (a, b).
func NewPair[T ~uint32 | ~uint64](a, b T) Pair[T] {
	if a > b {
		a, b = b, a
	}
	return Pair[T]{Lo: a, Hi: b}
}

// Cluster is a set of base records, stored sorted and without duplicates.
type Cluster []RecordID

// NewCluster builds a cluster from the given ids in any order.
func NewCluster(ids ...RecordID) Cluster {
	c := slices.Clone(ids)
	slices.Sort(c)
	return slices.Compact(c)
}

// Singleton returns a cluster holding exactly one record.
func Singleton(id RecordID) Cluster {
	return Cluster{id}
}

// Singletons wraps every record as its own cluster.
func Singletons(ids []RecordID) []Cluster {
	out := make([]Cluster, len(ids))
	for i, id := range ids {
		out[i] = Singleton(id)
	}
	return out
}

// Len returns the number of records in the cluster.
func (c Cluster) Len() int { return len(c) }

// Contains reports whether id is a member of c.
func (c Cluster) Contains(id RecordID) bool {
	_, ok := slices.BinarySearch(c, id)
	return ok
}

// Equal reports whether c and other hold the same records.
func (c Cluster) Equal(other Cluster) bool {
	return slices.Equal(c, other)
}

// Union returns the merged membership of c and other.
func (c Cluster) Union(other Cluster) Cluster {
	out := make(Cluster, 0, len(c)+len(other))
	i, j := 0, 0
	for i < len(c) && j < len(other) {
		switch {
		case c[i] < other[j]:
			out = append(out, c[i])
			i++
		case c[i] > other[j]:
			out = append(out, other[j])
			j++
		default:
			out = append(out, c[i])
			i++
			j++
		}
	}
	out = append(out, c[i:]...)
	return append(out, other[j:]...)
}

// Min returns the smallest record in c. ok is false for an empty cluster.
func (c Cluster) Min() (RecordID, bool) {
	if len(c) == 0 {
		return 0, false
	}
	return c[0], true
}

// Key returns a string uniquely identifying the membership of c.
func (c Cluster) Key() string {
	var sb strings.Builder
	for i, id := range c {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatUint(uint64(id), 10))
	}
	return sb.String()
}

// String returns a string representation of the Cluster.
func (c Cluster) String() string {
	return fmt.Sprintf("{%s}", c.Key())
}

// SortClusters orders clusters by their smallest member.
func SortClusters(cs []Cluster) {
	slices.SortFunc(cs, func(a, b Cluster) int {
		return slices.Compare(a, b)
	})
}

// Records returns the ids 0..n-1.
func Records(n int) []RecordID {
	out := make([]RecordID, n)
	for i := range out {
		out[i] = RecordID(i)
	}
	return out
}
