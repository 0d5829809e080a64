package cluster

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	"golang.org/x/time/rate"

	"github.com/hupe1980/recordlink/cache"
	"github.com/hupe1980/recordlink/model"
	"github.com/hupe1980/recordlink/score"
)

// DistanceFunc compares two base features. It must be symmetric.
type DistanceFunc[F any] func(a, b F) score.Result

// Clusterer merges composite clusters agglomeratively. A Clusterer is single
// use and not safe for concurrent use; its shared caches are.
type Clusterer[F any] struct {
	opts     options
	features []F
	fn       DistanceFunc[F]

	clusters map[model.ClusterID]model.Cluster
	order    []model.ClusterID // ascending
	owner    map[model.RecordID]model.ClusterID
	links    map[model.Pair[model.ClusterID]]score.Result

	informative map[string]float64
	merges      int
	progress    rate.Sometimes
}

// New creates a clusterer over the given disjoint initial clusters. features
// is indexed by record id. Empty initial clusters are dropped.
func New[F any](initial []model.Cluster, features []F, fn DistanceFunc[F], optFns ...Option) (*Clusterer[F], error) {
	if fn == nil {
		return nil, ErrNilDistanceFunc
	}
	o := applyOptions(optFns)
	if err := o.validate(); err != nil {
		return nil, err
	}

	seen := make(map[model.RecordID]struct{})
	for _, c := range initial {
		for _, r := range c {
			if int(r) >= len(features) {
				return nil, &RecordRangeError{Record: r, Features: len(features)}
			}
			if _, dup := seen[r]; dup {
				return nil, fmt.Errorf("%w: record %d", ErrOverlappingClusters, r)
			}
			seen[r] = struct{}{}
		}
	}

	if o.pairs == nil {
		o.pairs = cache.NewPairCache()
	}
	if o.ids == nil {
		o.ids = NewIDGenerator()
	}
	if !o.bounded {
		o.logger.Warn("no threshold set; clustering will merge until one cluster remains")
	}

	c := &Clusterer[F]{
		opts:        o,
		features:    features,
		fn:          fn,
		clusters:    make(map[model.ClusterID]model.Cluster, len(initial)),
		owner:       make(map[model.RecordID]model.ClusterID, len(seen)),
		links:       make(map[model.Pair[model.ClusterID]]score.Result),
		informative: make(map[string]float64),
		progress:    rate.Sometimes{Interval: time.Second},
	}
	for _, members := range initial {
		if len(members) == 0 {
			continue
		}
		c.add(o.ids.Next(), model.NewCluster(members...))
	}
	return c, nil
}

func (c *Clusterer[F]) add(id model.ClusterID, members model.Cluster) {
	c.clusters[id] = members
	if i, found := slices.BinarySearch(c.order, id); !found {
		c.order = slices.Insert(c.order, i, id)
	}
	for _, r := range members {
		c.owner[r] = id
	}
}

func (c *Clusterer[F]) retire(id model.ClusterID) {
	delete(c.clusters, id)
	if i, found := slices.BinarySearch(c.order, id); found {
		c.order = slices.Delete(c.order, i, i+1)
	}
	for _, other := range c.order {
		delete(c.links, model.NewPair(id, other))
	}
}

// Cluster runs merges until no pair beats the threshold or one cluster is
// left, and returns the clusters ordered by cluster id. The context is
// checked between merges.
func (c *Clusterer[F]) Cluster(ctx context.Context) ([]model.Cluster, error) {
	for len(c.order) > 1 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		left, right, best, ok := c.bestPair()
		if !ok || !c.opts.direction.Better(best, c.opts.threshold) {
			break
		}
		c.merge(left, right, best)
	}

	c.opts.logger.Debug("clustering finished",
		"clusters", len(c.order),
		"merges", c.merges,
		"linkage", c.opts.linkage.String(),
	)
	return c.Clusters(), nil
}

// bestPair scans pairs in ascending id order and keeps strictly better ones,
// so ties resolve to the lowest pair.
func (c *Clusterer[F]) bestPair() (model.ClusterID, model.ClusterID, score.Result, bool) {
	var (
		left, right model.ClusterID
		best        score.Result
		found       bool
	)
	for i, a := range c.order {
		for _, b := range c.order[i+1:] {
			s := c.Linkage(a, b)
			if !found || c.opts.direction.Better(s, best) {
				left, right, best, found = a, b, s, true
			}
		}
	}
	return left, right, best, found
}

func (c *Clusterer[F]) merge(left, right model.ClusterID, s score.Result) {
	members := c.clusters[left].Union(c.clusters[right])
	c.retire(left)
	c.retire(right)

	merged := c.opts.ids.Next()
	c.add(merged, members)
	c.merges++

	for k, v := range s.Contributions() {
		c.informative[k] += v
	}

	c.progress.Do(func() {
		c.opts.logger.Debug("merged clusters",
			"left", left,
			"right", right,
			"merged", merged,
			"score", s.Total(),
			"remaining", len(c.order),
		)
	})

	if c.opts.observer != nil {
		c.opts.observer.OnMerge(MergeEvent{
			Left:      left,
			Right:     right,
			Merged:    merged,
			Members:   members,
			Score:     s,
			Remaining: len(c.order),
		})
	}
}

// Linkage returns the cached linkage score between two live clusters.
func (c *Clusterer[F]) Linkage(a, b model.ClusterID) score.Result {
	key := model.NewPair(a, b)
	if s, ok := c.links[key]; ok {
		return s
	}

	var s score.Result
	switch c.opts.linkage {
	case Max:
		s = c.extreme(c.clusters[a], c.clusters[b], func(x, y score.Result) bool { return score.Less(y, x) })
	case Mean:
		s = c.mean(c.clusters[a], c.clusters[b])
	default:
		s = c.extreme(c.clusters[a], c.clusters[b], score.Less)
	}

	c.links[key] = s
	return s
}

// extreme returns the first base score for which no later score is preferred.
func (c *Clusterer[F]) extreme(ca, cb model.Cluster, prefer func(x, y score.Result) bool) score.Result {
	var (
		best  score.Result
		found bool
	)
	for _, x := range ca {
		for _, y := range cb {
			s := c.base(x, y)
			if !found || prefer(s, best) {
				best, found = s, true
			}
		}
	}
	if !found {
		return score.Zero()
	}
	return best
}

func (c *Clusterer[F]) mean(ca, cb model.Cluster) score.Result {
	total := score.Zero()
	n := 0
	for _, x := range ca {
		for _, y := range cb {
			s := c.base(x, y)
			switch s.Kind() {
			case score.KindUnbounded:
				return s
			case score.KindConstant:
				s = score.Of(s.Total())
			}
			// Both operands are accumulative here.
			total, _ = total.Add(s)
			n++
		}
	}
	if n == 0 {
		return score.Zero()
	}
	avg, _ := total.Normalize(float64(n))
	return avg
}

func (c *Clusterer[F]) base(x, y model.RecordID) score.Result {
	return c.opts.pairs.GetOrCompute(x, y, func(lo, hi model.RecordID) score.Result {
		return c.fn(c.features[lo], c.features[hi])
	})
}

// Clusters returns the current clusters ordered by cluster id.
func (c *Clusterer[F]) Clusters() []model.Cluster {
	out := make([]model.Cluster, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.clusters[id])
	}
	return out
}

// Assignments returns the current cluster id of every record.
func (c *Clusterer[F]) Assignments() map[model.RecordID]model.ClusterID {
	return maps.Clone(c.owner)
}

// Len returns the current number of clusters.
func (c *Clusterer[F]) Len() int {
	return len(c.order)
}

// Merges returns the number of merges performed so far.
func (c *Clusterer[F]) Merges() int {
	return c.merges
}

// InformativeFeatures returns the summed contributions of every winning merge
// score, keyed by feature name.
func (c *Clusterer[F]) InformativeFeatures() map[string]float64 {
	return maps.Clone(c.informative)
}
