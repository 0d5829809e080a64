package cluster

import (
	"context"
	"maps"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/hupe1980/recordlink/blocking"
	"github.com/hupe1980/recordlink/cache"
	"github.com/hupe1980/recordlink/model"
)

// Runner builds a fresh Clusterer per block while sharing the pair cache, the
// id generator and the informative-feature totals across blocks. It is safe
// for concurrent use when its observer is.
type Runner[F any] struct {
	features []F
	fn       DistanceFunc[F]
	opts     []Option

	pairs *cache.PairCache
	ids   *IDGenerator

	mu          sync.Mutex
	informative map[string]float64
	runs        atomic.Int64
	merges      atomic.Int64
}

// NewRunner validates the configuration once and returns a Runner.
func NewRunner[F any](features []F, fn DistanceFunc[F], optFns ...Option) (*Runner[F], error) {
	if fn == nil {
		return nil, ErrNilDistanceFunc
	}
	o := applyOptions(optFns)
	if err := o.validate(); err != nil {
		return nil, err
	}
	if o.pairs == nil {
		o.pairs = cache.NewPairCache()
	}
	if o.ids == nil {
		o.ids = NewIDGenerator()
	}

	opts := append(slices.Clone(optFns), WithPairCache(o.pairs), WithIDGenerator(o.ids))
	return &Runner[F]{
		features:    features,
		fn:          fn,
		opts:        opts,
		pairs:       o.pairs,
		ids:         o.ids,
		informative: make(map[string]float64),
	}, nil
}

// Cluster resolves one block.
func (r *Runner[F]) Cluster(ctx context.Context, block []model.Cluster) ([]model.Cluster, error) {
	c, err := New(block, r.features, r.fn, r.opts...)
	if err != nil {
		return nil, err
	}
	out, err := c.Cluster(ctx)
	if err != nil {
		return nil, err
	}

	r.runs.Add(1)
	r.merges.Add(int64(c.Merges()))
	r.mu.Lock()
	for k, v := range c.informative {
		r.informative[k] += v
	}
	r.mu.Unlock()
	return out, nil
}

// Method returns r.Cluster as a blocking.Method.
func (r *Runner[F]) Method() blocking.Method {
	return r.Cluster
}

// PairCache returns the shared base-pair cache.
func (r *Runner[F]) PairCache() *cache.PairCache {
	return r.pairs
}

// Runs returns the number of completed blocks.
func (r *Runner[F]) Runs() int64 {
	return r.runs.Load()
}

// Merges returns the number of merges across all completed blocks.
func (r *Runner[F]) Merges() int64 {
	return r.merges.Load()
}

// InformativeFeatures returns contributions summed over every block.
func (r *Runner[F]) InformativeFeatures() map[string]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return maps.Clone(r.informative)
}

// Method builds a blocking.Method backed by a new Runner.
func Method[F any](features []F, fn DistanceFunc[F], optFns ...Option) (blocking.Method, error) {
	r, err := NewRunner(features, fn, optFns...)
	if err != nil {
		return nil, err
	}
	return r.Method(), nil
}
