package cluster

import (
	"log/slog"

	"github.com/hupe1980/recordlink/cache"
	"github.com/hupe1980/recordlink/score"
)

type options struct {
	linkage   Linkage
	threshold score.Result
	bounded   bool
	direction score.Direction
	pairs     *cache.PairCache
	ids       *IDGenerator
	observer  MergeObserver
	logger    *slog.Logger
}

// Option configures a Clusterer.
type Option func(*options)

// WithLinkage selects the linkage. Default is Min.
func WithLinkage(l Linkage) Option {
	return func(o *options) {
		o.linkage = l
	}
}

// WithThreshold stops merging once the best score is not strictly better than
// v. Without a threshold the clusterer merges until one cluster remains.
func WithThreshold(v float64) Option {
	return func(o *options) {
		o.threshold = score.Constant(v)
		o.bounded = true
	}
}

// WithDirection sets whether lower (Distance) or higher (Similarity) scores
// are better. Default is Distance.
func WithDirection(d score.Direction) Option {
	return func(o *options) {
		o.direction = d
	}
}

// WithPairCache shares a base-pair cache. A nil cache is ignored.
func WithPairCache(pc *cache.PairCache) Option {
	return func(o *options) {
		if pc != nil {
			o.pairs = pc
		}
	}
}

// WithIDGenerator shares a cluster id generator. A nil generator is ignored.
func WithIDGenerator(g *IDGenerator) Option {
	return func(o *options) {
		if g != nil {
			o.ids = g
		}
	}
}

// WithMergeObserver registers an observer called after every merge.
func WithMergeObserver(obs MergeObserver) Option {
	return func(o *options) {
		o.observer = obs
	}
}

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		linkage:   Min,
		threshold: score.Unbounded(),
		direction: score.Distance,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, fn := range optFns {
		fn(&o)
	}
	return o
}

func (o *options) validate() error {
	if err := o.direction.Validate(); err != nil {
		return err
	}
	return o.linkage.Validate()
}
