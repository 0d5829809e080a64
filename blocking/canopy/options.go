package canopy

import (
	"log/slog"

	"github.com/hupe1980/recordlink/score"
)

type options struct {
	direction score.Direction
	randomize bool
	seed      int64
	workers   int
	logger    *slog.Logger
	observer  Observer
}

// Option configures a Blocker.
type Option func(*options)

// WithDirection sets how cheap scores and thresholds compare. Default is Distance.
func WithDirection(d score.Direction) Option {
	return func(o *options) {
		o.direction = d
	}
}

// WithRandomize shuffles the exemplar pool with a PRNG keyed by seed.
// Without it exemplars are picked in input order.
func WithRandomize(seed int64) Option {
	return func(o *options) {
		o.randomize = true
		o.seed = seed
	}
}

// WithWorkers resolves up to n canopies concurrently. Default is 1.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
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

// WithObserver registers an observer called for every formed canopy.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		direction: score.Distance,
		workers:   1,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, fn := range optFns {
		fn(&o)
	}
	if o.workers < 1 {
		o.workers = 1
	}
	return o
}
