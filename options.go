package recordlink

import (
	"log/slog"

	"github.com/hupe1980/recordlink/cluster"
	"github.com/hupe1980/recordlink/feature"
	"github.com/hupe1980/recordlink/minhash"
)

// Defaults mirror the reference experiment settings.
const (
	DefaultThreshold    = 2.0
	DefaultCriteria     = 3
	DefaultBlockingMask = 0b111
	DefaultCategoryMask = 0b11
)

type options struct {
	blocking  BlockingMethod
	linkage   cluster.Linkage
	threshold float64
	weights   feature.Weights

	tight      TightThreshold
	loose      float64
	explicitT2 *float64
	workers    int
	randomize  *int64

	seed          uint32
	hasher        minhash.Hasher
	criteria      int
	blockingMask  uint32
	categoryMask  uint32
	byCategory    bool
	maxIterations int

	mergeObserver    cluster.MergeObserver
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Resolver.
type Option func(*options)

// WithBlocking selects the blocking method. Default is None.
func WithBlocking(m BlockingMethod) Option {
	return func(o *options) {
		o.blocking = m
	}
}

// WithLinkage selects how cluster scores derive from record scores.
// Default is cluster.Mean.
func WithLinkage(l cluster.Linkage) Option {
	return func(o *options) {
		o.linkage = l
	}
}

// WithThreshold sets the similarity a merge must exceed. Default is 2.0.
func WithThreshold(v float64) Option {
	return func(o *options) {
		o.threshold = v
	}
}

// WithWeights sets the feature weights used by the record comparer.
func WithWeights(w feature.Weights) Option {
	return func(o *options) {
		o.weights = w
	}
}

// WithCanopyThresholds fixes both canopy thresholds. Under similarity t1
// (loose) must be lower than t2 (tight).
func WithCanopyThresholds(t1, t2 float64) Option {
	return func(o *options) {
		o.loose = t1
		o.explicitT2 = &t2
	}
}

// WithTightThreshold derives the tight canopy threshold from the record
// count. Ignored when WithCanopyThresholds is set.
func WithTightThreshold(t TightThreshold) Option {
	return func(o *options) {
		o.tight = t
	}
}

// WithCanopyWorkers bounds concurrent canopy clustering. Default is 1.
func WithCanopyWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithCanopyRandomize shuffles the canopy exemplar pool with seed.
func WithCanopyRandomize(seed int64) Option {
	return func(o *options) {
		o.randomize = &seed
	}
}

// WithSeed seeds the MinHash family used by Lego criteria.
func WithSeed(seed uint32) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithHasher selects the MinHash avalanche function.
func WithHasher(h minhash.Hasher) Option {
	return func(o *options) {
		o.hasher = h
	}
}

// WithCriteria sets the number of MinHash criteria. Default is 3.
func WithCriteria(n int) Option {
	return func(o *options) {
		o.criteria = n
	}
}

// WithMasks sets the bit masks applied to MinHash values of the plain
// criteria and of the category criterion.
func WithMasks(blocking, category uint32) Option {
	return func(o *options) {
		o.blockingMask = blocking
		o.categoryMask = category
	}
}

// WithCategoryCriterion toggles the criterion that blocks within each
// category first. Enabled by default.
func WithCategoryCriterion(enabled bool) Option {
	return func(o *options) {
		o.byCategory = enabled
	}
}

// WithMaxIterations bounds Lego iterations. Zero means unbounded.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.maxIterations = n
	}
}

// WithMergeObserver receives every merge of every clustering run.
// The observer must be safe for concurrent use with canopy workers.
func WithMergeObserver(obs cluster.MergeObserver) Option {
	return func(o *options) {
		o.mergeObserver = obs
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &recordlink.BasicMetricsCollector{}
//	r, _ := recordlink.New(recordlink.WithMetricsCollector(metrics))
//	// ... resolve ...
//	stats := metrics.GetStats()
//	fmt.Printf("Merges: %d, Avg latency: %dns\n", stats.MergeCount, stats.ResolveAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		blocking:         None,
		linkage:          cluster.Mean,
		threshold:        DefaultThreshold,
		weights:          feature.DefaultWeights,
		tight:            Inverse,
		workers:          1,
		hasher:           minhash.Jenkins,
		criteria:         DefaultCriteria,
		blockingMask:     DefaultBlockingMask,
		categoryMask:     DefaultCategoryMask,
		byCategory:       true,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}
