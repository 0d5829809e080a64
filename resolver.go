package recordlink

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/recordlink/blocking"
	"github.com/hupe1980/recordlink/blocking/canopy"
	"github.com/hupe1980/recordlink/blocking/lego"
	"github.com/hupe1980/recordlink/cluster"
	"github.com/hupe1980/recordlink/dataset"
	"github.com/hupe1980/recordlink/feature"
	"github.com/hupe1980/recordlink/lexical"
	"github.com/hupe1980/recordlink/minhash"
	"github.com/hupe1980/recordlink/model"
	"github.com/hupe1980/recordlink/score"
)

// Result is the outcome of one Resolve call.
type Result struct {
	// Clusters partition the input; members are indices into the records.
	Clusters []model.Cluster
	// InformativeFeatures sums the contributions of every winning merge score.
	InformativeFeatures map[string]float64
	// Runs is the number of clustering runs, one per block.
	Runs int64
	// Merges is the number of merges across all runs.
	Merges int64
	// Iterations is the number of Lego blocks processed.
	Iterations int
	Duration   time.Duration
}

// Resolver groups records that refer to the same entity.
type Resolver struct {
	opts options
}

// New validates the options and returns a Resolver.
func New(optFns ...Option) (*Resolver, error) {
	o := applyOptions(optFns)
	if o.blocking > Lego {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBlocking, o.blocking)
	}
	if o.tight > InverseLog {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTightThreshold, o.tight)
	}
	if err := o.linkage.Validate(); err != nil {
		return nil, err
	}
	if o.blocking == Lego && o.criteria <= 0 && !o.byCategory {
		return nil, ErrInvalidCriteria
	}
	return &Resolver{opts: o}, nil
}

// Resolve clusters records. The result is a partition of [0, len(records)).
func (r *Resolver) Resolve(ctx context.Context, records []dataset.Record) (*Result, error) {
	start := time.Now()
	res, err := r.resolve(ctx, records)
	d := time.Since(start)

	var clusters int
	if res != nil {
		res.Duration = d
		clusters = len(res.Clusters)
	}
	r.opts.metricsCollector.RecordResolve(len(records), clusters, d, err)
	r.opts.logger.WithBlocking(r.opts.blocking).LogResolve(ctx, len(records), clusters, d, err)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *Resolver) resolve(ctx context.Context, records []dataset.Record) (*Result, error) {
	n := len(records)
	ids := model.Records(n)
	if n < 2 {
		return &Result{
			Clusters:            model.Singletons(ids),
			InformativeFeatures: map[string]float64{},
		}, nil
	}

	idx := lexical.Build(dataset.Documents(records))
	reps := feature.Build(idx, dataset.Sources(records))
	comparer := feature.NewComparer(feature.WithWeights(r.opts.weights))

	runner, err := cluster.NewRunner(reps, comparer.Compare,
		cluster.WithLinkage(r.opts.linkage),
		cluster.WithThreshold(r.opts.threshold),
		cluster.WithDirection(score.Similarity),
		cluster.WithMergeObserver(r.mergeObserver()),
		cluster.WithLogger(r.opts.logger.Logger),
	)
	if err != nil {
		return nil, stageError("cluster", err)
	}

	tokens := blockingTokens(records, reps)
	res := &Result{}

	switch r.opts.blocking {
	case None:
		res.Clusters, err = runner.Cluster(ctx, model.Singletons(ids))
	case Canopies:
		res.Clusters, err = r.canopies(ctx, ids, tokens, runner.Method())
	case Lego:
		res.Clusters, res.Iterations, err = r.lego(ctx, ids, records, tokens, runner.Method())
	}
	if err != nil {
		return nil, stageError(r.opts.blocking.String(), err)
	}
	model.SortClusters(res.Clusters)

	res.InformativeFeatures = runner.InformativeFeatures()
	res.Runs = runner.Runs()
	res.Merges = runner.Merges()
	return res, nil
}

// blockingTokens are the expanded named entities of each record, or its
// terms when it names no entity.
func blockingTokens(records []dataset.Record, reps []feature.Representation) [][]string {
	out := make([][]string, len(records))
	for i, rep := range reps {
		if ents := feature.ExpandEntities(rep.Entities); len(ents) > 0 {
			out[i] = ents
		} else {
			out[i] = records[i].Terms()
		}
	}
	return out
}

func (r *Resolver) mergeObserver() cluster.MergeObserver {
	mc := r.opts.metricsCollector
	user := r.opts.mergeObserver
	return cluster.MergeObserverFunc(func(e cluster.MergeEvent) {
		mc.RecordMerge(e.Score.Total())
		if user != nil {
			user.OnMerge(e)
		}
	})
}

func (r *Resolver) canopyThresholds(n int) (float64, float64) {
	if r.opts.explicitT2 != nil {
		return r.opts.loose, *r.opts.explicitT2
	}
	return r.opts.loose, r.opts.tight.Value(n)
}

func (r *Resolver) canopies(ctx context.Context, ids []model.RecordID, tokens [][]string, method blocking.Method) ([]model.Cluster, error) {
	cheap := lexical.NewScoreTable(lexical.Build(tokens))
	t1, t2 := r.canopyThresholds(len(ids))
	r.opts.logger.LogCanopyThresholds(ctx, t1, t2, r.opts.tight)

	mc := r.opts.metricsCollector
	opts := []canopy.Option{
		canopy.WithDirection(score.Similarity),
		canopy.WithWorkers(r.opts.workers),
		canopy.WithLogger(r.opts.logger.Logger),
		canopy.WithObserver(canopy.ObserverFunc(func(c canopy.Canopy, pool int) {
			mc.RecordCanopy(c.Members.Len(), c.Tight.Len(), pool)
		})),
	}
	if r.opts.randomize != nil {
		opts = append(opts, canopy.WithRandomize(*r.opts.randomize))
	}

	b, err := canopy.New(ids, cheap.Similarity, method, t1, t2, opts...)
	if err != nil {
		return nil, err
	}
	return b.Cluster(ctx)
}

func (r *Resolver) lego(ctx context.Context, ids []model.RecordID, records []dataset.Record, tokens [][]string, method blocking.Method) ([]model.Cluster, int, error) {
	family := minhash.New(r.opts.seed, minhash.WithHasher(r.opts.hasher))
	tok := func(id model.RecordID) []string { return tokens[id] }
	logger := r.opts.logger.Logger

	var criteria []blocking.Criterion
	if r.opts.byCategory {
		category := func(id model.RecordID) string { return records[id].Category }
		criteria = append(criteria, lego.GroupBy(category,
			lego.MinHashCriterion(family, 0, r.opts.categoryMask, tok, logger)))
	}
	for i := range r.opts.criteria {
		criteria = append(criteria,
			lego.MinHashCriterion(family, uint32(i+1), r.opts.blockingMask, tok, logger))
	}

	mc := r.opts.metricsCollector
	b, err := lego.New(ids, criteria, method,
		lego.WithMaxIterations(r.opts.maxIterations),
		lego.WithLogger(logger),
		lego.WithObserver(lego.ObserverFunc(func(e lego.BlockEvent) {
			mc.RecordBlock(e.Clusters, e.Queue, e.Revived)
		})),
	)
	if err != nil {
		return nil, 0, err
	}
	clusters, err := b.Cluster(ctx)
	return clusters, b.Iterations(), err
}
