package canopy

import (
	"context"
	"math/rand"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/hupe1980/recordlink/blocking"
	"github.com/hupe1980/recordlink/model"
)

// CheapFunc is an inexpensive score between two records.
type CheapFunc func(a, b model.RecordID) float64

// Canopy is one overlap-tolerant block formed around an exemplar.
type Canopy struct {
	Exemplar model.RecordID
	// Members are the records within the loose threshold, exemplar included.
	Members model.Cluster
	// Tight are the records within the tight threshold, exemplar included.
	// They were removed from the exemplar pool by this canopy.
	Tight model.Cluster
}

// Observer is notified after each canopy is formed.
type Observer interface {
	OnCanopy(c Canopy, pool int)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(c Canopy, pool int)

// OnCanopy calls f(c, pool).
func (f ObserverFunc) OnCanopy(c Canopy, pool int) { f(c, pool) }

// Blocker forms canopies and resolves each with an ER method.
type Blocker struct {
	records []model.RecordID
	cheap   CheapFunc
	method  blocking.Method
	t1, t2  float64
	opts    options
}

// New validates the configuration and returns a Blocker. t1 is the loose
// threshold and must be strictly worse than the tight threshold t2.
func New(records []model.RecordID, cheap CheapFunc, method blocking.Method, t1, t2 float64, optFns ...Option) (*Blocker, error) {
	if cheap == nil {
		return nil, ErrNilCheapFunc
	}
	if method == nil {
		return nil, ErrNilMethod
	}
	o := applyOptions(optFns)
	if err := o.direction.Validate(); err != nil {
		return nil, err
	}
	if !o.direction.BetterValue(t2, t1) {
		return nil, &ThresholdError{T1: t1, T2: t2, Direction: o.direction}
	}

	return &Blocker{
		records: records,
		cheap:   cheap,
		method:  method,
		t1:      t1,
		t2:      t2,
		opts:    o,
	}, nil
}

// pool returns the distinct records in exemplar order.
func (b *Blocker) pool() []model.RecordID {
	seen := make(map[model.RecordID]struct{}, len(b.records))
	pool := make([]model.RecordID, 0, len(b.records))
	for _, r := range b.records {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		pool = append(pool, r)
	}
	if b.opts.randomize {
		rng := rand.New(rand.NewSource(b.opts.seed))
		rng.Shuffle(len(pool), func(i, j int) {
			pool[i], pool[j] = pool[j], pool[i]
		})
	}
	return pool
}

// Canopies forms the canopies without running the ER method. The context is
// checked between exemplar picks.
func (b *Blocker) Canopies(ctx context.Context) ([]Canopy, error) {
	pool := b.pool()
	var (
		canopies []Canopy
		progress = rate.Sometimes{Interval: time.Second}
	)

	for len(pool) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		exemplar := pool[0]
		loose := []model.RecordID{exemplar}
		tight := []model.RecordID{exemplar}
		rest := pool[:0]

		for _, r := range pool[1:] {
			d := b.cheap(exemplar, r)
			switch {
			case b.opts.direction.BetterValue(d, b.t2):
				loose = append(loose, r)
				tight = append(tight, r)
			case b.opts.direction.BetterValue(d, b.t1):
				loose = append(loose, r)
				rest = append(rest, r)
			default:
				rest = append(rest, r)
			}
		}
		pool = rest

		c := Canopy{
			Exemplar: exemplar,
			Members:  model.NewCluster(loose...),
			Tight:    model.NewCluster(tight...),
		}
		canopies = append(canopies, c)

		if b.opts.observer != nil {
			b.opts.observer.OnCanopy(c, len(pool))
		}
		progress.Do(func() {
			b.opts.logger.Info("forming canopies",
				"canopies", len(canopies),
				"pool", len(pool),
			)
		})
	}

	b.opts.logger.Debug("canopies formed", "canopies", len(canopies), "records", len(b.records))
	return canopies, nil
}

// Cluster forms canopies, resolves each with the ER method, and merges the
// per-canopy clusterings by transitive closure.
func (b *Blocker) Cluster(ctx context.Context) ([]model.Cluster, error) {
	canopies, err := b.Canopies(ctx)
	if err != nil {
		return nil, err
	}

	results := make([][]model.Cluster, len(canopies))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.opts.workers)

	for i, c := range canopies {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out, err := b.method(gctx, model.Singletons(c.Members))
			if err != nil {
				return err
			}
			results[i] = out
			b.opts.logger.Debug("canopy resolved",
				"canopy", i,
				"exemplar", c.Exemplar,
				"members", c.Members.Len(),
				"clusters", len(out),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return blocking.Merge(results), nil
}
