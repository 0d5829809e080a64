package lego

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	"golang.org/x/time/rate"

	"github.com/hupe1980/recordlink/blocking"
	"github.com/hupe1980/recordlink/internal/queue"
	"github.com/hupe1980/recordlink/model"
)

// BlockEvent describes one processed block.
type BlockEvent struct {
	Iteration int
	Block     int
	// Clusters is the number of clusters handed to the method.
	Clusters int
	// Affected is the number of records whose maximal cluster changed.
	Affected int
	// Revived is the number of already processed blocks brought back.
	Revived int
	// Queue is the number of blocks still waiting.
	Queue int
}

// Observer is notified after each processed block.
type Observer interface {
	OnBlock(e BlockEvent)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(e BlockEvent)

// OnBlock calls f(e).
func (f ObserverFunc) OnBlock(e BlockEvent) { f(e) }

// Blocker runs Lego blocking over a record universe.
type Blocker struct {
	records  []model.RecordID
	criteria []blocking.Criterion
	method   blocking.Method
	opts     options

	maximal    map[model.RecordID]model.Cluster
	iterations int
}

// New validates the configuration and returns a Blocker.
func New(records []model.RecordID, criteria []blocking.Criterion, method blocking.Method, optFns ...Option) (*Blocker, error) {
	if method == nil {
		return nil, ErrNilMethod
	}
	for i, c := range criteria {
		if c == nil {
			return nil, fmt.Errorf("%w: criterion %d", ErrNilCriterion, i)
		}
	}

	return &Blocker{
		records:  records,
		criteria: criteria,
		method:   method,
		opts:     applyOptions(optFns),
	}, nil
}

// Cluster processes blocks until the queue drains and returns the distinct
// maximal clusters ordered by smallest member. The context is checked
// between dequeues.
func (b *Blocker) Cluster(ctx context.Context) ([]model.Cluster, error) {
	b.maximal = make(map[model.RecordID]model.Cluster, len(b.records))
	for _, r := range b.records {
		b.maximal[r] = model.Singleton(r)
	}
	b.iterations = 0

	q := queue.New(blocking.Blocks(b.records, b.criteria...)...)
	b.opts.logger.Info("lego blocking started", "blocks", q.Len(), "records", len(b.records))

	progress := rate.Sometimes{Interval: time.Second}
	for q.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if b.opts.maxIterations > 0 && b.iterations >= b.opts.maxIterations {
			return nil, fmt.Errorf("%w: %d", ErrIterationLimit, b.iterations)
		}

		id, block, _ := q.Dequeue()
		b.iterations++

		progress.Do(func() {
			b.opts.logger.Info("processing block",
				"iteration", b.iterations,
				"block", int(id),
				"queue", q.Len(),
			)
		})

		refreshed := b.refresh(block)
		out, err := b.method(ctx, refreshed)
		if err != nil {
			return nil, fmt.Errorf("block %d: %w", id, err)
		}

		affected := b.affected(out)
		revived := q.Hit(affected, id)
		for _, r := range revived {
			b.opts.logger.Debug("block brought back", "block", int(r), "by", int(id))
		}

		for _, c := range out {
			for _, r := range c {
				b.maximal[r] = c
			}
		}

		if b.opts.observer != nil {
			b.opts.observer.OnBlock(BlockEvent{
				Iteration: b.iterations,
				Block:     int(id),
				Clusters:  len(refreshed),
				Affected:  len(affected),
				Revived:   len(revived),
				Queue:     q.Len(),
			})
		}
	}

	b.opts.logger.Info("lego blocking finished", "iterations", b.iterations)
	return b.clusters(), nil
}

// refresh widens every cluster of block with the maximal clusters of its
// members. Equal clusters collapse and overlapping ones are joined, so the
// method always receives disjoint input.
func (b *Blocker) refresh(block []model.Cluster) []model.Cluster {
	widened := make([]model.Cluster, 0, len(block))
	for _, c := range block {
		widened = append(widened, b.maximalOf(c))
	}
	return blocking.Merge([][]model.Cluster{widened})
}

func (b *Blocker) maximalOf(c model.Cluster) model.Cluster {
	var out model.Cluster
	for _, r := range c {
		m, ok := b.maximal[r]
		if !ok {
			m = model.Singleton(r)
		}
		out = out.Union(m)
	}
	return out
}

// affected returns the members of every output cluster that differs from
// the maximal cluster of at least one of its members.
func (b *Blocker) affected(out []model.Cluster) []model.RecordID {
	set := make(map[model.RecordID]struct{})
	for _, c := range out {
		for _, r := range c {
			if m, ok := b.maximal[r]; !ok || !m.Equal(c) {
				for _, x := range c {
					set[x] = struct{}{}
				}
				break
			}
		}
	}
	return slices.Sorted(maps.Keys(set))
}

func (b *Blocker) clusters() []model.Cluster {
	seen := make(map[model.RecordID]struct{}, len(b.maximal))
	var out []model.Cluster
	for _, r := range slices.Sorted(maps.Keys(b.maximal)) {
		if _, ok := seen[r]; ok {
			continue
		}
		c := b.maximal[r]
		out = append(out, c)
		for _, x := range c {
			seen[x] = struct{}{}
		}
	}
	model.SortClusters(out)
	return out
}

// Iterations returns the number of blocks processed by the last Cluster call.
func (b *Blocker) Iterations() int {
	return b.iterations
}

// Maximal returns the current maximal cluster of r.
func (b *Blocker) Maximal(r model.RecordID) (model.Cluster, bool) {
	c, ok := b.maximal[r]
	return c, ok
}
