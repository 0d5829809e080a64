package recordlink

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
// Implementations must be safe for concurrent use: canopies are clustered in
// parallel.
type MetricsCollector interface {
	// RecordResolve is called after each Resolve call.
	RecordResolve(records, clusters int, duration time.Duration, err error)

	// RecordMerge is called after every agglomerative merge step with the
	// winning linkage score.
	RecordMerge(score float64)

	// RecordCanopy is called for every canopy formed. pool is the number of
	// exemplar candidates left afterwards.
	RecordCanopy(members, tight, pool int)

	// RecordBlock is called after every Lego block. queue is the number of
	// blocks still waiting, revived the number of blocks brought back.
	RecordBlock(clusters, queue, revived int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordResolve(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordMerge(float64)                         {}
func (NoopMetricsCollector) RecordCanopy(int, int, int)                  {}
func (NoopMetricsCollector) RecordBlock(int, int, int)                   {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ResolveCount      atomic.Int64
	ResolveErrors     atomic.Int64
	ResolveTotalNanos atomic.Int64
	RecordsSeen       atomic.Int64
	ClustersProduced  atomic.Int64
	MergeCount        atomic.Int64
	CanopyCount       atomic.Int64
	CanopyMembers     atomic.Int64
	BlockCount        atomic.Int64
	BlocksRevived     atomic.Int64
	MaxQueue          atomic.Int64
}

// RecordResolve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordResolve(records, clusters int, duration time.Duration, err error) {
	b.ResolveCount.Add(1)
	b.ResolveTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.ResolveErrors.Add(1)
		return
	}
	b.RecordsSeen.Add(int64(records))
	b.ClustersProduced.Add(int64(clusters))
}

// RecordMerge implements MetricsCollector.
func (b *BasicMetricsCollector) RecordMerge(float64) {
	b.MergeCount.Add(1)
}

// RecordCanopy implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCanopy(members, _, _ int) {
	b.CanopyCount.Add(1)
	b.CanopyMembers.Add(int64(members))
}

// RecordBlock implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBlock(_, queue, revived int) {
	b.BlockCount.Add(1)
	b.BlocksRevived.Add(int64(revived))
	for {
		cur := b.MaxQueue.Load()
		if int64(queue) <= cur || b.MaxQueue.CompareAndSwap(cur, int64(queue)) {
			return
		}
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ResolveCount:     b.ResolveCount.Load(),
		ResolveErrors:    b.ResolveErrors.Load(),
		ResolveAvgNanos:  b.getAvgResolveNanos(),
		RecordsSeen:      b.RecordsSeen.Load(),
		ClustersProduced: b.ClustersProduced.Load(),
		MergeCount:       b.MergeCount.Load(),
		CanopyCount:      b.CanopyCount.Load(),
		CanopyMembers:    b.CanopyMembers.Load(),
		BlockCount:       b.BlockCount.Load(),
		BlocksRevived:    b.BlocksRevived.Load(),
		MaxQueue:         b.MaxQueue.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgResolveNanos() int64 {
	count := b.ResolveCount.Load()
	if count == 0 {
		return 0
	}
	return b.ResolveTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ResolveCount     int64
	ResolveErrors    int64
	ResolveAvgNanos  int64
	RecordsSeen      int64
	ClustersProduced int64
	MergeCount       int64
	CanopyCount      int64
	CanopyMembers    int64
	BlockCount       int64
	BlocksRevived    int64
	MaxQueue         int64
}
