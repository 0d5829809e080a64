package main

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/recordlink"
)

var _ recordlink.MetricsCollector = (*promMetrics)(nil)

// promMetrics implements recordlink.MetricsCollector on a private registry
// so a run can be dumped in the node-exporter textfile format.
type promMetrics struct {
	reg *prometheus.Registry

	resolveLatency *prometheus.HistogramVec
	records        prometheus.Gauge
	clusters       prometheus.Gauge
	mergeScores    prometheus.Histogram
	canopySize     prometheus.Histogram
	blocks         prometheus.Counter
	revived        prometheus.Counter
	queueDepth     prometheus.Gauge
}

func newPromMetrics() *promMetrics {
	m := &promMetrics{
		reg: prometheus.NewRegistry(),
		resolveLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "recordlink_resolve_duration_seconds",
			Help:    "Latency of resolve runs",
			Buckets: prometheus.DefBuckets,
		}, []string{"status"}),
		records: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "recordlink_records",
			Help: "Records in the last resolve run",
		}),
		clusters: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "recordlink_clusters",
			Help: "Clusters produced by the last resolve run",
		}),
		mergeScores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "recordlink_merge_score",
			Help:    "Linkage score of every merge",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
		}),
		canopySize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "recordlink_canopy_members",
			Help:    "Members per canopy",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
		blocks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "recordlink_lego_blocks_total",
			Help: "Lego blocks processed",
		}),
		revived: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "recordlink_lego_blocks_revived_total",
			Help: "Processed Lego blocks brought back by later merges",
		}),
		queueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "recordlink_lego_queue_depth",
			Help: "Lego blocks waiting after the last processed block",
		}),
	}

	m.reg.MustRegister(
		m.resolveLatency,
		m.records,
		m.clusters,
		m.mergeScores,
		m.canopySize,
		m.blocks,
		m.revived,
		m.queueDepth,
	)
	return m
}

func (m *promMetrics) RecordResolve(records, clusters int, d time.Duration, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.resolveLatency.WithLabelValues(status).Observe(d.Seconds())
	m.records.Set(float64(records))
	m.clusters.Set(float64(clusters))
}

func (m *promMetrics) RecordMerge(score float64) {
	m.mergeScores.Observe(score)
}

func (m *promMetrics) RecordCanopy(members, _, _ int) {
	m.canopySize.Observe(float64(members))
}

func (m *promMetrics) RecordBlock(_, queue, revived int) {
	m.blocks.Inc()
	m.revived.Add(float64(revived))
	m.queueDepth.Set(float64(queue))
}

// WriteTextfile writes all metrics to path atomically.
func (m *promMetrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.reg)
}
