package main

import (
	"errors"
	"testing"
	"time"

	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPromMetrics(t *testing.T) {
	m := newPromMetrics()

	m.RecordResolve(10, 4, time.Millisecond, nil)
	m.RecordResolve(10, 0, time.Millisecond, errors.New("boom"))
	m.RecordMerge(2.5)
	m.RecordCanopy(3, 2, 7)
	m.RecordBlock(4, 6, 2)
	m.RecordBlock(2, 5, 0)

	assert.InDelta(t, 10.0, promtestutil.ToFloat64(m.records), 0)
	assert.InDelta(t, 0.0, promtestutil.ToFloat64(m.clusters), 0)
	assert.InDelta(t, 2.0, promtestutil.ToFloat64(m.blocks), 0)
	assert.InDelta(t, 2.0, promtestutil.ToFloat64(m.revived), 0)
	assert.InDelta(t, 5.0, promtestutil.ToFloat64(m.queueDepth), 0)
	assert.Equal(t, 2, promtestutil.CollectAndCount(m.resolveLatency))
}
