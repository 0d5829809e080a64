package cluster

import (
	"sync/atomic"

	"github.com/hupe1980/recordlink/model"
)

// IDGenerator hands out process-unique cluster ids. The first id is 1.
// It is safe for concurrent use and may be shared by many clusterers.
type IDGenerator struct {
	last atomic.Uint64
}

// NewIDGenerator creates a generator starting at 1.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Next returns a fresh id.
func (g *IDGenerator) Next() model.ClusterID {
	return model.ClusterID(g.last.Add(1))
}

// Last returns the most recently issued id, or 0 if none was issued.
func (g *IDGenerator) Last() model.ClusterID {
	return model.ClusterID(g.last.Load())
}
