package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/recordlink/model"
)

func TestGroupedPoints(t *testing.T) {
	rng := NewRNG(4711)

	points, gold := rng.GroupedPoints(4, 5, 0.5)

	assert.Len(t, points, 20)
	assert.Len(t, gold, 20)
	for i, p := range points {
		centre := float64(100 * gold[i])
		assert.InDelta(t, centre, p, 0.5)
	}
}

func TestTokenRecords(t *testing.T) {
	rng := NewRNG(4711)

	records, gold := rng.TokenRecords(3, 4, 6)

	assert.Len(t, records, 12)
	assert.Equal(t, []int{0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2}, gold)
	for _, tokens := range records {
		assert.NotEmpty(t, tokens)
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	p1, _ := rng.GroupedPoints(2, 3, 1)
	rng.Reset()
	p2, _ := rng.GroupedPoints(2, 3, 1)

	assert.Equal(t, p1, p2)
}

func TestGoldClusters(t *testing.T) {
	got := GoldClusters([]int{2, 0, 2, 1, 0})
	assert.Equal(t, []model.Cluster{{0, 2}, {1, 4}, {3}}, got)
}

func TestPartitionChecks(t *testing.T) {
	assert.True(t, IsPartition([]model.Cluster{{0, 2}, {1}}, 3))
	assert.False(t, IsPartition([]model.Cluster{{0, 2}, {1, 2}}, 3))
	assert.False(t, IsPartition([]model.Cluster{{0}}, 2))

	assert.True(t, Covers([]model.Cluster{{0, 2}, {1, 2}}, 3))
	assert.False(t, Covers([]model.Cluster{{0, 2}}, 3))
}
