package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/recordlink/model"
)

func block(ids ...model.RecordID) []model.Cluster {
	return model.Singletons(ids)
}

func TestBlockQueue_FIFOOnTies(t *testing.T) {
	q := New(block(1, 2), block(3), block(4, 5))
	require.Equal(t, 3, q.Len())

	for want := range 3 {
		id, _, ok := q.Dequeue()
		require.True(t, ok)
		assert.Equal(t, BlockID(want), id)
	}
	_, _, ok := q.Dequeue()
	assert.False(t, ok)
	assert.Equal(t, 0, q.Len())
}

func TestBlockQueue_HighestHitsFirst(t *testing.T) {
	q := New(block(1, 2), block(2, 3), block(3, 4))

	// Record 3 lives in blocks 1 and 2; record 4 only in block 2.
	q.Hit([]model.RecordID{3, 4}, 0)

	h, ok := q.Hits(2)
	require.True(t, ok)
	assert.Equal(t, 2, h)
	h, _ = q.Hits(1)
	assert.Equal(t, 1, h)

	id, b, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, BlockID(2), id)
	assert.Equal(t, block(3, 4), b)

	id, _, _ = q.Dequeue()
	assert.Equal(t, BlockID(1), id)
	id, _, _ = q.Dequeue()
	assert.Equal(t, BlockID(0), id)
}

func TestBlockQueue_OriginNotHit(t *testing.T) {
	q := New(block(1, 2), block(2))
	q.Hit([]model.RecordID{2}, 0)

	h, _ := q.Hits(0)
	assert.Equal(t, 0, h)
	h, _ = q.Hits(1)
	assert.Equal(t, 1, h)
}

func TestBlockQueue_Revive(t *testing.T) {
	q := New(block(1, 2), block(2, 3))

	id, _, ok := q.Dequeue()
	require.True(t, ok)
	require.Equal(t, BlockID(0), id)
	assert.Equal(t, 1, q.Len())

	revived := q.Hit([]model.RecordID{1}, 1)
	assert.Equal(t, []BlockID{0}, revived)
	assert.Equal(t, 2, q.Len())

	id, b, ok := q.Dequeue()
	require.True(t, ok)
	assert.Equal(t, BlockID(0), id)
	assert.Equal(t, block(1, 2), b, "revived block keeps its original content")
}

func TestBlockQueue_EnqueueAfterStart(t *testing.T) {
	q := New()
	assert.Equal(t, 0, q.Len())

	a := q.Enqueue(block(1))
	b := q.Enqueue(block(1))
	assert.Equal(t, BlockID(0), a)
	assert.Equal(t, BlockID(1), b)
	assert.Equal(t, 2, q.Total())

	q.Hit([]model.RecordID{1}, a)
	id, _, _ := q.Dequeue()
	assert.Equal(t, b, id)
}
