package lego

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/recordlink/blocking"
	"github.com/hupe1980/recordlink/model"
)

// fixed returns a criterion that ignores its input and yields blocks.
func fixed(blocks ...[]model.RecordID) blocking.Criterion {
	return func([]model.RecordID) [][]model.RecordID {
		return blocks
	}
}

func mergeAll(_ context.Context, block []model.Cluster) ([]model.Cluster, error) {
	var out model.Cluster
	for _, c := range block {
		out = out.Union(c)
	}
	return []model.Cluster{out}, nil
}

func identity(_ context.Context, block []model.Cluster) ([]model.Cluster, error) {
	return block, nil
}

func TestBlocker_FeedbackAcrossCriteria(t *testing.T) {
	var events []BlockEvent
	b, err := New(model.Records(5),
		[]blocking.Criterion{
			fixed([]model.RecordID{0, 1}, []model.RecordID{2, 3}),
			fixed([]model.RecordID{1, 2}, []model.RecordID{4}),
		},
		mergeAll,
		WithObserver(ObserverFunc(func(e BlockEvent) { events = append(events, e) })),
	)
	require.NoError(t, err)

	got, err := b.Cluster(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.Cluster{{0, 1, 2, 3}, {4}}, got)

	assert.Equal(t, 7, b.Iterations())
	order := make([]int, len(events))
	revived := 0
	for i, e := range events {
		order[i] = e.Block
		revived += e.Revived
	}
	assert.Equal(t, []int{0, 2, 0, 1, 0, 2, 3}, order)
	assert.Equal(t, 3, revived)
	assert.Equal(t, 0, events[len(events)-1].Queue)

	m, ok := b.Maximal(2)
	require.True(t, ok)
	assert.Equal(t, model.Cluster{0, 1, 2, 3}, m)
}

func TestBlocker_NoMerges(t *testing.T) {
	b, err := New(model.Records(4),
		[]blocking.Criterion{fixed([]model.RecordID{0, 1, 2, 3})},
		identity,
	)
	require.NoError(t, err)

	got, err := b.Cluster(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.Singletons(model.Records(4)), got)
	assert.Equal(t, 1, b.Iterations())
}

func TestBlocker_RecordsOutsideBlocks(t *testing.T) {
	b, err := New(model.Records(3), nil, mergeAll)
	require.NoError(t, err)

	got, err := b.Cluster(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []model.Cluster{{0}, {1}, {2}}, got)
	assert.Equal(t, 0, b.Iterations())
}

func TestBlocker_OverlappingMaximalsJoined(t *testing.T) {
	var seen [][]model.Cluster
	record := func(ctx context.Context, block []model.Cluster) ([]model.Cluster, error) {
		seen = append(seen, block)
		return identity(ctx, block)
	}

	b, err := New(model.Records(3),
		[]blocking.Criterion{fixed([]model.RecordID{0, 2})},
		record,
	)
	require.NoError(t, err)
	b.maximal = map[model.RecordID]model.Cluster{0: {0, 1}, 1: {1, 2}, 2: {1, 2}}

	assert.Equal(t, []model.Cluster{{0, 1, 2}}, b.refresh(model.Singletons([]model.RecordID{0, 2})))
	assert.Empty(t, seen)
}

func TestBlocker_Validation(t *testing.T) {
	_, err := New(nil, nil, nil)
	assert.ErrorIs(t, err, ErrNilMethod)

	_, err = New(nil, []blocking.Criterion{fixed(), nil}, identity)
	assert.ErrorIs(t, err, ErrNilCriterion)
}

func TestBlocker_IterationLimit(t *testing.T) {
	b, err := New(model.Records(5),
		[]blocking.Criterion{
			fixed([]model.RecordID{0, 1}, []model.RecordID{2, 3}),
			fixed([]model.RecordID{1, 2}, []model.RecordID{4}),
		},
		mergeAll,
		WithMaxIterations(2),
	)
	require.NoError(t, err)

	_, err = b.Cluster(context.Background())
	assert.ErrorIs(t, err, ErrIterationLimit)
}

func TestBlocker_MethodError(t *testing.T) {
	boom := errors.New("boom")
	b, err := New(model.Records(2),
		[]blocking.Criterion{fixed([]model.RecordID{0, 1})},
		func(context.Context, []model.Cluster) ([]model.Cluster, error) { return nil, boom },
	)
	require.NoError(t, err)

	_, err = b.Cluster(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestBlocker_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b, err := New(model.Records(2), []blocking.Criterion{fixed([]model.RecordID{0, 1})}, mergeAll)
	require.NoError(t, err)
	_, err = b.Cluster(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
