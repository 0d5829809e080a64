package blocking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/recordlink/model"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name        string
		clusterings [][]model.Cluster
		want        []model.Cluster
	}{
		{
			name:        "empty",
			clusterings: nil,
			want:        []model.Cluster{},
		},
		{
			name: "chained through shared record",
			clusterings: [][]model.Cluster{
				{model.NewCluster(1, 2), model.NewCluster(3)},
				{model.NewCluster(2, 4), model.NewCluster(5)},
			},
			want: []model.Cluster{
				model.NewCluster(1, 2, 4),
				model.NewCluster(3),
				model.NewCluster(5),
			},
		},
		{
			name: "long chain",
			clusterings: [][]model.Cluster{
				{model.NewCluster(1, 2)},
				{model.NewCluster(3, 4)},
				{model.NewCluster(2, 3), model.NewCluster(9)},
			},
			want: []model.Cluster{
				model.NewCluster(1, 2, 3, 4),
				model.NewCluster(9),
			},
		},
		{
			name: "empty cluster ignored",
			clusterings: [][]model.Cluster{
				{model.NewCluster(), model.NewCluster(7)},
			},
			want: []model.Cluster{model.NewCluster(7)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Merge(tt.clusterings))
		})
	}
}

func TestMerge_OrderIndependent(t *testing.T) {
	a := []model.Cluster{model.NewCluster(1, 2), model.NewCluster(3)}
	b := []model.Cluster{model.NewCluster(5), model.NewCluster(4, 2)}

	assert.Equal(t, Merge([][]model.Cluster{a, b}), Merge([][]model.Cluster{b, a}))
}

func TestBlocks(t *testing.T) {
	evenOdd := func(records []model.RecordID) [][]model.RecordID {
		var even, odd []model.RecordID
		for _, r := range records {
			if r%2 == 0 {
				even = append(even, r)
			} else {
				odd = append(odd, r)
			}
		}
		return [][]model.RecordID{even, odd}
	}
	all := func(records []model.RecordID) [][]model.RecordID {
		return [][]model.RecordID{records}
	}

	blocks := Blocks(model.Records(4), evenOdd, all)
	assert.Equal(t, [][]model.Cluster{
		{{0}, {2}},
		{{1}, {3}},
		{{0}, {1}, {2}, {3}},
	}, blocks)
}
