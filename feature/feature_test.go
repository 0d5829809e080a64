package feature

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/recordlink/lexical"
)

func TestComparer_Compare(t *testing.T) {
	a := Representation{
		TFIDF:    map[string]float64{"paris": 0.5, "capital": 0.2},
		Category: "geo",
		Entities: map[string]int{"Paris": 2, "France": 1},
	}
	b := Representation{
		TFIDF:    map[string]float64{"paris": 0.4, "texas": 0.9},
		Category: "geo",
		Entities: map[string]int{"Paris": 3},
	}

	tests := []struct {
		name    string
		weights Weights
		b       Representation
		want    map[string]float64
	}{
		{
			name:    "default weights",
			weights: DefaultWeights,
			b:       b,
			want:    map[string]float64{TFIDF: 0.2, Category: 0, Named: 6},
		},
		{
			name:    "category counts when equal",
			weights: Weights{TFIDF: 2, Category: 1.5, Entities: 0.5},
			b:       b,
			want:    map[string]float64{TFIDF: 0.4, Category: 1.5, Named: 3},
		},
		{
			name:    "category ignored when different",
			weights: Weights{Category: 1.5},
			b:       Representation{Category: "history"},
			want:    map[string]float64{TFIDF: 0, Category: 0, Named: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewComparer(WithWeights(tt.weights))
			got := c.Compare(a, tt.b)
			contrib := got.Contributions()
			require.Len(t, contrib, 3)
			for k, v := range tt.want {
				assert.InDelta(t, v, contrib[k], 1e-12, k)
			}

			// Symmetric.
			assert.InDelta(t, got.Total(), c.Compare(tt.b, a).Total(), 1e-12)
		})
	}
}

func TestBuild(t *testing.T) {
	docs := [][]string{
		{"paris", "france", "paris"},
		{"paris", "texas"},
		{"tokyo"},
	}
	idx := lexical.Build(docs)

	sources := []Source{
		{Tokens: docs[0], Category: "geo", Entities: map[string]int{"Paris": 1}},
		{Tokens: docs[1]},
		{Tokens: append(docs[2], "kyoto")},
	}
	reps := Build(idx, sources)
	require.Len(t, reps, 3)

	n := 3.0
	assert.InDelta(t, 2.0/3*math.Log(n/2), reps[0].TFIDF["paris"], 1e-12)
	assert.InDelta(t, 1.0/3*math.Log(n/1), reps[0].TFIDF["france"], 1e-12)
	assert.Equal(t, "geo", reps[0].Category)
	assert.Equal(t, map[string]int{"Paris": 1}, reps[0].Entities)
	assert.Equal(t, 1.0, reps[2].TFIDF["kyoto"], "unknown tokens weigh one")
}

func TestExpandEntities(t *testing.T) {
	got := ExpandEntities(map[string]int{"b": 1, "a": 2, "c": 0})
	assert.Equal(t, []string{"a", "a", "b"}, got)
	assert.Empty(t, ExpandEntities(nil))
}
