package lego

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/recordlink/minhash"
	"github.com/hupe1980/recordlink/model"
)

func TestMinHashCriterion(t *testing.T) {
	tokens := [][]string{
		{"paris", "france"},
		{"france", "paris"},
		{},
		{"paris", "france"},
		{"tokyo", "japan", "honshu"},
	}
	lookup := func(r model.RecordID) []string { return tokens[r] }

	crit := MinHashCriterion(minhash.New(1), 1, 0xffffffff, lookup, nil)
	blocks := crit(model.Records(len(tokens)))

	var withParis []model.RecordID
	total := 0
	for _, b := range blocks {
		total += len(b)
		for _, r := range b {
			assert.NotEqual(t, model.RecordID(2), r, "records without tokens are skipped")
		}
		if len(b) > 0 && b[0] == 0 {
			withParis = b
		}
	}
	assert.Equal(t, 4, total)
	assert.Equal(t, []model.RecordID{0, 1, 3}, withParis)
}

func TestMinHashCriterion_MaskCoarsens(t *testing.T) {
	tokens := make([][]string, 64)
	for i := range tokens {
		tokens[i] = []string{string(rune('a' + i%26)), string(rune('A' + i%7))}
	}
	lookup := func(r model.RecordID) []string { return tokens[r] }

	blocks := MinHashCriterion(minhash.New(3), 2, 0b1, lookup, nil)(model.Records(len(tokens)))
	assert.LessOrEqual(t, len(blocks), 2)
}

func TestGroupBy(t *testing.T) {
	category := []string{"b", "a", "b", "a", "c"}
	key := func(r model.RecordID) string { return category[r] }

	blocks := ByKey(key)(model.Records(len(category)))
	require.Len(t, blocks, 3)
	assert.Equal(t, []model.RecordID{1, 3}, blocks[0])
	assert.Equal(t, []model.RecordID{0, 2}, blocks[1])
	assert.Equal(t, []model.RecordID{4}, blocks[2])

	pairs := func(records []model.RecordID) [][]model.RecordID {
		var out [][]model.RecordID
		for _, r := range records {
			out = append(out, []model.RecordID{r})
		}
		return out
	}
	split := GroupBy(key, pairs)(model.Records(len(category)))
	assert.Len(t, split, 5)
	assert.Equal(t, []model.RecordID{1}, split[0])
}
