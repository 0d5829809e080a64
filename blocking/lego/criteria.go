package lego

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/hupe1980/recordlink/blocking"
	"github.com/hupe1980/recordlink/minhash"
	"github.com/hupe1980/recordlink/model"
)

// TokenFunc returns the blocking tokens of a record.
type TokenFunc func(r model.RecordID) []string

// KeyFunc returns a grouping key for a record.
type KeyFunc func(r model.RecordID) string

// MinHashCriterion blocks records by the masked MinHash of their tokens under
// the family's index-th function. Records without tokens are skipped and
// logged. Blocks are ordered by hash value; records keep input order.
func MinHashCriterion(family *minhash.Family, index, mask uint32, tokens TokenFunc, logger *slog.Logger) blocking.Criterion {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return func(records []model.RecordID) [][]model.RecordID {
		buckets := make(map[uint32][]model.RecordID)
		for _, r := range records {
			h, err := family.MinHash(tokens(r), index, mask)
			if err != nil {
				logger.Warn("record has no blocking tokens", "record", r)
				continue
			}
			buckets[h] = append(buckets[h], r)
		}

		out := make([][]model.RecordID, 0, len(buckets))
		for _, h := range slices.Sorted(maps.Keys(buckets)) {
			out = append(out, buckets[h])
		}
		return out
	}
}

// GroupBy splits records by key and applies inner to every group
// separately, so no block spans two keys. Groups are visited in key order.
func GroupBy(key KeyFunc, inner blocking.Criterion) blocking.Criterion {
	return func(records []model.RecordID) [][]model.RecordID {
		groups := make(map[string][]model.RecordID)
		for _, r := range records {
			k := key(r)
			groups[k] = append(groups[k], r)
		}

		var out [][]model.RecordID
		for _, k := range slices.Sorted(maps.Keys(groups)) {
			out = append(out, inner(groups[k])...)
		}
		return out
	}
}

// ByKey blocks records that share a key.
func ByKey(key KeyFunc) blocking.Criterion {
	return GroupBy(key, func(records []model.RecordID) [][]model.RecordID {
		return [][]model.RecordID{records}
	})
}
