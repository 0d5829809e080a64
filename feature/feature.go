package feature

import (
	"maps"
	"slices"

	"github.com/hupe1980/recordlink/lexical"
	"github.com/hupe1980/recordlink/score"
)

// Contribution names reported by Compare.
const (
	TFIDF    = "tfidf"
	Category = "category"
	Named    = "named"
)

// Representation is the feature view of one record.
type Representation struct {
	TFIDF    map[string]float64
	Category string
	Entities map[string]int
}

// Source is the raw material for one Representation.
type Source struct {
	Tokens   []string
	Category string
	Entities map[string]int
}

// Build computes a Representation per source. Source i must be document i
// of idx. Each distinct term weighs tf·idf; tokens unknown to idx weigh 1
// per occurrence.
func Build(idx *lexical.Index, sources []Source) []Representation {
	out := make([]Representation, len(sources))
	for i, src := range sources {
		weights := make(map[string]float64)
		for term, tf := range idx.Terms(lexical.DocID(i)) {
			weights[term] = tf * idx.InverseDocumentFrequency(term)
		}
		for _, tok := range src.Tokens {
			if _, ok := idx.TermID(tok); !ok {
				weights[tok]++
			}
		}
		out[i] = Representation{
			TFIDF:    weights,
			Category: src.Category,
			Entities: maps.Clone(src.Entities),
		}
	}
	return out
}

// ExpandEntities repeats each entity name by its count, in name order.
func ExpandEntities(entities map[string]int) []string {
	var out []string
	for _, name := range slices.Sorted(maps.Keys(entities)) {
		for range entities[name] {
			out = append(out, name)
		}
	}
	return out
}

// Weights scales each feature group's contribution.
type Weights struct {
	TFIDF    float64
	Category float64
	Entities float64
}

// DefaultWeights counts TF-IDF and entity agreement and ignores categories.
var DefaultWeights = Weights{TFIDF: 1, Category: 0, Entities: 1}

// Comparer scores pairs of representations as similarities.
type Comparer struct {
	weights Weights
}

// Option configures a Comparer.
type Option func(*Comparer)

// WithWeights sets the feature group weights.
func WithWeights(w Weights) Option {
	return func(c *Comparer) {
		c.weights = w
	}
}

// NewComparer creates a Comparer with DefaultWeights unless overridden.
func NewComparer(optFns ...Option) *Comparer {
	c := &Comparer{weights: DefaultWeights}
	for _, fn := range optFns {
		fn(c)
	}
	return c
}

// Weights returns the configured weights.
func (c *Comparer) Weights() Weights {
	return c.weights
}

// Compare returns the weighted similarity of a and b:
//
//	tfidf    = w.TFIDF    · Σ a.TFIDF[t]·b.TFIDF[t]
//	category = w.Category if both categories are equal, else 0
//	named    = w.Entities · Σ a.Entities[e]·b.Entities[e]
func (c *Comparer) Compare(a, b Representation) score.Result {
	var category float64
	if a.Category == b.Category {
		category = c.weights.Category
	}
	return score.FromContributions(map[string]float64{
		TFIDF:    c.weights.TFIDF * dot(a.TFIDF, b.TFIDF),
		Category: category,
		Named:    c.weights.Entities * dotCounts(a.Entities, b.Entities),
	})
}

func dot(a, b map[string]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var s float64
	for k, v := range a {
		s += v * b[k]
	}
	return s
}

func dotCounts(a, b map[string]int) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var s float64
	for k, v := range a {
		s += float64(v * b[k])
	}
	return s
}
