package score

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"strings"
)

var (
	// ErrInvalidDirection is returned for a Direction outside Distance/Similarity.
	ErrInvalidDirection = errors.New("invalid score direction")

	// ErrNotAccumulative is returned when arithmetic is attempted on a sentinel result.
	ErrNotAccumulative = errors.New("arithmetic requires an accumulative result")

	// ErrZeroNormalizer is returned by Normalize when asked to divide by zero.
	ErrZeroNormalizer = errors.New("cannot normalize by zero")
)

// Kind tags the shape of a Result.
type Kind uint8

const (
	KindAccumulative Kind = iota
	KindConstant
	KindUnbounded
)

func (k Kind) String() string {
	switch k {
	case KindAccumulative:
		return "Accumulative"
	case KindConstant:
		return "Constant"
	case KindUnbounded:
		return "Unbounded"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// ValueFeature is the contribution name used by Of.
const ValueFeature = "value"

// Result is the outcome of comparing two records or clusters.
// The zero value is the neutral accumulative zero.
type Result struct {
	kind    Kind
	total   float64
	contrib map[string]float64
}

// Zero returns the neutral accumulative result.
func Zero() Result {
	return Result{}
}

// Of returns an accumulative result with a single contribution.
func Of(v float64) Result {
	return FromContributions(map[string]float64{ValueFeature: v})
}

// FromContributions returns an accumulative result whose total is the sum of
// the named contributions. The map is copied.
func FromContributions(contrib map[string]float64) Result {
	r := Result{kind: KindAccumulative, contrib: maps.Clone(contrib)}
	r.total = sum(r.contrib)
	return r
}

// Constant returns a fixed-value sentinel without contributions.
func Constant(v float64) Result {
	return Result{kind: KindConstant, total: v}
}

// Unbounded returns the worst-possible sentinel.
func Unbounded() Result {
	return Result{kind: KindUnbounded, total: math.Inf(1)}
}

// Kind returns the shape of r.
func (r Result) Kind() Kind { return r.kind }

// IsUnbounded reports whether r is the worst-possible sentinel.
func (r Result) IsUnbounded() bool { return r.kind == KindUnbounded }

// Total returns the scalar score. Unbounded reports +Inf; use a Direction to
// compare it.
func (r Result) Total() float64 { return r.total }

// Contributions returns a copy of the named feature contributions.
// Sentinels have none.
func (r Result) Contributions() map[string]float64 {
	if r.kind != KindAccumulative {
		return nil
	}
	return maps.Clone(r.contrib)
}

// Add returns the feature-wise sum of r and other.
func (r Result) Add(other Result) (Result, error) {
	if r.kind != KindAccumulative || other.kind != KindAccumulative {
		return Result{}, ErrNotAccumulative
	}
	out := make(map[string]float64, max(len(r.contrib), len(other.contrib)))
	for k, v := range r.contrib {
		out[k] = v
	}
	for k, v := range other.contrib {
		out[k] += v
	}
	res := Result{kind: KindAccumulative, contrib: out}
	res.total = sum(out)
	return res, nil
}

// Normalize divides every contribution by n.
func (r Result) Normalize(n float64) (Result, error) {
	if r.kind != KindAccumulative {
		return Result{}, ErrNotAccumulative
	}
	if n == 0 {
		return Result{}, ErrZeroNormalizer
	}
	out := make(map[string]float64, len(r.contrib))
	for k, v := range r.contrib {
		out[k] = v / n
	}
	res := Result{kind: KindAccumulative, contrib: out}
	res.total = sum(out)
	return res, nil
}

// Less orders results numerically by total. Unbounded sorts after every
// finite result and is equal to another Unbounded.
func Less(a, b Result) bool {
	if a.kind == KindUnbounded {
		return false
	}
	if b.kind == KindUnbounded {
		return true
	}
	return a.total < b.total
}

// Equal reports whether a and b have the same total. Two Unbounded results are equal.
func Equal(a, b Result) bool {
	if a.kind == KindUnbounded || b.kind == KindUnbounded {
		return a.kind == b.kind
	}
	return a.total == b.total
}

// String returns a string representation of the Result.
func (r Result) String() string {
	switch r.kind {
	case KindUnbounded:
		return "Unbounded"
	case KindConstant:
		return fmt.Sprintf("Constant(%g)", r.total)
	}
	if len(r.contrib) == 0 {
		return "0"
	}
	keys := slices.Sorted(maps.Keys(r.contrib))
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%g", k, r.contrib[k])
	}
	return fmt.Sprintf("%g[%s]", r.total, strings.Join(parts, " "))
}

// sum adds contributions in key order so totals are reproducible.
func sum(m map[string]float64) float64 {
	var t float64
	for _, k := range slices.Sorted(maps.Keys(m)) {
		t += m[k]
	}
	return t
}
