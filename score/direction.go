package score

import (
	"fmt"
	"math"
	"strings"
)

// Direction selects whether lower or higher totals are better.
type Direction uint8

const (
	// Distance means lower is better.
	Distance Direction = iota
	// Similarity means higher is better.
	Similarity
)

func (d Direction) String() string {
	switch d {
	case Distance:
		return "DISTANCE"
	case Similarity:
		return "SIMILARITY"
	default:
		return fmt.Sprintf("Unknown(%d)", d)
	}
}

// ParseDirection parses "distance" or "similarity" (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DISTANCE":
		return Distance, nil
	case "SIMILARITY":
		return Similarity, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// Validate returns ErrInvalidDirection for unrecognized values.
func (d Direction) Validate() error {
	if d != Distance && d != Similarity {
		return fmt.Errorf("%w: %d", ErrInvalidDirection, d)
	}
	return nil
}

// Better reports whether a is strictly better than b.
// Unbounded is worse than every other result and never better than another Unbounded.
func (d Direction) Better(a, b Result) bool {
	if a.kind == KindUnbounded {
		return false
	}
	if b.kind == KindUnbounded {
		return true
	}
	return d.BetterValue(a.total, b.total)
}

// BetterValue reports whether a is strictly better than b.
func (d Direction) BetterValue(a, b float64) bool {
	if d == Similarity {
		return a > b
	}
	return a < b
}

// Worst returns the numerically worst value under d.
func (d Direction) Worst() float64 {
	if d == Similarity {
		return math.Inf(-1)
	}
	return math.Inf(1)
}
