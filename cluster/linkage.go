package cluster

import (
	"fmt"
	"strings"
)

// Linkage selects how the score between two composite clusters is derived
// from the scores of their base pairs.
type Linkage uint8

const (
	// Min uses the numerically smallest base-pair score.
	Min Linkage = iota
	// Max uses the numerically largest base-pair score.
	Max
	// Mean averages every base-pair score.
	Mean
)

func (l Linkage) String() string {
	switch l {
	case Min:
		return "min"
	case Max:
		return "max"
	case Mean:
		return "mean"
	default:
		return fmt.Sprintf("Unknown(%d)", l)
	}
}

// ParseLinkage parses "min", "max" or "mean" (case-insensitive). The aliases
// "single", "complete" and "average" are accepted as well.
func ParseLinkage(s string) (Linkage, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "min", "single":
		return Min, nil
	case "max", "complete":
		return Max, nil
	case "mean", "average":
		return Mean, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidLinkage, s)
	}
}

// Validate returns ErrInvalidLinkage for unrecognized values.
func (l Linkage) Validate() error {
	if l > Mean {
		return fmt.Errorf("%w: %d", ErrInvalidLinkage, l)
	}
	return nil
}
