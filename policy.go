package recordlink

import (
	"fmt"
	"math"
	"strings"
)

// BlockingMethod selects how the record universe is split before clustering.
type BlockingMethod uint8

const (
	// None clusters the whole universe in one run.
	None BlockingMethod = iota
	// Canopies clusters overlapping canopies built from a cheap metric.
	Canopies
	// Lego iterates over MinHash blocks, feeding merges back.
	Lego
)

func (m BlockingMethod) String() string {
	switch m {
	case None:
		return "none"
	case Canopies:
		return "canopies"
	case Lego:
		return "lego"
	default:
		return fmt.Sprintf("BlockingMethod(%d)", uint8(m))
	}
}

// ParseBlockingMethod parses "none", "canopies" or "lego" (case-insensitive).
func ParseBlockingMethod(s string) (BlockingMethod, error) {
	switch strings.ToLower(s) {
	case "none", "":
		return None, nil
	case "canopies", "canopy":
		return Canopies, nil
	case "lego":
		return Lego, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidBlocking, s)
	}
}

// TightThreshold derives the tight canopy threshold from the universe size.
type TightThreshold uint8

const (
	// Inverse uses 1/n.
	Inverse TightThreshold = iota
	// InverseSqrt uses 1/sqrt(n).
	InverseSqrt
	// InverseLog uses 1/ln(n).
	InverseLog
)

func (t TightThreshold) String() string {
	switch t {
	case Inverse:
		return "inverse"
	case InverseSqrt:
		return "inversesqrt"
	case InverseLog:
		return "inverselog"
	default:
		return fmt.Sprintf("TightThreshold(%d)", uint8(t))
	}
}

// ParseTightThreshold parses a policy name as returned by String.
func ParseTightThreshold(s string) (TightThreshold, error) {
	switch strings.ToLower(s) {
	case "inverse", "":
		return Inverse, nil
	case "inversesqrt":
		return InverseSqrt, nil
	case "inverselog":
		return InverseLog, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidTightThreshold, s)
	}
}

// Value returns the tight threshold for n records. n must be at least 2.
func (t TightThreshold) Value(n int) float64 {
	x := float64(n)
	switch t {
	case InverseSqrt:
		return 1 / math.Sqrt(x)
	case InverseLog:
		return 1 / math.Log(x)
	default:
		return 1 / x
	}
}
