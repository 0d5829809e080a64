package canopy

import (
	"errors"
	"fmt"

	"github.com/hupe1980/recordlink/score"
)

var (
	// ErrNilCheapFunc is returned when no cheap metric is supplied.
	ErrNilCheapFunc = errors.New("cheap function must not be nil")

	// ErrNilMethod is returned when no ER method is supplied.
	ErrNilMethod = errors.New("method must not be nil")

	// ErrThresholdOrder is returned when t1 is not strictly worse than t2.
	ErrThresholdOrder = errors.New("loose threshold must be strictly worse than tight threshold")
)

// ThresholdError carries the rejected threshold pair.
type ThresholdError struct {
	T1, T2    float64
	Direction score.Direction
}

func (e *ThresholdError) Error() string {
	return fmt.Sprintf("canopy thresholds t1=%g t2=%g under %s: %v", e.T1, e.T2, e.Direction, ErrThresholdOrder)
}

func (e *ThresholdError) Unwrap() error { return ErrThresholdOrder }
