package recordlink

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBlocking is returned for an unknown blocking method.
	ErrInvalidBlocking = errors.New("invalid blocking method")

	// ErrInvalidTightThreshold is returned for an unknown tight threshold policy.
	ErrInvalidTightThreshold = errors.New("invalid tight threshold")

	// ErrInvalidCriteria is returned when Lego would run without criteria.
	ErrInvalidCriteria = errors.New("lego needs at least one criterion")

	// ErrNoLabels is returned by Evaluate when no record carries a label.
	ErrNoLabels = errors.New("records carry no gold labels")
)

// StageError reports which stage of a resolution failed.
//
// The underlying error can be accessed via errors.Unwrap.
type StageError struct {
	Stage string
	cause error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.cause)
}

func (e *StageError) Unwrap() error { return e.cause }

func stageError(stage string, err error) error {
	if err == nil {
		return nil
	}
	return &StageError{Stage: stage, cause: err}
}
