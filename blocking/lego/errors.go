package lego

import "errors"

var (
	// ErrNilMethod is returned when no ER method is supplied.
	ErrNilMethod = errors.New("method must not be nil")

	// ErrNilCriterion is returned when a criterion is nil.
	ErrNilCriterion = errors.New("criterion must not be nil")

	// ErrIterationLimit is returned when the queue does not drain within the
	// configured number of iterations.
	ErrIterationLimit = errors.New("iteration limit reached")
)
