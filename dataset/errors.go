package dataset

import (
	"errors"
	"fmt"
)

// ErrDuplicateID is returned when two records share an id.
var ErrDuplicateID = errors.New("dataset: duplicate record id")

// LineError reports a malformed input line.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("dataset: line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }
