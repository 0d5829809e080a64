package cluster

import (
	"errors"
	"fmt"

	"github.com/hupe1980/recordlink/model"
)

var (
	// ErrNilDistanceFunc is returned when no distance function is supplied.
	ErrNilDistanceFunc = errors.New("distance function must not be nil")

	// ErrInvalidLinkage is returned for a Linkage outside Min/Max/Mean.
	ErrInvalidLinkage = errors.New("invalid linkage")

	// ErrOverlappingClusters is returned when a record is a member of more than
	// one initial cluster.
	ErrOverlappingClusters = errors.New("initial clusters overlap")

	// ErrRecordOutOfRange is returned when a record has no feature.
	ErrRecordOutOfRange = errors.New("record out of feature range")
)

// RecordRangeError reports a record id without a corresponding feature.
type RecordRangeError struct {
	Record   model.RecordID
	Features int
}

func (e *RecordRangeError) Error() string {
	return fmt.Sprintf("record %d out of feature range [0, %d)", e.Record, e.Features)
}

func (e *RecordRangeError) Unwrap() error { return ErrRecordOutOfRange }
