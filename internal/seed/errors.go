package seed

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure modes a run can hit before any batch is
// written. Batch-level failures are reported as *BatchError instead so the
// failing batch index survives wrapping.
var (
	// ErrInvalidCount means the requested record count was not a positive
	// integer. Detected before any I/O.
	ErrInvalidCount = errors.New("invalid record count")

	// ErrConnection means the storage client could not be established or the
	// deployment did not answer a ping within the selection timeout.
	ErrConnection = errors.New("storage connection failed")

	// ErrMissingPrerequisite means a required reference collection is empty.
	// Generating dependents would embed dangling keys, so the run stops
	// before any write.
	ErrMissingPrerequisite = errors.New("missing prerequisite entities")

	// ErrEmptyPool is the panic value marker for Pools.Pick on an empty
	// pool. Unreachable when LoadPools ran first.
	ErrEmptyPool = errors.New("reference pool is empty")
)

// EmptyPoolError is raised (as a panic) when a generator draws from an empty
// reference pool, which LoadPools is supposed to make impossible.
type EmptyPoolError struct {
	Entity Entity
}

func (e *EmptyPoolError) Error() string {
	return fmt.Sprintf("reference pool for %s is empty", e.Entity)
}

func (e *EmptyPoolError) Unwrap() error { return ErrEmptyPool }

// BatchError wraps the storage error for the bulk insert that aborted a run.
// Batch is one-based for operator-facing messages.
type BatchError struct {
	Batch int
	Total int
	Err   error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("batch %d of %d: %v", e.Batch, e.Total, e.Err)
}

func (e *BatchError) Unwrap() error { return e.Err }
