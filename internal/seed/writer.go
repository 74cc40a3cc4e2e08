package seed

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// DefaultBatchSize is the bulk-insert batch capacity used when configuration
// does not override it.
const DefaultBatchSize = 100

// BulkInserter submits one batch of documents to a collection and reports
// how many the storage layer actually inserted. The reported count may be
// smaller than the batch when a constraint rejects a subset, with or without
// an accompanying error.
type BulkInserter interface {
	InsertMany(ctx context.Context, collection string, docs []any) (int, error)
}

// Write materializes total documents from gen and persists them in batches
// of at most capacity. Batches are submitted strictly in order; the first
// failed insert aborts the run, keeping whatever earlier batches committed.
// A partial, silently-incomplete seed dataset is worse than an early stop
// with a clear report, so there are no retries.
//
// observe, when non-nil, is called after each committed batch with the
// cumulative storage-reported count. It is a side channel only and must not
// influence control flow.
func Write(ctx context.Context, sink BulkInserter, collection string, total, capacity int, gen func() bson.M, observe func(Progress)) (RunResult, error) {
	res := RunResult{Requested: total}
	if total < 0 {
		return res, fmt.Errorf("%w: %d", ErrInvalidCount, total)
	}
	if total == 0 {
		return res, nil
	}
	if capacity < 1 {
		return res, fmt.Errorf("%w: batch capacity %d", ErrInvalidCount, capacity)
	}

	numBatches := (total + capacity - 1) / capacity
	for i := 0; i < numBatches; i++ {
		size := capacity
		if rem := total - i*capacity; rem < size {
			size = rem
		}

		docs := make([]any, size)
		for j := range docs {
			docs[j] = gen()
		}

		inserted, err := sink.InsertMany(ctx, collection, docs)
		res.Committed += inserted
		if err != nil {
			res.Failures = append(res.Failures, BatchFailure{Batch: i, Err: err})
			return res, &BatchError{Batch: i + 1, Total: numBatches, Err: err}
		}

		if observe != nil {
			observe(Progress{Done: res.Committed, Total: total})
		}
	}
	return res, nil
}
