package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Storage is the document-store surface a generation run needs.
type Storage interface {
	BulkInserter
	KeySource
	Close(ctx context.Context) error
}

// Opener establishes the storage connection. Connection attempts use bounded
// timeouts; a failure maps to a non-zero exit without any writes.
type Opener func(ctx context.Context) (Storage, error)

// RunOptions carries the per-invocation knobs for a generation run.
type RunOptions struct {
	// Count is the requested number of records. Must be positive.
	Count int

	// BatchSize caps each bulk insert. Zero means DefaultBatchSize.
	BatchSize int

	// Seed controls the random source; zero picks a time-based seed.
	Seed int64

	// PasswordHash is the pre-hashed placeholder credential embedded in
	// account entities. Ignored by specs that store no credential.
	PasswordHash string

	// Observe taps the writer's progress events. May be nil.
	Observe func(Progress)
}

// Run executes one generation run for spec: validate the requested count,
// connect, cache reference keys if the entity has dependencies, then write
// batches until done or the first failure. Every failure is logged with the
// stage it occurred in before being returned.
//
// A run is one-shot: no retries, no resumption. Re-invoking after a partial
// failure starts from scratch against whatever was already committed.
func Run(ctx context.Context, logger zerolog.Logger, open Opener, spec EntitySpec, opts RunOptions) (RunResult, error) {
	if opts.Count < 1 {
		err := fmt.Errorf("%w: --number must be a positive integer, got %d", ErrInvalidCount, opts.Count)
		logger.Error().Str("stage", "validation").Err(err).Msg("refusing to run")
		return RunResult{}, err
	}
	if opts.BatchSize < 1 {
		opts.BatchSize = DefaultBatchSize
	}

	store, err := open(ctx)
	if err != nil {
		logger.Error().Str("stage", "connection").Err(err).Msg("storage unavailable")
		return RunResult{}, fmt.Errorf("%w: %w", ErrConnection, err)
	}
	defer store.Close(ctx)

	pools := Pools{}
	if len(spec.Dependencies) > 0 {
		logger.Info().Str("entity", string(spec.Name)).Msg("caching reference keys")
		pools, err = LoadPools(ctx, store, spec.Dependencies)
		if err != nil {
			logger.Error().Str("stage", "reference loading").Err(err).Msg("prerequisites not met")
			return RunResult{}, err
		}
		for ent, keys := range pools {
			logger.Debug().Str("entity", string(ent)).Int("keys", len(keys)).Msg("cached reference pool")
		}
	}

	gctx := NewGenContext(opts.Seed, pools, opts.PasswordHash)
	gen := func() bson.M { return spec.Generate(gctx) }

	logger.Info().Str("entity", string(spec.Name)).Int("count", opts.Count).Msg("starting generation")

	observe := func(p Progress) {
		logger.Debug().Int("done", p.Done).Int("total", p.Total).Msgf("inserted batch progress for %s", spec.Plural)
		if opts.Observe != nil {
			opts.Observe(p)
		}
	}

	res, err := Write(ctx, store, spec.Collection, opts.Count, opts.BatchSize, gen, observe)
	if err != nil {
		logger.Error().Str("stage", "batch write").Err(err).
			Int("committed", res.Committed).Int("requested", res.Requested).
			Msgf("aborted; %d of %d %s committed before failure", res.Committed, res.Requested, spec.Plural)
		return res, err
	}

	logger.Info().Int("committed", res.Committed).Msgf("successfully added %d %s", res.Committed, spec.Plural)
	return res, nil
}
