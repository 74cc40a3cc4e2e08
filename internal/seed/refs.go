package seed

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// KeySource retrieves the primary keys of every document in a collection.
// Implementations should project and stream rather than load full documents.
type KeySource interface {
	CollectKeys(ctx context.Context, collection string) ([]bson.ObjectID, error)
}

// LoadPools scans each dependency's collection once and caches its keys for
// the rest of the run. An empty collection fails the whole load with
// ErrMissingPrerequisite: a referencing record without a valid target would
// break the application's own referential integrity, so it is a hard
// precondition, not a warning.
//
// The cache is never refreshed mid-run. Prerequisites must be fully
// generated before their dependents.
func LoadPools(ctx context.Context, src KeySource, deps []Dependency) (Pools, error) {
	pools := make(Pools, len(deps))
	for _, dep := range deps {
		keys, err := src.CollectKeys(ctx, dep.Collection)
		if err != nil {
			return nil, fmt.Errorf("caching %s keys: %w", dep.Entity, err)
		}
		if len(keys) == 0 {
			return nil, fmt.Errorf("%w: no %ss found in %q, generate them first",
				ErrMissingPrerequisite, dep.Entity, dep.Collection)
		}
		pools[dep.Entity] = keys
	}
	return pools, nil
}
