// Package seed implements the generation pipeline that populates the medapp
// document store with synthetic records: a declarative entity registry, a
// run-scoped reference-key cache, and a batching writer with fail-fast
// semantics. Entity-specific field synthesis lives in internal/synth; this
// package only knows how to drive a generator function against storage.
package seed

import (
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Entity identifies one of the seeded entity types.
type Entity string

const (
	EntityPatient      Entity = "patient"
	EntityDoctor       Entity = "doctor"
	EntityRadiologist  Entity = "radiologist"
	EntityPrescription Entity = "prescription"
	EntityReport       Entity = "report"
)

// Dependency names a prerequisite entity type and the collection its keys
// are cached from.
type Dependency struct {
	Entity     Entity
	Collection string
}

// EntitySpec declares everything the pipeline needs to know about one entity
// type. Differences between entity types live here as data; the generation
// loop itself is shared.
type EntitySpec struct {
	Name             Entity
	Plural           string
	Collection       string
	DefaultCount     int
	StoresCredential bool
	Dependencies     []Dependency

	// Generate builds one fully-populated document. It must be independent
	// of any previous call and must not fail given non-empty pools.
	Generate func(*GenContext) bson.M
}

// GenContext carries the per-run inputs a generator draws from: a seeded
// random source, the faker bound to it, cached reference pools, and the
// pre-hashed placeholder credential for account entities.
type GenContext struct {
	Rng          *rand.Rand
	Fake         *gofakeit.Faker
	Pools        Pools
	PasswordHash string
}

// NewGenContext returns a context seeded for reproducibility. A zero seed
// picks a time-based one.
func NewGenContext(seed int64, pools Pools, passwordHash string) *GenContext {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &GenContext{
		Rng:          rand.New(rand.NewSource(seed)),
		Fake:         gofakeit.New(uint64(seed)),
		Pools:        pools,
		PasswordHash: passwordHash,
	}
}

// Pools maps each prerequisite entity type to the keys cached from its
// collection at the start of the run.
type Pools map[Entity][]bson.ObjectID

// Pick returns one key drawn uniformly at random from the pool for e.
// Calling it on an empty pool is an invariant violation — LoadPools
// guarantees every required pool is non-empty before generation starts —
// so it panics with ErrEmptyPool rather than returning a bogus key.
func (p Pools) Pick(rng *rand.Rand, e Entity) bson.ObjectID {
	keys := p[e]
	if len(keys) == 0 {
		panic(&EmptyPoolError{Entity: e})
	}
	return keys[rng.Intn(len(keys))]
}

// Progress is emitted after each successfully committed batch.
type Progress struct {
	Done  int
	Total int
}

// BatchFailure records a failed bulk insert: the zero-based batch index and
// the storage error.
type BatchFailure struct {
	Batch int
	Err   error
}

// RunResult summarizes a generation run. Committed counts only documents the
// storage layer reported as inserted, which may be fewer than requested when
// a batch fails or is partially applied.
type RunResult struct {
	Requested int
	Committed int
	Failures  []BatchFailure
}

// Failed reports whether any batch failed.
func (r RunResult) Failed() bool {
	return len(r.Failures) > 0
}
