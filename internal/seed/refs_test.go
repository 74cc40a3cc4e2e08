package seed

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type fakeKeys struct {
	byColl map[string][]bson.ObjectID
	err    error
	calls  []string
}

func (f *fakeKeys) CollectKeys(_ context.Context, coll string) ([]bson.ObjectID, error) {
	f.calls = append(f.calls, coll)
	if f.err != nil {
		return nil, f.err
	}
	return f.byColl[coll], nil
}

func oids(n int) []bson.ObjectID {
	out := make([]bson.ObjectID, n)
	for i := range out {
		out[i] = bson.NewObjectID()
	}
	return out
}

func TestLoadPoolsCachesEveryDependency(t *testing.T) {
	src := &fakeKeys{byColl: map[string][]bson.ObjectID{
		"doctors":  oids(3),
		"patients": oids(7),
	}}
	deps := []Dependency{
		{Entity: EntityDoctor, Collection: "doctors"},
		{Entity: EntityPatient, Collection: "patients"},
	}

	pools, err := LoadPools(context.Background(), src, deps)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(pools[EntityDoctor]); got != 3 {
		t.Fatalf("doctor pool has %d keys, want 3", got)
	}
	if got := len(pools[EntityPatient]); got != 7 {
		t.Fatalf("patient pool has %d keys, want 7", got)
	}
	if len(src.calls) != 2 {
		t.Fatalf("collections scanned %d times, want one scan each", len(src.calls))
	}
}

func TestLoadPoolsFailsOnEmptyCollection(t *testing.T) {
	src := &fakeKeys{byColl: map[string][]bson.ObjectID{
		"patients": oids(5),
		// radiologists intentionally empty
	}}
	deps := []Dependency{
		{Entity: EntityPatient, Collection: "patients"},
		{Entity: EntityRadiologist, Collection: "radiologists"},
	}

	pools, err := LoadPools(context.Background(), src, deps)
	if !errors.Is(err, ErrMissingPrerequisite) {
		t.Fatalf("got %v, want ErrMissingPrerequisite", err)
	}
	if pools != nil {
		t.Fatalf("got partial pools %v on failure, want nil", pools)
	}
	if !strings.Contains(err.Error(), "radiologists") {
		t.Fatalf("error %q does not name the empty collection", err)
	}
}

func TestLoadPoolsPropagatesScanErrors(t *testing.T) {
	scanErr := errors.New("cursor timeout")
	src := &fakeKeys{err: scanErr}

	_, err := LoadPools(context.Background(), src, []Dependency{{Entity: EntityDoctor, Collection: "doctors"}})
	if !errors.Is(err, scanErr) {
		t.Fatalf("got %v, want wrapped scan error", err)
	}
	if errors.Is(err, ErrMissingPrerequisite) {
		t.Fatal("a scan failure must not be reported as a missing prerequisite")
	}
}

func TestPickDrawsFromPool(t *testing.T) {
	keys := oids(4)
	pools := Pools{EntityPatient: keys}
	rng := rand.New(rand.NewSource(1))

	seen := map[bson.ObjectID]bool{}
	for i := 0; i < 200; i++ {
		id := pools.Pick(rng, EntityPatient)
		found := false
		for _, k := range keys {
			if k == id {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("picked key %s is not in the pool", id.Hex())
		}
		seen[id] = true
	}
	if len(seen) != len(keys) {
		t.Fatalf("200 draws hit %d of %d keys", len(seen), len(keys))
	}
}

func TestPickPanicsOnEmptyPool(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrEmptyPool) {
			t.Fatalf("panicked with %v, want an ErrEmptyPool error", r)
		}
	}()
	Pools{}.Pick(rng, EntityDoctor)
}
