// Package db wraps the MongoDB driver behind the narrow surface the seeding
// pipeline needs: connect with bounded timeouts, bulk-insert batches, stream
// primary keys out of a collection, and provision indexes.
package db

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/writeconcern"

	"github.com/medapp/medseed/internal/config"
	"github.com/medapp/medseed/internal/seed"
)

// Store implements seed.Storage on a MongoDB database.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	log    zerolog.Logger
}

// Connect builds a client tuned for batch loading (bounded pool, short
// connection and server-selection timeouts, majority write concern without
// journaling) and pings the server so an unreachable or unauthenticated
// deployment fails here rather than on the first insert.
func Connect(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*Store, error) {
	journal := false
	wc := writeconcern.Majority()
	wc.Journal = &journal

	opts := options.Client().
		ApplyURI(cfg.MongoURI).
		SetAppName(cfg.AppName).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetConnectTimeout(cfg.ConnectTimeout()).
		SetServerSelectionTimeout(cfg.ServerSelectionTimeout()).
		SetWriteConcern(wc)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ServerSelectionTimeout())
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	logger.Info().Str("db", cfg.MongoDB).Msg("connected to mongodb")
	return &Store{
		client: client,
		db:     client.Database(cfg.MongoDB),
		log:    logger,
	}, nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// InsertMany submits one batch. The returned count is what the server
// reported as inserted, which can be smaller than len(docs) when a unique
// index rejects a subset; the count is valid even when err is non-nil.
func (s *Store) InsertMany(ctx context.Context, collection string, docs []any) (int, error) {
	res, err := s.db.Collection(collection).InsertMany(ctx, docs)
	inserted := 0
	if res != nil {
		inserted = len(res.InsertedIDs)
	}
	if err != nil {
		return inserted, fmt.Errorf("insert into %s: %w", collection, err)
	}
	return inserted, nil
}

// CollectKeys streams the _id of every document in the collection. The scan
// is projected to _id only so a large collection costs keys, not documents.
func (s *Store) CollectKeys(ctx context.Context, collection string) ([]bson.ObjectID, error) {
	opts := options.Find().SetProjection(bson.D{{Key: "_id", Value: 1}})
	cursor, err := s.db.Collection(collection).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", collection, err)
	}
	defer cursor.Close(ctx)

	var keys []bson.ObjectID
	for cursor.Next(ctx) {
		var doc struct {
			ID bson.ObjectID `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode %s key: %w", collection, err)
		}
		keys = append(keys, doc.ID)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor on %s: %w", collection, err)
	}
	return keys, nil
}

// EnsureIndexes applies the static index table, one CreateMany per
// collection. Mongo treats an already-existing identical index as a no-op,
// so re-running is safe.
func (s *Store) EnsureIndexes(ctx context.Context, defs []seed.IndexDef) error {
	grouped := make(map[string][]mongo.IndexModel)
	var order []string
	for _, def := range defs {
		keys := make(bson.D, 0, len(def.Keys))
		for _, k := range def.Keys {
			keys = append(keys, bson.E{Key: k, Value: 1})
		}
		model := mongo.IndexModel{Keys: keys}
		if def.Unique {
			model.Options = options.Index().SetUnique(true)
		}
		if _, ok := grouped[def.Collection]; !ok {
			order = append(order, def.Collection)
		}
		grouped[def.Collection] = append(grouped[def.Collection], model)
	}

	for _, coll := range order {
		s.log.Info().Str("collection", coll).Int("indexes", len(grouped[coll])).Msg("creating indexes")
		if _, err := s.db.Collection(coll).Indexes().CreateMany(ctx, grouped[coll]); err != nil {
			return fmt.Errorf("create indexes on %s: %w", coll, err)
		}
	}
	return nil
}
