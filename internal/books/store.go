// Package books is the query and aggregation facade over the book
// collection. It exposes a fixed menu of reads, point writes, aggregations,
// index management and plan inspection against one collection in one
// database.
//
// Every operation dials its own client, issues a single request and
// disconnects before returning; a Store holds configuration only, never a
// live connection, so there is no Close and operations are safe to call
// concurrently. Store-side and driver errors reach the caller exactly as
// the driver returned them, and a no-match outcome on reads or point writes
// is an empty result, not an error.
package books

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bookdb/internal/config"
)

// Store runs the operation menu against the configured collection.
type Store struct {
	cfg config.MongoConfig
}

// NewStore binds a Store to the given coordinates. The config is taken as
// given; an unusable URI or name surfaces as an error on first use.
func NewStore(cfg config.MongoConfig) *Store {
	return &Store{cfg: cfg}
}

// withCollection dials the store, hands the collection to fn and
// disconnects again. The client uses driver defaults; deadlines and
// cancellation come from the caller's ctx alone.
func (s *Store) withCollection(ctx context.Context, fn func(coll *mongo.Collection) error) error {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.cfg.URI))
	if err != nil {
		return err
	}
	defer s.disconnect(ctx, client)

	return fn(client.Database(s.cfg.Database).Collection(s.cfg.Collection))
}

// withDatabase is withCollection for commands addressed to the database
// handle, such as explain.
func (s *Store) withDatabase(ctx context.Context, fn func(db *mongo.Database) error) error {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.cfg.URI))
	if err != nil {
		return err
	}
	defer s.disconnect(ctx, client)

	return fn(client.Database(s.cfg.Database))
}

func (s *Store) disconnect(ctx context.Context, client *mongo.Client) {
	if err := client.Disconnect(ctx); err != nil {
		slog.Warn("mongo disconnect failed", "error", err)
	}
}

// Ping dials the store and round-trips a ping. Commands use it to fail
// fast before running a batch of operations.
func (s *Store) Ping(ctx context.Context) error {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(s.cfg.URI))
	if err != nil {
		return err
	}
	defer s.disconnect(ctx, client)

	return client.Ping(ctx, nil)
}
