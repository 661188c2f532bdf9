package books

import (
	"context"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bookdb/pkg/model"
)

// Reseed replaces the collection contents: drop, then bulk insert the given
// books. It returns the number of inserted records. Indexes do not survive
// the drop; run EnsureIndexes afterwards if they are wanted.
func (s *Store) Reseed(ctx context.Context, books []model.Book) (int64, error) {
	var inserted int64
	err := s.withCollection(ctx, func(coll *mongo.Collection) error {
		if err := coll.Drop(ctx); err != nil {
			return err
		}
		if len(books) == 0 {
			return nil
		}

		res, err := coll.InsertMany(ctx, lo.ToAnySlice(books))
		if err != nil {
			return err
		}
		inserted = int64(len(res.InsertedIDs))
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}

// Count returns the total number of records in the collection.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.withCollection(ctx, func(coll *mongo.Collection) error {
		n, err := coll.CountDocuments(ctx, bson.M{})
		if err != nil {
			return err
		}
		count = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
