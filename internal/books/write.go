package books

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bookdb/pkg/model"
)

// UpdatePriceByTitle sets the price of at most one book with exactly the
// given title; with duplicate titles the store picks the first match. A
// missing title reports zero counts and no error.
func (s *Store) UpdatePriceByTitle(ctx context.Context, title string, price float64) (model.UpdateResult, error) {
	var result model.UpdateResult
	err := s.withCollection(ctx, func(coll *mongo.Collection) error {
		res, err := coll.UpdateOne(ctx,
			bson.M{"title": title},
			bson.M{"$set": bson.M{"price": price}},
		)
		if err != nil {
			return err
		}
		result = model.UpdateResult{
			Matched:  res.MatchedCount,
			Modified: res.ModifiedCount,
		}
		return nil
	})
	if err != nil {
		return model.UpdateResult{}, err
	}
	return result, nil
}

// DeleteByTitle removes at most one book with exactly the given title. A
// missing title reports zero deleted and no error.
func (s *Store) DeleteByTitle(ctx context.Context, title string) (model.DeleteResult, error) {
	var result model.DeleteResult
	err := s.withCollection(ctx, func(coll *mongo.Collection) error {
		res, err := coll.DeleteOne(ctx, bson.M{"title": title})
		if err != nil {
			return err
		}
		result = model.DeleteResult{Deleted: res.DeletedCount}
		return nil
	})
	if err != nil {
		return model.DeleteResult{}, err
	}
	return result, nil
}
