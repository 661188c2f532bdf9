package books

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// bookIndexModels declares the two indexes the collection carries: title
// ascending for the point operations, and (author ascending, published_year
// descending) for author listings. Names are left to the server so repeated
// creation reports the same derived names.
func bookIndexModels() []mongo.IndexModel {
	return []mongo.IndexModel{
		{Keys: bson.D{{Key: "title", Value: 1}}},
		{Keys: bson.D{
			{Key: "author", Value: 1},
			{Key: "published_year", Value: -1},
		}},
	}
}

// EnsureIndexes creates the collection's indexes and returns their names,
// title_1 and author_1_published_year_-1. Creating an index that already
// exists is a no-op reporting the existing name, so calling this repeatedly
// is safe and yields identical results.
func (s *Store) EnsureIndexes(ctx context.Context) ([]string, error) {
	var names []string
	err := s.withCollection(ctx, func(coll *mongo.Collection) error {
		created, err := coll.Indexes().CreateMany(ctx, bookIndexModels())
		if err != nil {
			return err
		}
		names = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}
