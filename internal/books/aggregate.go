package books

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"bookdb/pkg/model"
)

// runPipeline executes one aggregation and decodes all result rows into out.
func (s *Store) runPipeline(ctx context.Context, pipeline mongo.Pipeline, out interface{}) error {
	return s.withCollection(ctx, func(coll *mongo.Collection) error {
		cursor, err := coll.Aggregate(ctx, pipeline)
		if err != nil {
			return err
		}
		defer cursor.Close(ctx)

		return cursor.All(ctx, out)
	})
}

// avgPriceByGenrePipeline groups by genre with mean price and record count,
// highest average first.
func avgPriceByGenrePipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$genre"},
			{Key: "averagePrice", Value: bson.D{{Key: "$avg", Value: "$price"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "averagePrice", Value: -1}}}},
	}
}

// topAuthorPipeline counts records per author and keeps the author with the
// most. Ties break on ascending author name so the winner does not depend
// on the store's grouping order.
func topAuthorPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$author"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: 1}},
	}
}

// countByDecadePipeline buckets published years into decades,
// floor(year/10)*10, and counts each bucket, earliest decade first.
func countByDecadePipeline() mongo.Pipeline {
	decade := bson.D{{Key: "$multiply", Value: bson.A{
		bson.D{{Key: "$floor", Value: bson.D{{Key: "$divide", Value: bson.A{"$published_year", 10}}}}},
		10,
	}}}

	return mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: decade},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
}

// AvgPriceByGenre returns average price and record count per genre, ordered
// by descending average price.
func (s *Store) AvgPriceByGenre(ctx context.Context) ([]model.GenreStats, error) {
	var stats []model.GenreStats
	if err := s.runPipeline(ctx, avgPriceByGenrePipeline(), &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// TopAuthor returns the author with the most records, ties broken by
// ascending author name. An empty collection yields the zero tally and no
// error.
func (s *Store) TopAuthor(ctx context.Context) (model.AuthorTally, error) {
	var tallies []model.AuthorTally
	if err := s.runPipeline(ctx, topAuthorPipeline(), &tallies); err != nil {
		return model.AuthorTally{}, err
	}
	if len(tallies) == 0 {
		return model.AuthorTally{}, nil
	}
	return tallies[0], nil
}

// CountByDecade returns record counts per publication decade, earliest
// first. A year maps to its decade's lower bound: 1999 to 1990, 2000 to
// 2000.
func (s *Store) CountByDecade(ctx context.Context) ([]model.DecadeCount, error) {
	var counts []model.DecadeCount
	if err := s.runPipeline(ctx, countByDecadePipeline(), &counts); err != nil {
		return nil, err
	}
	return counts, nil
}
