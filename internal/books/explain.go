package books

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// explainTitleLookup builds the explain command for a title-equality find
// with execution statistics.
func explainTitleLookup(collection, title string) bson.D {
	return bson.D{
		{Key: "explain", Value: bson.D{
			{Key: "find", Value: collection},
			{Key: "filter", Value: bson.D{{Key: "title", Value: title}}},
		}},
		{Key: "verbosity", Value: "executionStats"},
	}
}

// ExplainTitleLookup returns the store's execution-statistics report for a
// title-equality lookup. The report is passed through opaque, so callers
// can compare plans before and after EnsureIndexes; nothing in it is
// interpreted here.
func (s *Store) ExplainTitleLookup(ctx context.Context, title string) (bson.M, error) {
	var report bson.M
	err := s.withDatabase(ctx, func(db *mongo.Database) error {
		cmd := explainTitleLookup(s.cfg.Collection, title)
		return db.RunCommand(ctx, cmd).Decode(&report)
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}
