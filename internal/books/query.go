package books

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bookdb/pkg/model"
)

// findBooks runs one filtered read and decodes every match.
func (s *Store) findBooks(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]model.Book, error) {
	var books []model.Book
	err := s.withCollection(ctx, func(coll *mongo.Collection) error {
		cursor, err := coll.Find(ctx, filter, opts)
		if err != nil {
			return err
		}
		defer cursor.Close(ctx)

		return cursor.All(ctx, &books)
	})
	if err != nil {
		return nil, err
	}
	return books, nil
}

func findOptions(proj model.Projection) *options.FindOptions {
	opts := options.Find()
	if p := buildProjection(proj); p != nil {
		opts.SetProjection(p)
	}
	return opts
}

// FindByGenre returns the books with exactly the given genre. No match
// yields an empty slice.
func (s *Store) FindByGenre(ctx context.Context, genre string, proj model.Projection) ([]model.Book, error) {
	return s.findBooks(ctx, bson.M{"genre": genre}, findOptions(proj))
}

// FindByAuthor returns the books with exactly the given author.
func (s *Store) FindByAuthor(ctx context.Context, author string, proj model.Projection) ([]model.Book, error) {
	return s.findBooks(ctx, bson.M{"author": author}, findOptions(proj))
}

// FindPublishedAfter returns the books published strictly after the given
// year.
func (s *Store) FindPublishedAfter(ctx context.Context, year int, proj model.Projection) ([]model.Book, error) {
	filter := bson.M{"published_year": bson.M{"$gt": year}}
	return s.findBooks(ctx, filter, findOptions(proj))
}

// FindInStockPublishedAfter returns the in-stock books published strictly
// after the given year.
func (s *Store) FindInStockPublishedAfter(ctx context.Context, year int, proj model.Projection) ([]model.Book, error) {
	filter := bson.M{
		"in_stock":       true,
		"published_year": bson.M{"$gt": year},
	}
	return s.findBooks(ctx, filter, findOptions(proj))
}

// SortedByPrice returns the whole collection ordered by price. Ties keep
// the store's natural order, which is not guaranteed stable across calls.
func (s *Store) SortedByPrice(ctx context.Context, dir model.SortDirection, proj model.Projection) ([]model.Book, error) {
	opts := findOptions(proj).SetSort(buildPriceSort(dir))
	return s.findBooks(ctx, bson.M{}, opts)
}

// Paginate returns one page of the collection: skip (page-1)*size, limit
// size. A page past the end of the data yields an empty slice. Page numbers
// below 1 produce a negative skip, which is handed to the store unchanged;
// the store's rejection, if any, is the caller's to handle.
func (s *Store) Paginate(ctx context.Context, page, size int) ([]model.Book, error) {
	opts := options.Find().
		SetSkip(int64(page-1) * int64(size)).
		SetLimit(int64(size))
	return s.findBooks(ctx, bson.M{}, opts)
}
