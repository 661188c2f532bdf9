package books

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookdb/pkg/model"
)

func TestUpdatePriceByTitle(t *testing.T) {
	store := seededStore(t)
	ctx := context.Background()

	res, err := store.UpdatePriceByTitle(ctx, "Dune", 21.5)
	require.NoError(t, err)
	assert.Equal(t, model.UpdateResult{Matched: 1, Modified: 1}, res)

	// Subsequent reads observe the new price
	books, err := store.FindByAuthor(ctx, "Frank Herbert", nil)
	require.NoError(t, err)
	for _, b := range books {
		if b.Title == "Dune" {
			assert.Equal(t, 21.5, b.Price)
		}
	}
}

func TestUpdatePriceByTitle_SamePrice(t *testing.T) {
	store := seededStore(t)

	// Setting the current price matches without modifying
	res, err := store.UpdatePriceByTitle(context.Background(), "Dune", 12.99)
	require.NoError(t, err)
	assert.Equal(t, model.UpdateResult{Matched: 1, Modified: 0}, res)
}

func TestUpdatePriceByTitle_MissingTitle(t *testing.T) {
	store := seededStore(t)

	res, err := store.UpdatePriceByTitle(context.Background(), "No Such Book", 1.0)
	require.NoError(t, err)
	assert.Equal(t, model.UpdateResult{}, res)
}

func TestDeleteByTitle(t *testing.T) {
	store := seededStore(t)
	ctx := context.Background()

	res, err := store.DeleteByTitle(ctx, "The Hobbit")
	require.NoError(t, err)
	assert.Equal(t, model.DeleteResult{Deleted: 1}, res)

	// Gone from subsequent reads
	books, err := store.FindByGenre(ctx, "Fantasy", nil)
	require.NoError(t, err)
	assert.NotContains(t, titles(books), "The Hobbit")

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, len(testShelf())-1, count)
}

func TestDeleteByTitle_MissingTitle(t *testing.T) {
	store := seededStore(t)

	res, err := store.DeleteByTitle(context.Background(), "No Such Book")
	require.NoError(t, err)
	assert.Equal(t, model.DeleteResult{}, res)
}
