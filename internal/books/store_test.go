package books

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookdb/internal/config"
)

func TestPing(t *testing.T) {
	store := setupTestStore(t)
	assert.NoError(t, store.Ping(context.Background()))
}

func TestPing_BadEndpoint(t *testing.T) {
	t.Parallel()

	// Nothing listens on port 1; server selection fails at the deadline
	store := NewStore(config.MongoConfig{
		URI:        "mongodb://127.0.0.1:1",
		Database:   "bookstore",
		Collection: "books",
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	assert.Error(t, store.Ping(ctx))
}

func TestReseed_ReplacesContents(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	n, err := store.Reseed(ctx, testShelf())
	require.NoError(t, err)
	assert.EqualValues(t, len(testShelf()), n)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, len(testShelf()), count)

	// Reseeding with a smaller set drops the previous contents first
	n, err = store.Reseed(ctx, testShelf()[:3])
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	count, err = store.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}

func TestReseed_EmptySet(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	_, err := store.Reseed(ctx, testShelf())
	require.NoError(t, err)

	n, err := store.Reseed(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, n)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}
