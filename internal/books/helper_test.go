package books

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bookdb/internal/config"
	"bookdb/pkg/model"
)

const testMongoURI = "mongodb://localhost:27017"

var (
	globalTestClient     *mongo.Client
	globalTestClientErr  error
	globalTestClientOnce sync.Once
)

// getGlobalTestClient returns a shared verification client, skipping the
// test when no local server answers.
func getGlobalTestClient(t *testing.T) *mongo.Client {
	globalTestClientOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		client, err := mongo.Connect(ctx, options.Client().ApplyURI(testMongoURI))
		if err != nil {
			globalTestClientErr = err
			return
		}
		if err := client.Ping(ctx, nil); err != nil {
			globalTestClientErr = err
			return
		}
		globalTestClient = client
	})
	if globalTestClientErr != nil {
		t.Skipf("MongoDB not available, skipping integration tests: %v", globalTestClientErr)
	}
	return globalTestClient
}

// setupTestStore returns a Store bound to a unique throwaway database that
// is dropped when the test finishes.
func setupTestStore(t *testing.T) *Store {
	t.Parallel()

	client := getGlobalTestClient(t)

	dbName := fmt.Sprintf("bookdb_test_%s", strings.ReplaceAll(uuid.NewString(), "-", "")[:12])

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Database(dbName).Drop(ctx)
	})

	return NewStore(config.MongoConfig{
		URI:        testMongoURI,
		Database:   dbName,
		Collection: config.DefaultCollection,
	})
}

// testShelf is the standard seed set: three genres with distinct average
// prices, authors with one to three titles, publication years from the
// 1930s to the 2020s.
func testShelf() []model.Book {
	return []model.Book{
		{Title: "1984", Author: "George Orwell", Genre: "Dystopian", PublishedYear: 1949, Price: 9.99, InStock: true},
		{Title: "Animal Farm", Author: "George Orwell", Genre: "Dystopian", PublishedYear: 1945, Price: 7.99, InStock: true},
		{Title: "Brave New World", Author: "Aldous Huxley", Genre: "Dystopian", PublishedYear: 1932, Price: 8.99, InStock: false},
		{Title: "Fahrenheit 451", Author: "Ray Bradbury", Genre: "Dystopian", PublishedYear: 1953, Price: 10.50, InStock: true},
		{Title: "Dune", Author: "Frank Herbert", Genre: "Sci-Fi", PublishedYear: 1965, Price: 12.99, InStock: true},
		{Title: "Dune Messiah", Author: "Frank Herbert", Genre: "Sci-Fi", PublishedYear: 1969, Price: 11.50, InStock: false},
		{Title: "Foundation", Author: "Isaac Asimov", Genre: "Sci-Fi", PublishedYear: 1951, Price: 11.25, InStock: true},
		{Title: "The Caves of Steel", Author: "Isaac Asimov", Genre: "Sci-Fi", PublishedYear: 1954, Price: 9.75, InStock: true},
		{Title: "The End of Eternity", Author: "Isaac Asimov", Genre: "Sci-Fi", PublishedYear: 1955, Price: 10.25, InStock: false},
		{Title: "The Hobbit", Author: "J.R.R. Tolkien", Genre: "Fantasy", PublishedYear: 1937, Price: 14.99, InStock: true},
		{Title: "The Name of the Wind", Author: "Patrick Rothfuss", Genre: "Fantasy", PublishedYear: 2007, Price: 13.25, InStock: true},
		{Title: "Project Hail Mary", Author: "Andy Weir", Genre: "Sci-Fi", PublishedYear: 2021, Price: 18.99, InStock: true},
	}
}

// seededStore is setupTestStore plus a Reseed of the standard shelf.
func seededStore(t *testing.T) *Store {
	store := setupTestStore(t)

	n, err := store.Reseed(context.Background(), testShelf())
	require.NoError(t, err)
	require.EqualValues(t, len(testShelf()), n)

	return store
}

func titles(books []model.Book) []string {
	return lo.Map(books, func(b model.Book, _ int) string { return b.Title })
}
