// Package main reseeds the book collection with the sample shelf:
// drop the collection, insert the fixtures, verify the count.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"bookdb/internal/books"
	"bookdb/internal/config"
	"bookdb/internal/logging"
	"bookdb/pkg/model"
)

const seedTimeout = 30 * time.Second

func main() {
	// .env is optional
	_ = godotenv.Load()
	cfg := config.LoadConfig()

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Shutdown()

	if err := run(cfg); err != nil {
		slog.Error("Seeding failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	batch := uuid.NewString()
	slog.Info("Seeding book collection",
		"batch", batch,
		"database", cfg.Mongo.Database,
		"collection", cfg.Mongo.Collection,
	)

	ctx, cancel := context.WithTimeout(context.Background(), seedTimeout)
	defer cancel()

	store := books.NewStore(cfg.Mongo)
	if err := store.Ping(ctx); err != nil {
		return fmt.Errorf("store unreachable: %w", err)
	}

	inserted, err := store.Reseed(ctx, sampleBooks())
	if err != nil {
		return fmt.Errorf("reseed failed: %w", err)
	}

	total, err := store.Count(ctx)
	if err != nil {
		return fmt.Errorf("count verification failed: %w", err)
	}
	if total != inserted {
		return fmt.Errorf("count mismatch after seeding: inserted %d, found %d", inserted, total)
	}

	slog.Info("Seeding complete", "batch", batch, "inserted", inserted, "total", total)
	return nil
}

// sampleBooks is the demo shelf: three genres, publication years spread from
// the 1930s to the 2020s so every query in the menu has something to return.
func sampleBooks() []model.Book {
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
