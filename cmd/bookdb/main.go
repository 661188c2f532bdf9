// Package main runs the demonstration menu against the book collection:
// filtered and sorted reads, pagination and the aggregations, plus opt-in
// destructive and explain sections behind flags.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"

	"bookdb/internal/books"
	"bookdb/internal/config"
	"bookdb/internal/logging"
	"bookdb/pkg/model"
)

func main() {
	// 0. Parse Command Line Flags
	runDestructive := flag.Bool("destructive", false, "Run the price update and delete demonstrations")
	runExplain := flag.Bool("explain", false, "Create the indexes and show the title lookup query plan")
	flag.Parse()

	// 1. Load Configuration (.env is optional)
	_ = godotenv.Load()
	cfg := config.LoadConfig()

	// 2. Initialize Logging
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer logging.Shutdown()

	// 3. Run the Menu
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, *runDestructive, *runExplain); err != nil {
		slog.Error("Run failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, destructive, explain bool) error {
	store := books.NewStore(cfg.Mongo)

	slog.Info("Connecting to store",
		"database", cfg.Mongo.Database,
		"collection", cfg.Mongo.Collection,
	)
	if err := store.Ping(ctx); err != nil {
		return fmt.Errorf("store unreachable: %w", err)
	}

	count, err := store.Count(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		slog.Warn("Collection is empty; run bookdb-seed to load the sample shelf")
	}

	if err := runReads(ctx, store); err != nil {
		return err
	}
	if err := runAggregations(ctx, store); err != nil {
		return err
	}

	if destructive {
		if err := runDestructiveOps(ctx, store); err != nil {
			return err
		}
	}
	if explain {
		if err := runExplainOps(ctx, store); err != nil {
			return err
		}
	}

	return nil
}

func runReads(ctx context.Context, store *books.Store) error {
	sciFi, err := store.FindByGenre(ctx, "Sci-Fi", nil)
	if err != nil {
		return err
	}
	printBooks("Books in genre Sci-Fi", sciFi)

	titleAndYear := model.Projection{"title": true, "published_year": true}

	orwell, err := store.FindByAuthor(ctx, "George Orwell", titleAndYear)
	if err != nil {
		return err
	}
	printTitlesWithYear("Books by George Orwell", orwell)

	modern, err := store.FindPublishedAfter(ctx, 1950, titleAndYear)
	if err != nil {
		return err
	}
	printTitlesWithYear("Published after 1950", modern)

	available, err := store.FindInStockPublishedAfter(ctx, 1950, titleAndYear)
	if err != nil {
		return err
	}
	printTitlesWithYear("In stock and published after 1950", available)

	byPrice, err := store.SortedByPrice(ctx, model.SortDescending, model.Projection{"title": true, "price": true})
	if err != nil {
		return err
	}
	fmt.Printf("\nPriced high to low (%d)\n", len(byPrice))
	for _, b := range byPrice {
		fmt.Printf("  $%6.2f  %s\n", b.Price, b.Title)
	}

	const pageSize = 5
	for page := 1; ; page++ {
		batch, err := store.Paginate(ctx, page, pageSize)
		if err != nil {
			return err
		}
		if len(batch) == 0 {
			break
		}
		fmt.Printf("\nPage %d (%d of up to %d)\n", page, len(batch), pageSize)
		for _, b := range batch {
			fmt.Printf("  - %s\n", b.Title)
		}
	}

	return nil
}

func runAggregations(ctx context.Context, store *books.Store) error {
	stats, err := store.AvgPriceByGenre(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("\nAverage price by genre\n")
	for _, s := range stats {
		fmt.Printf("  %-12s avg $%.2f over %d books\n", s.Genre, s.AveragePrice, s.Count)
	}

	top, err := store.TopAuthor(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("\nMost prolific author: %s (%d books)\n", top.Author, top.Count)

	decades, err := store.CountByDecade(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("\nBooks per decade\n")
	for _, d := range decades {
		fmt.Printf("  %ds: %d\n", d.Decade, d.Count)
	}

	return nil
}

func runDestructiveOps(ctx context.Context, store *books.Store) error {
	updated, err := store.UpdatePriceByTitle(ctx, "Dune", 21.50)
	if err != nil {
		return err
	}
	fmt.Printf("\nUpdated price of Dune: matched=%d modified=%d\n", updated.Matched, updated.Modified)

	deleted, err := store.DeleteByTitle(ctx, "Brave New World")
	if err != nil {
		return err
	}
	fmt.Printf("Deleted Brave New World: deleted=%d\n", deleted.Deleted)

	return nil
}

func runExplainOps(ctx context.Context, store *books.Store) error {
	before, err := store.ExplainTitleLookup(ctx, "Dune")
	if err != nil {
		return err
	}
	fmt.Printf("\nTitle lookup plan before indexes:\n%s\n", planJSON(before))

	names, err := store.EnsureIndexes(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("\nEnsured indexes: %v\n", names)

	after, err := store.ExplainTitleLookup(ctx, "Dune")
	if err != nil {
		return err
	}
	fmt.Printf("\nTitle lookup plan after indexes:\n%s\n", planJSON(after))

	return nil
}

// planJSON renders an explain report as extended JSON. The report stays
// uninterpreted; it is for the reader to compare.
func planJSON(report bson.M) string {
	raw, err := bson.MarshalExtJSON(report, false, false)
	if err != nil {
		return fmt.Sprintf("%v", report)
	}
	return string(raw)
}

func printBooks(header string, list []model.Book) {
	fmt.Printf("\n%s (%d)\n", header, len(list))
	for _, b := range list {
		fmt.Printf("  - %-24s %-18s %-10s %d  $%6.2f  in_stock=%t\n",
			b.Title, b.Author, b.Genre, b.PublishedYear, b.Price, b.InStock)
	}
}

func printTitlesWithYear(header string, list []model.Book) {
	fmt.Printf("\n%s (%d)\n", header, len(list))
	for _, b := range list {
		fmt.Printf("  - %s (%d)\n", b.Title, b.PublishedYear)
	}
}
