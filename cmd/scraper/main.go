package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"jobradar/internal/aggregator"
	"jobradar/internal/app"
)

// One-shot scrape runner. Runs the full adapter fan-out for a query and
// prints the aggregated result as JSON, no server required.
func main() {
	query := flag.String("query", "", "search term (default: software developer)")
	location := flag.String("location", "", "location (default: India)")
	pages := flag.Int("pages", 0, "listing pages per source, 1-5 (default: 2)")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall run timeout")
	flag.Parse()

	_ = godotenv.Load()

	logger := log.New(os.Stderr, "", log.LstdFlags)

	adapters := app.BuildAdapters(logger)
	agg := aggregator.New(adapters, logger)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result := agg.Aggregate(ctx, aggregator.Params{
		SearchTerm: *query,
		Location:   *location,
		Pages:      *pages,
	})

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Fatalf("encode result: %v", err)
	}
}
