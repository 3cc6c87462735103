package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/kapu/botkit-go/internal/store"
	"github.com/kapu/botkit-go/internal/util"
	"github.com/samber/lo"
)

// CLI flags
var (
	dryRun     = flag.Bool("dry-run", false, "Validate the file without writing to the store")
	file       = flag.String("file", "", "JSON file holding an array of documents")
	collection = flag.String("collection", "", "Target collection")
	uri        = flag.String("uri", envOrDefault("STORE_URI", "badger://memory"), "Store URI (mongodb://, postgres://, badger://)")
	database   = flag.String("database", envOrDefault("STORE_DATABASE", "botkit"), "Database name (mongodb only)")
	required   = flag.String("require", "", "Comma-separated fields every document must carry")
	verbose    = flag.Bool("verbose", false, "Verbose output")
)

func main() {
	flag.Parse()

	log.Println("===========================")
	log.Println("JSON to document store import")
	log.Println("===========================")

	if *file == "" || *collection == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *dryRun {
		log.Println("[DRY RUN MODE] No store changes will be made")
	}

	// Step 1: Load JSON
	docs, err := loadDocuments(*file)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", *file, err)
	}
	log.Printf("✓ Loaded %d documents", len(docs))

	// Step 2: Validate
	schema := store.Schema{Collection: *collection, Required: splitFields(*required)}
	for i, doc := range docs {
		if _, err := store.NewDocument(schema, doc); err != nil {
			log.Fatalf("Document %d is invalid: %v", i, err)
		}
	}
	log.Println("✓ Data validation passed")

	if *dryRun {
		log.Println("✓ Dry-run completed successfully")
		printSummary(docs)
		return
	}

	// Step 3: Connect
	logger, err := util.NewLogger("info", "")
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	s, err := store.Connect(ctx, store.Config{URI: *uri, Database: *database}, logger)
	if err != nil {
		log.Fatalf("Failed to connect to store: %v", err)
	}
	defer s.Close(context.Background())

	// Step 4: Insert
	inserted := 0
	for _, fields := range docs {
		doc, err := s.Create(ctx, schema, fields)
		if err != nil {
			log.Fatalf("Failed to insert document: %v", err)
		}
		inserted++
		if *verbose {
			log.Printf("  + %s", doc.ID())
		}
	}

	log.Printf("✓ Imported %d documents into %s", inserted, *collection)
}

func loadDocuments(path string) ([]map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var docs []map[string]any
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("expected a JSON array of objects: %w", err)
	}
	return docs, nil
}

func splitFields(raw string) []string {
	fields := lo.Map(strings.Split(raw, ","), func(f string, _ int) string {
		return strings.TrimSpace(f)
	})
	return lo.Compact(fields)
}

func printSummary(docs []map[string]any) {
	withID := 0
	for _, doc := range docs {
		if store.Document(doc).ID() != "" {
			withID++
		}
	}
	fmt.Println("\nSummary:")
	fmt.Printf("- Documents: %d\n", len(docs))
	fmt.Printf("- With %s: %d\n", store.IDField, withID)
	fmt.Printf("- Ids to generate: %d\n", len(docs)-withID)
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
