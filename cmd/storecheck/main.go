package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/kapu/botkit-go/internal/store"
	"github.com/kapu/botkit-go/internal/util"
	"github.com/kapu/botkit-go/pkg/kit"
)

const checkCollection = "storecheck"

func main() {
	logger, _ := util.NewLogger("info", "")
	defer logger.Sync()

	log.Println("=== Document Store Integration Check ===")
	log.Println()

	uri := envOrDefault("STORE_URI", "badger://memory")
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	s, err := store.Connect(ctx, store.Config{
		URI:      uri,
		Database: envOrDefault("STORE_DATABASE", "botkit"),
	}, logger)
	if err != nil {
		log.Fatalf("❌ Failed to connect to %s: %v", uri, err)
	}
	defer s.Close(context.Background())
	log.Printf("✓ Connected to %s", uri)

	marker := kit.CreateID(8)

	// Test 1: Create
	doc, err := s.Create(ctx, store.Schema{
		Collection: checkCollection,
		Defaults:   map[string]any{"count": 0},
		Required:   []string{"marker"},
	}, map[string]any{"marker": marker})
	if err != nil {
		log.Fatalf("❌ Create failed: %v", err)
	}
	log.Printf("✓ Created document %s", doc.ID())

	// Test 2: FindOne
	found, err := s.FindOne(ctx, checkCollection, store.Criteria{"marker": marker})
	if err != nil {
		log.Fatalf("❌ FindOne failed: %v", err)
	}
	if found == nil || found.ID() != doc.ID() {
		log.Fatal("❌ Created document not found!")
	}
	log.Println("✓ FindOne by field")

	// Test 3: UpdateOne
	if err := s.UpdateOne(ctx, checkCollection, store.Criteria{"marker": marker}, "count", 1); err != nil {
		log.Fatalf("❌ UpdateOne failed: %v", err)
	}
	found, err = s.FindOne(ctx, checkCollection, store.Criteria{"marker": marker, "count": 1})
	if err != nil || found == nil {
		log.Fatalf("❌ Updated document not found: %v", err)
	}
	log.Println("✓ UpdateOne")

	// Test 4: Save (upsert)
	found["note"] = "saved"
	if _, err := s.Save(ctx, checkCollection, found); err != nil {
		log.Fatalf("❌ Save failed: %v", err)
	}
	log.Println("✓ Save")

	// Test 5: Delete
	if err := s.Delete(ctx, checkCollection, found); err != nil {
		log.Fatalf("❌ Delete failed: %v", err)
	}
	gone, err := s.FindOne(ctx, checkCollection, store.Criteria{"marker": marker})
	if err != nil {
		log.Fatalf("❌ FindOne after delete failed: %v", err)
	}
	if gone != nil {
		log.Fatal("❌ Document still present after delete!")
	}
	log.Println("✓ Delete")

	log.Println()
	log.Println("=== ✅ ALL CHECKS PASSED ===")
	fmt.Printf("- Store: %s\n", uri)
	fmt.Printf("- Document: %s\n", doc.ID())
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
