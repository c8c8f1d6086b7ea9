package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"github.com/Modeva-Ecommerce/modeva-catalog-backend/config"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/models"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/services"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

var catalogColumns = []string{
	"id", "name", "description", "price", "category", "brand", "fuel_type",
	"stock", "images", "thumbnail_url", "created_at", "updated_at",
}

// main bulk-loads catalog items from a JSON file, or prints an admin password
// hash for ADMIN_PASSWORD_HASH.
// Usage:
//
//	go run ./cmd/seed -file items.json
//	go run ./cmd/seed -hash 'correct-horse-battery'
//
// This is a standalone CLI tool, not part of the main application
func main() {
	file := flag.String("file", "", "JSON array of catalog items to load")
	hash := flag.String("hash", "", "print the bcrypt hash of this password and exit")
	flag.Parse()

	if *hash != "" {
		h, err := services.HashPassword(*hash)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		fmt.Println(h)
		return
	}
	if *file == "" {
		flag.Usage()
		os.Exit(2)
	}

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("MODEVA CATALOG - Item Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")

	items, err := readItems(*file)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	log.Printf("✓ Read %d items from %s", len(items), *file)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := config.OpenPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	defer pool.Close()

	n, err := pool.CopyFrom(ctx, pgx.Identifier{models.CatalogItem{}.TableName()}, catalogColumns, pgx.CopyFromSlice(len(items), func(i int) ([]any, error) {
		it := items[i]
		images, err := json.Marshal(it.Images)
		if err != nil {
			return nil, err
		}
		return []any{
			it.ID, it.Name, it.Description, it.Price, it.Category, it.Brand, it.FuelType,
			it.Stock, string(images), it.ThumbnailURL, it.CreatedAt, it.UpdatedAt,
		}, nil
	}))
	if err != nil {
		log.Fatalf("❌ Copy failed: %v", err)
	}

	fmt.Printf("✅ Loaded %d catalog items\n", n)
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Push the items to the search index: go run ./cmd/reindex")
	fmt.Println("2. Start the server: go run main.go")
}

// readItems decodes and validates the seed file. Missing ids and timestamps
// are filled in so hand-written fixtures stay short.
func readItems(path string) ([]models.CatalogItem, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var items []models.CatalogItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode seed file: %w", err)
	}

	now := time.Now().UTC()
	for i := range items {
		it := &items[i]
		if it.Name == "" || it.Price <= 0 || it.Stock < 0 {
			return nil, fmt.Errorf("item %d: name, a positive price and a non-negative stock are required", i)
		}
		if it.ID == uuid.Nil {
			it.ID = uuid.Must(uuid.NewV7())
		}
		if it.CreatedAt.IsZero() {
			it.CreatedAt = now
		}
		if it.UpdatedAt.IsZero() {
			it.UpdatedAt = it.CreatedAt
		}
		if it.Images == nil {
			it.Images = []string{}
		}
	}
	return items, nil
}
