package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/Modeva-Ecommerce/modeva-catalog-backend/config"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/models"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/search"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/store"
)

func init() {
	_ = godotenv.Load()
}

// main applies the index settings and pushes every catalog item to the
// search index in batches.
// Usage: go run ./cmd/reindex [-batch 500]
func main() {
	batch := flag.Int("batch", 500, "items per index request")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	client := config.ConnectSearch(cfg)
	if client == nil {
		log.Fatal("❌ MEILI_HOST is not set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	gdb, err := config.OpenGorm(cfg)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	index := search.NewMeiliIndex(client, cfg.MeiliIndex)
	if err := index.ApplySettings(ctx, search.IndexLimits{MaxTotalHits: cfg.MeiliMaxTotalHits, MaxValuesPerFacet: cfg.MeiliMaxFacetValues}); err != nil {
		log.Fatalf("❌ Failed to apply index settings: %v", err)
	}
	log.Println("✓ Index settings applied")

	total := 0
	err = store.NewCatalogStore(gdb).Batches(ctx, *batch, func(items []models.CatalogItem) error {
		if err := index.Upsert(ctx, items...); err != nil {
			return err
		}
		total += len(items)
		log.Printf("✓ Queued %d items", total)
		return nil
	})
	if err != nil {
		log.Fatalf("❌ Reindex stopped after %d items: %v", total, err)
	}
	log.Printf("✅ Reindex queued %d items to %q", total, cfg.MeiliIndex)
}
