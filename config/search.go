package config

import (
	"log"

	"github.com/meilisearch/meilisearch-go"
)

// ConnectSearch returns a Meilisearch client, or nil when MEILI_HOST is not
// configured. An unhealthy server is logged, not fatal: listings that need
// the index fail per request until it recovers.
func ConnectSearch(cfg *Config) meilisearch.ServiceManager {
	if cfg.MeiliHost == "" {
		return nil
	}

	var opts []meilisearch.Option
	if cfg.MeiliAPIKey != "" {
		opts = append(opts, meilisearch.WithAPIKey(cfg.MeiliAPIKey))
	}
	client := meilisearch.New(cfg.MeiliHost, opts...)

	if client.IsHealthy() {
		log.Println("✅ Connected to Meilisearch:", cfg.MeiliHost)
	} else {
		log.Println("⚠️  Meilisearch not healthy at", cfg.MeiliHost)
	}
	return client
}
