package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is built once at startup and handed to every constructor.
type Config struct {
	Port   string
	AppEnv string

	DatabaseURL string
	AutoMigrate bool

	RedisURL string

	MeiliHost   string
	MeiliAPIKey string
	MeiliIndex  string
	// Index-side caps on reported totals and facet values. They must cover
	// the catalog size, or search totals drift from the database path.
	MeiliMaxTotalHits   int64
	MeiliMaxFacetValues int64

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
	CloudinaryFolder    string

	JWTSecret         string
	AdminEmail        string
	AdminPasswordHash string
	SessionTTL        time.Duration

	StoreTimeout      time.Duration
	FacetMode         string
	FacetCacheTTL     time.Duration
	StrictPagination  bool
	RateLimitMax      int
	RateLimitWindow   time.Duration
	CORSOrigins       []string
	ShutdownTimeout   time.Duration
	MaxUploadFileSize int64
}

// Load reads the environment. Call godotenv.Load before it to pick up .env.
func Load() (*Config, error) {
	cfg := &Config{
		Port:   getEnv("PORT", "8080"),
		AppEnv: getEnv("APP_ENV", "development"),

		DatabaseURL: databaseURL(),
		AutoMigrate: getBool("AUTO_MIGRATE", false),

		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),

		MeiliHost:   os.Getenv("MEILI_HOST"),
		MeiliAPIKey: os.Getenv("MEILI_API_KEY"),
		MeiliIndex:  getEnv("MEILI_INDEX", "catalog_items"),

		MeiliMaxTotalHits:   int64(getInt("MEILI_MAX_TOTAL_HITS", 1_000_000)),
		MeiliMaxFacetValues: int64(getInt("MEILI_MAX_FACET_VALUES", 1000)),

		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),
		CloudinaryFolder:    getEnv("CLOUDINARY_FOLDER", "modeva/catalog"),

		JWTSecret:         os.Getenv("JWT_SECRET"),
		AdminEmail:        strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL"))),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		SessionTTL:        getDuration("SESSION_TTL", 24*time.Hour),

		StoreTimeout:      getDuration("STORE_TIMEOUT", 10*time.Second),
		FacetMode:         getEnv("FACET_MODE", "exclude-self"),
		FacetCacheTTL:     getDuration("FACET_CACHE_TTL", 30*time.Second),
		StrictPagination:  getBool("LISTING_STRICT_PAGINATION", false),
		RateLimitMax:      getInt("RATE_LIMIT_MAX", 100),
		RateLimitWindow:   getDuration("RATE_LIMIT_WINDOW", time.Minute),
		CORSOrigins:       getList("CORS_ORIGINS", []string{"http://localhost:3000"}),
		ShutdownTimeout:   getDuration("SHUTDOWN_TIMEOUT", 15*time.Second),
		MaxUploadFileSize: int64(getInt("MAX_UPLOAD_MB", 5)) << 20,
	}

	if cfg.JWTSecret == "" {
		if cfg.IsProduction() {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = "dev-secret-key-change-in-production"
		log.Println("⚠️  JWT_SECRET not set, using development secret")
	}
	if cfg.MeiliHost == "" {
		log.Println("⚠️  MEILI_HOST not set, search and facet endpoints will fail")
	}

	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func databaseURL() string {
	if url := os.Getenv("CMS_DB_URL"); url != "" {
		return url
	}
	log.Println("⚠️ CMS_DB_URL not set, using local default")
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", ""),
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_NAME", "modeva_catalog"),
	)
}

// WithTimeout bounds one external call.
func WithTimeout(parent context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		d = 10 * time.Second
	}
	return context.WithTimeout(parent, d)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

func getBool(key string, defaultValue bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return b
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

func getList(key string, defaultValue []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, v := range strings.Split(raw, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
