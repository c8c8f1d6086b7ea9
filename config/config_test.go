package config

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("CMS_DB_URL", "")
	t.Setenv("RATE_LIMIT_MAX", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("MEILI_MAX_TOTAL_HITS", "")
	t.Setenv("MEILI_MAX_FACET_VALUES", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "exclude-self", cfg.FacetMode)
	assert.Equal(t, 10*time.Second, cfg.StoreTimeout)
	assert.Equal(t, 100, cfg.RateLimitMax)
	assert.False(t, cfg.StrictPagination)
	assert.NotEmpty(t, cfg.JWTSecret)
	assert.Contains(t, cfg.DatabaseURL, "postgres://")
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.Equal(t, int64(5<<20), cfg.MaxUploadFileSize)
	assert.Equal(t, int64(1_000_000), cfg.MeiliMaxTotalHits)
	assert.Equal(t, int64(1000), cfg.MeiliMaxFacetValues)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("CMS_DB_URL", "postgres://u:p@db:5432/catalog")
	t.Setenv("STORE_TIMEOUT", "2s")
	t.Setenv("LISTING_STRICT_PAGINATION", "true")
	t.Setenv("FACET_MODE", "unfiltered")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("ADMIN_EMAIL", "  Admin@Modeva.dev ")
	t.Setenv("RATE_LIMIT_MAX", "-5")
	t.Setenv("MEILI_MAX_TOTAL_HITS", "5000000")
	t.Setenv("MEILI_MAX_FACET_VALUES", "250")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@db:5432/catalog", cfg.DatabaseURL)
	assert.Equal(t, 2*time.Second, cfg.StoreTimeout)
	assert.True(t, cfg.StrictPagination)
	assert.Equal(t, "unfiltered", cfg.FacetMode)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, "admin@modeva.dev", cfg.AdminEmail)
	assert.Equal(t, 100, cfg.RateLimitMax)
	assert.Equal(t, int64(5_000_000), cfg.MeiliMaxTotalHits)
	assert.Equal(t, int64(250), cfg.MeiliMaxFacetValues)
}

func TestLoad_ProductionRequiresSecret(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestWithTimeout_DefaultsWhenZero(t *testing.T) {
	ctx, cancel := WithTimeout(context.Background(), 0)
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(10*time.Second), deadline, time.Second)
}
