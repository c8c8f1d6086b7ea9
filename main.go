// @title Modeva Catalog API
// @version 1.0
// @description Catalog listing, search and management API
// @host localhost:8080
// @BasePath /
// @schemes http
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Modeva-Ecommerce/modeva-catalog-backend/cache"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/config"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/controllers"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/controllers/cms/auth_controller"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/controllers/cms/item_controller"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/controllers/ecommerce/filter_controller"
	store_item "github.com/Modeva-Ecommerce/modeva-catalog-backend/controllers/ecommerce/item_controller"
	_ "github.com/Modeva-Ecommerce/modeva-catalog-backend/docs"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/middleware"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/routes/cms_routes"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/routes/ecommerce_routes"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/search"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/services"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/services/listing"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/store"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	if err := run(); err != nil {
		log.Printf("❌ %v", err)
		os.Exit(1)
	}
}

// run wires the server and blocks until a signal arrives or the listener
// fails. Returning instead of exiting lets the deferred closes run.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	facetMode, err := listing.ParseFacetMode(cfg.FacetMode)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to DB
	dbs, err := config.OpenDatabases(ctx, cfg)
	if err != nil {
		return err
	}
	defer dbs.Close()

	// Redis connection
	rdb, err := config.ConnectRedis(ctx, cfg.RedisURL)
	if err != nil {
		return err
	}
	defer rdb.Close()

	// Search index; a nil interface keeps search requests failing with a
	// configuration error instead of a nil-pointer panic.
	var index listing.SearchIndex
	if client := config.ConnectSearch(cfg); client != nil {
		meili := search.NewMeiliIndex(client, cfg.MeiliIndex)
		settingsCtx, cancel := config.WithTimeout(ctx, 10*time.Second)
		if err := meili.ApplySettings(settingsCtx, search.IndexLimits{MaxTotalHits: cfg.MeiliMaxTotalHits, MaxValuesPerFacet: cfg.MeiliMaxFacetValues}); err != nil {
			log.Printf("⚠️  Failed to apply search index settings: %v", err)
		}
		cancel()
		index = meili
	}

	// Cloudinary is optional: without it uploads answer 503 and deletes skip
	// media cleanup.
	var (
		uploader item_controller.ImageUploader
		media    listing.MediaStore
		opts     = listing.Options{FacetMode: facetMode, CallTimeout: cfg.StoreTimeout}
	)
	if cfg.CloudinaryCloudName != "" {
		cld, err := services.NewCloudinaryService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryFolder)
		if err != nil {
			return fmt.Errorf("initialize cloudinary: %w", err)
		}
		uploader, media = cld, cld
		opts.MediaFolder = cld.ItemFolder
		log.Println("✅ Cloudinary service initialized")
	} else {
		log.Println("⚠️  CLOUDINARY_CLOUD_NAME not set, image uploads disabled")
	}

	svc := listing.NewService(
		store.NewCatalogStore(dbs.Gorm),
		index,
		cache.NewFacetCache(rdb, cfg.FacetCacheTTL),
		media,
		opts,
	)

	jwtService, err := services.NewJWTService(cfg.JWTSecret, cfg.SessionTTL)
	if err != nil {
		return fmt.Errorf("initialize JWT service: %w", err)
	}
	log.Println("✅ JWT Service initialized")
	if cfg.AdminEmail == "" || cfg.AdminPasswordHash == "" {
		log.Println("⚠️  ADMIN_EMAIL or ADMIN_PASSWORD_HASH not set, admin login will always fail")
	}
	sessions := services.NewAdminSessionService(rdb)

	controllers.RegisterJSONFieldNames()
	normalize := listing.NormalizeOptions{Strict: cfg.StrictPagination}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", healthHandler(dbs, rdb))

	// Register API routes
	api := router.Group("/api/v1")

	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.RateLimiter(rdb, cfg.RateLimitMax, cfg.RateLimitWindow))
	requireAdmin := middleware.AdminAuthMiddleware(jwtService, sessions)
	cms_routes.SetupAdminRoutes(adminGroup,
		auth_controller.New(services.NewAdminAuthService(cfg.AdminEmail, cfg.AdminPasswordHash), jwtService, sessions, cfg.IsProduction()),
		requireAdmin)
	cms_routes.SetupItemRoutes(adminGroup,
		item_controller.New(svc, uploader, normalize, cfg.MaxUploadFileSize),
		requireAdmin)
	log.Println("✅ Admin routes registered")

	// Public storefront (no rate limiter)
	ecommerce_routes.SetupStorefrontRoutes(api, store_item.New(svc, normalize), filter_controller.New(svc))

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("🚀 Server is running on http://localhost:%s", cfg.Port)
	return serve(ctx, srv, cfg.ShutdownTimeout)
}

// serve runs srv until ctx is cancelled or the listener fails, then shuts it
// down. A listener failure is returned to the caller.
func serve(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration) error {
	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		log.Println("Shutting down...")
	case err := <-serverErr:
		runErr = fmt.Errorf("server error: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️  Graceful shutdown failed: %v", err)
	}
	return runErr
}

// healthHandler reports whether the catalog database and redis answer.
func healthHandler(dbs *config.Databases, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := config.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		status := gin.H{"database": "ok", "redis": "ok"}
		code := http.StatusOK
		if err := dbs.Ping(ctx); err != nil {
			status["database"] = "unavailable"
			code = http.StatusServiceUnavailable
		}
		if err := rdb.Ping(ctx).Err(); err != nil {
			status["redis"] = "unavailable"
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, status)
	}
}
