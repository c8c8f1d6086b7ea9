package config

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Modeva-Ecommerce/modeva-catalog-backend/models"
)

// Databases holds both handles onto the catalog database: GORM for the
// request path, a pgx pool for health checks and bulk loads.
type Databases struct {
	Pool *pgxpool.Pool
	Gorm *gorm.DB
}

func OpenDatabases(ctx context.Context, cfg *Config) (*Databases, error) {
	pool, err := OpenPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	gdb, err := OpenGorm(cfg)
	if err != nil {
		pool.Close()
		return nil, err
	}

	return &Databases{Pool: pool, Gorm: gdb}, nil
}

func OpenPool(ctx context.Context, url string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to catalog database: %w", err)
	}

	pingCtx, cancel := WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("catalog database ping failed: %w", err)
	}

	log.Println("✅ Catalog database connected (pgx)")
	return pool, nil
}

func OpenGorm(cfg *Config) (*gorm.DB, error) {
	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.IsProduction() {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	gdb, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to catalog database with GORM: %w", err)
	}
	if sqlDB, err := gdb.DB(); err == nil {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	log.Println("✅ Catalog database connected (GORM)")

	if cfg.AutoMigrate {
		if err := gdb.AutoMigrate(&models.CatalogItem{}); err != nil {
			return nil, fmt.Errorf("auto-migrate catalog_items: %w", err)
		}
		log.Println("✅ catalog_items schema migrated")
	}
	return gdb, nil
}

// Ping checks the pool; used by the health endpoint.
func (d *Databases) Ping(ctx context.Context) error {
	return d.Pool.Ping(ctx)
}

func (d *Databases) Close() {
	if d.Pool != nil {
		d.Pool.Close()
		log.Println("✅ Catalog database connection closed (pgx)")
	}
	if d.Gorm != nil {
		if sqlDB, _ := d.Gorm.DB(); sqlDB != nil {
			sqlDB.Close()
			log.Println("✅ Catalog database connection closed (GORM)")
		}
	}
}
