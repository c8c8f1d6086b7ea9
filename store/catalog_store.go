package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Modeva-Ecommerce/modeva-catalog-backend/models"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/services/listing"
)

// CatalogStore reads and writes catalog_items through GORM.
type CatalogStore struct {
	db *gorm.DB
}

func NewCatalogStore(db *gorm.DB) *CatalogStore {
	return &CatalogStore{db: db}
}

// ─────────────────────────────────────────────────────────────
// Query building
// ─────────────────────────────────────────────────────────────

// filterScope applies the listing predicate shared by the page and count
// queries: values of one attribute are OR-ed through IN, attributes are AND-ed.
func filterScope(req models.ListingRequest) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, f := range req.Filters {
			col, ok := models.FilterColumn(f.Attribute)
			if !ok {
				continue
			}
			values := make([]interface{}, len(f.Values))
			for i, v := range f.Values {
				values[i] = v
			}
			db = db.Where(clause.IN{Column: clause.Column{Name: col}, Values: values})
		}

		if req.Query != "" {
			pattern := "%" + escapeLike(req.Query) + "%"
			db = db.Where("(name ILIKE ? OR brand ILIKE ? OR category ILIKE ?)", pattern, pattern, pattern)
		}
		return db
	}
}

// orderScope orders by the allow-listed column with id as tie-breaker so
// pages never overlap between requests.
func orderScope(req models.ListingRequest) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		col, ok := req.SortBy.Column()
		if !ok {
			col, _ = models.DefaultSortField.Column()
		}
		desc := req.SortOrder != models.SortAsc
		return db.
			Order(clause.OrderByColumn{Column: clause.Column{Name: col}, Desc: desc}).
			Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}, Desc: desc})
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ─────────────────────────────────────────────────────────────
// CatalogStore implementation
// ─────────────────────────────────────────────────────────────

// List runs the page query and the count query concurrently.
func (s *CatalogStore) List(ctx context.Context, req models.ListingRequest) ([]models.CatalogItem, int64, error) {
	items := make([]models.CatalogItem, 0, req.PageSize)
	var total int64

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.db.WithContext(gctx).
			Model(&models.CatalogItem{}).
			Scopes(filterScope(req), orderScope(req)).
			Limit(req.PageSize).
			Offset(req.Offset()).
			Find(&items).Error
	})

	g.Go(func() error {
		return s.db.WithContext(gctx).
			Model(&models.CatalogItem{}).
			Scopes(filterScope(req)).
			Count(&total).Error
	})

	if err := g.Wait(); err != nil {
		return nil, 0, fmt.Errorf("query catalog_items: %w", err)
	}
	return items, total, nil
}

func (s *CatalogStore) GetByID(ctx context.Context, id uuid.UUID) (*models.CatalogItem, error) {
	var item models.CatalogItem
	if err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		return nil, mapError(err)
	}
	return &item, nil
}

func (s *CatalogStore) Create(ctx context.Context, item *models.CatalogItem) error {
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("insert catalog item: %w", err)
	}
	return nil
}

// Update applies patch inside a transaction and returns the stored row.
func (s *CatalogStore) Update(ctx context.Context, id uuid.UUID, patch models.UpdateItemRequest) (*models.CatalogItem, error) {
	var item models.CatalogItem
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&item, "id = ?", id).Error; err != nil {
			return err
		}
		patch.Apply(&item)
		return tx.Save(&item).Error
	})
	if err != nil {
		return nil, mapError(err)
	}
	return &item, nil
}

// Delete removes the row and returns its last state.
func (s *CatalogStore) Delete(ctx context.Context, id uuid.UUID) (*models.CatalogItem, error) {
	var item models.CatalogItem
	result := s.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Delete(&item)
	if result.Error != nil {
		return nil, mapError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, listing.ErrNotFound
	}
	return &item, nil
}

// Batches walks the whole table in primary key order, handing each batch to fn.
func (s *CatalogStore) Batches(ctx context.Context, size int, fn func([]models.CatalogItem) error) error {
	var batch []models.CatalogItem
	result := s.db.WithContext(ctx).
		FindInBatches(&batch, size, func(tx *gorm.DB, _ int) error {
			return fn(batch)
		})
	return result.Error
}

func mapError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return listing.ErrNotFound
	}
	return err
}
