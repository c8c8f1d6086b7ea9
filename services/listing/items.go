package listing

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Modeva-Ecommerce/modeva-catalog-backend/models"
)

// GetItem fetches one item. Malformed ids fail before any store access.
func (s *Service) GetItem(ctx context.Context, rawID string) (*models.CatalogItem, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}

	callCtx, cancel := s.bounded(ctx)
	defer cancel()

	item, err := s.store.GetByID(callCtx, id)
	if err != nil {
		return nil, storeError("get catalog item", err)
	}
	return item, nil
}

// CreateItem persists a validated payload and returns the stored item with
// its generated id and timestamps.
func (s *Service) CreateItem(ctx context.Context, req models.CreateItemRequest) (*models.CatalogItem, error) {
	item := req.ToModel()

	callCtx, cancel := s.bounded(ctx)
	defer cancel()

	if err := s.store.Create(callCtx, &item); err != nil {
		return nil, upstream("create catalog item", err)
	}

	s.syncIndex(ctx, item)
	log.Printf("[listing] ✅ created item %s (%s)", item.ID, item.Name)
	return &item, nil
}

// UpdateItem applies a partial update. An empty patch is a validation error.
func (s *Service) UpdateItem(ctx context.Context, rawID string, patch models.UpdateItemRequest) (*models.CatalogItem, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, newValidationError("no fields to update")
	}

	callCtx, cancel := s.bounded(ctx)
	defer cancel()

	item, err := s.store.Update(callCtx, id, patch)
	if err != nil {
		return nil, storeError("update catalog item", err)
	}

	s.syncIndex(ctx, *item)
	return item, nil
}

// DeleteItem removes an item and returns what was deleted. Media cleanup
// runs in the background and never fails the request.
func (s *Service) DeleteItem(ctx context.Context, rawID string) (*models.CatalogItem, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}

	callCtx, cancel := s.bounded(ctx)
	defer cancel()

	item, err := s.store.Delete(callCtx, id)
	if err != nil {
		return nil, storeError("delete catalog item", err)
	}

	if s.index != nil {
		if err := s.index.Delete(callCtx, id.String()); err != nil {
			logIndexFailure("delete", id, err)
		}
	}
	s.invalidateFacets(ctx)
	s.cleanupMedia(id)

	log.Printf("[listing] deleted item %s", id)
	return item, nil
}

// syncIndex pushes a written item to the search index. The relational store
// is the source of truth, so failures are logged and the write stands.
func (s *Service) syncIndex(ctx context.Context, item models.CatalogItem) {
	if s.index != nil {
		callCtx, cancel := s.bounded(ctx)
		defer cancel()
		if err := s.index.Upsert(callCtx, item); err != nil {
			logIndexFailure("upsert", item.ID, err)
		}
	}
	s.invalidateFacets(ctx)
}

func (s *Service) invalidateFacets(ctx context.Context) {
	if s.facets != nil {
		s.facets.Invalidate(ctx)
	}
}

func (s *Service) cleanupMedia(id uuid.UUID) {
	if s.media == nil || s.opts.MediaFolder == nil {
		return
	}
	folder := s.opts.MediaFolder(id)
	if folder == "" {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.media.DeleteFolder(ctx, folder); err != nil {
			log.Printf("[listing] failed to delete media folder %s: %v", folder, err)
			return
		}
		log.Printf("[listing] deleted media folder %s", folder)
	}()
}
