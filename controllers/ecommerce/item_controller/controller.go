package item_controller

import (
	"context"

	"github.com/Modeva-Ecommerce/modeva-catalog-backend/models"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/services/listing"
)

// StorefrontService is the read side of listing.Service.
type StorefrontService interface {
	List(ctx context.Context, req models.ListingRequest) (*listing.Page, error)
	GetItem(ctx context.Context, rawID string) (*models.CatalogItem, error)
}

type Controller struct {
	items     StorefrontService
	normalize listing.NormalizeOptions
}

func New(items StorefrontService, normalize listing.NormalizeOptions) *Controller {
	return &Controller{items: items, normalize: normalize}
}
