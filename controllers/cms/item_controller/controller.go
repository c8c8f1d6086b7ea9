package item_controller

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"

	"github.com/Modeva-Ecommerce/modeva-catalog-backend/models"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/services/listing"
)

// ItemService is the part of listing.Service the admin handlers use.
type ItemService interface {
	Browse(ctx context.Context, req models.ListingRequest) (*listing.Page, error)
	CreateItem(ctx context.Context, req models.CreateItemRequest) (*models.CatalogItem, error)
	UpdateItem(ctx context.Context, rawID string, patch models.UpdateItemRequest) (*models.CatalogItem, error)
	DeleteItem(ctx context.Context, rawID string) (*models.CatalogItem, error)
}

// ImageUploader stores uploaded item images.
type ImageUploader interface {
	UploadMultipleImages(ctx context.Context, files []*multipart.FileHeader, folder string) ([]string, error)
	ItemFolder(id uuid.UUID) string
	StagingFolder() string
}

const maxImagesPerUpload = 20

// Controller serves the admin catalog endpoints. uploader may be nil when
// no media store is configured.
type Controller struct {
	items         ItemService
	uploader      ImageUploader
	normalize     listing.NormalizeOptions
	maxUploadSize int64
}

func New(items ItemService, uploader ImageUploader, normalize listing.NormalizeOptions, maxUploadSize int64) *Controller {
	return &Controller{
		items:         items,
		uploader:      uploader,
		normalize:     normalize,
		maxUploadSize: maxUploadSize,
	}
}
