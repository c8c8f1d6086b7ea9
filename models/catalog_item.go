package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// Catalog Item Model (GORM)
// ═══════════════════════════════════════════════════════════

// CatalogItem is a sellable catalog entry (a vehicle or a product).
// Price is stored in minor currency units.
type CatalogItem struct {
	ID           uuid.UUID                   `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string                      `json:"name" gorm:"not null;index"`
	Description  string                      `json:"description" gorm:"type:text;not null;default:''"`
	Price        int64                       `json:"price" gorm:"not null;check:price > 0;index"`
	Category     string                      `json:"category" gorm:"not null;index"`
	Brand        string                      `json:"brand" gorm:"not null;index"`
	FuelType     string                      `json:"fuelType" gorm:"column:fuel_type;not null;index"`
	Stock        int                         `json:"stock" gorm:"not null;default:0;check:stock >= 0"`
	Images       datatypes.JSONSlice[string] `json:"images" gorm:"type:jsonb;not null;default:'[]'"`
	ThumbnailURL *string                     `json:"thumbnailUrl,omitempty" gorm:"column:thumbnail_url"`
	CreatedAt    time.Time                   `json:"createdAt" gorm:"autoCreateTime;index"`
	UpdatedAt    time.Time                   `json:"updatedAt" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (i *CatalogItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.Must(uuid.NewV7())
	}
	if i.Images == nil {
		i.Images = datatypes.JSONSlice[string]{}
	}
	return nil
}

// TableName specifies the table name
func (CatalogItem) TableName() string {
	return "catalog_items"
}

// InStock reports whether at least one unit is available.
func (i CatalogItem) InStock() bool {
	return i.Stock > 0
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

// CreateItemRequest is the strict creation payload. Every field failing
// validation is reported back, not just the first one.
type CreateItemRequest struct {
	Name         string   `json:"name" binding:"required,max=200" example:"Toyota RAV4 Hybrid"`
	Description  string   `json:"description" binding:"max=5000" example:"Compact SUV with AWD"`
	Price        int64    `json:"price" binding:"required,gt=0" example:"3299000"`
	Category     string   `json:"category" binding:"required,max=100" example:"SUV"`
	Brand        string   `json:"brand" binding:"required,max=100" example:"Toyota"`
	FuelType     string   `json:"fuelType" binding:"required,max=50" example:"Hybrid"`
	Stock        *int     `json:"stock" binding:"required,min=0" example:"4"`
	Images       []string `json:"images" binding:"omitempty,max=20,dive,url"`
	ThumbnailURL *string  `json:"thumbnailUrl" binding:"omitempty,url"`
}

// ToModel converts the validated payload into a new CatalogItem.
func (r CreateItemRequest) ToModel() CatalogItem {
	item := CatalogItem{
		Name:         r.Name,
		Description:  r.Description,
		Price:        r.Price,
		Category:     r.Category,
		Brand:        r.Brand,
		FuelType:     r.FuelType,
		Images:       datatypes.NewJSONSlice(r.Images),
		ThumbnailURL: r.ThumbnailURL,
	}
	if r.Stock != nil {
		item.Stock = *r.Stock
	}
	if r.Images == nil {
		item.Images = datatypes.JSONSlice[string]{}
	}
	return item
}

// UpdateItemRequest carries a partial update; nil fields are left untouched.
type UpdateItemRequest struct {
	Name         *string   `json:"name" binding:"omitempty,min=1,max=200"`
	Description  *string   `json:"description" binding:"omitempty,max=5000"`
	Price        *int64    `json:"price" binding:"omitempty,gt=0"`
	Category     *string   `json:"category" binding:"omitempty,min=1,max=100"`
	Brand        *string   `json:"brand" binding:"omitempty,min=1,max=100"`
	FuelType     *string   `json:"fuelType" binding:"omitempty,min=1,max=50"`
	Stock        *int      `json:"stock" binding:"omitempty,min=0"`
	Images       *[]string `json:"images" binding:"omitempty,max=20,dive,url"`
	ThumbnailURL *string   `json:"thumbnailUrl" binding:"omitempty,url"`
}

// IsEmpty reports whether the request changes nothing.
func (r UpdateItemRequest) IsEmpty() bool {
	return r.Name == nil && r.Description == nil && r.Price == nil &&
		r.Category == nil && r.Brand == nil && r.FuelType == nil &&
		r.Stock == nil && r.Images == nil && r.ThumbnailURL == nil
}

// Apply copies every set field onto item.
func (r UpdateItemRequest) Apply(item *CatalogItem) {
	if r.Name != nil {
		item.Name = *r.Name
	}
	if r.Description != nil {
		item.Description = *r.Description
	}
	if r.Price != nil {
		item.Price = *r.Price
	}
	if r.Category != nil {
		item.Category = *r.Category
	}
	if r.Brand != nil {
		item.Brand = *r.Brand
	}
	if r.FuelType != nil {
		item.FuelType = *r.FuelType
	}
	if r.Stock != nil {
		item.Stock = *r.Stock
	}
	if r.Images != nil {
		item.Images = datatypes.NewJSONSlice(*r.Images)
	}
	if r.ThumbnailURL != nil {
		item.ThumbnailURL = r.ThumbnailURL
	}
}
