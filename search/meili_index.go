package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/meilisearch/meilisearch-go"
	"gorm.io/datatypes"

	"github.com/Modeva-Ecommerce/modeva-catalog-backend/models"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/services/listing"
)

// Document is the denormalized copy of a CatalogItem kept in the index.
// Timestamps are unix seconds so they can be sorted on.
type Document struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        int64    `json:"price"`
	Category     string   `json:"category"`
	Brand        string   `json:"brand"`
	FuelType     string   `json:"fuelType"`
	Stock        int      `json:"stock"`
	Images       []string `json:"images"`
	ThumbnailURL *string  `json:"thumbnailUrl,omitempty"`
	CreatedAt    int64    `json:"createdAt"`
	UpdatedAt    int64    `json:"updatedAt"`
}

func NewDocument(item models.CatalogItem) Document {
	images := []string(item.Images)
	if images == nil {
		images = []string{}
	}
	return Document{
		ID:           item.ID.String(),
		Name:         item.Name,
		Description:  item.Description,
		Price:        item.Price,
		Category:     item.Category,
		Brand:        item.Brand,
		FuelType:     item.FuelType,
		Stock:        item.Stock,
		Images:       images,
		ThumbnailURL: item.ThumbnailURL,
		CreatedAt:    item.CreatedAt.Unix(),
		UpdatedAt:    item.UpdatedAt.Unix(),
	}
}

// Item converts a hit back into a CatalogItem.
func (d Document) Item() (models.CatalogItem, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return models.CatalogItem{}, fmt.Errorf("document id %q: %w", d.ID, err)
	}
	images := d.Images
	if images == nil {
		images = []string{}
	}
	return models.CatalogItem{
		ID:           id,
		Name:         d.Name,
		Description:  d.Description,
		Price:        d.Price,
		Category:     d.Category,
		Brand:        d.Brand,
		FuelType:     d.FuelType,
		Stock:        d.Stock,
		Images:       datatypes.NewJSONSlice(images),
		ThumbnailURL: d.ThumbnailURL,
		CreatedAt:    time.Unix(d.CreatedAt, 0).UTC(),
		UpdatedAt:    time.Unix(d.UpdatedAt, 0).UTC(),
	}, nil
}

// MeiliIndex implements listing.SearchIndex on a Meilisearch index.
type MeiliIndex struct {
	index meilisearch.IndexManager
}

func NewMeiliIndex(client meilisearch.ServiceManager, uid string) *MeiliIndex {
	return &MeiliIndex{index: client.Index(uid)}
}

func (m *MeiliIndex) Search(ctx context.Context, q listing.SearchQuery) (*listing.SearchResult, error) {
	req := &meilisearch.SearchRequest{
		Facets: q.Facets,
	}
	if filter := BuildFilter(q.Filters); filter != "" {
		req.Filter = filter
	}
	if q.PageSize > 0 {
		req.Page = int64(q.Page)
		req.HitsPerPage = int64(q.PageSize)
		if q.SortBy != "" {
			order := models.SortDesc
			if q.SortOrder == models.SortAsc {
				order = models.SortAsc
			}
			req.Sort = []string{q.SortBy.IndexAttribute() + ":" + string(order)}
		}
	} else {
		// Count-only query. A zero hitsPerPage would be dropped from the
		// payload, so ask for a single id and discard it.
		req.Page = 1
		req.HitsPerPage = 1
		req.AttributesToRetrieve = []string{"id"}
	}

	resp, err := m.index.SearchWithContext(ctx, q.Query, req)
	if err != nil {
		return nil, fmt.Errorf("meilisearch search: %w", err)
	}

	result := &listing.SearchResult{
		TotalHits: resp.TotalHits,
		Facets:    models.FacetDistribution{},
	}
	if resp.FacetDistribution != nil {
		if err := remarshal(resp.FacetDistribution, &result.Facets); err != nil {
			return nil, fmt.Errorf("decode facet distribution: %w", err)
		}
	}

	if q.PageSize > 0 {
		var docs []Document
		if err := remarshal(resp.Hits, &docs); err != nil {
			return nil, fmt.Errorf("decode hits: %w", err)
		}
		result.Items = make([]models.CatalogItem, 0, len(docs))
		for _, d := range docs {
			item, err := d.Item()
			if err != nil {
				return nil, err
			}
			result.Items = append(result.Items, item)
		}
	}
	return result, nil
}

func (m *MeiliIndex) FilterableAttributes(ctx context.Context) ([]string, error) {
	attrs, err := m.index.GetFilterableAttributesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("meilisearch filterable attributes: %w", err)
	}
	if attrs == nil {
		return []string{}, nil
	}
	return *attrs, nil
}

// Upsert enqueues the documents; indexing completes asynchronously.
func (m *MeiliIndex) Upsert(ctx context.Context, items ...models.CatalogItem) error {
	if len(items) == 0 {
		return nil
	}
	docs := make([]Document, len(items))
	for i, it := range items {
		docs[i] = NewDocument(it)
	}
	task, err := m.index.AddDocumentsWithContext(ctx, docs, "id")
	if err != nil {
		return fmt.Errorf("meilisearch add documents: %w", err)
	}
	log.Printf("[search] enqueued %d document(s), task %d", len(docs), task.TaskUID)
	return nil
}

func (m *MeiliIndex) Delete(ctx context.Context, id string) error {
	if _, err := m.index.DeleteDocumentWithContext(ctx, id); err != nil {
		return fmt.Errorf("meilisearch delete document: %w", err)
	}
	return nil
}

// IndexLimits raises the index's caps on totalHits and on values listed per
// facet. Meilisearch defaults to 1000 hits and 100 values per facet, past
// which totals and facet lists are silently truncated.
type IndexLimits struct {
	MaxTotalHits      int64
	MaxValuesPerFacet int64
}

var DefaultIndexLimits = IndexLimits{
	MaxTotalHits:      1_000_000,
	MaxValuesPerFacet: 1000,
}

// ApplySettings declares which attributes can be filtered, faceted and
// sorted on, and how far totals and facet lists may grow. Zero limits fall
// back to DefaultIndexLimits.
func (m *MeiliIndex) ApplySettings(ctx context.Context, limits IndexLimits) error {
	if limits.MaxTotalHits <= 0 {
		limits.MaxTotalHits = DefaultIndexLimits.MaxTotalHits
	}
	if limits.MaxValuesPerFacet <= 0 {
		limits.MaxValuesPerFacet = DefaultIndexLimits.MaxValuesPerFacet
	}

	_, err := m.index.UpdateSettingsWithContext(ctx, &meilisearch.Settings{
		FilterableAttributes: models.FilterableAttributes(),
		SortableAttributes:   models.SortableAttributes(),
		SearchableAttributes: []string{"name", "brand", "category", "fuelType", "description"},
		Pagination:           &meilisearch.Pagination{MaxTotalHits: limits.MaxTotalHits},
		Faceting:             &meilisearch.Faceting{MaxValuesPerFacet: limits.MaxValuesPerFacet},
	})
	if err != nil {
		return fmt.Errorf("meilisearch update settings: %w", err)
	}
	log.Println("[search] ✅ index settings applied")
	return nil
}

// remarshal decodes a loosely typed client field into a concrete type.
func remarshal(src, dst any) error {
	raw, err := json.Marshal(src)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}
