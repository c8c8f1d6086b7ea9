package listing

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Modeva-Ecommerce/modeva-catalog-backend/models"
)

func attributeValue(item models.CatalogItem, attr string) string {
	switch attr {
	case "brand":
		return item.Brand
	case "category":
		return item.Category
	case "fuelType":
		return item.FuelType
	}
	return ""
}

func matches(item models.CatalogItem, filters models.Filters) bool {
	for _, f := range filters {
		ok := false
		for _, v := range f.Values {
			if attributeValue(item, f.Attribute) == v {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

// memStore is an in-memory CatalogStore ordering by created_at only.
type memStore struct {
	mu      sync.Mutex
	items   []models.CatalogItem
	calls   int
	listErr error
	clock   time.Time
}

func newMemStore(items ...models.CatalogItem) *memStore {
	own := append([]models.CatalogItem(nil), items...)
	return &memStore{items: own, clock: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (m *memStore) List(_ context.Context, req models.ListingRequest) ([]models.CatalogItem, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.listErr != nil {
		return nil, 0, m.listErr
	}

	var matched []models.CatalogItem
	for _, it := range m.items {
		if matches(it, req.Filters) {
			matched = append(matched, it)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if req.SortOrder == models.SortAsc {
			return matched[i].CreatedAt.Before(matched[j].CreatedAt)
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := req.Offset()
	if start >= len(matched) {
		return []models.CatalogItem{}, total, nil
	}
	end := start + req.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (m *memStore) GetByID(_ context.Context, id uuid.UUID) (*models.CatalogItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	for _, it := range m.items {
		if it.ID == id {
			found := it
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memStore) Create(_ context.Context, item *models.CatalogItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	item.ID = uuid.Must(uuid.NewV7())
	m.clock = m.clock.Add(time.Minute)
	item.CreatedAt = m.clock
	item.UpdatedAt = m.clock
	m.items = append(m.items, *item)
	return nil
}

func (m *memStore) Update(_ context.Context, id uuid.UUID, patch models.UpdateItemRequest) (*models.CatalogItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	for i := range m.items {
		if m.items[i].ID == id {
			patch.Apply(&m.items[i])
			updated := m.items[i]
			return &updated, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memStore) Delete(_ context.Context, id uuid.UUID) (*models.CatalogItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	for i, it := range m.items {
		if it.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return &it, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memStore) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// memIndex evaluates SearchQuery against a fixed item set, computing facet
// counts with whatever filters the query carries.
type memIndex struct {
	mu         sync.Mutex
	items      []models.CatalogItem
	filterable []string
	queries    []SearchQuery
	upserts    int
	deletes    int
	searchErr  error
	upsertErr  error
}

func (x *memIndex) Search(_ context.Context, q SearchQuery) (*SearchResult, error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.queries = append(x.queries, q)
	if x.searchErr != nil {
		return nil, x.searchErr
	}

	var matched []models.CatalogItem
	for _, it := range x.items {
		if matches(it, q.Filters) {
			matched = append(matched, it)
		}
	}

	res := &SearchResult{TotalHits: int64(len(matched)), Facets: models.FacetDistribution{}}
	for _, attr := range q.Facets {
		counts := map[string]int64{}
		for _, it := range matched {
			counts[attributeValue(it, attr)]++
		}
		res.Facets[attr] = counts
	}
	if q.PageSize > 0 {
		start := (q.Page - 1) * q.PageSize
		if start < len(matched) {
			end := start + q.PageSize
			if end > len(matched) {
				end = len(matched)
			}
			res.Items = matched[start:end]
		}
	}
	return res, nil
}

func (x *memIndex) FilterableAttributes(context.Context) ([]string, error) {
	if x.searchErr != nil {
		return nil, x.searchErr
	}
	return x.filterable, nil
}

func (x *memIndex) Upsert(context.Context, ...models.CatalogItem) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.upserts++
	return x.upsertErr
}

func (x *memIndex) Delete(context.Context, string) error {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.deletes++
	return nil
}

type memFacetCache struct {
	dist        models.FacetDistribution
	invalidated int
}

func (c *memFacetCache) Get(context.Context) (models.FacetDistribution, bool) {
	return c.dist, c.dist != nil
}

func (c *memFacetCache) Set(_ context.Context, dist models.FacetDistribution) {
	c.dist = dist
}

func (c *memFacetCache) Invalidate(context.Context) {
	c.dist = nil
	c.invalidated++
}

var errBoom = errors.New("connection refused")
