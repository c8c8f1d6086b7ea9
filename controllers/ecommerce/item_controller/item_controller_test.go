package item_controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Modeva-Ecommerce/modeva-catalog-backend/models"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/services/listing"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// sliceStore serves a newest-first catalog without filtering.
type sliceStore struct {
	items []models.CatalogItem
	calls int
}

func (s *sliceStore) List(_ context.Context, req models.ListingRequest) ([]models.CatalogItem, int64, error) {
	s.calls++
	start := req.Offset()
	if start >= len(s.items) {
		return nil, int64(len(s.items)), nil
	}
	end := min(start+req.PageSize, len(s.items))
	return s.items[start:end], int64(len(s.items)), nil
}

func (s *sliceStore) GetByID(_ context.Context, id uuid.UUID) (*models.CatalogItem, error) {
	s.calls++
	for _, it := range s.items {
		if it.ID == id {
			return &it, nil
		}
	}
	return nil, listing.ErrNotFound
}

func (s *sliceStore) Create(context.Context, *models.CatalogItem) error { return nil }
func (s *sliceStore) Update(context.Context, uuid.UUID, models.UpdateItemRequest) (*models.CatalogItem, error) {
	return nil, listing.ErrNotFound
}
func (s *sliceStore) Delete(context.Context, uuid.UUID) (*models.CatalogItem, error) {
	return nil, listing.ErrNotFound
}

type downIndex struct{}

func (downIndex) Search(context.Context, listing.SearchQuery) (*listing.SearchResult, error) {
	return nil, fmt.Errorf("dial tcp 10.1.2.3:7700: connection refused")
}
func (downIndex) FilterableAttributes(context.Context) ([]string, error) {
	return nil, fmt.Errorf("dial tcp 10.1.2.3:7700: connection refused")
}
func (downIndex) Upsert(context.Context, ...models.CatalogItem) error { return nil }
func (downIndex) Delete(context.Context, string) error                { return nil }

func catalogOf(n int) []models.CatalogItem {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	items := make([]models.CatalogItem, n)
	for i := range items {
		items[i] = models.CatalogItem{
			ID:        uuid.Must(uuid.NewV7()),
			Name:      fmt.Sprintf("item-%02d", i+1),
			CreatedAt: base.Add(-time.Duration(i) * time.Hour),
		}
	}
	return items
}

func newStoreRouter(store listing.CatalogStore, index listing.SearchIndex) *gin.Engine {
	svc := listing.NewService(store, index, nil, nil, listing.Options{})
	ctl := New(svc, listing.NormalizeOptions{})
	r := gin.New()
	r.GET("/items", ctl.GetStorefrontItems)
	r.GET("/items/:id", ctl.GetStorefrontItemByID)
	return r
}

type listBody struct {
	Data       []models.CatalogItem `json:"data"`
	Pagination models.Pagination    `json:"pagination"`
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestGetStorefrontItems_ThirdPageOfTwentyFive(t *testing.T) {
	r := newStoreRouter(&sliceStore{items: catalogOf(25)}, nil)

	w := get(r, "/items?page=3&pageSize=10")
	require.Equal(t, http.StatusOK, w.Code)

	var body listBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Data, 5)
	assert.Equal(t, "item-21", body.Data[0].Name)
	assert.Equal(t, "item-25", body.Data[4].Name)
	assert.Equal(t, models.Pagination{
		CurrentPage: 3, PageSize: 10, TotalItems: 25, TotalPages: 3,
		HasNextPage: false, HasPreviousPage: true,
	}, body.Pagination)
}

func TestGetStorefrontItems_BeyondLastPage(t *testing.T) {
	r := newStoreRouter(&sliceStore{items: catalogOf(3)}, nil)

	w := get(r, "/items?page=4")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)
}

func TestGetStorefrontItems_IndexDownIsGeneric500(t *testing.T) {
	store := &sliceStore{items: catalogOf(3)}
	r := newStoreRouter(store, downIndex{})

	w := get(r, "/items?brand=Toyota")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.1.2.3")
	assert.Zero(t, store.calls, "no fallback to the catalog database")
}

func TestGetStorefrontItems_InvalidFilterAttribute(t *testing.T) {
	r := newStoreRouter(&sliceStore{}, nil)

	w := get(r, "/items?filter%5Bbrand%20OR%201%5D=x")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetStorefrontItemByID(t *testing.T) {
	items := catalogOf(2)
	store := &sliceStore{items: items}
	r := newStoreRouter(store, nil)

	w := get(r, "/items/"+items[1].ID.String())
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "item-02")

	assert.Equal(t, http.StatusNotFound, get(r, "/items/"+uuid.NewString()).Code)

	calls := store.calls
	assert.Equal(t, http.StatusBadRequest, get(r, "/items/not-a-uuid").Code)
	assert.Equal(t, calls, store.calls)
}
