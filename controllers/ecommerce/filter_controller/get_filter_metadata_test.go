package filter_controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Modeva-Ecommerce/modeva-catalog-backend/models"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/services/listing"
)

type stubFacets struct {
	dist models.FacetDistribution
	err  error
}

func (s stubFacets) FacetDistribution(context.Context) (models.FacetDistribution, error) {
	return s.dist, s.err
}

func serve(src FacetSource) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/items/filters", New(src).GetFilterMetadata)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/filters", nil))
	return w
}

func TestGetFilterMetadata(t *testing.T) {
	dist := models.FacetDistribution{
		"brand":    {"Toyota": 2, "Honda": 1},
		"fuelType": {"Hybrid": 3},
	}
	w := serve(stubFacets{dist: dist})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))

	var got models.FacetDistribution
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, dist, got)
}

func TestGetFilterMetadata_Failure(t *testing.T) {
	w := serve(stubFacets{err: listing.ErrConfiguration})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}
