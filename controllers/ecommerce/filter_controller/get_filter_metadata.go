package filter_controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Modeva-Ecommerce/modeva-catalog-backend/controllers"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/models"
)

type FacetSource interface {
	FacetDistribution(ctx context.Context) (models.FacetDistribution, error)
}

type Controller struct {
	facets FacetSource
}

func New(facets FacetSource) *Controller {
	return &Controller{facets: facets}
}

// GetFilterMetadata godoc
// @Summary Get filter options with counts
// @Description Returns attribute -> value -> item count for every filterable attribute. Never cached by clients.
// @Tags store
// @Produce json
// @Success 200 {object} models.FacetDistribution
// @Failure 500 {object} models.ErrorBody
// @Router /api/v1/store/items/filters [get]
func (ctl *Controller) GetFilterMetadata(c *gin.Context) {
	c.Header("Cache-Control", "no-store")

	dist, err := ctl.facets.FacetDistribution(c.Request.Context())
	if err != nil {
		controllers.RespondError(c, "store.filters", err)
		return
	}

	c.JSON(http.StatusOK, dist)
}
