package item_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Modeva-Ecommerce/modeva-catalog-backend/controllers"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/models"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/services/listing"
)

// GetStorefrontItems godoc
// @Summary Get storefront items
// @Description Paginated catalog listing. Requests with q or any filter are served by the search index together with facet counts; plain browsing is served by the catalog database.
// @Tags store
// @Produce json
// @Param q query string false "Search query"
// @Param brand query string false "Brand (comma-separated for OR)"
// @Param category query string false "Category (comma-separated for OR)"
// @Param fuelType query string false "Fuel type (comma-separated for OR)"
// @Param filter[attribute] query string false "Any filterable attribute, e.g. filter[brand]=Toyota,Honda"
// @Param sortBy query string false "Sort by field" Enums(createdAt, newest, updatedAt, name, price, stock, brand, category) default(createdAt)
// @Param sortOrder query string false "Sort order" Enums(asc, desc) default(desc)
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 100)" default(12)
// @Success 200 {object} models.ListResponse{data=[]models.CatalogItem}
// @Failure 400 {object} models.ErrorBody
// @Failure 500 {object} models.ErrorBody
// @Router /api/v1/store/items [get]
func (ctl *Controller) GetStorefrontItems(c *gin.Context) {
	req, err := listing.Normalize(c.Request.URL.Query(), ctl.normalize)
	if err != nil {
		controllers.RespondError(c, "store.items.list", err)
		return
	}

	page, err := ctl.items.List(c.Request.Context(), req)
	if err != nil {
		controllers.RespondError(c, "store.items.list", err)
		return
	}

	c.JSON(http.StatusOK, models.FacetedResponse(c, page.Items, page.Pagination, page.Facets))
}
