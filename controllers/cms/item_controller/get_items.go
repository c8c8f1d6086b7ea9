package item_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Modeva-Ecommerce/modeva-catalog-backend/controllers"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/models"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/services/listing"
)

// GetItems godoc
// @Summary List catalog items (admin)
// @Description Paginated table view served from the relational store. q matches name, brand and category.
// @Tags CMS - Items
// @Produce json
// @Security BearerAuth
// @Param q query string false "Search name, brand or category"
// @Param brand query string false "Brand (comma-separated for OR)"
// @Param category query string false "Category (comma-separated for OR)"
// @Param fuelType query string false "Fuel type (comma-separated for OR)"
// @Param sortBy query string false "Sort field" Enums(createdAt, updatedAt, name, price, stock, brand, category) default(createdAt)
// @Param sortOrder query string false "Sort order" Enums(asc, desc) default(desc)
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 100)" default(12)
// @Success 200 {object} models.ListResponse{data=[]models.CatalogItem}
// @Failure 400 {object} models.ErrorBody
// @Failure 500 {object} models.ErrorBody
// @Router /api/v1/admin/items [get]
func (ctl *Controller) GetItems(c *gin.Context) {
	req, err := listing.Normalize(c.Request.URL.Query(), ctl.normalize)
	if err != nil {
		controllers.RespondError(c, "admin.items.list", err)
		return
	}

	page, err := ctl.items.Browse(c.Request.Context(), req)
	if err != nil {
		controllers.RespondError(c, "admin.items.list", err)
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, page.Items, page.Pagination))
}
