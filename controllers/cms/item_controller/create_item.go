package item_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Modeva-Ecommerce/modeva-catalog-backend/controllers"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/models"
)

// CreateItem godoc
// @Summary Create a catalog item
// @Description Validates the payload, reporting every failing field, and stores the item
// @Tags CMS - Items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param item body models.CreateItemRequest true "Item"
// @Success 201 {object} models.DataResponse{data=models.CatalogItem}
// @Failure 400 {object} models.ErrorBody
// @Failure 500 {object} models.ErrorBody
// @Router /api/v1/admin/items [post]
func (ctl *Controller) CreateItem(c *gin.Context) {
	var req models.CreateItemRequest
	if err := controllers.BindJSON(c, &req); err != nil {
		controllers.RespondBindError(c, err)
		return
	}

	item, err := ctl.items.CreateItem(c.Request.Context(), req)
	if err != nil {
		controllers.RespondError(c, "admin.items.create", err)
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Item created successfully", item))
}
