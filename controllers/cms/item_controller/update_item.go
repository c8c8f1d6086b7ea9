package item_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Modeva-Ecommerce/modeva-catalog-backend/controllers"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/models"
)

// UpdateItem godoc
// @Summary Update a catalog item
// @Description Partial update; omitted fields are left unchanged
// @Tags CMS - Items
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID (UUID)"
// @Param item body models.UpdateItemRequest true "Fields to change"
// @Success 200 {object} models.DataResponse{data=models.CatalogItem}
// @Failure 400 {object} models.ErrorBody
// @Failure 404 {object} models.ErrorBody
// @Failure 500 {object} models.ErrorBody
// @Router /api/v1/admin/items/{id} [patch]
func (ctl *Controller) UpdateItem(c *gin.Context) {
	var patch models.UpdateItemRequest
	if err := controllers.BindJSON(c, &patch); err != nil {
		controllers.RespondBindError(c, err)
		return
	}

	item, err := ctl.items.UpdateItem(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		controllers.RespondError(c, "admin.items.update", err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item updated successfully", item))
}
