package item_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Modeva-Ecommerce/modeva-catalog-backend/controllers"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/models"
)

// GetStorefrontItemByID godoc
// @Summary Get a storefront item
// @Tags store
// @Produce json
// @Param id path string true "Item ID (UUID)"
// @Success 200 {object} models.DataResponse{data=models.CatalogItem}
// @Failure 400 {object} models.ErrorBody
// @Failure 404 {object} models.ErrorBody
// @Failure 500 {object} models.ErrorBody
// @Router /api/v1/store/items/{id} [get]
func (ctl *Controller) GetStorefrontItemByID(c *gin.Context) {
	item, err := ctl.items.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		controllers.RespondError(c, "store.items.get", err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "", item))
}
