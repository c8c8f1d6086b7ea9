package item_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Modeva-Ecommerce/modeva-catalog-backend/controllers"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/models"
)

// DeleteItem godoc
// @Summary Delete a catalog item
// @Description Deletes an item and returns its last state. The id may be given as ?id= or as a path segment. Item images are removed in the background.
// @Tags CMS - Items
// @Produce json
// @Security BearerAuth
// @Param id query string false "Item ID (UUID)"
// @Success 200 {object} models.DataResponse{data=models.CatalogItem}
// @Failure 400 {object} models.ErrorBody
// @Failure 404 {object} models.ErrorBody
// @Failure 500 {object} models.ErrorBody
// @Router /api/v1/admin/items [delete]
func (ctl *Controller) DeleteItem(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		id = c.Query("id")
	}

	item, err := ctl.items.DeleteItem(c.Request.Context(), id)
	if err != nil {
		controllers.RespondError(c, "admin.items.delete", err)
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item deleted successfully", item))
}
