package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Modeva-Ecommerce/modeva-catalog-backend/controllers/cms/item_controller"
)

// SetupItemRoutes registers catalog management. Every route needs an admin
// session.
func SetupItemRoutes(admin *gin.RouterGroup, items *item_controller.Controller, requireAdmin gin.HandlerFunc) {
	protected := admin.Group("")
	protected.Use(requireAdmin)
	{
		protected.GET("/items", items.GetItems)
		protected.POST("/items", items.CreateItem)
		protected.PATCH("/items/:id", items.UpdateItem)

		// Older CMS builds send the id as a query parameter.
		protected.DELETE("/items", items.DeleteItem)
		protected.DELETE("/items/:id", items.DeleteItem)

		protected.POST("/uploads", items.UploadImages)
	}
}
