package ecommerce_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Modeva-Ecommerce/modeva-catalog-backend/controllers/ecommerce/filter_controller"
	store_item "github.com/Modeva-Ecommerce/modeva-catalog-backend/controllers/ecommerce/item_controller"
)

func SetupStorefrontRoutes(router *gin.RouterGroup, items *store_item.Controller, filters *filter_controller.Controller) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	catalog := store.Group("/items")
	{
		catalog.GET("", items.GetStorefrontItems)          // List, search and filter
		catalog.GET("/filters", filters.GetFilterMetadata) // Facet counts
		catalog.GET("/:id", items.GetStorefrontItemByID)   // Single item
	}
}
