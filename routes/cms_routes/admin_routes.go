package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Modeva-Ecommerce/modeva-catalog-backend/controllers/cms/auth_controller"
)

// SetupAdminRoutes registers the admin session routes on the /admin group.
func SetupAdminRoutes(admin *gin.RouterGroup, auth *auth_controller.Controller, requireAdmin gin.HandlerFunc) {
	// ════════════════════════════════════════════════════════════
	// Public Routes (No Auth Required)
	// ════════════════════════════════════════════════════════════
	admin.POST("/auth/login", auth.AdminLogin)

	// ════════════════════════════════════════════════════════════
	// Protected Routes (Auth Required)
	// ════════════════════════════════════════════════════════════
	protected := admin.Group("/auth")
	protected.Use(requireAdmin)
	{
		protected.POST("/logout", auth.AdminLogout)
	}
}
