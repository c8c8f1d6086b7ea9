package auth_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Modeva-Ecommerce/modeva-catalog-backend/middleware"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/models"
)

// AdminLogout godoc
// @Summary Logout admin
// @Description Logout the current admin and delete the session
// @Tags Admin - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.DataResponse
// @Router /api/v1/admin/auth/logout [post]
func (ctl *Controller) AdminLogout(c *gin.Context) {
	if token := c.GetString(middleware.ContextAdminToken); token != "" {
		log.Printf("[admin.logout] admin logging out: %s", c.GetString(middleware.ContextAdminEmail))

		// Don't fail the logout even if session deletion fails
		if err := ctl.sessions.DeactivateSession(c.Request.Context(), token); err != nil {
			log.Printf("[admin.logout] failed to deactivate session: %v", err)
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.AdminTokenCookie, "", -1, "/", "", ctl.secureCookie, true)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logout successful", nil))
}
