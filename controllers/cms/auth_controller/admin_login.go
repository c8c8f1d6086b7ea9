package auth_controller

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Modeva-Ecommerce/modeva-catalog-backend/controllers"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/middleware"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/models"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/services"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/utils"
)

// AdminLogin godoc
// @Summary Login as admin
// @Description Authenticate admin with email and password. Returns JWT token and creates session
// @Tags Admin - Auth
// @Accept json
// @Produce json
// @Param loginRequest body models.AdminLoginRequest true "Email and password"
// @Success 200 {object} models.DataResponse{data=models.AdminLoginResponse}
// @Failure 400 {object} models.ErrorBody "Invalid request"
// @Failure 401 {object} models.ErrorBody "Invalid credentials"
// @Failure 500 {object} models.ErrorBody "Server error"
// @Router /api/v1/admin/auth/login [post]
func (ctl *Controller) AdminLogin(c *gin.Context) {
	log.Printf("[admin.login] attempt")

	var req models.AdminLoginRequest
	if err := controllers.BindJSON(c, &req); err != nil {
		controllers.RespondBindError(c, err)
		return
	}

	email, err := ctl.auth.Authenticate(req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, services.ErrInvalidCredentials) {
			log.Printf("[admin.login] %v", err)
		}
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	token, expiresAt, err := ctl.tokens.GenerateAdminJWT(email)
	if err != nil {
		log.Printf("[admin.login] failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	if _, err := ctl.sessions.CreateSession(
		c.Request.Context(),
		email,
		token,
		expiresAt,
		c.ClientIP(),
		c.Request.UserAgent(),
	); err != nil {
		log.Printf("[admin.login] failed to create session: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.AdminTokenCookie,
		token,
		int(time.Until(expiresAt).Seconds()),
		"/",
		"",
		ctl.secureCookie,
		true,
	)

	log.Printf("[admin.login] success: %s from %s (%s)", email, c.ClientIP(), utils.DescribeClient(c.Request.UserAgent()))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Login successful", models.AdminLoginResponse{
		Token:     token,
		Email:     email,
		ExpiresAt: expiresAt,
	}))
}
