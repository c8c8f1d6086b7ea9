package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Modeva-Ecommerce/modeva-catalog-backend/models"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/services"
)

const (
	AdminTokenCookie = "admin_token"

	ContextAdminEmail = "adminEmail"
	ContextAdminToken = "adminToken"
)

// TokenVerifier validates a signed admin token.
type TokenVerifier interface {
	VerifyAdminJWT(token string) (*services.AdminJWTClaims, error)
}

// SessionStore resolves the live session behind a token.
type SessionStore interface {
	TouchSession(ctx context.Context, token string) (*models.AdminSession, error)
}

// AdminAuthMiddleware validates the JWT and requires a live session, so a
// logged-out token is rejected even before it expires.
func AdminAuthMiddleware(jwtService TokenVerifier, sessions SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - no token provided"))
			return
		}

		claims, err := jwtService.VerifyAdminJWT(token)
		if err != nil {
			log.Printf("[auth] invalid token: %v", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid token"))
			return
		}

		session, err := sessions.TouchSession(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, services.ErrSessionNotFound) {
				log.Printf("[auth] session lookup failed: %v", err)
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - session expired"))
			return
		}
		if session.AdminEmail != claims.Email {
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - invalid session"))
			return
		}

		c.Set(ContextAdminEmail, claims.Email)
		c.Set(ContextAdminToken, token)
		c.Next()
	}
}

// extractToken reads the cookie first, then the Authorization header.
func extractToken(c *gin.Context) (string, bool) {
	if token, err := c.Cookie(AdminTokenCookie); err == nil && token != "" {
		return token, true
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", false
	}
	return strings.TrimSpace(parts[1]), true
}
