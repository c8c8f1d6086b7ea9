package auth_controller

import (
	"context"
	"time"

	"github.com/Modeva-Ecommerce/modeva-catalog-backend/models"
)

type Authenticator interface {
	Authenticate(email, password string) (string, error)
}

type TokenIssuer interface {
	GenerateAdminJWT(email string) (string, time.Time, error)
}

type SessionManager interface {
	CreateSession(ctx context.Context, email, token string, expiresAt time.Time, ipAddress, userAgent string) (*models.AdminSession, error)
	DeactivateSession(ctx context.Context, token string) error
}

// Controller serves admin login and logout.
type Controller struct {
	auth         Authenticator
	tokens       TokenIssuer
	sessions     SessionManager
	secureCookie bool
}

func New(auth Authenticator, tokens TokenIssuer, sessions SessionManager, secureCookie bool) *Controller {
	return &Controller{auth: auth, tokens: tokens, sessions: sessions, secureCookie: secureCookie}
}
