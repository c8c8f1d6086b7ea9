package models

import (
	"time"
)

// AdminSession represents an active admin session. Sessions live in Redis
// under their token hash and expire with the token.
type AdminSession struct {
	ID             string    `json:"id"`
	AdminEmail     string    `json:"admin_email"`
	TokenHash      string    `json:"-"`
	IPAddress      string    `json:"ip_address"`
	UserAgent      string    `json:"user_agent"`
	CreatedAt      time.Time `json:"created_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
	ExpiresAt      time.Time `json:"expires_at"`
}

// IsExpired checks if session has expired
func (as *AdminSession) IsExpired(now time.Time) bool {
	return now.After(as.ExpiresAt)
}

type AdminLoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@modeva.dev"`
	Password string `json:"password" binding:"required,min=8" example:"correct-horse-battery"`
}

type AdminLoginResponse struct {
	Token     string    `json:"token"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}
