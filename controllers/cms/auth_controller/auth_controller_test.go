package auth_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Modeva-Ecommerce/modeva-catalog-backend/controllers"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/middleware"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/models"
	"github.com/Modeva-Ecommerce/modeva-catalog-backend/services"
)

func init() {
	gin.SetMode(gin.TestMode)
	controllers.RegisterJSONFieldNames()
}

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)
	jwtService, err := services.NewJWTService("test-secret", time.Hour)
	require.NoError(t, err)
	sessions := services.NewAdminSessionService(rdb)

	ctl := New(services.NewAdminAuthService("admin@modeva.dev", string(hash)), jwtService, sessions, false)

	r := gin.New()
	r.POST("/login", ctl.AdminLogin)
	protected := r.Group("", middleware.AdminAuthMiddleware(jwtService, sessions))
	protected.POST("/logout", ctl.AdminLogout)
	protected.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	return r
}

func call(r http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginLogoutFlow(t *testing.T) {
	r := newAuthRouter(t)

	w := call(r, http.MethodPost, "/login", `{"email":"admin@modeva.dev","password":"correct-horse"}`, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Data models.AdminLoginResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	token := body.Data.Token
	require.NotEmpty(t, token)
	assert.Contains(t, w.Header().Get("Set-Cookie"), middleware.AdminTokenCookie+"=")

	assert.Equal(t, http.StatusNoContent, call(r, http.MethodGet, "/ping", "", token).Code)

	assert.Equal(t, http.StatusOK, call(r, http.MethodPost, "/logout", "", token).Code)
	assert.Equal(t, http.StatusUnauthorized, call(r, http.MethodGet, "/ping", "", token).Code,
		"token is dead after logout")
}

func TestLogin_Failures(t *testing.T) {
	r := newAuthRouter(t)

	w := call(r, http.MethodPost, "/login", `{"email":"admin@modeva.dev","password":"wrong-horse"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = call(r, http.MethodPost, "/login", `{"email":"not-an-email","password":"x"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"field":"email"`)
	assert.Contains(t, w.Body.String(), `"field":"password"`)
}
