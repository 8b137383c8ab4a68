package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hrhub/internal/api/middleware"
	"hrhub/internal/auth"
	"hrhub/internal/config"
	"hrhub/internal/models"
	"hrhub/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(t *testing.T, user *models.User, roles ...string) (*gin.Engine, *middleware.AuthMiddleware) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test_secret_key"
	cfg.Auth.MaxLoginAttempts = 5
	cfg.Auth.LockoutMinutes = 15

	users := testutil.NewFakeUserRepo()
	authService := auth.NewService(cfg, testutil.NewFakeRefreshTokenRepo())
	m := middleware.NewAuthMiddleware(authService, users)

	router := gin.New()
	router.GET("/protected",
		func(c *gin.Context) {
			if user != nil {
				c.Set("user", user)
			}
		},
		m.RoleRequired(roles...),
		func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "ok"})
		},
	)
	return router, m
}

func TestRoleRequired(t *testing.T) {
	admin := &models.User{Username: "root", Role: models.RoleAdmin, Status: models.UserStatusActive}
	manager := &models.User{Username: "lead", Role: models.RoleManager, Status: models.UserStatusActive}

	t.Run("Allows Matching Role", func(t *testing.T) {
		router, _ := setupRouter(t, manager, models.RoleAdmin, models.RoleManager)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Accept", "application/json")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Forbids Missing Role", func(t *testing.T) {
		router, _ := setupRouter(t, manager, models.RoleAdmin)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Accept", "application/json")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Wrong Role Gets JSON Even From Browser", func(t *testing.T) {
		router, _ := setupRouter(t, manager, models.RoleAdmin)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Accept", "text/html")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Empty Role Set Forbids Admin", func(t *testing.T) {
		router, _ := setupRouter(t, admin)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Accept", "application/json")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("No Session JSON Client Forbidden", func(t *testing.T) {
		router, _ := setupRouter(t, nil, models.RoleAdmin)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Accept", "application/json")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("No Session Browser Redirects To Login", func(t *testing.T) {
		router, _ := setupRouter(t, nil, models.RoleAdmin)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Accept", "text/html")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, middleware.LoginPath, w.Header().Get("Location"))
	})

	t.Run("XHR Marker Forces JSON Denial", func(t *testing.T) {
		router, _ := setupRouter(t, nil, models.RoleAdmin)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Accept", "text/html")
		req.Header.Set("X-Requested-With", "XMLHttpRequest")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAuthRequired(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test_secret_key"

	users := testutil.NewFakeUserRepo()
	authService := auth.NewService(cfg, testutil.NewFakeRefreshTokenRepo())
	m := middleware.NewAuthMiddleware(authService, users)

	router := gin.New()
	router.GET("/me", m.AuthRequired(), func(c *gin.Context) {
		user := auth.GetUserFromContext(c)
		require.NotNil(t, user)
		c.JSON(http.StatusOK, gin.H{"username": user.Username})
	})

	t.Run("Missing Header", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Malformed Header", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Token abc")
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Valid Token Loads User", func(t *testing.T) {
		user := users.Seed(&models.User{Username: "erika", Role: models.RoleUser, Status: models.UserStatusActive})
		token, err := authService.GenerateToken(user)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "erika")
	})

	t.Run("Disabled Account Rejected", func(t *testing.T) {
		user := users.Seed(&models.User{Username: "gone", Role: models.RoleUser, Status: models.UserStatusInactive})
		token, err := authService.GenerateToken(user)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
