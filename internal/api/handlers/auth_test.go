package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hrhub/internal/api/handlers"
	"hrhub/internal/auth"
	"hrhub/internal/config"
	"hrhub/internal/models"
	"hrhub/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginFixture struct {
	router  *gin.Engine
	users   *testutil.FakeUserRepo
	audit   *testutil.FakeAuditLogRepo
	handler *handlers.AuthHandler
	service *auth.Service
	cfg     *config.Config
}

func newLoginFixture(t *testing.T) *loginFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test_secret_key"
	cfg.Auth.MaxLoginAttempts = 5
	cfg.Auth.LockoutMinutes = 15

	users := testutil.NewFakeUserRepo()
	audit := testutil.NewFakeAuditLogRepo()
	service := auth.NewService(cfg, testutil.NewFakeRefreshTokenRepo())
	guard := auth.NewLockoutGuard(cfg, users)
	handler := handlers.NewAuthHandler(users, service, guard, audit, cfg)

	router := gin.New()
	router.POST("/auth/login", handler.Login)
	router.POST("/auth/register", handler.Register)

	return &loginFixture{
		router:  router,
		users:   users,
		audit:   audit,
		handler: handler,
		service: service,
		cfg:     cfg,
	}
}

func (f *loginFixture) seedUser(t *testing.T, username, password string) *models.User {
	t.Helper()
	hashed, err := f.service.HashPassword(password)
	require.NoError(t, err)
	return f.users.Seed(&models.User{
		Username: username,
		Password: hashed,
		Role:     models.RoleUser,
		Status:   models.UserStatusActive,
	})
}

func (f *loginFixture) login(username, password string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(models.LoginRequest{Username: username, Password: password})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(w, req)
	return w
}

func TestLogin_Success(t *testing.T) {
	f := newLoginFixture(t)
	f.seedUser(t, "erika", "correct-horse")

	w := f.login("erika", "correct-horse")
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	require.NotNil(t, resp.User)
	assert.Equal(t, "erika", resp.User.Username)
}

func TestLogin_WrongPasswordThenLockout(t *testing.T) {
	f := newLoginFixture(t)
	seeded := f.seedUser(t, "erika", "correct-horse")

	// Four wrong passwords get the generic rejection
	for i := 0; i < 4; i++ {
		w := f.login("erika", "wrong")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid credentials")
	}

	// The fifth wrong password still reports invalid credentials but
	// arms the lock
	w := f.login("erika", "wrong")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	stored, err := f.users.GetByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.FailedLoginAttempts)
	require.NotNil(t, stored.LockedUntil)

	// From here even the correct password is rejected until the window
	// passes
	w = f.login("erika", "correct-horse")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "account locked")
	assert.Contains(t, w.Body.String(), "minutes")
}

func TestLogin_SuccessResetsCounter(t *testing.T) {
	f := newLoginFixture(t)
	seeded := f.seedUser(t, "erika", "correct-horse")

	for i := 0; i < 3; i++ {
		f.login("erika", "wrong")
	}

	w := f.login("erika", "correct-horse")
	require.Equal(t, http.StatusOK, w.Code)

	stored, err := f.users.GetByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Zero(t, stored.FailedLoginAttempts)
	assert.Nil(t, stored.LockedUntil)
}

func TestLogin_UnknownUsername(t *testing.T) {
	f := newLoginFixture(t)

	// An unknown username gets the same generic rejection as a wrong
	// password and writes nothing to the lock store
	w := f.login("nobody", "whatever")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid credentials")
	assert.Zero(t, f.users.SaveLockStateCalls)
}

func TestLogin_DisabledAccount(t *testing.T) {
	f := newLoginFixture(t)
	hashed, err := f.service.HashPassword("correct-horse")
	require.NoError(t, err)
	f.users.Seed(&models.User{
		Username: "gone",
		Password: hashed,
		Role:     models.RoleUser,
		Status:   models.UserStatusInactive,
	})

	w := f.login("gone", "correct-horse")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "disabled")
}

func TestLogin_AuditTrail(t *testing.T) {
	f := newLoginFixture(t)
	f.seedUser(t, "erika", "correct-horse")

	f.login("erika", "wrong")
	f.login("erika", "correct-horse")

	require.Len(t, f.audit.Entries, 2)
	assert.Equal(t, models.AuditActionLoginFailed, f.audit.Entries[0].Action)
	assert.Equal(t, models.AuditActionLogin, f.audit.Entries[1].Action)
}

func TestRegister_FirstUserBecomesAdmin(t *testing.T) {
	f := newLoginFixture(t)

	body, _ := json.Marshal(models.CreateUserRequest{
		Username: "founder",
		Password: "super-secret-pass",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var created models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, models.RoleAdmin, created.Role)
}

func TestRegister_ClosedForSecondUser(t *testing.T) {
	f := newLoginFixture(t)
	f.seedUser(t, "founder", "super-secret-pass")

	body, _ := json.Marshal(models.CreateUserRequest{
		Username: "newcomer",
		Password: "another-password",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
