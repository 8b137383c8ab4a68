package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"hrhub/internal/auth"
	"hrhub/internal/config"
	"hrhub/internal/models"
	"hrhub/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	userRepo    repository.UserRepository
	authService *auth.Service
	guard       *auth.LockoutGuard
	auditRepo   repository.AuditLogRepository
	config      *config.Config
}

// NewAuthHandler creates a new authentication handler with the given dependencies
func NewAuthHandler(
	userRepo repository.UserRepository,
	authService *auth.Service,
	guard *auth.LockoutGuard,
	auditRepo repository.AuditLogRepository,
	config *config.Config,
) *AuthHandler {
	return &AuthHandler{
		userRepo:    userRepo,
		authService: authService,
		guard:       guard,
		auditRepo:   auditRepo,
		config:      config,
	}
}

// Login godoc
// @Summary User login
// @Description Authenticate user and return access and refresh tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.LoginResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request format"
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Failure 403 {object} models.ErrorResponse "Account disabled"
// @Failure 429 {object} models.ErrorResponse "Account locked or rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	// The guard runs before the password check so a locked or disabled
	// account is rejected without burning a bcrypt comparison.
	decision, err := h.guard.CanAttemptLogin(c.Request.Context(), req.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to process login"})
		return
	}
	if !decision.Allowed {
		switch decision.Reason {
		case auth.DenyAccountDisabled:
			c.JSON(http.StatusForbidden, models.ErrorResponse{Error: "account is disabled"})
		case auth.DenyAccountLocked:
			c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
				Error: fmt.Sprintf("account locked, try again in %d minutes", decision.RetryAfterMinutes),
			})
		default:
			c.JSON(http.StatusForbidden, models.ErrorResponse{Error: "login not allowed"})
		}
		return
	}

	user, err := h.userRepo.GetByUsername(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// An unknown username gets the same response as a wrong
			// password and never touches the lock store.
			c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to process login"})
		return
	}

	if err := h.authService.ComparePasswords(user.Password, req.Password); err != nil {
		if err := h.guard.RecordFailure(c.Request.Context(), req.Username); err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to process login"})
			return
		}
		h.audit(c, &user.ID, models.AuditActionLoginFailed, "user", user.ID.String(),
			fmt.Sprintf("Failed login attempt for %s", user.Username),
			map[string]interface{}{"username": user.Username})
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid credentials"})
		return
	}

	if err := h.guard.RecordSuccess(c.Request.Context(), user); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to process login"})
		return
	}

	if err := h.userRepo.UpdateLastLogin(c.Request.Context(), user.ID, time.Now()); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to update login time"})
		return
	}

	h.audit(c, &user.ID, models.AuditActionLogin, "user", user.ID.String(),
		fmt.Sprintf("User %s logged in successfully", user.Username),
		map[string]interface{}{"username": user.Username})

	accessToken, err := h.authService.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to generate access token"})
		return
	}

	refreshToken, err := h.authService.GenerateRefreshToken(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to generate refresh token"})
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	})
}

// Register godoc
// @Summary Register new user
// @Description Register a new user account. First user gets admin role, subsequent users get user role.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.CreateUserRequest true "User registration details"
// @Success 201 {object} models.User "User created successfully"
// @Failure 400 {object} models.ErrorResponse "Invalid request format"
// @Failure 403 {object} models.ErrorResponse "Registration is disabled"
// @Failure 409 {object} models.ErrorResponse "Username or email already exists"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Failed to create user"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	authUser := auth.GetUserFromContext(c)
	isAdmin := authUser != nil && authUser.IsAdmin()

	users, err := h.userRepo.List(c.Request.Context(), repository.UserFilter{})
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to check existing users"})
		return
	}

	// Registration is open for the very first account, for admins, or
	// when explicitly enabled in config.
	isFirstUser := len(users) == 0
	if !isFirstUser && !isAdmin && !h.config.Auth.RegistrationOpen {
		c.JSON(http.StatusForbidden, models.ErrorResponse{Error: "registration is disabled"})
		return
	}

	existingUser, err := h.userRepo.GetByUsername(c.Request.Context(), req.Username)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to check username"})
		return
	}
	if existingUser != nil {
		c.JSON(http.StatusConflict, models.ErrorResponse{Error: "username already exists"})
		return
	}

	if req.Email != nil {
		existingUser, err = h.userRepo.GetByEmail(c.Request.Context(), *req.Email)
		if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to check email"})
			return
		}
		if existingUser != nil {
			c.JSON(http.StatusConflict, models.ErrorResponse{Error: "email already exists"})
			return
		}
	}

	hashedPassword, err := h.authService.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to process registration"})
		return
	}

	role := models.RoleUser
	if isFirstUser {
		role = models.RoleAdmin
	}

	user := &models.User{
		Username: req.Username,
		Password: hashedPassword,
		Email:    req.Email,
		Role:     role,
		Status:   models.UserStatusActive,
	}

	if err := h.userRepo.Create(c.Request.Context(), user); err != nil {
		switch {
		case errors.Is(err, repository.ErrUsernameExists):
			c.JSON(http.StatusConflict, models.ErrorResponse{Error: "username already exists"})
		case errors.Is(err, repository.ErrEmailExists):
			c.JSON(http.StatusConflict, models.ErrorResponse{Error: "email already exists"})
		default:
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to create user"})
		}
		return
	}

	h.audit(c, &user.ID, models.AuditActionCreate, "user", user.ID.String(),
		fmt.Sprintf("User %s registered", user.Username),
		map[string]interface{}{"username": user.Username, "role": role})

	c.JSON(http.StatusCreated, user)
}

// RefreshRequest represents the request to refresh an access token
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required" example:"dG9rZW4uLi4="`
}

// RefreshResponse represents the response after refreshing an access token
type RefreshResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIs..."`
}

// Refresh godoc
// @Summary Refresh access token
// @Description Get a new access token using a refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh token"
// @Success 200 {object} RefreshResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Invalid or expired refresh token"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	userID, err := h.authService.ValidateRefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid or expired refresh token"})
		return
	}

	user, err := h.userRepo.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to get user"})
		return
	}

	if !user.IsActive() {
		c.JSON(http.StatusForbidden, models.ErrorResponse{Error: "account is disabled"})
		return
	}

	accessToken, err := h.authService.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to generate access token"})
		return
	}

	c.JSON(http.StatusOK, RefreshResponse{AccessToken: accessToken})
}

// Logout godoc
// @Summary Logout
// @Description Invalidate the given refresh token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh token to invalidate"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 429 {object} models.ErrorResponse "Rate limit exceeded"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.authService.DeleteRefreshToken(c.Request.Context(), req.RefreshToken); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to logout"})
		return
	}

	if user := auth.GetUserFromContext(c); user != nil {
		h.audit(c, &user.ID, models.AuditActionLogout, "user", user.ID.String(),
			fmt.Sprintf("User %s logged out", user.Username), nil)
	}

	c.JSON(http.StatusOK, models.SuccessResponse{Message: "logged out"})
}

// Me godoc
// @Summary Current user profile
// @Description Returns the authenticated user's profile
// @Tags auth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user := auth.GetUserFromContext(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// ChangePassword godoc
// @Summary Change own password
// @Description Change the authenticated user's password and revoke existing refresh tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.ChangePasswordRequest true "Password change details"
// @Success 200 {object} models.SuccessResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request or wrong current password"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /auth/password [put]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	user := auth.GetUserFromContext(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "unauthorized"})
		return
	}

	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.authService.ComparePasswords(user.Password, req.CurrentPassword); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "current password is incorrect"})
		return
	}

	hashedPassword, err := h.authService.HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to process password"})
		return
	}

	if err := h.userRepo.UpdatePassword(c.Request.Context(), user.ID, hashedPassword); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to update password"})
		return
	}

	// Changing the password revokes every outstanding session.
	if err := h.authService.DeleteAllRefreshTokens(c.Request.Context(), user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to revoke sessions"})
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse{Message: "password changed"})
}

// audit writes an audit entry without failing the request on error
func (h *AuthHandler) audit(c *gin.Context, userID *uuid.UUID, action models.AuditAction, entityType, entityID, description string, metadata map[string]interface{}) {
	var meta string
	if metadata != nil {
		b, _ := json.Marshal(metadata)
		meta = string(b)
	}
	entry := &models.CreateAuditLogRequest{
		UserID:      userID,
		Action:      action,
		EntityType:  entityType,
		EntityID:    entityID,
		Description: description,
		Metadata:    meta,
		IPAddress:   c.ClientIP(),
		UserAgent:   c.GetHeader("User-Agent"),
	}
	if err := h.auditRepo.Create(c.Request.Context(), entry); err != nil {
		log.Printf("Failed to create audit log: %v", err)
	}
}
