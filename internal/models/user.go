package models

import (
	"time"

	"github.com/google/uuid"
)

// Role values. One role per user, matched case-sensitively by the
// authorization gate.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleUser    = "user"
)

// User status values.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
)

// User represents an authenticable account in the system
type User struct {
	ID                  uuid.UUID  `json:"id"`
	Username            string     `json:"username"`
	Password            string     `json:"-"`
	Email               *string    `json:"email"`
	Role                string     `json:"role"`
	Status              string     `json:"status"`
	FailedLoginAttempts int        `json:"-"`
	LockedUntil         *time.Time `json:"-"`
	LastLoginAt         *time.Time `json:"last_login_at"`
	LastFailedLogin     *time.Time `json:"last_failed_login,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// IsActive returns true if the account may authenticate at all
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// IsLocked returns true if the lockout window is still open at now.
// A lock timestamp in the past means the account is no longer locked,
// whatever the failure counter says.
func (u *User) IsLocked(now time.Time) bool {
	return u.LockedUntil != nil && u.LockedUntil.After(now)
}

// HasRole reports whether the user carries the given role tag
func (u *User) HasRole(role string) bool {
	return u.Role == role
}

// IsAdmin returns true if the user has the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CreateUserRequest represents the request to create a new user
type CreateUserRequest struct {
	Username string  `json:"username" binding:"required,min=3,max=50"`
	Password string  `json:"password" binding:"required,min=8,max=72"`
	Email    *string `json:"email" binding:"omitempty,email"`
}

// UpdateUserRequest represents the request to update a user
type UpdateUserRequest struct {
	Email  *string `json:"email,omitempty" binding:"omitempty,email"`
	Role   *string `json:"role,omitempty" binding:"omitempty,oneof=admin manager user"`
	Status *string `json:"status,omitempty" binding:"omitempty,oneof=active inactive"`
}

// ChangePasswordRequest represents the request to change a user's password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8,max=72"`
}

// RefreshToken represents a persisted refresh token
type RefreshToken struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
