package repository

import (
	"context"
	"time"

	"hrhub/internal/models"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Repository
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, filter UserFilter) ([]models.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, hashedPassword string) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID, lastLoginAt time.Time) error

	// SaveLockState writes the failed-attempt counter and lockout
	// timestamp computed by the login guard. Plain last-write-wins.
	SaveLockState(ctx context.Context, id uuid.UUID, attempts int, lockedUntil *time.Time) error

	// IncrementLockState bumps the counter atomically in SQL and arms
	// the lock when the new count reaches maxAttempts. Used instead of
	// SaveLockState when atomic lockout updates are enabled.
	IncrementLockState(ctx context.Context, id uuid.UUID, maxAttempts int, lockedUntil time.Time) error
}

// UserFilter defines the filter options for listing users
type UserFilter struct {
	Search    *string // Search by username or email
	Role      *string
	Status    *string
	OrderBy   string // Field to order by
	OrderDesc bool   // Order descending
	Limit     *int   // Limit results
	Offset    *int   // Offset results
}
