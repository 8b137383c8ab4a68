package repository

import (
	"context"
	"time"

	"hrhub/internal/models"

	"github.com/google/uuid"
)

// LeaveRepository defines the interface for leave database operations
type LeaveRepository interface {
	Repository
	Create(ctx context.Context, leave *models.Leave) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Leave, error)
	List(ctx context.Context, filter LeaveFilter) ([]models.Leave, error)
	CountByStatus(ctx context.Context, status string) (int, error)

	// Review moves a pending leave to approved/rejected and records the
	// reviewer. Returns ErrLeaveAlreadyReviewed when the leave has left
	// the pending state.
	Review(ctx context.Context, id uuid.UUID, status string, reviewerID uuid.UUID, reviewedAt time.Time) error
}

// LeaveFilter defines the filter options for listing leaves
type LeaveFilter struct {
	EmployeeID *uuid.UUID
	Status     *string
	LeaveType  *string
	From       *time.Time
	To         *time.Time
	OrderBy    string
	OrderDesc  bool
	Limit      *int
	Offset     *int
}
