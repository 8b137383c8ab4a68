package repository

import (
	"context"
	"time"

	"hrhub/internal/models"

	"github.com/google/uuid"
)

// AuditLogRepository defines the interface for audit log operations
type AuditLogRepository interface {
	Repository
	Create(ctx context.Context, log *models.CreateAuditLogRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.AuditLog, error)
	List(ctx context.Context, filter AuditLogFilter) ([]models.AuditLog, error)
	CleanupOld(ctx context.Context, olderThan time.Duration) error
}

// AuditLogFilter defines the filter options for listing audit logs
type AuditLogFilter struct {
	UserID        *uuid.UUID
	Actions       []models.AuditAction
	EntityTypes   []string
	CreatedBefore *time.Time
	CreatedAfter  *time.Time
	OrderBy       string
	OrderDesc     bool
	Limit         *int
	Offset        *int
}
