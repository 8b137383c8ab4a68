package repository

import (
	"context"

	"hrhub/internal/models"

	"github.com/google/uuid"
)

// TimeScheduleRepository defines the interface for schedule operations
type TimeScheduleRepository interface {
	Repository
	Create(ctx context.Context, schedule *models.TimeSchedule) error
	Update(ctx context.Context, schedule *models.TimeSchedule) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.TimeSchedule, error)
	GetByEmployeeID(ctx context.Context, employeeID uuid.UUID) (*models.TimeSchedule, error)
	List(ctx context.Context) ([]models.TimeSchedule, error)
}
